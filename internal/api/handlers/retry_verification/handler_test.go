package retry_verification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SportsBookingService/internal/testutil/memstore"
)

type stubService struct {
	err error
}

func (s *stubService) RetryFacilityVerification(_ context.Context, id, _ int64, _ domain.Role) (*models.FacilityBookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.FacilityBookingResponse{ID: id}, nil
}

func (s *stubService) RetrySessionVerification(_ context.Context, id, _ int64, _ domain.Role) (*models.SessionBookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.SessionBookingResponse{ID: id}, nil
}

func serve(svc BookingService, path string) *httptest.ResponseRecorder {
	h := NewHandler(svc, memstore.Logger{})
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/verification", h.HandleFacility).Methods(http.MethodPost)
	router.HandleFunc("/session-bookings/{bookingId}/verification", h.HandleSession).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, path, nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), 4, domain.RoleUser))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not found", err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound, wantCode: handlers.CodeNotFound},
		{name: "forbidden", err: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden, wantCode: handlers.CodeForbidden},
		{
			name:       "generator still down",
			err:        fmt.Errorf("%w: timeout", bookings.ErrVerificationUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   handlers.CodeUnavailable,
		},
		{name: "internal", err: bookings.ErrInternal, wantStatus: http.StatusInternalServerError, wantCode: handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, path := range []string{"/bookings/2/verification", "/session-bookings/2/verification"} {
				rec := serve(&stubService{err: tt.err}, path)
				require.Equal(t, tt.wantStatus, rec.Code, path)

				var body handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Code)
			}
		})
	}
}

func TestHandler_Success(t *testing.T) {
	rec := serve(&stubService{}, "/session-bookings/8/verification")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.SessionBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(8), body.ID)
}
