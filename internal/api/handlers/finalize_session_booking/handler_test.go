package finalize_session_booking

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
	"github.com/m04kA/SMC-SportsBookingService/internal/testutil/memstore"
	finalizeSessionBooking "github.com/m04kA/SMC-SportsBookingService/internal/usecase/finalize_session_booking"
)

type stubUseCase struct {
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *finalizeSessionBooking.Request) (*finalizeSessionBooking.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &finalizeSessionBooking.Response{ID: 1, RequestID: req.RequestID, Fee: 40}, nil
}

func serve(h *Handler) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/session-requests/{requestId}/booking", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/session-requests/5/booking", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), 3, domain.RoleUser))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_PreconditionReasons(t *testing.T) {
	tests := []struct {
		reason error
		want   string
	}{
		{reason: finalizeSessionBooking.ErrNotAccepted, want: "not_accepted"},
		{reason: finalizeSessionBooking.ErrMissingReceipt, want: "missing_receipt"},
		{reason: finalizeSessionBooking.ErrMissingPrice, want: "missing_price"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			err := fmt.Errorf("%w: %w", finalizeSessionBooking.ErrPreconditionFailed, tt.reason)
			rec := serve(NewHandler(&stubUseCase{err: err}, memstore.Logger{}))

			require.Equal(t, http.StatusPreconditionFailed, rec.Code)

			var body struct {
				Code    string              `json:"code"`
				Details PreconditionDetails `json:"details"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, handlers.CodePreconditionFailed, body.Code)
			assert.Equal(t, tt.want, body.Details.Reason)
		})
	}
}

func TestHandler_Success(t *testing.T) {
	rec := serve(NewHandler(&stubUseCase{}, memstore.Logger{}))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body SessionBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.RequestID)
	assert.NotNil(t, body.Slots)
}

func TestHandler_NotFoundAndForbidden(t *testing.T) {
	rec := serve(NewHandler(&stubUseCase{err: finalizeSessionBooking.ErrRequestNotFound}, memstore.Logger{}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(NewHandler(&stubUseCase{err: finalizeSessionBooking.ErrForbidden}, memstore.Logger{}))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
