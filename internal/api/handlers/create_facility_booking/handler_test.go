package create_facility_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/testutil/memstore"
	createFacilityBooking "github.com/m04kA/SMC-SportsBookingService/internal/usecase/create_facility_booking"
)

type stubUseCase struct {
	gotReq *createFacilityBooking.Request
	resp   *createFacilityBooking.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *createFacilityBooking.Request) (*createFacilityBooking.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

func doRequest(h *Handler, body string, withUser bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withUser {
		req = req.WithContext(middleware.WithIdentity(req.Context(), 7, domain.RoleUser))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"courtId":3,"sport":"tennis","date":"2025-06-01","slots":["08:00 - 09:00"],"paymentProofUrl":"https://r/1"}`

func TestHandler_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createFacilityBooking.Response{
		ID:                  11,
		UserID:              7,
		CourtID:             3,
		Sport:               "tennis",
		BookingDate:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Slots:               []string{"08:00 - 09:00"},
		UnitPrice:           10,
		TotalPrice:          10,
		VerificationPending: true,
	}}
	h := NewHandler(uc, memstore.Logger{})

	rec := doRequest(h, validBody, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(7), uc.gotReq.UserID)
	assert.Equal(t, "2025-06-01", uc.gotReq.Date.Format(domain.DateFormat))

	var body FacilityBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(11), body.ID)
	assert.Equal(t, "2025-06-01", body.Date.String())
	assert.True(t, body.VerificationPending)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		withUser    bool
		ucErr       error
		wantStatus  int
		wantCode    string
		wantDetails []string
	}{
		{name: "no user", body: validBody, wantStatus: http.StatusUnauthorized, wantCode: handlers.CodeUnauthorized},
		{name: "bad json", body: `{`, withUser: true, wantStatus: http.StatusBadRequest, wantCode: handlers.CodeValidation},
		{
			name:       "bad date",
			body:       `{"courtId":3,"sport":"tennis","date":"01.06.2025","slots":["08:00 - 09:00"]}`,
			withUser:   true,
			wantStatus: http.StatusBadRequest,
			wantCode:   handlers.CodeValidation,
		},
		{
			name:        "conflict",
			body:        validBody,
			withUser:    true,
			ucErr:       &createFacilityBooking.SlotConflictError{Slots: []string{"08:00 - 09:00"}},
			wantStatus:  http.StatusConflict,
			wantCode:    handlers.CodeConflict,
			wantDetails: []string{"08:00 - 09:00"},
		},
		{
			name:        "unknown slots",
			body:        validBody,
			withUser:    true,
			ucErr:       &createFacilityBooking.UnknownSlotsError{Slots: []string{"07:00 - 08:00"}},
			wantStatus:  http.StatusBadRequest,
			wantCode:    handlers.CodeValidation,
			wantDetails: []string{"07:00 - 08:00"},
		},
		{
			name:       "court not found",
			body:       validBody,
			withUser:   true,
			ucErr:      createFacilityBooking.ErrCourtNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   handlers.CodeNotFound,
		},
		{
			name:       "past date",
			body:       validBody,
			withUser:   true,
			ucErr:      createFacilityBooking.ErrDateInPast,
			wantStatus: http.StatusBadRequest,
			wantCode:   handlers.CodeValidation,
		},
		{
			name:       "internal",
			body:       validBody,
			withUser:   true,
			ucErr:      fmt.Errorf("%w: db down", createFacilityBooking.ErrInternal),
			wantStatus: http.StatusInternalServerError,
			wantCode:   handlers.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.ucErr}, memstore.Logger{})

			rec := doRequest(h, tt.body, tt.withUser)

			require.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Code    string        `json:"code"`
				Message string        `json:"message"`
				Details *SlotsDetails `json:"details"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
			if tt.wantDetails != nil {
				require.NotNil(t, body.Details)
				assert.Equal(t, tt.wantDetails, body.Details.Slots)
			}
		})
	}
}
