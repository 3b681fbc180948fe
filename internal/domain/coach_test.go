package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoachProfile_FeeFor(t *testing.T) {
	fee := 40.0
	c := &CoachProfile{IndividualFee: &fee}

	got, ok := c.FeeFor(SessionIndividual)
	assert.True(t, ok)
	assert.Equal(t, 40.0, got)

	_, ok = c.FeeFor(SessionGroup)
	assert.False(t, ok)

	_, ok = c.FeeFor(SessionKind("private"))
	assert.False(t, ok)
}

func TestCoachProfile_MissingFromAvailability(t *testing.T) {
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	c := &CoachProfile{Availability: []SessionSlot{
		NewSessionSlot(day, "10:00 - 11:00"),
	}}

	// время суток в запросе не влияет на совпадение даты
	requested := []SessionSlot{
		{Date: day.Add(15 * time.Hour), Slot: "10:00 - 11:00"},
		{Date: day, Slot: "11:00 - 12:00"},
		{Date: day.AddDate(0, 0, 1), Slot: "10:00 - 11:00"},
	}

	missing := c.MissingFromAvailability(requested)
	assert.Equal(t, requested[1:], missing)
}

func TestSessionRequest_Transitions(t *testing.T) {
	tests := []struct {
		status        SessionRequestStatus
		canRespond    bool
		canAttachPaid bool
		terminal      bool
	}{
		{RequestPending, true, true, false},
		{RequestAccepted, false, true, false},
		{RequestRejected, false, true, true},
		{RequestBooked, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &SessionRequest{Status: tt.status}
			assert.Equal(t, tt.canRespond, r.CanRespond())
			assert.Equal(t, tt.canAttachPaid, r.CanAttachPaymentProof())
			assert.Equal(t, tt.terminal, r.IsTerminal())
		})
	}
}

func TestDecision_Status(t *testing.T) {
	assert.Equal(t, RequestAccepted, DecisionAccept.Status())
	assert.Equal(t, RequestRejected, DecisionReject.Status())
	assert.False(t, Decision("maybe").IsValid())
}
