package mq

// Ключи маршрутизации доменных событий
const (
	EventFacilityBookingCreated  = "facility_booking.created"
	EventSessionRequestCreated   = "session_request.created"
	EventSessionRequestResponded = "session_request.responded"
	EventSessionBookingCreated   = "session_booking.created"
)
