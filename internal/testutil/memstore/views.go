package memstore

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// Представления Store с именами методов postgres репозиториев

func (s *Store) Facilities() *FacilityRepo                { return &FacilityRepo{s} }
func (s *Store) Bookings() *BookingRepo                   { return &BookingRepo{s} }
func (s *Store) Coaches() *CoachRepo                      { return &CoachRepo{s} }
func (s *Store) Requests() *RequestRepo                   { return &RequestRepo{s} }
func (s *Store) SessionBookingsRepo() *SessionBookingRepo { return &SessionBookingRepo{s} }
func (s *Store) Reviews() *ReviewRepo                     { return &ReviewRepo{s} }

type FacilityRepo struct{ s *Store }

func (r *FacilityRepo) Create(ctx context.Context, f *domain.Facility) (*domain.Facility, error) {
	return r.s.CreateFacility(ctx, f)
}

func (r *FacilityRepo) AddCourt(ctx context.Context, c *domain.Court) (*domain.Court, error) {
	return r.s.AddCourt(ctx, c)
}

func (r *FacilityRepo) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	return r.s.GetFacility(ctx, id)
}

func (r *FacilityRepo) List(ctx context.Context, sport *string) ([]*domain.Facility, error) {
	return r.s.ListFacilities(ctx, sport)
}

func (r *FacilityRepo) GetCourt(ctx context.Context, courtID int64) (*domain.CourtWithFacility, error) {
	return r.s.GetCourt(ctx, courtID)
}

func (r *FacilityRepo) ListCourtsBySport(ctx context.Context, sport string) ([]*domain.CourtWithFacility, error) {
	return r.s.ListCourtsBySport(ctx, sport)
}

type BookingRepo struct{ s *Store }

func (r *BookingRepo) GetReservedSlots(ctx context.Context, courtID int64, date time.Time, sport string) ([]string, error) {
	return r.s.GetReservedSlots(ctx, courtID, date, sport)
}

func (r *BookingRepo) GetCourtsWithReservedSlot(ctx context.Context, date time.Time, sport, slot string) ([]int64, error) {
	return r.s.GetCourtsWithReservedSlot(ctx, date, sport, slot)
}

func (r *BookingRepo) Create(ctx context.Context, b *domain.FacilityBooking) (*domain.FacilityBooking, error) {
	return r.s.CreateFacilityBooking(ctx, b)
}

func (r *BookingRepo) AttachVerification(ctx context.Context, id int64, code, url string) error {
	return r.s.AttachFacilityVerification(ctx, id, code, url)
}

func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*domain.FacilityBooking, error) {
	return r.s.GetFacilityBooking(ctx, id)
}

func (r *BookingRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.FacilityBooking, error) {
	return r.s.GetFacilityBookingsByUser(ctx, userID)
}

func (r *BookingRepo) GetByVerificationCode(ctx context.Context, code string) (*domain.FacilityBooking, error) {
	return r.s.GetFacilityBookingByCode(ctx, code)
}

type CoachRepo struct{ s *Store }

func (r *CoachRepo) Create(ctx context.Context, p *domain.CoachProfile) (*domain.CoachProfile, error) {
	return r.s.CreateCoach(ctx, p)
}

func (r *CoachRepo) GetByID(ctx context.Context, id int64) (*domain.CoachProfile, error) {
	return r.s.GetCoach(ctx, id)
}

func (r *CoachRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CoachProfile, error) {
	return r.s.GetCoachByUser(ctx, userID)
}

func (r *CoachRepo) ReplaceAvailability(ctx context.Context, coachID int64, slots []domain.SessionSlot) error {
	return r.s.ReplaceAvailability(ctx, coachID, slots)
}

func (r *CoachRepo) AddAvailability(ctx context.Context, coachID int64, slots []domain.SessionSlot) error {
	return r.s.AddAvailability(ctx, coachID, slots)
}

func (r *CoachRepo) GetAvailability(ctx context.Context, coachID int64) ([]domain.SessionSlot, error) {
	return r.s.GetAvailability(ctx, coachID)
}

type RequestRepo struct{ s *Store }

func (r *RequestRepo) Create(ctx context.Context, req *domain.SessionRequest) (*domain.SessionRequest, error) {
	return r.s.CreateRequest(ctx, req)
}

func (r *RequestRepo) GetByID(ctx context.Context, id int64) (*domain.SessionRequest, error) {
	return r.s.GetRequest(ctx, id)
}

func (r *RequestRepo) List(ctx context.Context, filter domain.SessionRequestFilter) ([]*domain.SessionRequest, error) {
	return r.s.ListRequests(ctx, filter)
}

func (r *RequestRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.SessionRequestStatus, courtID *int64) error {
	return r.s.UpdateRequestStatus(ctx, id, from, to, courtID)
}

func (r *RequestRepo) AttachPaymentProof(ctx context.Context, id int64, url string) error {
	return r.s.AttachPaymentProof(ctx, id, url)
}

type SessionBookingRepo struct{ s *Store }

func (r *SessionBookingRepo) Create(ctx context.Context, b *domain.SessionBooking) (*domain.SessionBooking, error) {
	return r.s.CreateSessionBooking(ctx, b)
}

func (r *SessionBookingRepo) AttachVerification(ctx context.Context, id int64, code, url string) error {
	return r.s.AttachSessionVerification(ctx, id, code, url)
}

func (r *SessionBookingRepo) GetByID(ctx context.Context, id int64) (*domain.SessionBooking, error) {
	return r.s.GetSessionBooking(ctx, id)
}

func (r *SessionBookingRepo) GetByRequestID(ctx context.Context, requestID int64) (*domain.SessionBooking, error) {
	return r.s.GetSessionBookingByRequest(ctx, requestID)
}

func (r *SessionBookingRepo) GetByVerificationCode(ctx context.Context, code string) (*domain.SessionBooking, error) {
	return r.s.GetSessionBookingByCode(ctx, code)
}

type ReviewRepo struct{ s *Store }

func (r *ReviewRepo) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	return r.s.CreateReview(ctx, rv)
}

func (r *ReviewRepo) ListByCoach(ctx context.Context, coachID int64) ([]*domain.Review, error) {
	return r.s.ListReviews(ctx, coachID)
}

func (r *ReviewRepo) GetRatings(ctx context.Context, coachID int64) ([]int, error) {
	return r.s.GetRatings(ctx, coachID)
}
