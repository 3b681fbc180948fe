// Package memstore хранилище в памяти с контрактами postgres репозиториев
// Используется в тестах usecase и сервисов
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/booking"
	coachRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/coach"
	facilityRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/facility"
	reviewRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/review"
	sessionBookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionbooking"
	sessionRequestRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionrequest"
)

// Store все таблицы сервиса в памяти
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	seq  int64

	facilities      map[int64]*domain.Facility
	courts          map[int64]*domain.Court
	bookings        map[int64]*domain.FacilityBooking
	reservedSlots   map[string]int64 // court|date|sport|slot -> booking_id
	coaches         map[int64]*domain.CoachProfile
	availability    map[int64][]domain.SessionSlot
	requests        map[int64]*domain.SessionRequest
	sessionBookings map[int64]*domain.SessionBooking
	reviews         []*domain.Review

	// CreateBookingErrs ошибки, которые вернут следующие вызовы CreateFacilityBooking
	CreateBookingErrs []error
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		facilities:      map[int64]*domain.Facility{},
		courts:          map[int64]*domain.Court{},
		bookings:        map[int64]*domain.FacilityBooking{},
		reservedSlots:   map[string]int64{},
		coaches:         map[int64]*domain.CoachProfile{},
		availability:    map[int64][]domain.SessionSlot{},
		requests:        map[int64]*domain.SessionRequest{},
		sessionBookings: map[int64]*domain.SessionBooking{},
	}
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func reservationKey(courtID int64, date time.Time, sport, slot string) string {
	return fmt.Sprintf("%d|%s|%s|%s", courtID, date.Format(domain.DateFormat), sport, slot)
}

// ---- TransactionManager ----

type txKey struct{}

// Do выполняет fn последовательно с другими транзакциями (эквивалент SERIALIZABLE)
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, true))
}

func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.Do(ctx, fn)
}

// ---- facilities ----

// SeedFacility создает объект с кортами номер 1..courts
func (s *Store) SeedFacility(name string, sports []string, price float64, courts int) *domain.Facility {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := &domain.Facility{ID: s.nextID(), Name: name, Sports: sports, PricePerSlot: price}
	s.facilities[f.ID] = f
	for i := 1; i <= courts; i++ {
		c := &domain.Court{ID: s.nextID(), FacilityID: f.ID, Number: i}
		s.courts[c.ID] = c
		f.Courts = append(f.Courts, *c)
	}
	return f
}

func (s *Store) CreateFacility(_ context.Context, f *domain.Facility) (*domain.Facility, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = s.nextID()
	f.Courts = []domain.Court{}
	cp := *f
	s.facilities[f.ID] = &cp
	return f, nil
}

func (s *Store) AddCourt(_ context.Context, c *domain.Court) (*domain.Court, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.facilities[c.FacilityID]
	if !ok {
		return nil, facilityRepo.ErrFacilityNotFound
	}
	for _, existing := range f.Courts {
		if existing.Number == c.Number {
			return nil, facilityRepo.ErrCourtNumberTaken
		}
	}
	c.ID = s.nextID()
	s.courts[c.ID] = c
	f.Courts = append(f.Courts, *c)
	return c, nil
}

func (s *Store) GetFacility(_ context.Context, id int64) (*domain.Facility, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.facilities[id]
	if !ok {
		return nil, facilityRepo.ErrFacilityNotFound
	}
	cp := *f
	return &cp, nil
}

func (s *Store) ListFacilities(_ context.Context, sport *string) ([]*domain.Facility, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Facility, 0)
	for _, f := range s.facilities {
		if sport != nil && !f.OffersSport(*sport) {
			continue
		}
		cp := *f
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetCourt(_ context.Context, courtID int64) (*domain.CourtWithFacility, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courts[courtID]
	if !ok {
		return nil, facilityRepo.ErrCourtNotFound
	}
	f := s.facilities[c.FacilityID]
	return &domain.CourtWithFacility{
		Court:        *c,
		FacilityName: f.Name,
		Sports:       f.Sports,
		PricePerSlot: f.PricePerSlot,
	}, nil
}

func (s *Store) ListCourtsBySport(_ context.Context, sport string) ([]*domain.CourtWithFacility, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.CourtWithFacility, 0)
	for _, c := range s.courts {
		f := s.facilities[c.FacilityID]
		if !f.OffersSport(sport) {
			continue
		}
		out = append(out, &domain.CourtWithFacility{
			Court:        *c,
			FacilityName: f.Name,
			Sports:       f.Sports,
			PricePerSlot: f.PricePerSlot,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---- facility bookings ----

func (s *Store) GetReservedSlots(_ context.Context, courtID int64, date time.Time, sport string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := make([]string, 0)
	for _, b := range s.bookings {
		if b.CourtID == courtID && b.Sport == sport && b.BookingDate.Equal(domain.DateOnly(date)) {
			slots = append(slots, b.Slots...)
		}
	}
	return slots, nil
}

func (s *Store) GetCourtsWithReservedSlot(_ context.Context, date time.Time, sport, slot string) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0)
	for courtID := range s.courts {
		if _, ok := s.reservedSlots[reservationKey(courtID, date, sport, slot)]; ok {
			ids = append(ids, courtID)
		}
	}
	return ids, nil
}

// CreateFacilityBooking сохраняет бронирование; занятый слот отвергается как уникальным индексом
func (s *Store) CreateFacilityBooking(_ context.Context, b *domain.FacilityBooking) (*domain.FacilityBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.CreateBookingErrs) > 0 {
		err := s.CreateBookingErrs[0]
		s.CreateBookingErrs = s.CreateBookingErrs[1:]
		return nil, err
	}

	for _, slot := range b.Slots {
		if _, taken := s.reservedSlots[reservationKey(b.CourtID, b.BookingDate, b.Sport, slot)]; taken {
			return nil, fmt.Errorf("%w: court=%d slot=%s", bookingRepo.ErrSlotAlreadyReserved, b.CourtID, slot)
		}
	}

	b.ID = s.nextID()
	b.BookingDate = domain.DateOnly(b.BookingDate)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	for _, slot := range b.Slots {
		s.reservedSlots[reservationKey(b.CourtID, b.BookingDate, b.Sport, slot)] = b.ID
	}

	cp := *b
	s.bookings[b.ID] = &cp
	return b, nil
}

func (s *Store) AttachFacilityVerification(_ context.Context, id int64, code, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.VerificationCode != nil {
		return bookingRepo.ErrVerificationAlreadyAttached
	}
	b.VerificationCode = &code
	b.VerificationURL = &url
	return nil
}

func (s *Store) GetFacilityBooking(_ context.Context, id int64) (*domain.FacilityBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *Store) GetFacilityBookingByCode(_ context.Context, code string) (*domain.FacilityBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.VerificationCode != nil && *b.VerificationCode == code {
			cp := *b
			return &cp, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (s *Store) GetFacilityBookingsByUser(_ context.Context, userID int64) ([]*domain.FacilityBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.FacilityBooking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// FacilityBookings все бронирования кортов (для проверок в тестах)
func (s *Store) FacilityBookings() []*domain.FacilityBooking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.FacilityBooking, 0, len(s.bookings))
	for _, b := range s.bookings {
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ---- coaches ----

// SeedCoach создает профиль тренера с окном доступности
func (s *Store) SeedCoach(profile *domain.CoachProfile) *domain.CoachProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile.ID = s.nextID()
	s.availability[profile.ID] = domain.NormalizeSessionSlots(profile.Availability)
	profile.Availability = nil
	cp := *profile
	s.coaches[profile.ID] = &cp
	return profile
}

func (s *Store) CreateCoach(_ context.Context, profile *domain.CoachProfile) (*domain.CoachProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.coaches {
		if c.UserID == profile.UserID {
			return nil, coachRepo.ErrProfileExists
		}
	}
	profile.ID = s.nextID()
	profile.Availability = []domain.SessionSlot{}
	cp := *profile
	s.coaches[profile.ID] = &cp
	return profile, nil
}

func (s *Store) GetCoach(_ context.Context, id int64) (*domain.CoachProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.coaches[id]
	if !ok {
		return nil, coachRepo.ErrCoachNotFound
	}
	return s.coachWithAvailability(c), nil
}

func (s *Store) GetCoachByUser(_ context.Context, userID int64) (*domain.CoachProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.coaches {
		if c.UserID == userID {
			return s.coachWithAvailability(c), nil
		}
	}
	return nil, coachRepo.ErrCoachNotFound
}

func (s *Store) coachWithAvailability(c *domain.CoachProfile) *domain.CoachProfile {
	cp := *c
	cp.Availability = append([]domain.SessionSlot{}, s.availability[c.ID]...)
	return &cp
}

func (s *Store) ReplaceAvailability(_ context.Context, coachID int64, slots []domain.SessionSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.coaches[coachID]; !ok {
		return coachRepo.ErrCoachNotFound
	}
	s.availability[coachID] = domain.NormalizeSessionSlots(slots)
	return nil
}

func (s *Store) AddAvailability(_ context.Context, coachID int64, slots []domain.SessionSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.coaches[coachID]; !ok {
		return coachRepo.ErrCoachNotFound
	}
	s.availability[coachID] = domain.NormalizeSessionSlots(append(s.availability[coachID], slots...))
	return nil
}

func (s *Store) GetAvailability(_ context.Context, coachID int64) ([]domain.SessionSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]domain.SessionSlot{}, s.availability[coachID]...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Slot < out[j].Slot
	})
	return out, nil
}

// ---- session requests ----

func (s *Store) CreateRequest(_ context.Context, r *domain.SessionRequest) (*domain.SessionRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.nextID()
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	cp := *r
	s.requests[r.ID] = &cp
	return r, nil
}

func (s *Store) GetRequest(_ context.Context, id int64) (*domain.SessionRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return nil, sessionRequestRepo.ErrRequestNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *Store) ListRequests(_ context.Context, filter domain.SessionRequestFilter) ([]*domain.SessionRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.SessionRequest, 0)
	for _, r := range s.requests {
		if filter.CoachID != nil && r.CoachID != *filter.CoachID {
			continue
		}
		if filter.UserID != nil && r.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *Store) UpdateRequestStatus(_ context.Context, id int64, from, to domain.SessionRequestStatus, courtID *int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok || r.Status != from {
		return sessionRequestRepo.ErrStatusChanged
	}
	r.Status = to
	if courtID != nil {
		r.CourtID = courtID
	}
	return nil
}

func (s *Store) AttachPaymentProof(_ context.Context, id int64, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok || r.Status == domain.RequestBooked {
		return sessionRequestRepo.ErrStatusChanged
	}
	r.PaymentProofURL = &url
	return nil
}

// ---- session bookings ----

func (s *Store) CreateSessionBooking(_ context.Context, b *domain.SessionBooking) (*domain.SessionBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.sessionBookings {
		if existing.RequestID == b.RequestID {
			return nil, sessionBookingRepo.ErrAlreadyBooked
		}
	}
	b.ID = s.nextID()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	s.sessionBookings[b.ID] = &cp
	return b, nil
}

func (s *Store) AttachSessionVerification(_ context.Context, id int64, code, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.sessionBookings[id]
	if !ok {
		return sessionBookingRepo.ErrBookingNotFound
	}
	if b.VerificationCode != nil {
		return sessionBookingRepo.ErrVerificationAlreadyAttached
	}
	b.VerificationCode = &code
	b.VerificationURL = &url
	return nil
}

func (s *Store) GetSessionBooking(_ context.Context, id int64) (*domain.SessionBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.sessionBookings[id]
	if !ok {
		return nil, sessionBookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *Store) GetSessionBookingByRequest(_ context.Context, requestID int64) (*domain.SessionBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.sessionBookings {
		if b.RequestID == requestID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, sessionBookingRepo.ErrBookingNotFound
}

func (s *Store) GetSessionBookingByCode(_ context.Context, code string) (*domain.SessionBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.sessionBookings {
		if b.VerificationCode != nil && *b.VerificationCode == code {
			cp := *b
			return &cp, nil
		}
	}
	return nil, sessionBookingRepo.ErrBookingNotFound
}

// SessionBookings все бронирования тренировок (для проверок в тестах)
func (s *Store) SessionBookings() []*domain.SessionBooking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.SessionBooking, 0, len(s.sessionBookings))
	for _, b := range s.sessionBookings {
		cp := *b
		out = append(out, &cp)
	}
	return out
}

// ---- reviews ----

func (s *Store) CreateReview(_ context.Context, r *domain.Review) (*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.coaches[r.CoachID]; !ok {
		return nil, reviewRepo.ErrCoachNotFound
	}
	r.ID = s.nextID()
	r.CreatedAt = time.Now()
	cp := *r
	s.reviews = append(s.reviews, &cp)
	return r, nil
}

func (s *Store) ListReviews(_ context.Context, coachID int64) ([]*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Review, 0)
	for i := len(s.reviews) - 1; i >= 0; i-- {
		if s.reviews[i].CoachID == coachID {
			cp := *s.reviews[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *Store) GetRatings(_ context.Context, coachID int64) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, 0)
	for _, r := range s.reviews {
		if r.CoachID == coachID {
			out = append(out, r.Rating)
		}
	}
	return out, nil
}
