package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	bookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/booking"
	sessionBookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionbooking"
	"github.com/m04kA/SMC-SportsBookingService/internal/integrations/verification"
)

// ErrArtifactUnavailable ошибка выпуска кода, которую возвращает Artifacts при Fail=true
var ErrArtifactUnavailable = errors.New("memstore: verification service unavailable")

// Artifacts выпускает коды подтверждения и пишет их в Store
type Artifacts struct {
	mu    sync.Mutex
	store *Store
	seq   int
	Fail  bool
}

func NewArtifacts(store *Store) *Artifacts {
	return &Artifacts{store: store}
}

func (a *Artifacts) next(kind string, id int64) (*verification.Artifact, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.Fail {
		return nil, ErrArtifactUnavailable
	}
	a.seq++
	code := fmt.Sprintf("%s-%d-%d", kind, id, a.seq)
	return &verification.Artifact{Code: code, URL: "https://qr.local/" + code}, nil
}

func (a *Artifacts) AttachToFacilityBooking(ctx context.Context, bookingID int64) (*verification.Artifact, error) {
	artifact, err := a.next("facility", bookingID)
	if err != nil {
		return nil, err
	}
	err = a.store.AttachFacilityVerification(ctx, bookingID, artifact.Code, artifact.URL)
	if errors.Is(err, bookingRepo.ErrVerificationAlreadyAttached) {
		b, err := a.store.GetFacilityBooking(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		return &verification.Artifact{Code: *b.VerificationCode, URL: *b.VerificationURL}, nil
	}
	if err != nil {
		return nil, err
	}
	return artifact, nil
}

func (a *Artifacts) AttachToSessionBooking(ctx context.Context, bookingID int64) (*verification.Artifact, error) {
	artifact, err := a.next("session", bookingID)
	if err != nil {
		return nil, err
	}
	err = a.store.AttachSessionVerification(ctx, bookingID, artifact.Code, artifact.URL)
	if errors.Is(err, sessionBookingRepo.ErrVerificationAlreadyAttached) {
		b, err := a.store.GetSessionBooking(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		return &verification.Artifact{Code: *b.VerificationCode, URL: *b.VerificationURL}, nil
	}
	if err != nil {
		return nil, err
	}
	return artifact, nil
}

// Event опубликованное событие
type Event struct {
	Key     string
	Payload any
}

// Publisher запоминает опубликованные события
type Publisher struct {
	mu     sync.Mutex
	Events []Event
	Err    error
}

func (p *Publisher) PublishJSON(_ context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, Event{Key: key, Payload: v})
	return nil
}

// Keys ключи опубликованных событий по порядку
func (p *Publisher) Keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	keys := make([]string, 0, len(p.Events))
	for _, e := range p.Events {
		keys = append(keys, e.Key)
	}
	return keys
}

// Metrics считает бизнес-метрики
type Metrics struct {
	mu               sync.Mutex
	BookingsCreated  map[string]int
	SlotConflicts    int
	ArtifactFailures int
}

func NewMetrics() *Metrics {
	return &Metrics{BookingsCreated: map[string]int{}}
}

func (m *Metrics) IncBookingCreated(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BookingsCreated[kind]++
}

func (m *Metrics) IncSlotConflict(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlotConflicts++
}

func (m *Metrics) IncArtifactFailure(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArtifactFailures++
}

// Clock фиксированное время
type Clock struct {
	T time.Time
}

func (c Clock) Now() time.Time { return c.T }

// Logger логгер, который ничего не пишет
type Logger struct{}

func (Logger) Info(string, ...interface{})  {}
func (Logger) Warn(string, ...interface{})  {}
func (Logger) Error(string, ...interface{}) {}
