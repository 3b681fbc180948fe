package artifacts

import (
	"context"
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"

	bookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/booking"
	sessionBookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionbooking"
	"github.com/m04kA/SMC-SportsBookingService/internal/integrations/verification"
)

// attachAttempts сколько раз выпускается новый код при коллизии
const attachAttempts = 3

// Service вторая фаза записи бронирования: выпуск кода подтверждения и прикрепление к записи
type Service struct {
	client       VerificationClient
	facilityRepo FacilityBookingRepository
	sessionRepo  SessionBookingRepository
	metrics      Metrics
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	client VerificationClient,
	facilityRepo FacilityBookingRepository,
	sessionRepo SessionBookingRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		client:       client,
		facilityRepo: facilityRepo,
		sessionRepo:  sessionRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// AttachToFacilityBooking выпускает код для бронирования корта и сохраняет его
func (s *Service) AttachToFacilityBooking(ctx context.Context, bookingID int64) (*verification.Artifact, error) {
	return s.attach(ctx, verification.KindFacility, bookingID, s.facilityRepo.AttachVerification, s.storedFacilityArtifact)
}

// AttachToSessionBooking выпускает код для бронирования тренировки и сохраняет его
func (s *Service) AttachToSessionBooking(ctx context.Context, bookingID int64) (*verification.Artifact, error) {
	return s.attach(ctx, verification.KindSession, bookingID, s.sessionRepo.AttachVerification, s.storedSessionArtifact)
}

func (s *Service) storedFacilityArtifact(ctx context.Context, bookingID int64) (*verification.Artifact, error) {
	booking, err := s.facilityRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return storedArtifact(booking.VerificationCode, booking.VerificationURL)
}

func (s *Service) storedSessionArtifact(ctx context.Context, bookingID int64) (*verification.Artifact, error) {
	booking, err := s.sessionRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return storedArtifact(booking.VerificationCode, booking.VerificationURL)
}

func storedArtifact(code, url *string) (*verification.Artifact, error) {
	if code == nil || url == nil {
		return nil, errStoredArtifactMissing
	}
	return &verification.Artifact{Code: *code, URL: *url}, nil
}

func (s *Service) attach(
	ctx context.Context,
	kind verification.Kind,
	bookingID int64,
	save func(ctx context.Context, id int64, code, url string) error,
	stored func(ctx context.Context, id int64) (*verification.Artifact, error),
) (*verification.Artifact, error) {
	var artifact *verification.Artifact

	err := retry.Do(
		func() error {
			generated, err := s.client.Generate(ctx, kind, bookingID)
			if err != nil {
				return err
			}

			if err := save(ctx, bookingID, generated.Code, generated.URL); err != nil {
				return err
			}

			artifact = generated
			return nil
		},
		retry.Attempts(attachAttempts),
		retry.Delay(0),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		// Повторяем только коллизию кода; недоступность сервиса кодов не повторяется в рамках запроса
		retry.RetryIf(isCodeCollision),
	)

	// Код уже прикреплен параллельным вызовом: отдаем сохраненный, новый отбрасываем
	if isAlreadyAttached(err) {
		artifact, err = stored(ctx, bookingID)
		if err == nil {
			s.logger.Info("AttachArtifact: %s booking id=%d already has verification code, returning stored one", kind, bookingID)
			return artifact, nil
		}
	}

	if err != nil {
		s.metrics.IncArtifactFailure(string(kind))

		if errors.Is(err, bookingRepo.ErrBookingNotFound) || errors.Is(err, sessionBookingRepo.ErrBookingNotFound) {
			s.logger.Warn("AttachArtifact: %s booking id=%d not found", kind, bookingID)
			return nil, ErrBookingNotFound
		}

		s.logger.Error("AttachArtifact: %s booking id=%d left without verification code: %v", kind, bookingID, err)
		return nil, fmt.Errorf("%w: %s booking id=%d: %w", ErrGenerationFailed, kind, bookingID, err)
	}

	s.logger.Info("AttachArtifact: %s booking id=%d verification code attached", kind, bookingID)
	return artifact, nil
}

func isCodeCollision(err error) bool {
	return errors.Is(err, bookingRepo.ErrVerificationCodeTaken) ||
		errors.Is(err, sessionBookingRepo.ErrVerificationCodeTaken)
}

func isAlreadyAttached(err error) bool {
	return errors.Is(err, bookingRepo.ErrVerificationAlreadyAttached) ||
		errors.Is(err, sessionBookingRepo.ErrVerificationAlreadyAttached)
}
