package coaches

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	coachRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/coach"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/coaches/models"
)

// Service сервис профилей тренеров
type Service struct {
	coachRepo  CoachRepository
	ratingRepo RatingRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса
func NewService(coachRepo CoachRepository, ratingRepo RatingRepository, logger Logger) *Service {
	return &Service{
		coachRepo:  coachRepo,
		ratingRepo: ratingRepo,
		logger:     logger,
	}
}

// CreateProfile создает профиль тренера для текущего пользователя
func (s *Service) CreateProfile(ctx context.Context, userID int64, role domain.Role, req *models.CreateProfileRequest) (*models.CoachProfileResponse, error) {
	s.logger.Info("CreateProfile: user=%d, name=%q, sport=%s", userID, req.Name, req.Sport)

	if role != domain.RoleCoach {
		s.logger.Warn("CreateProfile: role=%s cannot own a coach profile", role)
		return nil, ErrAccessDenied
	}

	profile, err := validateCreate(userID, req)
	if err != nil {
		s.logger.Warn("CreateProfile: validation failed: %v", err)
		return nil, err
	}

	created, err := s.coachRepo.Create(ctx, profile)
	if err != nil {
		if errors.Is(err, coachRepo.ErrProfileExists) {
			s.logger.Warn("CreateProfile: user=%d already has a coach profile", userID)
			return nil, ErrProfileExists
		}
		s.logger.Error("CreateProfile: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateProfile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateProfile: successfully created coach id=%d", created.ID)
	return models.FromDomainProfile(created, nil), nil
}

// GetProfile получает профиль тренера со средней оценкой и окном доступности
func (s *Service) GetProfile(ctx context.Context, id int64) (*models.CoachProfileResponse, error) {
	profile, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapGetError("GetProfile", err)
	}
	return s.withRating(ctx, profile)
}

// GetProfileByUser получает профиль тренера текущего пользователя
func (s *Service) GetProfileByUser(ctx context.Context, userID int64) (*models.CoachProfileResponse, error) {
	profile, err := s.coachRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, s.mapGetError("GetProfileByUser", err)
	}
	return s.withRating(ctx, profile)
}

func (s *Service) withRating(ctx context.Context, profile *domain.CoachProfile) (*models.CoachProfileResponse, error) {
	ratings, err := s.ratingRepo.GetRatings(ctx, profile.ID)
	if err != nil {
		s.logger.Error("GetProfile: failed to get ratings for coach id=%d: %v", profile.ID, err)
		return nil, fmt.Errorf("%w: GetProfile - ratings error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(profile, domain.AverageRating(ratings)), nil
}

func (s *Service) mapGetError(op string, err error) error {
	if errors.Is(err, coachRepo.ErrCoachNotFound) {
		s.logger.Warn("%s: coach not found", op)
		return ErrCoachNotFound
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validateCreate(userID int64, req *models.CreateProfileRequest) (*domain.CoachProfile, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	sport := domain.NormalizeSport(req.Sport)
	if sport == "" {
		return nil, fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}

	if req.IndividualFee != nil && *req.IndividualFee < 0 {
		return nil, fmt.Errorf("%w: individualFee must not be negative", ErrInvalidInput)
	}
	if req.GroupFee != nil && *req.GroupFee < 0 {
		return nil, fmt.Errorf("%w: groupFee must not be negative", ErrInvalidInput)
	}

	return &domain.CoachProfile{
		UserID:        userID,
		Name:          name,
		Sport:         sport,
		Bio:           req.Bio,
		IndividualFee: req.IndividualFee,
		GroupFee:      req.GroupFee,
	}, nil
}
