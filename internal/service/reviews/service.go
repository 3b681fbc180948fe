package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	reviewRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/review"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/reviews/models"
)

// Service сервис отзывов и рейтинга тренеров
type Service struct {
	reviewRepo ReviewRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса
func NewService(reviewRepo ReviewRepository, logger Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// Create оставляет отзыв о тренере
// Один пользователь может оставить несколько отзывов одному тренеру
func (s *Service) Create(ctx context.Context, userID, coachID int64, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("CreateReview: user=%d, coach=%d, rating=%d", userID, coachID, req.Rating)

	if userID <= 0 || coachID <= 0 {
		return nil, fmt.Errorf("%w: user and coach are required", ErrInvalidInput)
	}
	if !domain.IsValidRating(req.Rating) {
		s.logger.Warn("CreateReview: invalid rating=%d", req.Rating)
		return nil, ErrInvalidRating
	}

	comment := strings.TrimSpace(req.Comment)
	if len(comment) > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment must be at most %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	review, err := s.reviewRepo.Create(ctx, &domain.Review{
		UserID:  userID,
		CoachID: coachID,
		Rating:  req.Rating,
		Comment: comment,
	})
	if err != nil {
		if errors.Is(err, reviewRepo.ErrCoachNotFound) {
			s.logger.Warn("CreateReview: coach id=%d not found", coachID)
			return nil, ErrCoachNotFound
		}
		s.logger.Error("CreateReview: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateReview: successfully created review id=%d", review.ID)
	return models.FromDomainReview(review), nil
}

// List получает отзывы тренера (новые первыми) и среднюю оценку
func (s *Service) List(ctx context.Context, coachID int64) (*models.ReviewListResponse, error) {
	reviews, err := s.reviewRepo.ListByCoach(ctx, coachID)
	if err != nil {
		s.logger.Error("ListReviews: repository error for coach=%d: %v", coachID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(coachID, reviews), nil
}

// AverageRating среднее арифметическое оценок тренера без округления
// nil, если отзывов нет
func (s *Service) AverageRating(ctx context.Context, coachID int64) (*float64, error) {
	ratings, err := s.reviewRepo.GetRatings(ctx, coachID)
	if err != nil {
		s.logger.Error("AverageRating: repository error for coach=%d: %v", coachID, err)
		return nil, fmt.Errorf("%w: AverageRating - repository error: %v", ErrInternal, err)
	}

	return domain.AverageRating(ratings), nil
}
