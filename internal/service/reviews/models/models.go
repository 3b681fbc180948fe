package models

import (
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// Request модели

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Response модели

// ReviewResponse отзыв о тренере
type ReviewResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	CoachID   int64     `json:"coachId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewListResponse отзывы тренера со средней оценкой
type ReviewListResponse struct {
	CoachID       int64            `json:"coachId"`
	AverageRating *float64         `json:"averageRating"`
	Reviews       []ReviewResponse `json:"reviews"`
}

// Методы конвертации

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}
	return &ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		CoachID:   r.CoachID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует отзывы в DTO; средняя оценка округляется до 2 знаков
func FromDomainReviewList(coachID int64, reviews []*domain.Review) *ReviewListResponse {
	resp := &ReviewListResponse{
		CoachID: coachID,
		Reviews: make([]ReviewResponse, 0, len(reviews)),
	}

	ratings := make([]int, 0, len(reviews))
	for _, r := range reviews {
		if item := FromDomainReview(r); item != nil {
			resp.Reviews = append(resp.Reviews, *item)
			ratings = append(ratings, r.Rating)
		}
	}

	if avg := domain.AverageRating(ratings); avg != nil {
		rounded := domain.RoundRating(*avg)
		resp.AverageRating = &rounded
	}
	return resp
}
