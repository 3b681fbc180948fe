package domain

import (
	"math"
	"time"
)

// Review represents a user's review of a coach
type Review struct {
	ID        int64
	UserID    int64
	CoachID   int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// IsValidRating checks that the rating is within bounds
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// AverageRating returns the arithmetic mean of the ratings.
// nil means no reviews, which differs from a zero rating.
func AverageRating(ratings []int) *float64 {
	if len(ratings) == 0 {
		return nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	avg := float64(sum) / float64(len(ratings))
	return &avg
}

// RoundRating rounds a rating to 2 decimals for display
func RoundRating(v float64) float64 {
	return math.Round(v*100) / 100
}
