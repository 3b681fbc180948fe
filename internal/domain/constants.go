package domain

import "time"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// DefaultSlots is the default daily slot catalog, shared by all courts and days
var DefaultSlots = []string{
	"08:00 - 09:00",
	"09:00 - 10:00",
	"10:00 - 11:00",
	"11:00 - 12:00",
	"12:00 - 13:00",
	"13:00 - 14:00",
	"14:00 - 15:00",
	"15:00 - 16:00",
	"16:00 - 17:00",
	"17:00 - 18:00",
}

// Business validation constants
const (
	AvailabilityWindowDays = 7 // окно доступности тренера: [сегодня, сегодня+7]
	MinRating              = 1
	MaxRating              = 5
	MaxCommentLength       = 1000
	MaxNameLength          = 200
)

// Role represents the caller role passed by the gateway in X-User-Role
type Role string

const (
	RoleUser  Role = "user"
	RoleCoach Role = "coach"
	RoleAdmin Role = "admin"
	RoleGuard Role = "guard"
)

// IsValid checks that the role is known
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleCoach, RoleAdmin, RoleGuard:
		return true
	}
	return false
}

// DateOnly strips the time of day and returns the calendar date in UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsDateInPast checks that the date is before today, ignoring time of day
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}
