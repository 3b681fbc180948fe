package types

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout формат даты в API (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// ErrInvalidDate возвращается, когда строка не является датой YYYY-MM-DD
var ErrInvalidDate = errors.New("types: invalid date, expected YYYY-MM-DD")

// DateString дата без времени в формате YYYY-MM-DD
type DateString string

// NewDateString форматирует дату
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateLayout))
}

// Time разбирает дату в UTC
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, string(d))
	}
	return t, nil
}

func (d DateString) String() string {
	return string(d)
}

// SessionSlot пара (дата, слот) в JSON
type SessionSlot struct {
	Date DateString `json:"date"`
	Slot string     `json:"slot"`
}
