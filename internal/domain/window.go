package domain

import "time"

// IsWithinAvailabilityWindow checks that date falls in [today, today+7 days].
// Only calendar dates are compared; today is taken at call time.
func IsWithinAvailabilityWindow(date, now time.Time) bool {
	day := DateOnly(date)
	today := DateOnly(now)
	last := today.AddDate(0, 0, AvailabilityWindowDays)
	return !day.Before(today) && !day.After(last)
}

// OutsideAvailabilityWindow returns pairs dated outside the availability window
func OutsideAvailabilityWindow(slots []SessionSlot, now time.Time) []SessionSlot {
	outside := make([]SessionSlot, 0)
	for _, s := range slots {
		if !IsWithinAvailabilityWindow(s.Date, now) {
			outside = append(outside, s)
		}
	}
	return outside
}
