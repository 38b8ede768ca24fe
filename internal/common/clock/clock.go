package clock

import "time"

// dateFormat is the calendar-date layout used for daily quest resets.
const dateFormat = "2006-01-02"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/thirstylabs/chugline/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// DateOf formats a time as a local calendar date (YYYY-MM-DD). Quest
// resets compare these strings, so the same instant always maps to the
// same date.
func DateOf(t time.Time) string {
	return t.Format(dateFormat)
}
