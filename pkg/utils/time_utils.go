package utils

import "time"

const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
)

// ParseClock reads an HH:MM wall-clock value on the zero date.
func ParseClock(hhmm string) (time.Time, error) {
	return time.Parse(ClockLayout, hhmm)
}

func FormatClock(t time.Time) string { return t.Format(ClockLayout) }

func FormatDate(t time.Time) string { return t.Format(DateLayout) }
