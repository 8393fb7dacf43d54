package services

import (
	"fmt"
	"time"
)

const fechaLayout = "2006-01-02"

// ParseFecha parses a date string in the API's wire format (YYYY-MM-DD)
// It enforces strict checks but centralizes the logic for future format additions
func ParseFecha(dateStr string) (time.Time, error) {
	parsedTime, err := time.Parse(fechaLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}

	return parsedTime, nil
}

// FormatFecha renders a date in the API's wire format
func FormatFecha(t time.Time) string {
	return t.Format(fechaLayout)
}

// FormatFechaPtr renders an optional date, keeping null as null
func FormatFechaPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(fechaLayout)
	return &s
}
