package utils

import (
	"mindmatch-service/internal/pkg/constvars"
	"time"
)

func ParseDate(value string) (time.Time, error) {
	return time.Parse(constvars.DateLayout, value)
}

func ParseTimeOfDay(value string) (time.Time, error) {
	return time.Parse(constvars.TimeLayout, value)
}

// CombineDateTime builds the wall-clock instant of a "YYYY-MM-DD" date and
// a "HH:MM" time in the given location.
func CombineDateTime(date, timeOfDay string, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	t, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
