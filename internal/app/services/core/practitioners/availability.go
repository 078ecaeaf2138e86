package practitioners

import (
	"fmt"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/utils"
	"strings"
	"time"
)

// parseWorkingWindow splits a "HH:MM-HH:MM" working hours value into its
// start and end times. An empty or "unavailable" value yields ok=false.
func parseWorkingWindow(window string) (start, end time.Time, ok bool) {
	window = strings.TrimSpace(window)
	if window == "" || strings.EqualFold(window, constvars.WorkingHoursUnavailable) {
		return time.Time{}, time.Time{}, false
	}

	parts := strings.SplitN(window, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false
	}

	start, err := utils.ParseTimeOfDay(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = utils.ParseTimeOfDay(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// buildAvailableSlots generates the hourly slots of a working window,
// dropping booked times and, on the current date, slots starting before
// now plus the booking offset. Slots are start-inclusive, end-exclusive.
func buildAvailableSlots(window string, booked map[string]bool, date time.Time, now time.Time, offset time.Duration) []string {
	start, end, ok := parseWorkingWindow(window)
	if !ok {
		return []string{}
	}

	cutoff := now.Add(offset)
	sameDay := utils.SameDate(date, now)

	slots := []string{}
	for t := start; t.Before(end); t = t.Add(time.Hour) {
		slot := fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
		if booked[slot] {
			continue
		}
		if sameDay {
			slotStart := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
			if !slotStart.After(cutoff) {
				continue
			}
		}
		slots = append(slots, slot)
	}
	return slots
}

// weekdayKey is the lowercase English weekday name used as the working
// hours map key.
func weekdayKey(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}
