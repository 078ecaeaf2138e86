package practitioners

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWorkingWindow(t *testing.T) {
	start, end, ok := parseWorkingWindow("09:00-17:00")
	assert.True(t, ok)
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, 17, end.Hour())

	_, _, ok = parseWorkingWindow("unavailable")
	assert.False(t, ok)

	_, _, ok = parseWorkingWindow("")
	assert.False(t, ok)

	_, _, ok = parseWorkingWindow("17:00-09:00")
	assert.False(t, ok, "inverted window must be rejected")

	_, _, ok = parseWorkingWindow("nine to five")
	assert.False(t, ok)
}

func TestBuildAvailableSlots_FullWindow(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	slots := buildAvailableSlots("09:00-12:00", map[string]bool{}, date, now, 3*time.Hour)

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slots)
}

func TestBuildAvailableSlots_EndExclusive(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	slots := buildAvailableSlots("09:00-10:00", map[string]bool{}, date, now, 3*time.Hour)

	assert.Equal(t, []string{"09:00"}, slots, "a slot starting at the window end must not exist")
}

func TestBuildAvailableSlots_DropsBooked(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	booked := map[string]bool{"10:00": true}

	slots := buildAvailableSlots("09:00-12:00", booked, date, now, 3*time.Hour)

	assert.Equal(t, []string{"09:00", "11:00"}, slots)
}

func TestBuildAvailableSlots_SameDayCutoff(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC)

	slots := buildAvailableSlots("09:00-17:00", map[string]bool{}, date, now, 3*time.Hour)

	// 09:30 + 3h cutoff = 12:30, so the first bookable slot is 13:00.
	assert.Equal(t, []string{"13:00", "14:00", "15:00", "16:00"}, slots)
}

func TestBuildAvailableSlots_UnavailableDay(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	slots := buildAvailableSlots("unavailable", map[string]bool{}, date, now, 3*time.Hour)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestWeekdayKey(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "monday", weekdayKey(monday))

	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "sunday", weekdayKey(sunday))
}
