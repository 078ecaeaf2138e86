package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCombineDateTime(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)

	combined, err := CombineDateTime("2026-09-07", "10:00", loc)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, loc), combined)

	_, err = CombineDateTime("07-09-2026", "10:00", loc)
	assert.Error(t, err)

	_, err = CombineDateTime("2026-09-07", "10am", loc)
	assert.Error(t, err)
}

func TestSameDate(t *testing.T) {
	morning := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 7, 22, 30, 0, 0, time.UTC)
	nextDay := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(morning, evening))
	assert.False(t, SameDate(morning, nextDay))
}
