package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidISO(t *testing.T) {
	assert.True(t, IsValidISO("2025-01-07"))
	assert.False(t, IsValidISO("2025-1-7"))
	assert.False(t, IsValidISO("01/07/2025"))
	assert.False(t, IsValidISO("2025-13-40"))
	assert.False(t, IsValidISO(""))
}

func TestAddDaysISO(t *testing.T) {
	assert.Equal(t, "2025-01-08", AddDaysISO("2025-01-07", 1))
	assert.Equal(t, "2024-12-31", AddDaysISO("2025-01-01", -1))
	// month boundary
	assert.Equal(t, "2025-03-01", AddDaysISO("2025-02-28", 1))
	// invalid input passes through
	assert.Equal(t, "bogus", AddDaysISO("bogus", 3))
}

func TestStartOfWeekISO(t *testing.T) {
	// 2025-01-07 is a Tuesday; the week starts Monday 2025-01-06.
	assert.Equal(t, "2025-01-06", StartOfWeekISO("2025-01-07"))
	assert.Equal(t, "2025-01-06", StartOfWeekISO("2025-01-06"))
	assert.Equal(t, "2025-01-06", StartOfWeekISO("2025-01-12")) // Sunday
}

func TestWeekdayChecks(t *testing.T) {
	assert.True(t, IsTuesdayISO("2025-01-07"))
	assert.False(t, IsTuesdayISO("2025-01-08"))
	assert.True(t, IsWednesdayISO("2025-01-08"))
	assert.True(t, IsTuesdayOrWednesdayISO("2025-01-07"))
	assert.True(t, IsTuesdayOrWednesdayISO("2025-01-08"))
	assert.False(t, IsTuesdayOrWednesdayISO("2025-01-09"))
	// invalid keys are never a match
	assert.False(t, IsTuesdayISO("bogus"))
	assert.False(t, IsWednesdayISO("bogus"))
	assert.False(t, IsTuesdayOrWednesdayISO("bogus"))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 7, DaysBetween("2025-01-07", "2025-01-14"))
	assert.Equal(t, -7, DaysBetween("2025-01-14", "2025-01-07"))
	assert.Equal(t, 0, DaysBetween("2025-01-07", "2025-01-07"))
	assert.Equal(t, 0, DaysBetween("nope", "2025-01-07"))
}

func TestDisplayFormats(t *testing.T) {
	assert.Equal(t, "Tue, Jan 7", ToDisplay("2025-01-07"))
	assert.Equal(t, "Tuesday, 01/07/2025", ToFormattedDate("2025-01-07"))
	assert.Equal(t, "bogus", ToDisplay("bogus"))
}
