package service

import (
	"fmt"
	"testing"

	"github.com/mitchleonard/pebble-path/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(date string, mood, health, water int) internal.DayEntry {
	e := internal.DefaultEntry(date)
	e.Mood = mood
	e.PhysicalHealth = health
	e.WaterStanleys = water
	return e
}

func daysOf(entries ...internal.DayEntry) map[string]internal.DayEntry {
	days := make(map[string]internal.DayEntry, len(entries))
	for _, e := range entries {
		days[e.Date] = e
	}
	return days
}

func TestMeanEmptyIsNoData(t *testing.T) {
	avg, ok := Mean(nil)
	assert.False(t, ok)
	assert.Zero(t, avg)
	assert.Equal(t, NoData, FormatAvg(nil))
}

func TestFilterRangeBoundsInclusive(t *testing.T) {
	days := daysOf(
		entry("2025-01-05", 3, 3, 2),
		entry("2025-01-06", 3, 3, 2),
		entry("2025-01-10", 3, 3, 2),
		entry("2025-01-11", 3, 3, 2),
	)
	got := FilterRange(days, "2025-01-06", "2025-01-10")
	require.Len(t, got, 2)
	assert.Equal(t, "2025-01-06", got[0].Date)
	assert.Equal(t, "2025-01-10", got[1].Date)
}

func TestSummarizeAverages(t *testing.T) {
	days := daysOf(
		entry("2025-01-06", 4, 2, 3),
		entry("2025-01-07", 5, 4, 1),
	)
	s := Summarize(days, "2025-01-01", "2025-01-31")

	assert.Equal(t, 2, s.Entries)
	require.NotNil(t, s.AvgMood)
	assert.Equal(t, 4.5, *s.AvgMood)
	require.NotNil(t, s.AvgPhysicalHealth)
	assert.Equal(t, 3.0, *s.AvgPhysicalHealth)
	require.NotNil(t, s.AvgWater)
	assert.Equal(t, 2.0, *s.AvgWater)
	assert.Equal(t, []string{"2025-01-06", "2025-01-07"}, s.Series.Dates)
}

func TestSummarizeEmptyRangeHasNoData(t *testing.T) {
	s := Summarize(daysOf(), "2025-01-01", "2025-01-31")
	assert.Zero(t, s.Entries)
	assert.Nil(t, s.AvgMood)
	assert.Nil(t, s.AvgPhysicalHealth)
	assert.Nil(t, s.AvgWater)
	assert.Empty(t, s.TopFoods)
}

func TestTopFoodsCountsAndCap(t *testing.T) {
	var entries []internal.DayEntry
	for i := 0; i < 3; i++ {
		e := internal.DefaultEntry(fmt.Sprintf("2025-01-%02d", i+1))
		e.Meals.Breakfast = []string{"Eggs"}
		e.Meals.Lunch = []string{"Salad"}
		e.SnacksByMeal.Lunch = []string{"Nuts"}
		entries = append(entries, e)
	}
	// one-off items to overflow the cap
	overflow := internal.DefaultEntry("2025-01-20")
	for i := 0; i < 15; i++ {
		overflow.Meals.Snacks = append(overflow.Meals.Snacks, fmt.Sprintf("item-%d", i))
	}
	entries = append(entries, overflow)

	s := Summarize(daysOf(entries...), "2025-01-01", "2025-01-31")
	require.Len(t, s.TopFoods, 12)

	// the repeated names must dominate the table
	assert.Equal(t, FoodCount{Name: "Eggs", Count: 3}, s.TopFoods[0])
	assert.Equal(t, FoodCount{Name: "Salad", Count: 3}, s.TopFoods[1])
	assert.Equal(t, FoodCount{Name: "Nuts", Count: 3}, s.TopFoods[2])
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 2.3, Round1(2.349))
	assert.Equal(t, 2.4, Round1(2.35))
	assert.Equal(t, "2.3", FormatAvg(ptr(2.31)))
}

func ptr(v float64) *float64 { return &v }
