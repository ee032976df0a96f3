package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEntry_NilInput(t *testing.T) {
	e := NormalizeEntry(nil, "2025-03-01")
	assert.Equal(t, "2025-03-01", e.Date)
	assert.Equal(t, 3, e.Mood)
	assert.Equal(t, 3, e.PhysicalHealth)
	assert.Equal(t, 0, e.WaterStanleys)
	assert.NotNil(t, e.Meals.Breakfast)
	assert.NotNil(t, e.SnacksByMeal)
}

func TestNormalizeEntry_LegacyShape(t *testing.T) {
	raw := RawDay{
		"date":         "2024-11-02",
		"meals_snacks": []any{"Apple"},
		"workout":      map[string]any{"preset": "Yoga"},
	}
	e := NormalizeEntry(raw, "2025-01-01")

	assert.Equal(t, "2024-11-02", e.Date)
	assert.Equal(t, []string{"Apple"}, e.Meals.Snacks)
	require.NotNil(t, e.Workouts)
	assert.Equal(t, []string{"Yoga"}, e.Workouts.Presets)
	assert.Empty(t, e.Workouts.Other)
	assert.Nil(t, e.Injection)
	assert.Equal(t, 3, e.Mood)
	assert.Equal(t, 3, e.PhysicalHealth)
	assert.Equal(t, 0, e.WaterStanleys)
	assert.Nil(t, e.Weight)
}

func TestNormalizeEntry_LegacyCoercions(t *testing.T) {
	raw := RawDay{
		"weight":          float64(182.4),
		"water_stanleys":  "4",
		"mood":            float64(5),
		"physical_health": float64(2),
		"notes":           "slept badly",
		"injection":       map[string]any{"done": true, "note": "weekly dose"},
	}
	e := NormalizeEntry(raw, "2025-01-01")

	require.NotNil(t, e.Weight)
	assert.Equal(t, 182.4, *e.Weight)
	assert.Equal(t, 4, e.WaterStanleys)
	assert.Equal(t, 5, e.Mood)
	assert.Equal(t, 2, e.PhysicalHealth)
	assert.Equal(t, "slept badly", e.Notes)
	require.NotNil(t, e.Injection)
	assert.True(t, e.Injection.Done)
	assert.Equal(t, "weekly dose", e.Injection.Note)
}

func TestNormalizeEntry_NonNumericWeightDropped(t *testing.T) {
	e := NormalizeEntry(RawDay{"weight": "around 180"}, "2025-01-01")
	assert.Nil(t, e.Weight)
}

func TestNormalizeEntry_CanonicalBackfillsSnacksByMeal(t *testing.T) {
	raw := RawDay{
		"date": "2025-02-10",
		"meals": map[string]any{
			"breakfast": []any{"Eggs"},
			"lunch":     []any{"Salad"},
			"dinner":    []any{},
			"snacks":    []any{"Nuts"},
		},
		"water_stanleys":  float64(3),
		"mood":            float64(4),
		"physical_health": float64(4),
	}
	e := NormalizeEntry(raw, "2025-01-01")

	assert.Equal(t, "2025-02-10", e.Date)
	assert.Equal(t, []string{"Eggs"}, e.Meals.Breakfast)
	assert.Equal(t, []string{"Nuts"}, e.Meals.Snacks)
	require.NotNil(t, e.SnacksByMeal)
	assert.Empty(t, e.SnacksByMeal.Breakfast)
	assert.Equal(t, 3, e.WaterStanleys)
}

func TestNormalizeEntry_CanonicalMissingSlotAdded(t *testing.T) {
	raw := RawDay{
		"date":  "2025-02-10",
		"meals": map[string]any{"breakfast": []any{"Toast"}},
	}
	e := NormalizeEntry(raw, "2025-01-01")

	assert.Equal(t, []string{"Toast"}, e.Meals.Breakfast)
	assert.NotNil(t, e.Meals.Lunch)
	assert.NotNil(t, e.Meals.Dinner)
	assert.NotNil(t, e.Meals.Snacks)
}

func TestNormalizeEntry_Idempotent(t *testing.T) {
	raws := []RawDay{
		nil,
		{"meals_snacks": []any{"Apple"}, "workout": map[string]any{"preset": "Yoga", "other": "Stretch"}},
		{"date": "2025-02-10", "meals": map[string]any{"breakfast": []any{"Toast"}}, "mood": float64(4)},
		{"water_stanleys": "2", "notes": 17}, // notes not a string, must be dropped
	}
	for _, raw := range raws {
		once := NormalizeEntry(raw, "2025-06-01")
		twice := NormalizeEntry(ToRaw(once), "2025-06-01")
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeEntry_ModernWorkoutsVerbatim(t *testing.T) {
	raw := RawDay{
		"meals_snacks": []any{},
		"workouts":     map[string]any{"presets": []any{"OTF", "Walk"}, "other": "Stretch"},
	}
	e := NormalizeEntry(raw, "2025-01-01")
	require.NotNil(t, e.Workouts)
	assert.Equal(t, []string{"OTF", "Walk"}, e.Workouts.Presets)
	assert.Equal(t, "Stretch", e.Workouts.Other)
}
