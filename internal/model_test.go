package internal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEntryTotality(t *testing.T) {
	e := DefaultEntry("2025-05-05")
	assert.Equal(t, "2025-05-05", e.Date)
	assert.Equal(t, 3, e.Mood)
	assert.Equal(t, 3, e.PhysicalHealth)
	assert.Equal(t, 0, e.WaterStanleys)
	for _, slot := range MealSlots {
		assert.NotNil(t, e.Meals.Slot(slot))
		assert.Empty(t, e.Meals.Slot(slot))
	}
	assert.Nil(t, e.Workouts)
	assert.Nil(t, e.Injection)
}

func TestPushQuickMeal(t *testing.T) {
	p := Presets{QuickMeals: []string{"Salad", "Nuts"}}

	p = p.PushQuickMeal("Smoothie")
	assert.Equal(t, []string{"Smoothie", "Salad", "Nuts"}, p.QuickMeals)

	// re-pushing moves to front without duplicating
	p = p.PushQuickMeal("Nuts")
	assert.Equal(t, []string{"Nuts", "Smoothie", "Salad"}, p.QuickMeals)

	// empty names are ignored
	p = p.PushQuickMeal("")
	assert.Equal(t, []string{"Nuts", "Smoothie", "Salad"}, p.QuickMeals)
}

func TestPushQuickMealCap(t *testing.T) {
	p := Presets{}
	for i := 0; i < MaxQuickMeals+20; i++ {
		p = p.PushQuickMeal(fmt.Sprintf("meal-%d", i))
	}
	assert.Len(t, p.QuickMeals, MaxQuickMeals)
	// most recent first
	assert.Equal(t, fmt.Sprintf("meal-%d", MaxQuickMeals+19), p.QuickMeals[0])
}

func TestWorkoutsAny(t *testing.T) {
	var w *Workouts
	assert.False(t, w.Any())
	assert.False(t, (&Workouts{}).Any())
	assert.True(t, (&Workouts{Presets: []string{"Yoga"}}).Any())
	assert.True(t, (&Workouts{Other: "Stretch"}).Any())
}
