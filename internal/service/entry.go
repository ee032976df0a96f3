package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/mitchleonard/pebble-path/internal"
	"github.com/mitchleonard/pebble-path/internal/dateutil"
	"github.com/mitchleonard/pebble-path/internal/store"
)

var validate = validator.New()

// DayEntryRequest is the full-entry write payload. The range caps mirror
// what the UI enforces (water 0-8, 1-5 scales, 140-char notes); the data
// model itself stays permissive.
type DayEntryRequest struct {
	Date           string                 `json:"date" validate:"omitempty,len=10"`
	Weight         *float64               `json:"weight" validate:"omitempty,gt=0"`
	Meals          *internal.Meals        `json:"meals"`
	SnacksByMeal   *internal.SnacksByMeal `json:"snacksByMeal"`
	WaterStanleys  int                    `json:"water_stanleys" validate:"gte=0,lte=8"`
	Bathroom       *bool                  `json:"bathroom"`
	Mood           int                    `json:"mood" validate:"required,gte=1,lte=5"`
	PhysicalHealth int                    `json:"physical_health" validate:"required,gte=1,lte=5"`
	Workouts       *internal.Workouts     `json:"workouts"`
	Injection      *internal.Injection    `json:"injection"`
	Notes          string                 `json:"notes" validate:"max=140"`
}

func ValidateDayEntryRequest(body *DayEntryRequest) error {
	return validate.Struct(body)
}

var ErrDateMismatch = errors.New("entry date does not match the requested day")

// UpsertDay writes the request as date's entry through the store and
// grows the quick-meal presets from any newly seen item names. The date
// in the path wins; a conflicting body date is rejected (the date key is
// immutable).
func UpsertDay(ctx context.Context, st *store.Store, date string, body *DayEntryRequest) (internal.DayEntry, error) {
	if !dateutil.IsValidISO(date) {
		return internal.DayEntry{}, errors.New("invalid date key, want YYYY-MM-DD")
	}
	if body.Date != "" && body.Date != date {
		return internal.DayEntry{}, ErrDateMismatch
	}

	entry := internal.DayEntry{
		Date:           date,
		Weight:         body.Weight,
		Meals:          internal.EmptyMeals(),
		SnacksByMeal:   internal.EmptySnacksByMeal(),
		WaterStanleys:  body.WaterStanleys,
		Bathroom:       body.Bathroom,
		Mood:           body.Mood,
		PhysicalHealth: body.PhysicalHealth,
		Workouts:       body.Workouts,
		Injection:      body.Injection,
		Notes:          body.Notes,
	}
	if body.Meals != nil {
		entry.Meals = *body.Meals
	}
	if body.SnacksByMeal != nil {
		entry.SnacksByMeal = body.SnacksByMeal
	}
	// Re-run normalization on the canonical shape so slot arrays are
	// always present, whatever the client omitted.
	entry = internal.NormalizeEntry(internal.ToRaw(entry), date)

	st.UpsertDay(ctx, entry)
	growQuickMeals(ctx, st, entry)
	return entry, nil
}

// growQuickMeals pushes newly used item names onto the quick-add list,
// most recent first.
func growQuickMeals(ctx context.Context, st *store.Store, entry internal.DayEntry) {
	known := map[string]bool{}
	for _, q := range st.Presets().QuickMeals {
		known[q] = true
	}
	var fresh []string
	for _, slot := range internal.MealSlots {
		for _, item := range entry.Meals.Slot(slot) {
			if item != "" && !known[item] {
				known[item] = true
				fresh = append(fresh, item)
			}
		}
	}
	if len(fresh) == 0 {
		return
	}
	st.UpdatePresets(ctx, func(p internal.Presets) internal.Presets {
		for _, name := range fresh {
			p = p.PushQuickMeal(name)
		}
		return p
	})
}

// PresetsRequest replaces the preset lists wholesale.
type PresetsRequest struct {
	Workouts   []string `json:"workouts" validate:"required"`
	QuickMeals []string `json:"quickMeals" validate:"required"`
}

func ValidatePresetsRequest(body *PresetsRequest) error {
	return validate.Struct(body)
}

// UpdatePresets applies the replacement, trimming quickMeals to the cap.
func UpdatePresets(ctx context.Context, st *store.Store, body *PresetsRequest) internal.Presets {
	quick := body.QuickMeals
	if len(quick) > internal.MaxQuickMeals {
		quick = quick[:internal.MaxQuickMeals]
	}
	next := internal.Presets{Workouts: body.Workouts, QuickMeals: quick}
	st.UpdatePresets(ctx, func(internal.Presets) internal.Presets { return next })
	return next
}
