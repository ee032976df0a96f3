package internal

import (
	"encoding/json"
	"strconv"
)

// RawDay is a day record as it arrives from persistence, possibly written
// by an older version of the app. It only exists transiently during
// normalization and is never persisted in this shape.
type RawDay map[string]any

// NormalizeEntry converts an arbitrary raw record into a canonical
// DayEntry. Records that already carry a "meals" field are treated as
// canonical and only get missing slot arrays and snacksByMeal backfilled;
// anything else goes through the legacy conversion (flat meals_snacks
// list, singular workout object). Pure and idempotent.
func NormalizeEntry(raw RawDay, fallbackDate string) DayEntry {
	if raw == nil {
		return DefaultEntry(fallbackDate)
	}

	if _, ok := raw["meals"]; ok {
		var e DayEntry
		if b, err := json.Marshal(raw); err == nil {
			_ = json.Unmarshal(b, &e)
		}
		if e.Date == "" {
			e.Date = fallbackDate
		}
		ensureSlots(&e)
		return e
	}

	e := DayEntry{
		Date:           stringOr(raw["date"], fallbackDate),
		Meals:          EmptyMeals(),
		SnacksByMeal:   EmptySnacksByMeal(),
		WaterStanleys:  intOr(raw["water_stanleys"], 0),
		Mood:           intOr(raw["mood"], 3),
		PhysicalHealth: intOr(raw["physical_health"], 3),
		Workouts:       migrateWorkouts(raw),
		Injection:      decodeInjection(raw["injection"]),
	}
	if w, ok := numeric(raw["weight"]); ok {
		e.Weight = &w
	}
	if items, ok := stringSlice(raw["meals_snacks"]); ok {
		e.Meals.Snacks = items
	}
	if s, ok := raw["notes"].(string); ok {
		e.Notes = s
	}
	return e
}

// ensureSlots backfills the slot arrays a canonical record must always
// carry, without touching anything that is already there.
func ensureSlots(e *DayEntry) {
	if e.Meals.Breakfast == nil {
		e.Meals.Breakfast = []string{}
	}
	if e.Meals.Lunch == nil {
		e.Meals.Lunch = []string{}
	}
	if e.Meals.Dinner == nil {
		e.Meals.Dinner = []string{}
	}
	if e.Meals.Snacks == nil {
		e.Meals.Snacks = []string{}
	}
	if e.SnacksByMeal == nil {
		e.SnacksByMeal = EmptySnacksByMeal()
	} else {
		if e.SnacksByMeal.Breakfast == nil {
			e.SnacksByMeal.Breakfast = []string{}
		}
		if e.SnacksByMeal.Lunch == nil {
			e.SnacksByMeal.Lunch = []string{}
		}
		if e.SnacksByMeal.Dinner == nil {
			e.SnacksByMeal.Dinner = []string{}
		}
	}
}

// migrateWorkouts prefers a modern "workouts" field verbatim, then falls
// back to the legacy singular workout {preset, other} shape.
func migrateWorkouts(raw RawDay) *Workouts {
	if v, ok := raw["workouts"]; ok && v != nil {
		var w Workouts
		if b, err := json.Marshal(v); err == nil && json.Unmarshal(b, &w) == nil {
			if w.Presets == nil {
				w.Presets = []string{}
			}
			return &w
		}
		return nil
	}
	legacy, ok := raw["workout"].(map[string]any)
	if !ok {
		return nil
	}
	w := Workouts{Presets: []string{}}
	if preset, ok := legacy["preset"].(string); ok && preset != "" {
		w.Presets = append(w.Presets, preset)
	}
	if other, ok := legacy["other"].(string); ok {
		w.Other = other
	}
	return &w
}

func decodeInjection(v any) *Injection {
	if v == nil {
		return nil
	}
	var inj Injection
	b, err := json.Marshal(v)
	if err != nil || json.Unmarshal(b, &inj) != nil {
		return nil
	}
	return &inj
}

// ToRaw round-trips a canonical entry back into the raw map shape, used
// by storage backends that persist schemaless documents.
func ToRaw(e DayEntry) RawDay {
	b, err := json.Marshal(e)
	if err != nil {
		return RawDay{}
	}
	var raw RawDay
	if err := json.Unmarshal(b, &raw); err != nil {
		return RawDay{}
	}
	return raw
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func intOr(v any, def int) int {
	if f, ok := numeric(v); ok {
		return int(f)
	}
	if s, ok := v.(string); ok {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return def
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

func stringSlice(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}
