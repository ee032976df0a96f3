package internal

type User struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
}

// MealSlot is one of the four meal slots of a day.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnacks    MealSlot = "snacks"
)

// MealSlots lists the slots in display order.
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks}

// Meals holds the ordered item names logged per slot. After normalization
// every slot is present (possibly empty).
type Meals struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snacks    []string `json:"snacks"`
}

// Slot returns the item list for a slot.
func (m Meals) Slot(s MealSlot) []string {
	switch s {
	case SlotBreakfast:
		return m.Breakfast
	case SlotLunch:
		return m.Lunch
	case SlotDinner:
		return m.Dinner
	default:
		return m.Snacks
	}
}

// SnacksByMeal tracks snacks tied to a main meal, distinct from the
// standalone "anytime" snacks slot. Older records don't have it.
type SnacksByMeal struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
}

type Workouts struct {
	Presets []string `json:"presets"`
	Other   string   `json:"other,omitempty"`
}

// Any reports whether anything was actually logged.
func (w *Workouts) Any() bool {
	return w != nil && (len(w.Presets) > 0 || w.Other != "")
}

type Injection struct {
	Done bool   `json:"done"`
	Note string `json:"note,omitempty"`
}

// DayEntry is the complete record of one calendar day. Date (YYYY-MM-DD)
// is the primary key and immutable once created. Weight and injection are
// weekly-cadence fields and usually absent.
type DayEntry struct {
	Date           string        `json:"date"`
	Weight         *float64      `json:"weight,omitempty"`
	Meals          Meals         `json:"meals"`
	SnacksByMeal   *SnacksByMeal `json:"snacksByMeal,omitempty"`
	WaterStanleys  int           `json:"water_stanleys"` // 0-8
	Bathroom       *bool         `json:"bathroom,omitempty"`
	Mood           int           `json:"mood"`            // 1-5
	PhysicalHealth int           `json:"physical_health"` // 1-5
	Workouts       *Workouts     `json:"workouts,omitempty"`
	Injection      *Injection    `json:"injection,omitempty"`
	Notes          string        `json:"notes,omitempty"` // UI caps at 140 chars
}

// Presets are the user-curated quick-add labels. QuickMeals grows with
// usage, most recent first, capped at MaxQuickMeals.
type Presets struct {
	Workouts   []string `json:"workouts"`
	QuickMeals []string `json:"quickMeals"`
}

const MaxQuickMeals = 100

// EmptyMeals returns a Meals value with all four slots present and empty.
func EmptyMeals() Meals {
	return Meals{
		Breakfast: []string{},
		Lunch:     []string{},
		Dinner:    []string{},
		Snacks:    []string{},
	}
}

// EmptySnacksByMeal returns an all-empty per-meal snack map.
func EmptySnacksByMeal() *SnacksByMeal {
	return &SnacksByMeal{
		Breakfast: []string{},
		Lunch:     []string{},
		Dinner:    []string{},
	}
}

// DefaultEntry builds the implicit entry for a date that has nothing
// stored yet. Callers must not persist it until a field is edited.
func DefaultEntry(date string) DayEntry {
	return DayEntry{
		Date:           date,
		Meals:          EmptyMeals(),
		SnacksByMeal:   EmptySnacksByMeal(),
		WaterStanleys:  0,
		Mood:           3,
		PhysicalHealth: 3,
	}
}

// DefaultPresets returns the starter preset lists used before a user has
// saved their own.
func DefaultPresets() Presets {
	return Presets{
		Workouts:   []string{"OTF", "OTF Strength", "Pickleball", "Yoga", "Walk", "Other"},
		QuickMeals: []string{"Smoothie", "Protein shake", "Salad", "PB crackers", "Nuts", "Cheddies"},
	}
}

// PushQuickMeal moves name to the front of the quick-meal list, dropping
// duplicates and trimming to MaxQuickMeals.
func (p Presets) PushQuickMeal(name string) Presets {
	if name == "" {
		return p
	}
	next := make([]string, 0, len(p.QuickMeals)+1)
	next = append(next, name)
	for _, q := range p.QuickMeals {
		if q != name {
			next = append(next, q)
		}
	}
	if len(next) > MaxQuickMeals {
		next = next[:MaxQuickMeals]
	}
	p.QuickMeals = next
	return p
}
