package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/mitchleonard/pebble-path/internal"
	"github.com/mitchleonard/pebble-path/internal/dateutil"
)

// Insight is one heuristic observation over a window of day entries.
type Insight struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Confidence  string `json:"confidence"` // high | medium | low
	Category    string `json:"category"`   // correlation | trend | pattern
}

const (
	// The battery only runs with at least a week of data.
	minEntriesForInsights = 7
	// Never emit more than this many insights, in fixed check order.
	maxInsights = 6
)

// BuildInsights runs the fixed battery of heuristic checks over the
// filtered entries. Below seven entries it returns the single
// "need more data" notice instead.
func BuildInsights(entries []internal.DayEntry) []Insight {
	if len(entries) < minEntriesForInsights {
		return []Insight{{
			ID:          "not-enough-data",
			Title:       "Need More Data",
			Description: "We need at least a week of data to generate meaningful insights.",
			Confidence:  "low",
			Category:    "pattern",
		}}
	}

	var insights []Insight
	checks := []func([]internal.DayEntry) *Insight{
		waterMoodInsight,
		workoutHealthInsight,
		weightTrendInsight,
		injectionCadenceInsight,
		mealSkippingInsight,
		moodTrendInsight,
	}
	for _, check := range checks {
		if in := check(entries); in != nil {
			insights = append(insights, *in)
		}
	}
	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// waterMoodInsight compares mean mood on high-water (3+ Stanleys) days
// against low-water days.
func waterMoodInsight(entries []internal.DayEntry) *Insight {
	var high, low []float64
	qualifying := 0
	for _, e := range entries {
		if e.WaterStanleys <= 0 || e.Mood <= 0 {
			continue
		}
		qualifying++
		if e.WaterStanleys >= 3 {
			high = append(high, float64(e.Mood))
		} else {
			low = append(low, float64(e.Mood))
		}
	}
	if qualifying < 5 {
		return nil
	}
	avgHigh, okHigh := Mean(high)
	avgLow, okLow := Mean(low)
	if !okHigh || !okLow {
		return nil
	}
	diff := avgHigh - avgLow
	if math.Abs(diff) < 0.5 {
		return nil
	}
	direction := "higher"
	if diff < 0 {
		direction = "lower"
	}
	return &Insight{
		ID:          "water-mood",
		Title:       "Water & Mood Connection",
		Description: fmt.Sprintf("On days with 3+ Stanleys, your mood is %.1f points %s on average.", math.Abs(diff), direction),
		Confidence:  "medium",
		Category:    "correlation",
	}
}

// workoutHealthInsight compares mean physical health on workout days
// against rest days.
func workoutHealthInsight(entries []internal.DayEntry) *Insight {
	var workout, rest []float64
	qualifying := 0
	for _, e := range entries {
		if e.Workouts == nil || e.PhysicalHealth <= 0 {
			continue
		}
		qualifying++
		if e.Workouts.Any() {
			workout = append(workout, float64(e.PhysicalHealth))
		} else {
			rest = append(rest, float64(e.PhysicalHealth))
		}
	}
	if qualifying < 5 {
		return nil
	}
	avgWorkout, okW := Mean(workout)
	avgRest, okR := Mean(rest)
	if !okW || !okR {
		return nil
	}
	diff := avgWorkout - avgRest
	if math.Abs(diff) < 0.5 {
		return nil
	}
	direction := "better"
	if diff < 0 {
		direction = "worse"
	}
	return &Insight{
		ID:          "workout-health",
		Title:       "Workout Impact",
		Description: fmt.Sprintf("Your physical health is %.1f points %s on workout days.", math.Abs(diff), direction),
		Confidence:  "medium",
		Category:    "correlation",
	}
}

// weightTrendInsight compares the first and last weigh-ins of the range.
func weightTrendInsight(entries []internal.DayEntry) *Insight {
	weighed := filterSorted(entries, func(e internal.DayEntry) bool { return e.Weight != nil })
	if len(weighed) < 3 {
		return nil
	}
	change := *weighed[len(weighed)-1].Weight - *weighed[0].Weight
	if math.Abs(change) < 1 {
		return nil
	}
	direction := "gained"
	if change < 0 {
		direction = "lost"
	}
	amount := strconv.FormatFloat(math.Abs(change), 'f', -1, 64)
	return &Insight{
		ID:          "weight-trend",
		Title:       "Weight Trend",
		Description: fmt.Sprintf("Over this period, you've %s %s pounds.", direction, amount),
		Confidence:  "high",
		Category:    "trend",
	}
}

// injectionCadenceInsight checks whether done-injections land about a
// week apart (mean gap within 2 days of 7).
func injectionCadenceInsight(entries []internal.DayEntry) *Insight {
	done := filterSorted(entries, func(e internal.DayEntry) bool {
		return e.Injection != nil && e.Injection.Done
	})
	if len(done) < 2 {
		return nil
	}
	var gaps []float64
	for i := 1; i < len(done); i++ {
		gaps = append(gaps, float64(dateutil.DaysBetween(done[i-1].Date, done[i].Date)))
	}
	avgGap, _ := Mean(gaps)
	if math.Abs(avgGap-7) > 2 {
		return nil
	}
	return &Insight{
		ID:          "injection-consistency",
		Title:       "Consistent Injections",
		Description: fmt.Sprintf("You're maintaining a regular injection schedule, averaging every %d days.", int(math.Round(avgGap))),
		Confidence:  "high",
		Category:    "pattern",
	}
}

// mealSkippingInsight flags a pattern of empty breakfasts next to solid
// lunches and dinners.
func mealSkippingInsight(entries []internal.DayEntry) *Insight {
	if len(entries) < 5 {
		return nil
	}
	var breakfast, lunch, dinner float64
	for _, e := range entries {
		breakfast += float64(len(e.Meals.Breakfast))
		lunch += float64(len(e.Meals.Lunch))
		dinner += float64(len(e.Meals.Dinner))
	}
	n := float64(len(entries))
	if breakfast/n < 0.5 && lunch/n > 1 && dinner/n > 1 {
		return &Insight{
			ID:          "meal-skipping",
			Title:       "Breakfast Skipper",
			Description: "You tend to skip breakfast but consistently eat lunch and dinner.",
			Confidence:  "medium",
			Category:    "pattern",
		}
	}
	return nil
}

// moodTrendInsight compares mean mood between the two halves of the
// range. The second half takes the extra entry when the count is odd.
func moodTrendInsight(entries []internal.DayEntry) *Insight {
	withMood := filterSorted(entries, func(e internal.DayEntry) bool { return e.Mood > 0 })
	if len(withMood) < 5 {
		return nil
	}
	mid := len(withMood) / 2
	var first, second []float64
	for _, e := range withMood[:mid] {
		first = append(first, float64(e.Mood))
	}
	for _, e := range withMood[mid:] {
		second = append(second, float64(e.Mood))
	}
	avgFirst, okF := Mean(first)
	avgSecond, okS := Mean(second)
	if !okF || !okS {
		return nil
	}
	diff := avgSecond - avgFirst
	if math.Abs(diff) < 0.5 {
		return nil
	}
	direction := "improving"
	if diff < 0 {
		direction = "declining"
	}
	return &Insight{
		ID:          "mood-trend",
		Title:       "Mood Trend",
		Description: fmt.Sprintf("Your mood has been %s over this period.", direction),
		Confidence:  "medium",
		Category:    "trend",
	}
}

func filterSorted(entries []internal.DayEntry, keep func(internal.DayEntry) bool) []internal.DayEntry {
	var out []internal.DayEntry
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
