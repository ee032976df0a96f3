package service

import (
	"math"
	"sort"
	"strconv"

	"github.com/mitchleonard/pebble-path/internal"
)

// NoData is the display sentinel for an average with zero qualifying
// entries.
const NoData = "—"

type FoodCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Series carries the per-date chart inputs for a range. Weight points
// are nil on days without a weigh-in.
type Series struct {
	Dates          []string   `json:"dates"`
	Mood           []int      `json:"mood"`
	PhysicalHealth []int      `json:"physical_health"`
	Weight         []*float64 `json:"weight"`
}

// Summary is the aggregation output for one date range.
type Summary struct {
	Start             string      `json:"start"`
	End               string      `json:"end"`
	Entries           int         `json:"entries"`
	AvgMood           *float64    `json:"avg_mood"`
	AvgPhysicalHealth *float64    `json:"avg_physical_health"`
	AvgWater          *float64    `json:"avg_water"`
	TopFoods          []FoodCount `json:"top_foods"`
	Series            Series      `json:"series"`
}

// FilterRange returns the entries whose date falls inside [start, end],
// ascending by date. The fixed-width key format makes plain string
// comparison correct.
func FilterRange(days map[string]internal.DayEntry, start, end string) []internal.DayEntry {
	entries := make([]internal.DayEntry, 0, len(days))
	for date, e := range days {
		if date >= start && date <= end {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries
}

// Summarize computes the descriptive statistics for a range: simple
// averages (nil when no qualifying entries — never NaN), the top-12 food
// frequency table and the chart series.
func Summarize(days map[string]internal.DayEntry, start, end string) Summary {
	entries := FilterRange(days, start, end)

	s := Summary{
		Start:   start,
		End:     end,
		Entries: len(entries),
		Series: Series{
			Dates:          make([]string, 0, len(entries)),
			Mood:           make([]int, 0, len(entries)),
			PhysicalHealth: make([]int, 0, len(entries)),
			Weight:         make([]*float64, 0, len(entries)),
		},
	}

	var moods, healths, waters []float64
	for _, e := range entries {
		if e.Mood > 0 {
			moods = append(moods, float64(e.Mood))
		}
		if e.PhysicalHealth > 0 {
			healths = append(healths, float64(e.PhysicalHealth))
		}
		waters = append(waters, float64(e.WaterStanleys))

		s.Series.Dates = append(s.Series.Dates, e.Date)
		s.Series.Mood = append(s.Series.Mood, e.Mood)
		s.Series.PhysicalHealth = append(s.Series.PhysicalHealth, e.PhysicalHealth)
		s.Series.Weight = append(s.Series.Weight, e.Weight)
	}

	if avg, ok := Mean(moods); ok {
		avg = Round1(avg)
		s.AvgMood = &avg
	}
	if avg, ok := Mean(healths); ok {
		avg = Round1(avg)
		s.AvgPhysicalHealth = &avg
	}
	if avg, ok := Mean(waters); ok {
		avg = Round1(avg)
		s.AvgWater = &avg
	}

	s.TopFoods = topFoods(entries, 12)
	return s
}

// topFoods counts every meal and per-meal snack item across the entries
// and keeps the n most frequent. Ties keep first-encountered order.
func topFoods(entries []internal.DayEntry, n int) []FoodCount {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	seen := 0

	bump := func(item string) {
		if _, ok := counts[item]; !ok {
			firstSeen[item] = seen
			seen++
		}
		counts[item]++
	}

	for _, e := range entries {
		for _, slot := range internal.MealSlots {
			for _, item := range e.Meals.Slot(slot) {
				bump(item)
			}
		}
		if e.SnacksByMeal != nil {
			for _, items := range [][]string{e.SnacksByMeal.Breakfast, e.SnacksByMeal.Lunch, e.SnacksByMeal.Dinner} {
				for _, item := range items {
					bump(item)
				}
			}
		}
	}

	foods := make([]FoodCount, 0, len(counts))
	for name, count := range counts {
		foods = append(foods, FoodCount{Name: name, Count: count})
	}
	sort.SliceStable(foods, func(i, j int) bool {
		if foods[i].Count != foods[j].Count {
			return foods[i].Count > foods[j].Count
		}
		return firstSeen[foods[i].Name] < firstSeen[foods[j].Name]
	})
	if len(foods) > n {
		foods = foods[:n]
	}
	return foods
}

// Mean returns the arithmetic mean, with ok=false on an empty set so
// callers never divide by zero.
func Mean(vals []float64) (float64, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), true
}

// Round1 rounds to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatAvg renders a rounded average or the no-data sentinel.
func FormatAvg(v *float64) string {
	if v == nil {
		return NoData
	}
	return strconv.FormatFloat(Round1(*v), 'f', 1, 64)
}
