package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchleonard/pebble-path/internal"
)

const answerFallback = "I can help with questions about water, mood, workouts, weight, and other tracked data. Try asking something specific!"

const answerNoData = "Not enough data to answer that yet — keep tracking!"

// AnswerQuestion routes a free-text question to a canned one-line
// statistic over the whole collection. Keyword priority: water, mood,
// workout, weight. Not NLP — just substring matching.
func AnswerQuestion(days map[string]internal.DayEntry, question string) string {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "water") || strings.Contains(q, "stanley"):
		var vals []float64
		for _, e := range days {
			if e.WaterStanleys > 0 {
				vals = append(vals, float64(e.WaterStanleys))
			}
		}
		if avg, ok := Mean(vals); ok {
			return fmt.Sprintf("You drink an average of %.1f Stanleys per day.", avg)
		}
		return answerNoData

	case strings.Contains(q, "mood") || strings.Contains(q, "feeling"):
		var vals []float64
		for _, e := range days {
			if e.Mood > 0 {
				vals = append(vals, float64(e.Mood))
			}
		}
		if avg, ok := Mean(vals); ok {
			return fmt.Sprintf("Your average mood is %.1f out of 5.", avg)
		}
		return answerNoData

	case strings.Contains(q, "workout") || strings.Contains(q, "exercise"):
		tracked := 0
		workoutDays := 0
		for _, e := range days {
			if e.Workouts == nil {
				continue
			}
			tracked++
			if e.Workouts.Any() {
				workoutDays++
			}
		}
		if tracked == 0 {
			return answerNoData
		}
		pct := float64(workoutDays) / float64(tracked) * 100
		return fmt.Sprintf("You work out on %.0f%% of the days you track.", pct)

	case strings.Contains(q, "weight"):
		var weighed []internal.DayEntry
		for _, e := range days {
			if e.Weight != nil {
				weighed = append(weighed, e)
			}
		}
		if len(weighed) == 0 {
			return answerNoData
		}
		sort.Slice(weighed, func(i, j int) bool { return weighed[i].Date > weighed[j].Date })
		return fmt.Sprintf("Your most recent weight was %g pounds.", *weighed[0].Weight)

	default:
		return answerFallback
	}
}
