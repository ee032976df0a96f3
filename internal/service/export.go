package service

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/mitchleonard/pebble-path/internal"
)

const listDelimiter = " | "

// ExportRow is the flat one-row-per-day projection consumed by
// spreadsheet exports. List fields are joined into a single cell.
type ExportRow struct {
	Date           string `json:"date"`
	Weight         string `json:"weight"`
	Breakfast      string `json:"breakfast"`
	Lunch          string `json:"lunch"`
	Dinner         string `json:"dinner"`
	Snacks         string `json:"snacks"`
	WaterStanleys  int    `json:"water_stanleys"`
	Mood           int    `json:"mood"`
	PhysicalHealth int    `json:"physical_health"`
	Workouts       string `json:"workouts"`
	WorkoutsOther  string `json:"workouts_other"`
	Injection      string `json:"injection"`
	InjectionNote  string `json:"injection_note"`
	Notes          string `json:"notes"`
}

// ExportRows flattens the entries (already range-filtered and sorted).
func ExportRows(entries []internal.DayEntry) []ExportRow {
	rows := make([]ExportRow, 0, len(entries))
	for _, e := range entries {
		row := ExportRow{
			Date:           e.Date,
			Breakfast:      strings.Join(e.Meals.Breakfast, listDelimiter),
			Lunch:          strings.Join(e.Meals.Lunch, listDelimiter),
			Dinner:         strings.Join(e.Meals.Dinner, listDelimiter),
			Snacks:         strings.Join(e.Meals.Snacks, listDelimiter),
			WaterStanleys:  e.WaterStanleys,
			Mood:           e.Mood,
			PhysicalHealth: e.PhysicalHealth,
			Notes:          e.Notes,
		}
		if e.Weight != nil {
			row.Weight = strconv.FormatFloat(*e.Weight, 'f', -1, 64)
		}
		if e.Workouts != nil {
			row.Workouts = strings.Join(e.Workouts.Presets, listDelimiter)
			row.WorkoutsOther = e.Workouts.Other
		}
		if e.Injection != nil && e.Injection.Done {
			row.Injection = "Yes"
			row.InjectionNote = e.Injection.Note
		} else {
			row.Injection = "No"
		}
		rows = append(rows, row)
	}
	return rows
}

var exportHeader = []string{
	"date", "weight", "breakfast", "lunch", "dinner", "snacks",
	"water_stanleys", "mood", "physical_health",
	"workouts", "workouts_other", "injection", "injection_note", "notes",
}

// WriteCSV streams the flat projection as CSV.
func WriteCSV(w io.Writer, entries []internal.DayEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, row := range ExportRows(entries) {
		record := []string{
			row.Date,
			row.Weight,
			row.Breakfast,
			row.Lunch,
			row.Dinner,
			row.Snacks,
			strconv.Itoa(row.WaterStanleys),
			strconv.Itoa(row.Mood),
			strconv.Itoa(row.PhysicalHealth),
			row.Workouts,
			row.WorkoutsOther,
			row.Injection,
			row.InjectionNote,
			row.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
