package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/mitchleonard/pebble-path/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRowsFlattening(t *testing.T) {
	e := entry("2025-01-07", 4, 3, 2)
	e.Meals.Breakfast = []string{"Eggs", "Toast"}
	e.Meals.Snacks = []string{"Nuts"}
	w := 198.5
	e.Weight = &w
	e.Workouts = &internal.Workouts{Presets: []string{"OTF", "Yoga"}, Other: "Stretch"}
	e.Injection = &internal.Injection{Done: true, Note: "left side"}
	e.Notes = "good day"

	rows := ExportRows([]internal.DayEntry{e})
	require.Len(t, rows, 1)
	row := rows[0]

	assert.Equal(t, "2025-01-07", row.Date)
	assert.Equal(t, "198.5", row.Weight)
	assert.Equal(t, "Eggs | Toast", row.Breakfast)
	assert.Equal(t, "Nuts", row.Snacks)
	assert.Equal(t, "OTF | Yoga", row.Workouts)
	assert.Equal(t, "Stretch", row.WorkoutsOther)
	assert.Equal(t, "Yes", row.Injection)
	assert.Equal(t, "left side", row.InjectionNote)
	assert.Equal(t, "good day", row.Notes)
}

func TestExportRowsOptionalFieldsBlank(t *testing.T) {
	rows := ExportRows([]internal.DayEntry{entry("2025-01-07", 3, 3, 0)})
	require.Len(t, rows, 1)

	assert.Empty(t, rows[0].Weight)
	assert.Empty(t, rows[0].Workouts)
	assert.Equal(t, "No", rows[0].Injection)
	assert.Empty(t, rows[0].InjectionNote)
}

func TestWriteCSV(t *testing.T) {
	a := entry("2025-01-06", 3, 3, 2)
	b := entry("2025-01-07", 4, 3, 1)
	b.Meals.Lunch = []string{"Salad"}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []internal.DayEntry{a, b}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, "2025-01-06", records[1][0])
	assert.Equal(t, "Salad", records[2][3])
	for _, rec := range records {
		assert.Len(t, rec, len(exportHeader))
	}
}
