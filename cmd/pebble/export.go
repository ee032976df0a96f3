package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchleonard/pebble-path/internal"
	"github.com/mitchleonard/pebble-path/internal/dateutil"
	"github.com/mitchleonard/pebble-path/internal/service"
	"github.com/mitchleonard/pebble-path/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportStart  string
	exportEnd    string
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a date range of day entries (csv or json)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		end := exportEnd
		if end == "" {
			end = dateutil.TodayISO()
		}
		start := exportStart
		if start == "" {
			start = dateutil.AddDaysISO(end, -6)
		}
		if !dateutil.IsValidISO(start) || !dateutil.IsValidISO(end) || start > end {
			return fmt.Errorf("invalid range %s..%s, want YYYY-MM-DD with start <= end", start, end)
		}

		repo, err := storage.NewFileStorage(daysFile, presetsFile, internal.NopLogger())
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer repo.Close()

		rawDays, _, err := repo.LoadAll(context.Background(), uid)
		if err != nil {
			return fmt.Errorf("load journal: %w", err)
		}
		days := make(map[string]internal.DayEntry, len(rawDays))
		for date, raw := range rawDays {
			days[date] = internal.NormalizeEntry(raw, date)
		}
		entries := service.FilterRange(days, start, end)

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()

		switch strings.ToLower(strings.TrimSpace(exportFormat)) {
		case "csv":
			if err := service.WriteCSV(f, entries); err != nil {
				return fmt.Errorf("write export csv: %w", err)
			}
		case "json":
			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			if err := enc.Encode(service.ExportRows(entries)); err != nil {
				return fmt.Errorf("write export json: %w", err)
			}
		default:
			return fmt.Errorf("unsupported --format %q (use csv or json)", exportFormat)
		}

		fmt.Printf("exported %d entries (%s..%s) to %s\n", len(entries), start, end, exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportStart, "start", "", "Range start (YYYY-MM-DD, default end-6d)")
	exportCmd.Flags().StringVar(&exportEnd, "end", "", "Range end (YYYY-MM-DD, default today)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv or json")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	rootCmd.AddCommand(exportCmd)
}
