package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	daysFile    string
	presetsFile string
	uid         string
)

var rootCmd = &cobra.Command{
	Use:   "pebble",
	Short: "pebble inspects and exports Pebble Path journal data",
	Long:  "pebble is a maintenance CLI for Pebble Path: export a date range of day entries to CSV or JSON straight from the file backend.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&daysFile, "days", "data/days.json", "Path to the days JSON file")
	rootCmd.PersistentFlags().StringVar(&presetsFile, "presets", "data/presets.json", "Path to the presets JSON file")
	rootCmd.PersistentFlags().StringVar(&uid, "uid", "u1", "User id to read")
}
