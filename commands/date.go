package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-timeline-core/internal/core/calendar"
)

var (
	dateLevel int

	dateCmd = &cobra.Command{
		Use:   "date <text>",
		Short: "Parse a date string and print its canonical and display forms",
		Args:  cobra.ExactArgs(1),
		RunE:  runDate,
	}
)

func init() {
	dateCmd.Flags().IntVar(&dateLevel, "level", 0,
		"Scale level to render the display form at")

	rootCmd.AddCommand(dateCmd)
}

func runDate(cmd *cobra.Command, args []string) error {
	cfg, err := initRun(cmd)
	if err != nil {
		return err
	}

	d, ok := calendar.Parse(args[0], calendar.Options{DayFirst: cfg.DayFirst})
	if !ok {
		return fmt.Errorf("unparseable date: %q (expected [±]YYYY[ ERA]-MM-DD)", args[0])
	}

	fmt.Printf("Canonical:  %s\n", calendar.CanonicalString(d))
	fmt.Printf("Display:    %s\n", calendar.FormatForLevel(d, dateLevel, calendar.Options{DayFirst: cfg.DayFirst}))
	fmt.Printf("Day offset: %d\n", d.DayOffset())
	return nil
}
