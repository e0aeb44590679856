package commands

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/penwyp/go-timeline-core/internal/core/calendar"
	"github.com/penwyp/go-timeline-core/internal/core/scale"
)

var markersCmd = &cobra.Command{
	Use:   "markers",
	Short: "Generate time-ruler markers for a camera position",
	RunE:  runMarkers,
}

func init() {
	markersCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json)")
	markersCmd.Flags().Float64Var(&viewWidth, "width", 1200,
		"Viewport width in pixels")
	markersCmd.Flags().Float64Var(&panX, "pan", 0,
		"Horizontal camera pan in pixels")
	markersCmd.Flags().Float64Var(&zoom, "zoom", 1,
		"Camera zoom factor")
	markersCmd.Flags().Float64Var(&pxPerDay, "px-per-day", 0,
		"World-space width of one day at zoom 1")

	rootCmd.AddCommand(markersCmd)
}

func runMarkers(cmd *cobra.Command, args []string) error {
	cfg, err := initRun(cmd)
	if err != nil {
		return err
	}

	effectivePx := cfg.BasePxPerDay * cfg.Viewport.Zoom
	level := scale.ChooseLevel(effectivePx)
	markers := scale.GenerateMarkers(level, effectivePx, cfg.Viewport.PanX, cfg.Viewport.Width)

	if cfg.Output == "json" {
		encoded, err := sonic.MarshalIndent(markers, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	}

	fmt.Printf("Scale level %d, %d markers\n", level, len(markers))
	opts := calendar.Options{DayFirst: cfg.DayFirst}
	for _, m := range markers {
		tick := "-"
		if m.IsMajor {
			tick = "="
		}
		label := calendar.FormatForLevel(calendar.FromDayOffset(scale.UnitStart(level, m.UnitIndex)), level, opts)
		fmt.Printf("%s %10.1fpx  %s\n", tick, m.ScreenPosition, label)
	}
	return nil
}
