package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-timeline-core/internal/config"
	"github.com/penwyp/go-timeline-core/internal/core/calendar"
	"github.com/penwyp/go-timeline-core/internal/core/model"
	"github.com/penwyp/go-timeline-core/internal/data/layout"
	"github.com/penwyp/go-timeline-core/internal/data/records"
	"github.com/penwyp/go-timeline-core/internal/data/watcher"
	"github.com/penwyp/go-timeline-core/internal/engine"
	"github.com/penwyp/go-timeline-core/internal/presentation/formatter"
	"github.com/penwyp/go-timeline-core/internal/util"
)

var (
	inputPath  string
	layersFile string
	watchInput bool

	layoutCmd = &cobra.Command{
		Use:   "layout",
		Short: "Compute lane assignments and card placements for a record batch",
		RunE:  runLayout,
	}
)

func init() {
	layoutCmd.Flags().StringVarP(&inputPath, "input", "i", "",
		"Record batch file (.json, .jsonl, .yaml)")
	layoutCmd.Flags().StringVar(&layersFile, "layers-file", "",
		"Layer persistence sidecar; assigned layers are written back after each pass")
	layoutCmd.Flags().BoolVarP(&watchInput, "watch", "w", false,
		"Recompute whenever the input file changes")
	layoutCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	layoutCmd.Flags().Float64Var(&viewWidth, "width", 1200,
		"Viewport width in pixels")
	layoutCmd.Flags().Float64Var(&panX, "pan", 0,
		"Horizontal camera pan in pixels")
	layoutCmd.Flags().Float64Var(&zoom, "zoom", 1,
		"Camera zoom factor")
	layoutCmd.Flags().Float64Var(&pxPerDay, "px-per-day", 0,
		"World-space width of one day at zoom 1")
	layoutCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg, err := initRun(cmd)
	if err != nil {
		return err
	}

	out, err := newFormatter(cfg.Output, stdout())
	if err != nil {
		return err
	}

	store, err := openLayerStore(cfg)
	if err != nil {
		return err
	}

	eng := engine.New(engine.Config{
		BasePxPerDay: cfg.BasePxPerDay,
		Format:       calendar.Options{DayFirst: cfg.DayFirst},
	})
	view := model.ViewportState{
		Width:  cfg.Viewport.Width,
		Height: cfg.Viewport.Height,
		PanX:   cfg.Viewport.PanX,
		PanY:   cfg.Viewport.PanY,
		Zoom:   cfg.Viewport.Zoom,
	}

	if err := computeOnce(eng, view, store, out); err != nil {
		return err
	}
	if !watchInput {
		return nil
	}
	return watchAndRecompute(eng, view, store, out)
}

func openLayerStore(cfg config.Config) (*layout.Store, error) {
	path := cfg.LayersFile
	if layersFile != "" {
		path = layersFile
	}
	if path == "" {
		return nil, nil
	}
	store := layout.NewStore(path)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

func computeOnce(eng *engine.Engine, view model.ViewportState, store *layout.Store, out formatter.Formatter) error {
	batch, err := records.LoadFile(inputPath)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	var persisted map[string]int
	if store != nil {
		persisted = store.Snapshot()
	}

	result := eng.Recompute(batch, view, persisted)

	if store != nil {
		store.Replace(result.Layers())
		if err := store.Save(); err != nil {
			return fmt.Errorf("persist layers: %w", err)
		}
	}
	return out.Format(formatter.FromLayout(result))
}

// watchAndRecompute reruns the pass whenever the input file changes, until
// interrupted.
func watchAndRecompute(eng *engine.Engine, view model.ViewportState, store *layout.Store, out formatter.Formatter) error {
	fw, err := watcher.NewFileWatcher(inputPath)
	if err != nil {
		return fmt.Errorf("watch %s: %w", inputPath, err)
	}
	defer fw.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	util.LogInfof("Watching %s for changes", inputPath)

	for {
		select {
		case <-interrupt:
			return nil
		case _, ok := <-fw.Events():
			if !ok {
				return nil
			}
			if err := computeOnce(eng, view, store, out); err != nil {
				// One bad write must not end the watch session.
				util.LogErrorf("Recompute failed: %v", err)
			}
		}
	}
}
