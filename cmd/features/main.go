// Command features builds the rolling-window feature tables from the
// game summary database: one CSV per (window size, cross-season mode)
// plus the combined wide table joined on the natural key.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tmarchand/nhlform/internal/config"
	"github.com/tmarchand/nhlform/internal/features"
	"github.com/tmarchand/nhlform/internal/games"
	"github.com/tmarchand/nhlform/internal/telemetry"
)

func main() {
	cfg := config.Load()

	dbPath := flag.String("db", cfg.DBPath, "game summary database path")
	outDir := flag.String("out", cfg.FramesDir, "output directory for feature tables")
	windows := flag.String("windows", joinInts(cfg.WindowSizes), "comma-separated window sizes")
	flag.Parse()

	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))

	sizes, err := parseWindows(*windows)
	if err != nil {
		telemetry.Errorf("features: %v", err)
		os.Exit(1)
	}

	if err := run(*dbPath, *outDir, sizes); err != nil {
		telemetry.Errorf("features: %v", err)
		os.Exit(1)
	}
}

func run(dbPath, outDir string, windows []int) error {
	store, err := games.LoadStore(dbPath)
	if err != nil {
		return err
	}
	if store.Len() == 0 {
		return fmt.Errorf("%s: no games (run summarize first)", dbPath)
	}
	telemetry.Infof("loaded %d games from %s", store.Len(), dbPath)

	// Same-season tables first, then cross-season, matching the combined
	// table's column order.
	var all []*features.Table
	for _, cross := range []bool{false, true} {
		build, err := features.BuildTables(store, features.BuildConfig{
			Windows: windows,
			Cross:   cross,
		})
		if err != nil {
			return err
		}
		for _, t := range build.Tables {
			if err := t.WriteCSV(outDir); err != nil {
				return err
			}
			telemetry.Infof("wrote %s.csv (%d rows)", t.Name(), len(t.Rows))
		}
		all = append(all, build.Tables...)
	}

	wide, err := features.Combine(all)
	if err != nil {
		return err
	}
	combinedPath := filepath.Join(outDir, "CombinedFrame.csv")
	if err := wide.WriteCSV(combinedPath); err != nil {
		return err
	}
	telemetry.Infof("wrote %s (%d rows, %d columns)", combinedPath, len(wide.Rows), len(wide.Header))
	return nil
}

func parseWindows(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad window size %q", part)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no window sizes given")
	}
	return out, nil
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
