// Command summarize reduces season play-by-play CSVs plus the shot-level
// xG export to one summary record per non-playoff game, persisted to the
// game summary database and a CSV snapshot.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tmarchand/nhlform/internal/boxscore"
	"github.com/tmarchand/nhlform/internal/config"
	"github.com/tmarchand/nhlform/internal/games"
	"github.com/tmarchand/nhlform/internal/pbp"
	"github.com/tmarchand/nhlform/internal/telemetry"
)

func main() {
	cfg := config.Load()

	rawDir := flag.String("raw", cfg.RawDataDir, "directory with nhl_pbp_YYYYYYYY.csv season files")
	xgFile := flag.String("xg", cfg.XGFile, "shot-level expected goals CSV")
	dbPath := flag.String("db", cfg.DBPath, "game summary database path")
	csvPath := flag.String("csv", cfg.SummaryCSV, "summary CSV snapshot path")
	flag.Parse()

	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))

	if err := run(*rawDir, *xgFile, *dbPath, *csvPath); err != nil {
		telemetry.Errorf("summarize: %v", err)
		os.Exit(1)
	}
}

func run(rawDir, xgFile, dbPath, csvPath string) error {
	seasonFiles, err := filepath.Glob(filepath.Join(rawDir, "nhl_pbp_*.csv"))
	if err != nil {
		return fmt.Errorf("scan %s: %w", rawDir, err)
	}
	if len(seasonFiles) == 0 {
		return fmt.Errorf("no season files under %s", rawDir)
	}
	sort.Strings(seasonFiles)

	xg, err := pbp.LoadXG(xgFile)
	if err != nil {
		return err
	}
	telemetry.Infof("loaded xG shots for %d games", len(xg))

	store := games.NewStore()
	var skippedPlayoffs, unresolved int

	for _, path := range seasonFiles {
		seasonGames, err := pbp.LoadSeason(path)
		if err != nil {
			return err
		}

		kept := 0
		for _, g := range seasonGames {
			if g.IsPlayoff {
				skippedPlayoffs++
				continue
			}
			rec, err := boxscore.Summarize(g, xg[g.ID])
			if err != nil {
				return err
			}
			if rec.Winner == games.WinnerUnresolved {
				unresolved++
				telemetry.Warnf("game %d (%s @ %s, %s): winner unresolved",
					rec.GameID, rec.AwayTeam, rec.HomeTeam, g.Date)
			}
			if err := store.Add(rec); err != nil {
				return err
			}
			kept++
		}
		telemetry.Infof("%s: %d games summarized", filepath.Base(path), kept)
	}

	store.Sort()

	db, err := games.OpenDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := games.SaveAll(db, store.Records()); err != nil {
		return err
	}
	if err := games.WriteCSV(csvPath, store.Records()); err != nil {
		return err
	}

	telemetry.Infof("summarize done: %d games -> %s (playoffs skipped: %d, unresolved winners: %d)",
		store.Len(), dbPath, skippedPlayoffs, unresolved)
	return nil
}
