package features

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Table is one feature table: every game's Row for a single window size
// and cross-season mode.
type Table struct {
	Window int
	Cross  bool
	Rows   []Row
}

// Name is the table's file stem, e.g. "5Cross" or "10NoCross".
func (t *Table) Name() string {
	if t.Cross {
		return fmt.Sprintf("%dCross", t.Window)
	}
	return fmt.Sprintf("%dNoCross", t.Window)
}

// suffix disambiguates this table's feature columns in the combined wide
// table. Natural-key columns are never suffixed.
func (t *Table) suffix() string {
	if t.Cross {
		return fmt.Sprintf(" %dCross", t.Window)
	}
	return fmt.Sprintf(" %d", t.Window)
}

// header is the per-table CSV header: natural key, features, outcome.
func (t *Table) header() []string {
	cols := []string{"Game_Id", "RegOrOT", "Away_Team", "Home_Team", "season", "isPlayoff"}
	cols = append(cols, FeatureColumns()...)
	return append(cols, "Outcome")
}

// WriteCSV writes the table under dir as <Name>.csv.
func (t *Table) WriteCSV(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create frames dir: %w", err)
	}
	path := filepath.Join(dir, t.Name()+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range t.Rows {
		rec := make([]string, 0, len(row.Features)+7)
		rec = append(rec,
			strconv.FormatInt(row.GameID, 10),
			row.RegOrOT,
			row.AwayTeam,
			row.HomeTeam,
			row.Season,
			formatBool(row.IsPlayoff),
		)
		for _, v := range row.Features {
			rec = append(rec, formatFeature(v))
		}
		rec = append(rec, strconv.Itoa(row.Outcome))
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write game %d: %w", row.GameID, err)
		}
	}

	w.Flush()
	return w.Error()
}

func formatFeature(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
