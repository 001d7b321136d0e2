package features

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Wide is the combined table: every per-window table's feature columns
// aligned on the shared natural key.
type Wide struct {
	Header []string
	Rows   [][]string
}

var wideKeyColumns = []string{
	"Game_Id", "RegOrOT", "season", "Away_Team", "Home_Team", "Outcome", "isPlayoff",
}

// Combine joins all tables on the natural key. The join is a full outer
// alignment that must be lossless: every table was built over the same
// store, so every game must appear in every table exactly once with an
// identical key; anything else is an input error.
func Combine(tables []*Table) (*Wide, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("no tables to combine")
	}

	keys := make(map[int64]Key, len(tables[0].Rows))
	for _, row := range tables[0].Rows {
		if _, dup := keys[row.GameID]; dup {
			return nil, fmt.Errorf("table %s: duplicate game %d", tables[0].Name(), row.GameID)
		}
		keys[row.GameID] = row.Key
	}

	// Per-table row lookup, verified against the shared key set.
	lookups := make([]map[int64]*Row, len(tables))
	for ti, t := range tables {
		if len(t.Rows) != len(keys) {
			return nil, fmt.Errorf("table %s: %d rows, want %d", t.Name(), len(t.Rows), len(keys))
		}
		lookup := make(map[int64]*Row, len(t.Rows))
		for ri := range t.Rows {
			row := &t.Rows[ri]
			want, ok := keys[row.GameID]
			if !ok {
				return nil, fmt.Errorf("table %s: unexpected game %d", t.Name(), row.GameID)
			}
			if row.Key != want {
				return nil, fmt.Errorf("table %s: game %d key mismatch", t.Name(), row.GameID)
			}
			if _, dup := lookup[row.GameID]; dup {
				return nil, fmt.Errorf("table %s: duplicate game %d", t.Name(), row.GameID)
			}
			lookup[row.GameID] = row
		}
		lookups[ti] = lookup
	}

	header := append([]string{}, wideKeyColumns...)
	for _, t := range tables {
		for _, col := range FeatureColumns() {
			header = append(header, col+t.suffix())
		}
	}

	ids := make([]int64, 0, len(keys))
	for id := range keys {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	wide := &Wide{Header: header, Rows: make([][]string, 0, len(ids))}
	for _, id := range ids {
		key := keys[id]
		rec := make([]string, 0, len(header))
		rec = append(rec,
			strconv.FormatInt(key.GameID, 10),
			key.RegOrOT,
			key.Season,
			key.AwayTeam,
			key.HomeTeam,
			strconv.Itoa(key.Outcome),
			formatBool(key.IsPlayoff),
		)
		for ti := range tables {
			for _, v := range lookups[ti][id].Features {
				rec = append(rec, formatFeature(v))
			}
		}
		wide.Rows = append(wide.Rows, rec)
	}

	return wide, nil
}

// WriteCSV writes the combined table.
func (wd *Wide) WriteCSV(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(wd.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range wd.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
