package features

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tmarchand/nhlform/internal/games"
	"github.com/tmarchand/nhlform/internal/telemetry"
)

// BuildConfig selects the window sizes and season scope for one assembly
// pass. Window sizes and the cross flag come from the caller; nothing is
// discovered at runtime.
type BuildConfig struct {
	Windows []int
	Cross   bool
}

// Build is the result of one assembly pass over the store.
type Build struct {
	RunID   string
	Tables  []*Table
	Rows    int64
	Elapsed time.Duration
}

// BuildTables builds one feature table per configured window size. The
// per-window builds are independent (no table reads another's state), so
// they run concurrently. Rows come out in ascending game id for
// reproducible output.
func BuildTables(store *games.Store, cfg BuildConfig) (*Build, error) {
	if len(cfg.Windows) == 0 {
		return nil, fmt.Errorf("no window sizes configured")
	}
	if err := games.ValidateStats(requiredStats); err != nil {
		return nil, fmt.Errorf("record schema: %w", err)
	}

	build := &Build{
		RunID:  uuid.NewString(),
		Tables: make([]*Table, len(cfg.Windows)),
	}
	start := time.Now()

	// Snapshot in ascending game id; season-prefixed ids make this a
	// stable chronological-ish output order.
	recs := append([]*games.Record{}, store.Records()...)
	sort.Slice(recs, func(i, j int) bool { return recs[i].GameID < recs[j].GameID })

	var rowsBuilt telemetry.Counter
	var g errgroup.Group
	for i, window := range cfg.Windows {
		g.Go(func() error {
			table := &Table{
				Window: window,
				Cross:  cfg.Cross,
				Rows:   make([]Row, 0, len(recs)),
			}
			for _, rec := range recs {
				row, err := buildRow(store, rec, window, cfg.Cross)
				if err != nil {
					return fmt.Errorf("window %d: %w", window, err)
				}
				table.Rows = append(table.Rows, row)
				rowsBuilt.Inc()
			}
			build.Tables[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	build.Rows = rowsBuilt.Value()
	build.Elapsed = time.Since(start)
	telemetry.Infof("feature build %s: cross=%v windows=%v rows=%d in %s",
		build.RunID, cfg.Cross, cfg.Windows, build.Rows, build.Elapsed.Round(time.Millisecond))
	return build, nil
}
