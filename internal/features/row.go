package features

import (
	"fmt"

	"github.com/tmarchand/nhlform/internal/games"
)

// Key is the natural key every feature table shares; the combined wide
// table aligns on it.
type Key struct {
	GameID    int64
	RegOrOT   string
	AwayTeam  string
	HomeTeam  string
	Season    string
	IsPlayoff bool
	Outcome   int
}

// Row is one game's differential feature vector for a single
// window-size/cross-mode configuration. Immutable once built.
type Row struct {
	Key
	Features []float64 // home minus away, featureDefs order
}

// buildRow computes both teams' windows and form vectors for the target
// game and subtracts away from home elementwise. A winner that is neither
// team is a data-quality failure that must have been resolved upstream,
// so it is rejected loudly here.
func buildRow(store *games.Store, rec *games.Record, window int, cross bool) (Row, error) {
	var outcome int
	switch rec.Winner {
	case rec.HomeTeam:
		outcome = 1
	case rec.AwayTeam:
		outcome = 0
	default:
		return Row{}, fmt.Errorf("game %d: winner %q is neither %q nor %q",
			rec.GameID, rec.Winner, rec.AwayTeam, rec.HomeTeam)
	}

	awayWindow := Window(store, rec.AwayTeam, rec.Date, rec.Season, cross, window)
	homeWindow := Window(store, rec.HomeTeam, rec.Date, rec.Season, cross, window)

	awayForm := buildForm(awayWindow, rec.AwayTeam)
	homeForm := buildForm(homeWindow, rec.HomeTeam)

	awayVec := vector(&awayForm)
	homeVec := vector(&homeForm)

	diff := make([]float64, len(homeVec))
	for i := range homeVec {
		diff[i] = homeVec[i] - awayVec[i]
	}

	return Row{
		Key: Key{
			GameID:    rec.GameID,
			RegOrOT:   rec.RegOrOT,
			AwayTeam:  rec.AwayTeam,
			HomeTeam:  rec.HomeTeam,
			Season:    rec.Season,
			IsPlayoff: rec.IsPlayoff,
			Outcome:   outcome,
		},
		Features: diff,
	}, nil
}
