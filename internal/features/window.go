// Package features builds rolling-window team-form feature tables from
// the game summary store: for every game, each team's recent-form sums,
// linearly weighted averages, and rate statistics over its N most recent
// prior games, expressed as home-minus-away differentials.
package features

import (
	"time"

	"github.com/tmarchand/nhlform/internal/games"
)

// TeamGame is one prior game seen from a single team's perspective.
type TeamGame struct {
	rec  *games.Record
	home bool
}

// pair returns the for/against values of a stat for this team.
func (tg TeamGame) pair(id games.StatID) (forV, againstV float64) {
	p, _ := games.Pair(tg.rec, id)
	if tg.home {
		return p.Home, p.Away
	}
	return p.Away, p.Home
}

// PriorGames selects a team's games strictly before the reference date,
// restricted to the reference season unless cross-season history is
// allowed. The result is chronological (date, then game id) and may be
// empty, which is a valid state, not an error.
func PriorGames(store *games.Store, team string, before time.Time, season string, cross bool) []TeamGame {
	var out []TeamGame
	for _, rec := range store.Records() {
		if !rec.Date.Before(before) {
			continue
		}
		if !cross && rec.Season != season {
			continue
		}
		switch team {
		case rec.HomeTeam:
			out = append(out, TeamGame{rec: rec, home: true})
		case rec.AwayTeam:
			out = append(out, TeamGame{rec: rec, home: false})
		}
	}
	return out
}

// lastN keeps the n most recent entries of a chronological sequence.
func lastN(window []TeamGame, n int) []TeamGame {
	if len(window) <= n {
		return window
	}
	return window[len(window)-n:]
}

// Window is the team's point-in-time rolling window: the last n eligible
// prior games.
func Window(store *games.Store, team string, before time.Time, season string, cross bool, n int) []TeamGame {
	return lastN(PriorGames(store, team, before, season, cross), n)
}
