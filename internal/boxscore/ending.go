package boxscore

import (
	"fmt"

	"github.com/tmarchand/nhlform/internal/games"
	"github.com/tmarchand/nhlform/internal/pbp"
)

// resolveEnding determines how the game ended (REG or OT) and who won
// from the game-end event, falling back to the last period-end event when
// GEND is missing. A tied final score returns an empty winner; the caller
// retries with counted goals before giving up.
func resolveEnding(events []pbp.Event, away, home string) (ending, winner string, err error) {
	var end *pbp.Event
	for i := range events {
		if events[i].Event == pbp.EvGameEnd {
			end = &events[i]
			break
		}
	}
	if end == nil {
		for i := range events {
			e := &events[i]
			if e.Event == pbp.EvPeriodEnd && (end == nil || e.Period >= end.Period) {
				end = e
			}
		}
	}
	if end == nil {
		return "", "", fmt.Errorf("no GEND or PEND event")
	}

	ending = games.EndedRegulation
	if end.Period > 3 {
		ending = games.EndedOvertime
	}

	switch {
	case end.AwayScore > end.HomeScore:
		winner = away
	case end.HomeScore > end.AwayScore:
		winner = home
	}
	return ending, winner, nil
}
