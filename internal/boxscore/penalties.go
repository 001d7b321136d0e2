package boxscore

import (
	"strconv"
	"strings"

	"github.com/tmarchand/nhlform/internal/pbp"
)

// penaltySummary holds penalty minutes and power-play opportunities for
// both teams of one game.
type penaltySummary struct {
	awayPIM, homePIM float64
	awayPPO, homePPO float64
}

// penaltyMinutes tallies minutes and power-play opportunities. Rules
// carried over from the source data conventions:
//   - minutes come from the "(N min)" fragment of the penalty Type,
//     falling back to the Description when Type is blank;
//   - majors are five minutes and always grant an opportunity unless the
//     penalty was for fighting;
//   - minors grant an opportunity only when not offset by an opposing
//     penalty at the same elapsed time of the same period.
func penaltyMinutes(events []pbp.Event, away, home string) penaltySummary {
	var ps penaltySummary
	ps.awayPIM, ps.awayPPO = teamPenalties(events, away, home)
	ps.homePIM, ps.homePPO = teamPenalties(events, home, away)
	return ps
}

func teamPenalties(events []pbp.Event, team, opponent string) (pim, ppo float64) {
	for _, e := range events {
		if e.Event != pbp.EvPenalty || e.EvTeam != team {
			continue
		}

		src := e.Type
		if src == "" {
			src = e.Description
		}

		mins, major, ok := parsePenaltyMinutes(src)
		if !ok {
			// Blank minutes: usually a penalty shot, no PIM either way.
			continue
		}

		if major {
			pim += 5
			if !strings.Contains(src, "Fighting") {
				ppo++
			}
			continue
		}

		pim += float64(mins)
		if !offsetting(events, e, opponent) {
			ppo++
		}
	}
	return pim, ppo
}

// parsePenaltyMinutes extracts the minute count from a penalty label like
// "Hooking (2 min)". A "maj" fragment marks a five-minute major; majors
// come without a minute count ("Fighting (maj)"), so a missing " min)"
// falls back to everything up to the closing parenthesis.
func parsePenaltyMinutes(s string) (mins int, major, ok bool) {
	open := strings.Index(s, "(")
	end := strings.Index(s, " min)")
	if end < 0 {
		end = len(s) - 1
	}
	if open < 0 || end <= open {
		return 0, false, false
	}
	frag := s[open+1 : end]
	if strings.Contains(frag, "maj") {
		return 5, true, true
	}
	if frag == "" {
		return 0, false, false
	}
	n, err := strconv.Atoi(frag)
	if err != nil {
		return 0, false, false
	}
	return n, false, true
}

// offsetting reports whether the opponent also took a penalty at the same
// elapsed time of the same period (coincidental minors, no power play).
func offsetting(events []pbp.Event, pen pbp.Event, opponent string) bool {
	for _, e := range events {
		if e.Event == pbp.EvPenalty && e.EvTeam == opponent &&
			e.Period == pen.Period && e.TimeElapsed == pen.TimeElapsed {
			return true
		}
	}
	return false
}
