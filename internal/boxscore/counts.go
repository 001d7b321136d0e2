// Package boxscore reduces one game's play-by-play events to a summary
// Record: event counts per team and situation, penalty/power-play
// accounting, and the resolved winner and ending.
package boxscore

import (
	"strconv"
	"strings"

	"github.com/tmarchand/nhlform/internal/pbp"
)

// count returns how many events of the given kinds were credited to team.
func count(events []pbp.Event, team string, kinds ...string) float64 {
	n := 0
	for _, e := range events {
		if e.EvTeam != team {
			continue
		}
		for _, k := range kinds {
			if e.Event == k {
				n++
				break
			}
		}
	}
	return float64(n)
}

// shotAttempts counts all attempts: shots on goal, misses, goals, and
// blocked attempts (BLOCK events are credited to the shooting team).
func shotAttempts(events []pbp.Event, team string) float64 {
	return count(events, team, pbp.EvShot, pbp.EvMiss, pbp.EvGoal, pbp.EvBlock)
}

// blocksBy counts shots blocked by team, i.e. BLOCK events credited to
// the opposing shooter.
func blocksBy(events []pbp.Event, opponent string) float64 {
	return count(events, opponent, pbp.EvBlock)
}

// powerPlayGoals counts goals scored with a skater advantage. The
// strength string is "<home>x<away>" skater counts.
func powerPlayGoals(events []pbp.Event, away, home string) (float64, float64) {
	var awayPPG, homePPG float64
	for _, e := range events {
		if e.Event != pbp.EvGoal {
			continue
		}
		parts := strings.SplitN(e.Strength, "x", 2)
		if len(parts) != 2 {
			continue
		}
		homeSkaters, err1 := strconv.Atoi(parts[0])
		awaySkaters, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			continue
		}
		switch e.EvTeam {
		case away:
			if awaySkaters > homeSkaters {
				awayPPG++
			}
		case home:
			if homeSkaters > awaySkaters {
				homePPG++
			}
		}
	}
	return awayPPG, homePPG
}

// sumXG totals expected goals per team over a set of shots.
func sumXG(shots []pbp.XGShot, team string) float64 {
	var total float64
	for _, s := range shots {
		if s.Team == team {
			total += s.XG
		}
	}
	return total
}
