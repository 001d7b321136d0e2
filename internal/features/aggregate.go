package features

import "github.com/tmarchand/nhlform/internal/games"

// ForAgainst is an aggregated stat from one team's perspective.
type ForAgainst struct {
	For     float64
	Against float64
}

// SumStat totals a stat over the window.
func SumStat(window []TeamGame, id games.StatID) ForAgainst {
	var agg ForAgainst
	for _, tg := range window {
		f, a := tg.pair(id)
		agg.For += f
		agg.Against += a
	}
	return agg
}

// WeightedStat totals a stat with linear recency weights: the i-th oldest
// of M window games (0-indexed) gets weight (i+1)/M. The weights are
// deliberately not normalized to sum to 1; downstream consumers depend on
// this exact scale. An empty window yields zeros.
func WeightedStat(window []TeamGame, id games.StatID) ForAgainst {
	var agg ForAgainst
	m := len(window)
	if m == 0 {
		return agg
	}
	increment := 1 / float64(m)
	for i, tg := range window {
		w := increment * float64(i+1)
		f, a := tg.pair(id)
		agg.For += f * w
		agg.Against += a * w
	}
	return agg
}

// winLoss counts the team's wins over the window; every other window game
// is a loss.
func winLoss(window []TeamGame, team string) (wins, losses float64) {
	for _, tg := range window {
		if tg.rec.Winner == team {
			wins++
		} else {
			losses++
		}
	}
	return wins, losses
}
