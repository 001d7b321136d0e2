package boxscore

import (
	"fmt"
	"time"

	"github.com/tmarchand/nhlform/internal/games"
	"github.com/tmarchand/nhlform/internal/pbp"
)

// Summarize reduces one game's events and xG shots to a summary Record.
func Summarize(g *pbp.Game, xgShots []pbp.XGShot) (*games.Record, error) {
	date, err := time.Parse("2006-01-02", g.Date)
	if err != nil {
		return nil, fmt.Errorf("game %d: bad date %q: %w", g.ID, g.Date, err)
	}
	if g.AwayTeam == "" || g.HomeTeam == "" {
		return nil, fmt.Errorf("game %d: missing team codes", g.ID)
	}

	away, home := g.AwayTeam, g.HomeTeam

	// Situational event subsets. Shootout exclusion is applied per count
	// to mirror which statistics the source tallied it for.
	evAll := g.Events
	ev5v5 := pbp.Filter5v5(evAll)
	evClose := pbp.FilterClose(evAll)
	evClose5v5 := pbp.FilterClose(ev5v5)
	noSO := func(events []pbp.Event) []pbp.Event {
		return pbp.ExcludeShootout(events, g.IsPlayoff)
	}

	xgAll := xgShots
	xg5v5 := pbp.FilterXG5v5(xgAll)
	xgClose := pbp.FilterXGClose(xgAll)
	xgClose5v5 := pbp.FilterXGClose(xg5v5)

	r := &games.Record{
		GameID:    g.ID,
		Season:    g.Season,
		Date:      date,
		IsPlayoff: g.IsPlayoff,
		AwayTeam:  away,
		HomeTeam:  home,
	}

	goalPair := func(events []pbp.Event) games.StatPair {
		events = noSO(events)
		return games.StatPair{
			Away: count(events, away, pbp.EvGoal),
			Home: count(events, home, pbp.EvGoal),
		}
	}
	shotPair := func(events []pbp.Event) games.StatPair {
		events = noSO(events)
		return games.StatPair{
			Away: count(events, away, pbp.EvShot),
			Home: count(events, home, pbp.EvShot),
		}
	}
	attemptPair := func(events []pbp.Event) games.StatPair {
		events = noSO(events)
		return games.StatPair{
			Away: shotAttempts(events, away),
			Home: shotAttempts(events, home),
		}
	}
	blockPair := func(events []pbp.Event) games.StatPair {
		// BLOCK events are credited to the shooter, so blocks by the away
		// team are BLOCK events on home-team attempts.
		return games.StatPair{
			Away: blocksBy(events, home),
			Home: blocksBy(events, away),
		}
	}
	xgPair := func(shots []pbp.XGShot) games.StatPair {
		return games.StatPair{Away: sumXG(shots, away), Home: sumXG(shots, home)}
	}

	r.Score = goalPair(evAll)
	r.Score5v5 = goalPair(ev5v5)
	r.ScoreClose = goalPair(evClose)
	r.ScoreClose5v5 = goalPair(evClose5v5)

	r.Shots = shotPair(evAll)
	r.Shots5v5 = shotPair(ev5v5)
	r.ShotsClose = shotPair(evClose)
	r.ShotsClose5v5 = shotPair(evClose5v5)

	r.ShotAttempts = attemptPair(evAll)
	r.ShotAttempts5v5 = attemptPair(ev5v5)
	r.ShotAttemptsClose = attemptPair(evClose)
	r.ShotAttemptsClose5v5 = attemptPair(evClose5v5)

	r.Blocks = blockPair(evAll)
	r.Blocks5v5 = blockPair(ev5v5)
	blocksClose := blockPair(evClose)
	blocksClose5v5 := blockPair(evClose5v5)

	r.Hits = games.StatPair{Away: count(evAll, away, pbp.EvHit), Home: count(evAll, home, pbp.EvHit)}
	r.FO = games.StatPair{Away: count(evAll, away, pbp.EvFaceoff), Home: count(evAll, home, pbp.EvFaceoff)}
	r.Give = games.StatPair{Away: count(evAll, away, pbp.EvGiveaway), Home: count(evAll, home, pbp.EvGiveaway)}
	r.Take = games.StatPair{Away: count(evAll, away, pbp.EvTakeaway), Home: count(evAll, home, pbp.EvTakeaway)}

	r.TRatio = games.StatPair{
		Away: safeShare(r.Take.Away, r.Take.Away+r.Give.Away),
		Home: safeShare(r.Take.Home, r.Take.Home+r.Give.Home),
	}

	pens := penaltyMinutes(evAll, away, home)
	r.PIM = games.StatPair{Away: pens.awayPIM, Home: pens.homePIM}
	r.PPO = games.StatPair{Away: pens.awayPPO, Home: pens.homePPO}

	awayPPG, homePPG := powerPlayGoals(noSO(evAll), away, home)
	r.PPG = games.StatPair{Away: awayPPG, Home: homePPG}

	r.XG = xgPair(xgAll)
	r.XG5v5 = xgPair(xg5v5)
	r.XGClose = xgPair(xgClose)
	r.XGClose5v5 = xgPair(xgClose5v5)

	r.CorsiPct = corsiShares(r.ShotAttempts)
	r.CorsiPct5v5 = corsiShares(r.ShotAttempts5v5)
	r.CorsiPctClose = corsiShares(r.ShotAttemptsClose)
	r.CorsiPctClose5v5 = corsiShares(r.ShotAttemptsClose5v5)

	r.FenPct = fenwickShares(r.ShotAttempts, r.Blocks)
	r.FenPct5v5 = fenwickShares(r.ShotAttempts5v5, r.Blocks5v5)
	r.FenPctClose = fenwickShares(r.ShotAttemptsClose, blocksClose)
	r.FenPctClose5v5 = fenwickShares(r.ShotAttemptsClose5v5, blocksClose5v5)

	r.XGPct = xgShares(r.XG)
	r.XGPct5v5 = xgShares(r.XG5v5)
	r.XGPctClose = xgShares(r.XGClose)
	r.XGPctClose5v5 = xgShares(r.XGClose5v5)

	ending, winner, err := resolveEnding(evAll, away, home)
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", g.ID, err)
	}
	r.RegOrOT = ending
	if winner == "" {
		// End event tied: decide on counted (non-shootout) goals.
		switch {
		case r.Score.Away > r.Score.Home:
			winner = away
		case r.Score.Home > r.Score.Away:
			winner = home
		default:
			winner = games.WinnerUnresolved
		}
	}
	r.Winner = winner

	return r, nil
}

// corsiShares converts an attempts pair to shot-attempt shares ×100.
func corsiShares(attempts games.StatPair) games.StatPair {
	total := attempts.Away + attempts.Home
	return games.StatPair{
		Away: safeShare(attempts.Away, total) * 100,
		Home: safeShare(attempts.Home, total) * 100,
	}
}

// fenwickShares is the unblocked-attempt share ×100: each side's attempts
// less the shots the opponent blocked.
func fenwickShares(attempts, blocks games.StatPair) games.StatPair {
	awayUnblocked := attempts.Away - blocks.Home
	homeUnblocked := attempts.Home - blocks.Away
	total := awayUnblocked + homeUnblocked
	return games.StatPair{
		Away: safeShare(awayUnblocked, total) * 100,
		Home: safeShare(homeUnblocked, total) * 100,
	}
}

func xgShares(xg games.StatPair) games.StatPair {
	total := xg.Away + xg.Home
	return games.StatPair{
		Away: safeShare(xg.Away, total) * 100,
		Home: safeShare(xg.Home, total) * 100,
	}
}

// safeShare divides with the pipeline-wide zero-denominator policy:
// the result is exactly 0, never NaN.
func safeShare(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
