package features

import "github.com/tmarchand/nhlform/internal/games"

// teamForm holds every aggregate computed for one team's window. The
// feature vector is read out of it in the fixed order of featureDefs.
type teamForm struct {
	wins   float64
	losses float64

	goals            ForAgainst
	goalsAvg         ForAgainst
	goals5v5         ForAgainst
	goals5v5Avg      ForAgainst
	goalsClose5v5    ForAgainst
	goalsClose5v5Avg ForAgainst

	shots    ForAgainst
	shotsAvg ForAgainst

	attempts         ForAgainst
	attempts5v5      ForAgainst
	attemptsClose5v5 ForAgainst

	faceoffs ForAgainst

	hits    ForAgainst
	hitsAvg ForAgainst

	pims    ForAgainst
	pimsAvg ForAgainst

	blocks    ForAgainst
	blocksAvg ForAgainst

	give    ForAgainst
	giveAvg ForAgainst

	take    ForAgainst
	takeAvg ForAgainst

	ppo ForAgainst
	ppg ForAgainst

	xg            ForAgainst
	xgAvg         ForAgainst
	xg5v5         ForAgainst
	xg5v5Avg      ForAgainst
	xgClose5v5    ForAgainst
	xgClose5v5Avg ForAgainst
}

// requiredStats is every record stat the form builder reads; validated
// against the record schema when an assembler is constructed.
var requiredStats = []games.StatID{
	games.StatScore, games.StatScore5v5, games.StatScoreClose5v5,
	games.StatShots,
	games.StatShotAttempts, games.StatShotAttempts5v5, games.StatShotAttemptsClose5v5,
	games.StatFO, games.StatHits, games.StatPIM, games.StatBlocks,
	games.StatGive, games.StatTake,
	games.StatPPO, games.StatPPG,
	games.StatXG, games.StatXG5v5, games.StatXGClose5v5,
}

// buildForm aggregates one team's window into a teamForm.
func buildForm(window []TeamGame, team string) teamForm {
	f := teamForm{}
	f.wins, f.losses = winLoss(window, team)

	f.goals = SumStat(window, games.StatScore)
	f.goalsAvg = WeightedStat(window, games.StatScore)
	f.goals5v5 = SumStat(window, games.StatScore5v5)
	f.goals5v5Avg = WeightedStat(window, games.StatScore5v5)
	f.goalsClose5v5 = SumStat(window, games.StatScoreClose5v5)
	f.goalsClose5v5Avg = WeightedStat(window, games.StatScoreClose5v5)

	f.shots = SumStat(window, games.StatShots)
	f.shotsAvg = WeightedStat(window, games.StatShots)

	f.attempts = SumStat(window, games.StatShotAttempts)
	f.attempts5v5 = SumStat(window, games.StatShotAttempts5v5)
	f.attemptsClose5v5 = SumStat(window, games.StatShotAttemptsClose5v5)

	f.faceoffs = SumStat(window, games.StatFO)

	f.hits = SumStat(window, games.StatHits)
	f.hitsAvg = WeightedStat(window, games.StatHits)

	f.pims = SumStat(window, games.StatPIM)
	f.pimsAvg = WeightedStat(window, games.StatPIM)

	f.blocks = SumStat(window, games.StatBlocks)
	f.blocksAvg = WeightedStat(window, games.StatBlocks)

	f.give = SumStat(window, games.StatGive)
	f.giveAvg = WeightedStat(window, games.StatGive)

	f.take = SumStat(window, games.StatTake)
	f.takeAvg = WeightedStat(window, games.StatTake)

	f.ppo = SumStat(window, games.StatPPO)
	f.ppg = SumStat(window, games.StatPPG)

	f.xg = SumStat(window, games.StatXG)
	f.xgAvg = WeightedStat(window, games.StatXG)
	f.xg5v5 = SumStat(window, games.StatXG5v5)
	f.xg5v5Avg = WeightedStat(window, games.StatXG5v5)
	f.xgClose5v5 = SumStat(window, games.StatXGClose5v5)
	f.xgClose5v5Avg = WeightedStat(window, games.StatXGClose5v5)

	return f
}

type featureDef struct {
	name string
	val  func(*teamForm) float64
}

// featureDefs fixes the per-team feature ordering and column base names.
// Both teams of a game are read out in this exact order before the
// home-minus-away subtraction.
var featureDefs = []featureDef{
	{"Wins", func(f *teamForm) float64 { return f.wins }},
	{"Loses", func(f *teamForm) float64 { return f.losses }},

	{"Goals", func(f *teamForm) float64 { return f.goals.For }},
	{"GoalsAgainst", func(f *teamForm) float64 { return f.goals.Against }},
	{"GoalsAvg", func(f *teamForm) float64 { return f.goalsAvg.For }},
	{"GoalsAgainstAvg", func(f *teamForm) float64 { return f.goalsAvg.Against }},
	{"Goals5v5", func(f *teamForm) float64 { return f.goals5v5.For }},
	{"GoalsAgainst5v5", func(f *teamForm) float64 { return f.goals5v5.Against }},
	{"Goals5v5Avg", func(f *teamForm) float64 { return f.goals5v5Avg.For }},
	{"GoalsAgainst5v5Avg", func(f *teamForm) float64 { return f.goals5v5Avg.Against }},
	{"GoalsClose5v5", func(f *teamForm) float64 { return f.goalsClose5v5.For }},
	{"GoalsAgainstClose5v5", func(f *teamForm) float64 { return f.goalsClose5v5.Against }},
	{"GoalsClose5v5Avg", func(f *teamForm) float64 { return f.goalsClose5v5Avg.For }},
	{"GoalsAgainstClose5v5Avg", func(f *teamForm) float64 { return f.goalsClose5v5Avg.Against }},

	{"Shots", func(f *teamForm) float64 { return f.shots.For }},
	{"ShotsAgainst", func(f *teamForm) float64 { return f.shots.Against }},
	{"ShotsAvg", func(f *teamForm) float64 { return f.shotsAvg.For }},
	{"ShotsAgainstAvg", func(f *teamForm) float64 { return f.shotsAvg.Against }},

	{"CORSI", func(f *teamForm) float64 { return CorsiSum(f.attempts) }},
	{"CORSIAvg", func(f *teamForm) float64 { return CorsiShare(f.attempts) }},
	{"CORSI5v5", func(f *teamForm) float64 { return CorsiSum(f.attempts5v5) }},
	{"CORSI5v5Avg", func(f *teamForm) float64 { return CorsiShare(f.attempts5v5) }},
	{"CORSIClose5v5", func(f *teamForm) float64 { return CorsiSum(f.attemptsClose5v5) }},
	{"CORSIClose5v5Avg", func(f *teamForm) float64 { return CorsiShare(f.attemptsClose5v5) }},

	{"FO", func(f *teamForm) float64 { return FaceoffPct(f.faceoffs) }},

	{"Hits", func(f *teamForm) float64 { return f.hits.For }},
	{"HitsAgainst", func(f *teamForm) float64 { return f.hits.Against }},
	{"HitsAvg", func(f *teamForm) float64 { return f.hitsAvg.For }},
	{"HitsAgainstAvg", func(f *teamForm) float64 { return f.hitsAvg.Against }},

	{"PIMS", func(f *teamForm) float64 { return f.pims.For }},
	{"PIMSAgainst", func(f *teamForm) float64 { return f.pims.Against }},
	{"PIMSAvg", func(f *teamForm) float64 { return f.pimsAvg.For }},
	{"PIMSAgainstAvg", func(f *teamForm) float64 { return f.pimsAvg.Against }},

	{"Blocks", func(f *teamForm) float64 { return f.blocks.For }},
	{"BlocksAgainst", func(f *teamForm) float64 { return f.blocks.Against }},
	{"BlocksAvg", func(f *teamForm) float64 { return f.blocksAvg.For }},
	{"BlocksAgainstAvg", func(f *teamForm) float64 { return f.blocksAvg.Against }},

	{"Give", func(f *teamForm) float64 { return f.give.For }},
	{"GiveAgainst", func(f *teamForm) float64 { return f.give.Against }},
	{"GiveAvg", func(f *teamForm) float64 { return f.giveAvg.For }},
	{"GiveAgainstAvg", func(f *teamForm) float64 { return f.giveAvg.Against }},

	{"Take", func(f *teamForm) float64 { return f.take.For }},
	{"TakeAgainst", func(f *teamForm) float64 { return f.take.Against }},
	{"TakeAvg", func(f *teamForm) float64 { return f.takeAvg.For }},
	{"TakeAgainstAvg", func(f *teamForm) float64 { return f.takeAvg.Against }},

	{"XGFor", func(f *teamForm) float64 { return f.xg.For }},
	{"XGAgainst", func(f *teamForm) float64 { return f.xg.Against }},
	{"XGForAvg", func(f *teamForm) float64 { return f.xgAvg.For }},
	{"XGAgainstAvg", func(f *teamForm) float64 { return f.xgAvg.Against }},
	{"XGFor5v5", func(f *teamForm) float64 { return f.xg5v5.For }},
	{"XGAgainst5v5", func(f *teamForm) float64 { return f.xg5v5.Against }},
	{"XGFor5v5Avg", func(f *teamForm) float64 { return f.xg5v5Avg.For }},
	{"XGAgainst5v5Avg", func(f *teamForm) float64 { return f.xg5v5Avg.Against }},
	{"XGFor5v5Close", func(f *teamForm) float64 { return f.xgClose5v5.For }},
	{"XGAgainst5v5Close", func(f *teamForm) float64 { return f.xgClose5v5.Against }},
	{"XGFor5v5CloseAvg", func(f *teamForm) float64 { return f.xgClose5v5Avg.For }},
	{"XGAgainst5v5CloseAvg", func(f *teamForm) float64 { return f.xgClose5v5Avg.Against }},

	{"PP%", func(f *teamForm) float64 { return PowerPlayPct(f.ppg, f.ppo) }},
	{"PK%", func(f *teamForm) float64 { return PenaltyKillPct(f.ppg, f.ppo) }},
	{"shRate", func(f *teamForm) float64 { return ShootingRate(f.goals, f.shots) }},
	{"svRate", func(f *teamForm) float64 { return SaveRate(f.goals, f.shots) }},
	{"sh%", func(f *teamForm) float64 { return ShootingPct(f.goals, f.shots) }},
	{"sv%", func(f *teamForm) float64 { return SavePct(f.goals, f.shots) }},
	{"PDO%", func(f *teamForm) float64 { return PDO(f.goals, f.shots) }},
	{"xG%", func(f *teamForm) float64 { return XGShare(f.xg) }},
}

// FeatureColumns returns the differential feature column base names in
// output order.
func FeatureColumns() []string {
	cols := make([]string, len(featureDefs))
	for i, d := range featureDefs {
		cols[i] = d.name
	}
	return cols
}

// vector reads the form out as an ordered feature vector.
func vector(f *teamForm) []float64 {
	out := make([]float64, len(featureDefs))
	for i, d := range featureDefs {
		out[i] = d.val(f)
	}
	return out
}
