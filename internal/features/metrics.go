package features

// SafeDiv divides with the pipeline-wide guarded-division policy: a zero
// denominator yields exactly 0 — never NaN, never an error.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// ShootingRate is goals for per shot on goal for.
func ShootingRate(goals, shots ForAgainst) float64 {
	return SafeDiv(goals.For, shots.For)
}

// SaveRate is the complement of goals against per shot against.
func SaveRate(goals, shots ForAgainst) float64 {
	if shots.Against == 0 {
		return 0
	}
	return 1 - goals.Against/shots.Against
}

// ShootingPct is goals for over shots-plus-goals for. The denominator
// intentionally adds goals back (goals count as shots that scored), which
// distinguishes it from ShootingRate.
func ShootingPct(goals, shots ForAgainst) float64 {
	return SafeDiv(goals.For, shots.For+goals.For)
}

// SavePct is the complementary percentage over shots-plus-goals against.
func SavePct(goals, shots ForAgainst) float64 {
	den := shots.Against + goals.Against
	if den == 0 {
		return 0
	}
	return 1 - goals.Against/den
}

// PowerPlayPct is power-play goals converted per opportunity.
func PowerPlayPct(ppg, ppo ForAgainst) float64 {
	return SafeDiv(ppg.For, ppo.For)
}

// PenaltyKillPct is opponent power-play goals per opponent opportunity.
func PenaltyKillPct(ppg, ppo ForAgainst) float64 {
	return SafeDiv(ppg.Against, ppo.Against)
}

// PDO is shooting percentage plus save percentage; both terms are already
// guarded.
func PDO(goals, shots ForAgainst) float64 {
	return ShootingPct(goals, shots) + SavePct(goals, shots)
}

// CorsiSum is the signed shot-attempt differential.
func CorsiSum(attempts ForAgainst) float64 {
	return attempts.For - attempts.Against
}

// CorsiShare is the team's share of all shot attempts. Kept under its
// historical "average" column name even though it is a share; the numeric
// contract is frozen.
func CorsiShare(attempts ForAgainst) float64 {
	return SafeDiv(attempts.For, attempts.For+attempts.Against)
}

// FaceoffPct is faceoff wins over total faceoffs taken.
func FaceoffPct(fo ForAgainst) float64 {
	return SafeDiv(fo.For, fo.For+fo.Against)
}

// XGShare is the team's share of total expected goals.
func XGShare(xg ForAgainst) float64 {
	return SafeDiv(xg.For, xg.For+xg.Against)
}
