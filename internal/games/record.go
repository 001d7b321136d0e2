package games

import (
	"fmt"
	"strings"
	"time"
)

// Winner value for games whose result could not be resolved upstream.
// The feature builder refuses rows carrying it.
const WinnerUnresolved = "ERROR"

// Game ending types.
const (
	EndedRegulation = "REG"
	EndedOvertime   = "OT"
)

// StatPair is one tracked statistic for a single game, away value and
// home value.
type StatPair struct {
	Away float64
	Home float64
}

// Record is the per-game summary produced by the summarize stage. One
// record exists per game id; game ids are season-prefixed and therefore
// globally unique.
type Record struct {
	GameID    int64
	Season    string // season start year, e.g. "2016"
	Date      time.Time
	IsPlayoff bool
	Winner    string
	RegOrOT   string
	AwayTeam  string
	HomeTeam  string

	Score                StatPair
	Shots                StatPair
	ShotAttempts         StatPair
	CorsiPct             StatPair
	FenPct               StatPair
	Score5v5             StatPair
	Shots5v5             StatPair
	ShotAttempts5v5      StatPair
	CorsiPct5v5          StatPair
	FenPct5v5            StatPair
	ScoreClose           StatPair
	ShotsClose           StatPair
	ShotAttemptsClose    StatPair
	CorsiPctClose        StatPair
	FenPctClose          StatPair
	ScoreClose5v5        StatPair
	ShotsClose5v5        StatPair
	ShotAttemptsClose5v5 StatPair
	CorsiPctClose5v5     StatPair
	FenPctClose5v5       StatPair
	Hits                 StatPair
	Blocks               StatPair
	Blocks5v5            StatPair
	FO                   StatPair
	Give                 StatPair
	Take                 StatPair
	TRatio               StatPair
	PIM                  StatPair
	PPO                  StatPair
	PPG                  StatPair
	XG                   StatPair
	XG5v5                StatPair
	XGClose              StatPair
	XGClose5v5           StatPair
	XGPct                StatPair
	XGPct5v5             StatPair
	XGPctClose           StatPair
	XGPctClose5v5        StatPair
}

// StatID names one tracked per-team statistic pair. The names match the
// summary CSV column bases ("Away_<id>" / "Home_<id>").
type StatID string

const (
	StatScore                StatID = "Score"
	StatScore5v5             StatID = "Score5v5"
	StatScoreClose5v5        StatID = "ScoreClose5v5"
	StatShots                StatID = "Shots"
	StatShotAttempts         StatID = "Shot_Attempts"
	StatShotAttempts5v5      StatID = "Shot_Attempts5v5"
	StatShotAttemptsClose5v5 StatID = "Shot_AttemptsClose5v5"
	StatFO                   StatID = "FO"
	StatHits                 StatID = "Hits"
	StatPIM                  StatID = "PIM"
	StatBlocks               StatID = "Blocks"
	StatGive                 StatID = "Give"
	StatTake                 StatID = "Take"
	StatPPO                  StatID = "PPO"
	StatPPG                  StatID = "PPG"
	StatXG                   StatID = "xG"
	StatXG5v5                StatID = "xG5v5"
	StatXGClose5v5           StatID = "xGClose5v5"
)

// statColumn binds a stat id to its pair on the record. The slice order is
// the summary CSV column order.
type statColumn struct {
	id   StatID
	pair func(*Record) *StatPair
}

var statColumns = []statColumn{
	{StatScore, func(r *Record) *StatPair { return &r.Score }},
	{StatShots, func(r *Record) *StatPair { return &r.Shots }},
	{StatShotAttempts, func(r *Record) *StatPair { return &r.ShotAttempts }},
	{"CORSI%", func(r *Record) *StatPair { return &r.CorsiPct }},
	{"Fen%", func(r *Record) *StatPair { return &r.FenPct }},
	{StatScore5v5, func(r *Record) *StatPair { return &r.Score5v5 }},
	{"Shots5v5", func(r *Record) *StatPair { return &r.Shots5v5 }},
	{StatShotAttempts5v5, func(r *Record) *StatPair { return &r.ShotAttempts5v5 }},
	{"CORSI%5v5", func(r *Record) *StatPair { return &r.CorsiPct5v5 }},
	{"Fen%5v5", func(r *Record) *StatPair { return &r.FenPct5v5 }},
	{"ScoreClose", func(r *Record) *StatPair { return &r.ScoreClose }},
	{"ShotsClose", func(r *Record) *StatPair { return &r.ShotsClose }},
	{"Shot_AttemptsClose", func(r *Record) *StatPair { return &r.ShotAttemptsClose }},
	{"CORSI%Close", func(r *Record) *StatPair { return &r.CorsiPctClose }},
	{"Fen%Close", func(r *Record) *StatPair { return &r.FenPctClose }},
	{StatScoreClose5v5, func(r *Record) *StatPair { return &r.ScoreClose5v5 }},
	{"ShotsClose5v5", func(r *Record) *StatPair { return &r.ShotsClose5v5 }},
	{StatShotAttemptsClose5v5, func(r *Record) *StatPair { return &r.ShotAttemptsClose5v5 }},
	{"CORSI%Close5v5", func(r *Record) *StatPair { return &r.CorsiPctClose5v5 }},
	{"Fen%Close5v5", func(r *Record) *StatPair { return &r.FenPctClose5v5 }},
	{StatHits, func(r *Record) *StatPair { return &r.Hits }},
	{StatBlocks, func(r *Record) *StatPair { return &r.Blocks }},
	{"Blocks5v5", func(r *Record) *StatPair { return &r.Blocks5v5 }},
	{StatFO, func(r *Record) *StatPair { return &r.FO }},
	{StatGive, func(r *Record) *StatPair { return &r.Give }},
	{StatTake, func(r *Record) *StatPair { return &r.Take }},
	{"TRatio", func(r *Record) *StatPair { return &r.TRatio }},
	{StatPIM, func(r *Record) *StatPair { return &r.PIM }},
	{StatPPO, func(r *Record) *StatPair { return &r.PPO }},
	{StatPPG, func(r *Record) *StatPair { return &r.PPG }},
	{StatXG, func(r *Record) *StatPair { return &r.XG }},
	{StatXG5v5, func(r *Record) *StatPair { return &r.XG5v5 }},
	{"xGClose", func(r *Record) *StatPair { return &r.XGClose }},
	{StatXGClose5v5, func(r *Record) *StatPair { return &r.XGClose5v5 }},
	{"xG%", func(r *Record) *StatPair { return &r.XGPct }},
	{"xG%5v5", func(r *Record) *StatPair { return &r.XGPct5v5 }},
	{"xG%Close", func(r *Record) *StatPair { return &r.XGPctClose }},
	{"xG%Close5v5", func(r *Record) *StatPair { return &r.XGPctClose5v5 }},
}

var statIndex = map[StatID]func(*Record) *StatPair{}

func init() {
	for _, c := range statColumns {
		if _, dup := statIndex[c.id]; dup {
			panic(fmt.Sprintf("games: duplicate stat column %q", c.id))
		}
		statIndex[c.id] = c.pair
	}
}

// Pair returns the away/home value pair for a stat id.
func Pair(r *Record, id StatID) (StatPair, bool) {
	get, ok := statIndex[id]
	if !ok {
		return StatPair{}, false
	}
	return *get(r), true
}

// ValidateStats checks a list of stat ids against the record schema. Used
// by consumers at initialization so schema drift fails at load time, not
// mid-build.
func ValidateStats(ids []StatID) error {
	for _, id := range ids {
		if _, ok := statIndex[id]; !ok {
			return fmt.Errorf("unknown stat %q", id)
		}
	}
	return nil
}

// dbColumn converts a stat column base name to a SQLite column name
// fragment: "CORSI%Close5v5" -> "corsi_pct_close5v5".
func dbColumn(id StatID) string {
	s := strings.ReplaceAll(string(id), "%", "_pct_")
	s = strings.ToLower(strings.Trim(s, "_"))
	return strings.ReplaceAll(s, "__", "_")
}
