// Package pbp loads raw NHL play-by-play and shot-level xG exports and
// provides the situational filters the summarizer counts over.
package pbp

// Play-by-play event codes used by the summarizer.
const (
	EvGoal        = "GOAL"
	EvShot        = "SHOT"
	EvMiss        = "MISS"
	EvBlock       = "BLOCK"
	EvHit         = "HIT"
	EvFaceoff     = "FAC"
	EvGiveaway    = "GIVE"
	EvTakeaway    = "TAKE"
	EvPenalty     = "PENL"
	EvGameEnd     = "GEND"
	EvPeriodEnd   = "PEND"
)

// Event is one play-by-play row. Ev_Team conventions follow the source
// export: on BLOCK events Ev_Team is the shooting team, not the blocker.
type Event struct {
	Period      int
	Event       string
	Description string
	Type        string
	EvTeam      string
	Strength    string // skaters on ice, "<home>x<away>"
	TimeElapsed float64
	AwayScore   int
	HomeScore   int
	ScoreDiff   int // absolute
}

// Game groups one game's events in file order.
type Game struct {
	ID        int64 // season-prefixed game id
	RawID     int
	Season    string
	Date      string // YYYY-MM-DD, validated by the summarizer
	AwayTeam  string
	HomeTeam  string
	IsPlayoff bool
	Events    []Event
}

// XGShot is one shot-level expected-goals row. Game ids in the xG export
// are already season-prefixed.
type XGShot struct {
	GameID      int64
	Team        string
	XG          float64
	HomePlayers int
	AwayPlayers int
	GameTime    float64
	GoalDiff    int
}

// teamRenames unifies team codes between the play-by-play and xG sources.
var teamRenames = map[string]string{
	"ARI": "PHX",
	"TBL": "T.B",
	"SJS": "S.J",
	"LAK": "L.A",
	"NJD": "N.J",
}

// NormalizeTeam maps a team code to the canonical form shared by both
// data sources.
func NormalizeTeam(code string) string {
	if canon, ok := teamRenames[code]; ok {
		return canon
	}
	return code
}

// Filter5v5 keeps events at even five-on-five strength.
func Filter5v5(events []Event) []Event {
	var out []Event
	for _, e := range events {
		if e.Strength == "5x5" {
			out = append(out, e)
		}
	}
	return out
}

// FilterClose keeps events in close-game situations: score within one in
// the first two periods, tied in the third period and overtime.
func FilterClose(events []Event) []Event {
	var out []Event
	for _, e := range events {
		switch e.Period {
		case 1, 2:
			if e.ScoreDiff <= 1 {
				out = append(out, e)
			}
		case 3, 4:
			if e.ScoreDiff == 0 {
				out = append(out, e)
			}
		}
	}
	return out
}

// ExcludeShootout drops shootout events (period 5 and later) for
// regular-season games. Playoff games have no shootouts and pass through.
func ExcludeShootout(events []Event, isPlayoff bool) []Event {
	if isPlayoff {
		return events
	}
	var out []Event
	for _, e := range events {
		if e.Period < 5 {
			out = append(out, e)
		}
	}
	return out
}

// FilterXG5v5 keeps shots with six players (five skaters plus goalie) on
// each side.
func FilterXG5v5(shots []XGShot) []XGShot {
	var out []XGShot
	for _, s := range shots {
		if s.HomePlayers == 6 && s.AwayPlayers == 6 {
			out = append(out, s)
		}
	}
	return out
}

// FilterXGClose keeps shots in close-game situations: goal difference
// within one in the first 40 minutes, tied after that.
func FilterXGClose(shots []XGShot) []XGShot {
	var out []XGShot
	for _, s := range shots {
		if s.GameTime <= 2400 {
			if s.GoalDiff <= 1 {
				out = append(out, s)
			}
		} else if s.GoalDiff == 0 {
			out = append(out, s)
		}
	}
	return out
}
