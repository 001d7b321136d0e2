package boxscore

import (
	"testing"

	"github.com/tmarchand/nhlform/internal/games"
	"github.com/tmarchand/nhlform/internal/pbp"
)

func TestParsePenaltyMinutes(t *testing.T) {
	tests := []struct {
		in    string
		mins  int
		major bool
		ok    bool
	}{
		{"Hooking (2 min)", 2, false, true},
		{"Misconduct (10 min)", 10, false, true},
		{"Cross checking (2 min)", 2, false, true},
		{"Fighting (maj)", 5, true, true},
		{"Charging (5 min maj)", 5, true, true},
		{"PS - Hooking on breakaway", 0, false, false},
		{"", 0, false, false},
		{"Too many men ( min)", 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			mins, major, ok := parsePenaltyMinutes(tt.in)
			if mins != tt.mins || major != tt.major || ok != tt.ok {
				t.Errorf("parsePenaltyMinutes(%q) = (%d, %v, %v), want (%d, %v, %v)",
					tt.in, mins, major, ok, tt.mins, tt.major, tt.ok)
			}
		})
	}
}

func penl(team, typ string, period int, elapsed float64) pbp.Event {
	return pbp.Event{Event: pbp.EvPenalty, EvTeam: team, Type: typ, Period: period, TimeElapsed: elapsed}
}

func TestPenaltyMinutes(t *testing.T) {
	events := []pbp.Event{
		penl("BOS", "Hooking (2 min)", 1, 120),
		penl("MTL", "Slashing (2 min)", 2, 500),
		penl("BOS", "Fighting (maj)", 2, 800),
		penl("MTL", "Fighting (maj)", 2, 800),
	}

	ps := penaltyMinutes(events, "BOS", "MTL")
	if ps.awayPIM != 7 {
		t.Errorf("away PIM = %v, want 7", ps.awayPIM)
	}
	if ps.homePIM != 7 {
		t.Errorf("home PIM = %v, want 7", ps.homePIM)
	}
	// Fighting majors never grant an opportunity, so one PPO each from
	// the minors.
	if ps.awayPPO != 1 || ps.homePPO != 1 {
		t.Errorf("PPO = (%v, %v), want (1, 1)", ps.awayPPO, ps.homePPO)
	}
}

func TestOffsettingMinorsGrantNoOpportunity(t *testing.T) {
	events := []pbp.Event{
		penl("BOS", "Roughing (2 min)", 3, 300),
		penl("MTL", "Roughing (2 min)", 3, 300),
	}

	ps := penaltyMinutes(events, "BOS", "MTL")
	if ps.awayPIM != 2 || ps.homePIM != 2 {
		t.Errorf("PIM = (%v, %v), want (2, 2)", ps.awayPIM, ps.homePIM)
	}
	if ps.awayPPO != 0 || ps.homePPO != 0 {
		t.Errorf("PPO = (%v, %v), want (0, 0) for coincidental minors", ps.awayPPO, ps.homePPO)
	}
}

func TestPenaltyTypeFallsBackToDescription(t *testing.T) {
	events := []pbp.Event{
		{Event: pbp.EvPenalty, EvTeam: "BOS", Description: "BOS Tripping (2 min)", Period: 1, TimeElapsed: 60},
	}
	ps := penaltyMinutes(events, "BOS", "MTL")
	if ps.awayPIM != 2 {
		t.Errorf("away PIM = %v, want 2 from description fallback", ps.awayPIM)
	}
}

func TestPowerPlayGoals(t *testing.T) {
	// Strength is "<home skaters>x<away skaters>".
	events := []pbp.Event{
		{Event: pbp.EvGoal, EvTeam: "BOS", Strength: "5x4"}, // away shorthanded goal, not a PPG
		{Event: pbp.EvGoal, EvTeam: "BOS", Strength: "4x5"}, // away power-play goal
		{Event: pbp.EvGoal, EvTeam: "MTL", Strength: "5x4"}, // home power-play goal
		{Event: pbp.EvGoal, EvTeam: "MTL", Strength: "5x5"}, // even strength
		{Event: pbp.EvGoal, EvTeam: "MTL", Strength: ""},    // shootout rows carry no strength
		{Event: pbp.EvShot, EvTeam: "BOS", Strength: "4x5"},
	}
	awayPPG, homePPG := powerPlayGoals(events, "BOS", "MTL")
	if awayPPG != 1 || homePPG != 1 {
		t.Errorf("PPG = (%v, %v), want (1, 1)", awayPPG, homePPG)
	}
}

func TestShotAttemptsIncludeBlocks(t *testing.T) {
	events := []pbp.Event{
		{Event: pbp.EvShot, EvTeam: "BOS"},
		{Event: pbp.EvMiss, EvTeam: "BOS"},
		{Event: pbp.EvGoal, EvTeam: "BOS"},
		{Event: pbp.EvBlock, EvTeam: "BOS"}, // BOS shot blocked by MTL
		{Event: pbp.EvHit, EvTeam: "BOS"},
		{Event: pbp.EvShot, EvTeam: "MTL"},
	}
	if got := shotAttempts(events, "BOS"); got != 4 {
		t.Errorf("shot attempts = %v, want 4", got)
	}
	if got := blocksBy(events, "BOS"); got != 1 {
		t.Errorf("blocks on BOS attempts = %v, want 1", got)
	}
}

func TestResolveEnding(t *testing.T) {
	tests := []struct {
		name    string
		events  []pbp.Event
		ending  string
		winner  string
		wantErr bool
	}{
		{
			name: "regulation from GEND",
			events: []pbp.Event{
				{Event: pbp.EvGameEnd, Period: 3, AwayScore: 2, HomeScore: 4},
			},
			ending: games.EndedRegulation,
			winner: "MTL",
		},
		{
			name: "overtime from GEND",
			events: []pbp.Event{
				{Event: pbp.EvGameEnd, Period: 4, AwayScore: 3, HomeScore: 2},
			},
			ending: games.EndedOvertime,
			winner: "BOS",
		},
		{
			name: "fallback to last PEND",
			events: []pbp.Event{
				{Event: pbp.EvPeriodEnd, Period: 1, AwayScore: 1, HomeScore: 0},
				{Event: pbp.EvPeriodEnd, Period: 2, AwayScore: 1, HomeScore: 1},
				{Event: pbp.EvPeriodEnd, Period: 3, AwayScore: 1, HomeScore: 3},
			},
			ending: games.EndedRegulation,
			winner: "MTL",
		},
		{
			name: "tied end event defers winner",
			events: []pbp.Event{
				{Event: pbp.EvGameEnd, Period: 5, AwayScore: 2, HomeScore: 2},
			},
			ending: games.EndedOvertime,
			winner: "",
		},
		{
			name:    "no end event",
			events:  []pbp.Event{{Event: pbp.EvShot, Period: 1}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ending, winner, err := resolveEnding(tt.events, "BOS", "MTL")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveEnding: %v", err)
			}
			if ending != tt.ending || winner != tt.winner {
				t.Errorf("got (%q, %q), want (%q, %q)", ending, winner, tt.ending, tt.winner)
			}
		})
	}
}

// testGame is a small regular-season game: BOS away, MTL home, MTL wins
// 2-1 in regulation with a shootout-free script.
func testGame() *pbp.Game {
	return &pbp.Game{
		ID:       2016020001,
		RawID:    20001,
		Season:   "2016",
		Date:     "2016-10-12",
		AwayTeam: "BOS",
		HomeTeam: "MTL",
		Events: []pbp.Event{
			{Event: pbp.EvFaceoff, EvTeam: "MTL", Period: 1, Strength: "5x5"},
			{Event: pbp.EvShot, EvTeam: "BOS", Period: 1, Strength: "5x5"},
			{Event: pbp.EvGoal, EvTeam: "BOS", Period: 1, Strength: "5x5", AwayScore: 0, HomeScore: 0},
			{Event: pbp.EvMiss, EvTeam: "MTL", Period: 1, Strength: "5x5", AwayScore: 1, ScoreDiff: 1},
			{Event: pbp.EvBlock, EvTeam: "MTL", Period: 2, Strength: "5x5", AwayScore: 1, ScoreDiff: 1},
			{Event: pbp.EvHit, EvTeam: "BOS", Period: 2, Strength: "5x5", AwayScore: 1, ScoreDiff: 1},
			penl("BOS", "Hooking (2 min)", 2, 400),
			{Event: pbp.EvGoal, EvTeam: "MTL", Period: 2, Strength: "5x4", AwayScore: 1, HomeScore: 0, ScoreDiff: 1},
			{Event: pbp.EvGiveaway, EvTeam: "MTL", Period: 3, Strength: "5x5", AwayScore: 1, HomeScore: 1},
			{Event: pbp.EvTakeaway, EvTeam: "BOS", Period: 3, Strength: "5x5", AwayScore: 1, HomeScore: 1},
			{Event: pbp.EvShot, EvTeam: "MTL", Period: 3, Strength: "5x5", AwayScore: 1, HomeScore: 1},
			{Event: pbp.EvGoal, EvTeam: "MTL", Period: 3, Strength: "5x5", AwayScore: 1, HomeScore: 1},
			{Event: pbp.EvGameEnd, Period: 3, AwayScore: 1, HomeScore: 2},
		},
	}
}

func TestSummarize(t *testing.T) {
	g := testGame()
	xg := []pbp.XGShot{
		{GameID: g.ID, Team: "BOS", XG: 0.4, HomePlayers: 6, AwayPlayers: 6, GameTime: 100},
		{GameID: g.ID, Team: "MTL", XG: 0.6, HomePlayers: 6, AwayPlayers: 5, GameTime: 1500, GoalDiff: 1},
		{GameID: g.ID, Team: "MTL", XG: 0.2, HomePlayers: 6, AwayPlayers: 6, GameTime: 3000},
	}

	rec, err := Summarize(g, xg)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if rec.GameID != g.ID || rec.Season != "2016" {
		t.Errorf("identity = (%d, %s), want (%d, 2016)", rec.GameID, rec.Season, g.ID)
	}
	if rec.Score != (games.StatPair{Away: 1, Home: 2}) {
		t.Errorf("score = %+v, want away 1, home 2", rec.Score)
	}
	if rec.Shots != (games.StatPair{Away: 1, Home: 1}) {
		t.Errorf("shots = %+v, want 1 each (goals are not shots on goal)", rec.Shots)
	}
	// BOS: shot+goal, MTL: miss+block+shot+2 goals.
	if rec.ShotAttempts != (games.StatPair{Away: 2, Home: 5}) {
		t.Errorf("attempts = %+v, want away 2, home 5", rec.ShotAttempts)
	}
	// The MTL BLOCK event is a blocked MTL attempt, so the block belongs
	// to BOS.
	if rec.Blocks != (games.StatPair{Away: 1, Home: 0}) {
		t.Errorf("blocks = %+v, want away 1, home 0", rec.Blocks)
	}
	if rec.Hits != (games.StatPair{Away: 1, Home: 0}) {
		t.Errorf("hits = %+v, want away 1, home 0", rec.Hits)
	}
	if rec.FO != (games.StatPair{Away: 0, Home: 1}) {
		t.Errorf("faceoffs = %+v, want away 0, home 1", rec.FO)
	}
	if rec.Give != (games.StatPair{Away: 0, Home: 1}) || rec.Take != (games.StatPair{Away: 1, Home: 0}) {
		t.Errorf("give/take = %+v / %+v", rec.Give, rec.Take)
	}
	if rec.TRatio.Away != 1 || rec.TRatio.Home != 0 {
		t.Errorf("TRatio = %+v, want away 1, home 0", rec.TRatio)
	}

	if rec.PIM != (games.StatPair{Away: 2, Home: 0}) {
		t.Errorf("PIM = %+v, want away 2", rec.PIM)
	}
	// Opportunities are tallied against the penalized team's column.
	if rec.PPO != (games.StatPair{Away: 1, Home: 0}) {
		t.Errorf("PPO = %+v, want away 1", rec.PPO)
	}
	if rec.PPG != (games.StatPair{Away: 0, Home: 1}) {
		t.Errorf("PPG = %+v, want home 1", rec.PPG)
	}

	if rec.XG != (games.StatPair{Away: 0.4, Home: 0.8}) {
		t.Errorf("xG = %+v, want away 0.4, home 0.8", rec.XG)
	}
	// 5v5 drops the 6v5 shot; close drops the late tied... GoalDiff 0 at
	// 3000s passes, GoalDiff 1 at 1500s passes.
	if rec.XG5v5 != (games.StatPair{Away: 0.4, Home: 0.2}) {
		t.Errorf("xG 5v5 = %+v, want away 0.4, home 0.2", rec.XG5v5)
	}

	if rec.Winner != "MTL" {
		t.Errorf("winner = %q, want MTL", rec.Winner)
	}
	if rec.RegOrOT != games.EndedRegulation {
		t.Errorf("ending = %q, want %q", rec.RegOrOT, games.EndedRegulation)
	}
}

func TestSummarizeShootoutExclusion(t *testing.T) {
	g := &pbp.Game{
		ID:       2016020002,
		RawID:    20002,
		Season:   "2016",
		Date:     "2016-10-13",
		AwayTeam: "BOS",
		HomeTeam: "MTL",
		Events: []pbp.Event{
			{Event: pbp.EvGoal, EvTeam: "BOS", Period: 1, Strength: "5x5"},
			{Event: pbp.EvGoal, EvTeam: "MTL", Period: 2, Strength: "5x5", AwayScore: 1, ScoreDiff: 1},
			// Shootout: decides the game but never counts as goals/shots.
			{Event: pbp.EvShot, EvTeam: "BOS", Period: 5, AwayScore: 1, HomeScore: 1},
			{Event: pbp.EvGoal, EvTeam: "MTL", Period: 5, AwayScore: 1, HomeScore: 1},
			{Event: pbp.EvGameEnd, Period: 5, AwayScore: 1, HomeScore: 2},
		},
	}

	rec, err := Summarize(g, nil)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if rec.Score != (games.StatPair{Away: 1, Home: 1}) {
		t.Errorf("score = %+v, want 1-1 with shootout goal excluded", rec.Score)
	}
	if rec.Shots != (games.StatPair{Away: 0, Home: 0}) {
		t.Errorf("shots = %+v, want shootout attempts excluded", rec.Shots)
	}
	if rec.RegOrOT != games.EndedOvertime {
		t.Errorf("ending = %q, want %q", rec.RegOrOT, games.EndedOvertime)
	}
	// The end event still decides the winner.
	if rec.Winner != "MTL" {
		t.Errorf("winner = %q, want MTL", rec.Winner)
	}
}

func TestSummarizeGuardedShares(t *testing.T) {
	g := &pbp.Game{
		ID:       2016020003,
		RawID:    20003,
		Season:   "2016",
		Date:     "2016-10-14",
		AwayTeam: "BOS",
		HomeTeam: "MTL",
		Events: []pbp.Event{
			{Event: pbp.EvGoal, EvTeam: "MTL", Period: 3, Strength: "5x5"},
			{Event: pbp.EvGameEnd, Period: 3, AwayScore: 0, HomeScore: 1},
		},
	}

	rec, err := Summarize(g, nil)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	// No close-situation attempts at all (goal at diff 0 in P3 counts):
	// zero-total shares must come out 0, not NaN.
	if rec.XGPct != (games.StatPair{}) {
		t.Errorf("xG%% with no shots = %+v, want zeros", rec.XGPct)
	}
	if rec.CorsiPct.Home != 100 || rec.CorsiPct.Away != 0 {
		t.Errorf("CORSI%% = %+v, want home 100", rec.CorsiPct)
	}
	if rec.TRatio != (games.StatPair{}) {
		t.Errorf("TRatio with no give/take = %+v, want zeros", rec.TRatio)
	}
}

func TestSummarizeUnresolvedWinnerSentinel(t *testing.T) {
	g := &pbp.Game{
		ID:       2016020004,
		RawID:    20004,
		Season:   "2016",
		Date:     "2016-10-15",
		AwayTeam: "BOS",
		HomeTeam: "MTL",
		Events: []pbp.Event{
			{Event: pbp.EvGameEnd, Period: 3, AwayScore: 0, HomeScore: 0},
		},
	}
	rec, err := Summarize(g, nil)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if rec.Winner != games.WinnerUnresolved {
		t.Errorf("winner = %q, want unresolved sentinel", rec.Winner)
	}
}

func TestSummarizeBadDate(t *testing.T) {
	g := testGame()
	g.Date = "10/12/2016"
	if _, err := Summarize(g, nil); err == nil {
		t.Fatal("expected error for malformed date, got nil")
	}
}
