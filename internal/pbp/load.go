package pbp

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SeasonFromFile extracts the season start year from a play-by-play file
// name of the form nhl_pbp_20162017.csv.
func SeasonFromFile(path string) (string, error) {
	base := filepath.Base(path)
	rest, ok := strings.CutPrefix(base, "nhl_pbp_")
	if !ok || len(rest) < 8 {
		return "", fmt.Errorf("unrecognized season file name %q", base)
	}
	year := rest[:4]
	if _, err := strconv.Atoi(year); err != nil {
		return "", fmt.Errorf("unrecognized season file name %q", base)
	}
	return year, nil
}

// playoffIDThreshold: raw game ids at or above this are playoff games.
const playoffIDThreshold = 30000

var pbpRequired = []string{
	"Game_Id", "Date", "Period", "Event", "Description", "Time_Elapsed",
	"Strength", "Type", "Ev_Team", "Away_Team", "Home_Team",
	"Away_Score", "Home_Score",
}

// LoadSeason reads one season's play-by-play CSV and groups events per
// game in file order. Team codes are normalized on load.
func LoadSeason(path string) ([]*Game, error) {
	season, err := SeasonFromFile(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", path, err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, req := range pbpRequired {
		if _, ok := idx[req]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, req)
		}
	}

	byID := make(map[int]*Game)
	var order []int

	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}

		rawID, err := strconv.Atoi(getCol(row, idx, "Game_Id"))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad Game_Id %q", path, line, getCol(row, idx, "Game_Id"))
		}

		g, ok := byID[rawID]
		if !ok {
			id, err := strconv.ParseInt(season+strconv.Itoa(rawID), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: game id %d: %w", path, line, rawID, err)
			}
			g = &Game{
				ID:        id,
				RawID:     rawID,
				Season:    season,
				Date:      getCol(row, idx, "Date"),
				AwayTeam:  NormalizeTeam(getCol(row, idx, "Away_Team")),
				HomeTeam:  NormalizeTeam(getCol(row, idx, "Home_Team")),
				IsPlayoff: rawID >= playoffIDThreshold,
			}
			byID[rawID] = g
			order = append(order, rawID)
		}

		awayScore := getColInt(row, idx, "Away_Score")
		homeScore := getColInt(row, idx, "Home_Score")
		diff := awayScore - homeScore
		if diff < 0 {
			diff = -diff
		}

		g.Events = append(g.Events, Event{
			Period:      getColInt(row, idx, "Period"),
			Event:       getCol(row, idx, "Event"),
			Description: getCol(row, idx, "Description"),
			Type:        getCol(row, idx, "Type"),
			EvTeam:      NormalizeTeam(getCol(row, idx, "Ev_Team")),
			Strength:    getCol(row, idx, "Strength"),
			TimeElapsed: getColFloat(row, idx, "Time_Elapsed"),
			AwayScore:   awayScore,
			HomeScore:   homeScore,
			ScoreDiff:   diff,
		})
	}

	games := make([]*Game, 0, len(order))
	for _, rawID := range order {
		games = append(games, byID[rawID])
	}
	return games, nil
}

var xgRequired = []string{
	"GameID", "Team", "xG", "HomePlayers", "AwayPlayers", "GameTime", "GoalDiff",
}

// LoadXG reads the shot-level expected-goals CSV, keyed by prefixed
// game id.
func LoadXG(path string) (map[int64][]XGShot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", path, err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, req := range xgRequired {
		if _, ok := idx[req]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, req)
		}
	}

	shots := make(map[int64][]XGShot)
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}

		gameID, err := strconv.ParseInt(getCol(row, idx, "GameID"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad GameID %q", path, line, getCol(row, idx, "GameID"))
		}

		shots[gameID] = append(shots[gameID], XGShot{
			GameID:      gameID,
			Team:        NormalizeTeam(getCol(row, idx, "Team")),
			XG:          getColFloat(row, idx, "xG"),
			HomePlayers: getColInt(row, idx, "HomePlayers"),
			AwayPlayers: getColInt(row, idx, "AwayPlayers"),
			GameTime:    getColFloat(row, idx, "GameTime"),
			GoalDiff:    getColInt(row, idx, "GoalDiff"),
		})
	}

	return shots, nil
}

func getCol(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func getColInt(row []string, idx map[string]int, name string) int {
	s := getCol(row, idx, name)
	v, _ := strconv.Atoi(s)
	return v
}

func getColFloat(row []string, idx map[string]int, name string) float64 {
	s := getCol(row, idx, name)
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
