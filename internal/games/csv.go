package games

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// csvHeader is the summary CSV header, matching the layout the feature
// stage and downstream notebooks expect.
func csvHeader() []string {
	header := []string{
		"Game_Id", "season", "Date", "isPlayoffs", "Winner", "RegOrOT",
		"Away_Team", "Home_Team",
	}
	for _, c := range statColumns {
		header = append(header, "Away_"+string(c.id), "Home_"+string(c.id))
	}
	return header
}

// WriteCSV writes all records as the summary CSV.
func WriteCSV(path string, recs []*Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range recs {
		row := []string{
			strconv.FormatInt(r.GameID, 10),
			r.Season,
			r.Date.Format("2006-01-02"),
			strconv.Itoa(boolToInt(r.IsPlayoff)),
			r.Winner,
			r.RegOrOT,
			r.AwayTeam,
			r.HomeTeam,
		}
		for _, c := range statColumns {
			p := c.pair(r)
			row = append(row, formatStat(p.Away), formatStat(p.Home))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write game %d: %w", r.GameID, err)
		}
	}

	w.Flush()
	return w.Error()
}

// ReadCSV loads a summary CSV into a sorted Store. Any malformed row is a
// fatal input error: the batch never proceeds over partial data.
func ReadCSV(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	for _, want := range csvHeader() {
		if _, ok := idx[want]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, want)
		}
	}

	store := NewStore()
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}

		rec, err := recordFromRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		if err := store.Add(rec); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
	}

	store.Sort()
	return store, nil
}

func recordFromRow(row []string, idx map[string]int) (*Record, error) {
	get := func(name string) string { return row[idx[name]] }

	gameID, err := strconv.ParseInt(get("Game_Id"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad Game_Id %q", get("Game_Id"))
	}
	date, err := time.Parse("2006-01-02", get("Date"))
	if err != nil {
		return nil, fmt.Errorf("game %d: bad Date %q", gameID, get("Date"))
	}

	r := &Record{
		GameID:    gameID,
		Season:    get("season"),
		Date:      date,
		IsPlayoff: get("isPlayoffs") == "1",
		Winner:    get("Winner"),
		RegOrOT:   get("RegOrOT"),
		AwayTeam:  get("Away_Team"),
		HomeTeam:  get("Home_Team"),
	}

	for _, c := range statColumns {
		p := c.pair(r)
		if p.Away, err = parseStat(get("Away_" + string(c.id))); err != nil {
			return nil, fmt.Errorf("game %d: Away_%s: %w", gameID, c.id, err)
		}
		if p.Home, err = parseStat(get("Home_" + string(c.id))); err != nil {
			return nil, fmt.Errorf("game %d: Home_%s: %w", gameID, c.id, err)
		}
	}

	return r, nil
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseStat treats blank cells as 0; older exports left unrecorded
// stats empty.
func parseStat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad value %q", s)
	}
	return v, nil
}
