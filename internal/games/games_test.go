package games

import (
	"path/filepath"
	"testing"
	"time"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleRecord(id int64, day string) *Record {
	r := &Record{
		GameID:   id,
		Season:   "2016",
		Date:     date(day),
		Winner:   "MTL",
		RegOrOT:  EndedRegulation,
		AwayTeam: "BOS",
		HomeTeam: "MTL",
	}
	r.Score = StatPair{Away: 1, Home: 2}
	r.Shots = StatPair{Away: 28, Home: 31}
	r.ShotAttempts = StatPair{Away: 51, Home: 60}
	r.CorsiPct = StatPair{Away: 45.94594594594595, Home: 54.054054054054056}
	r.PIM = StatPair{Away: 6, Home: 4}
	r.XG = StatPair{Away: 2.13, Home: 2.71}
	r.XGPctClose5v5 = StatPair{Away: 48.5, Home: 51.5}
	return r
}

func TestPair(t *testing.T) {
	r := sampleRecord(2016020001, "2016-10-12")

	p, ok := Pair(r, StatShots)
	if !ok {
		t.Fatal("StatShots not in registry")
	}
	if p != (StatPair{Away: 28, Home: 31}) {
		t.Errorf("shots pair = %+v", p)
	}

	if _, ok := Pair(r, "NoSuchStat"); ok {
		t.Error("unknown stat id resolved")
	}
}

func TestValidateStats(t *testing.T) {
	if err := ValidateStats([]StatID{StatScore, StatXGClose5v5, "CORSI%Close5v5"}); err != nil {
		t.Errorf("known stats rejected: %v", err)
	}
	if err := ValidateStats([]StatID{StatScore, "Corsi"}); err == nil {
		t.Error("unknown stat accepted")
	}
}

func TestDBColumn(t *testing.T) {
	tests := []struct {
		id   StatID
		want string
	}{
		{StatShots, "shots"},
		{StatShotAttempts, "shot_attempts"},
		{"CORSI%", "corsi_pct"},
		{"CORSI%Close5v5", "corsi_pct_close5v5"},
		{"Fen%5v5", "fen_pct_5v5"},
		{"xG%Close5v5", "xg_pct_close5v5"},
		{"TRatio", "tratio"},
	}
	for _, tt := range tests {
		if got := dbColumn(tt.id); got != tt.want {
			t.Errorf("dbColumn(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestStoreRejectsDuplicateGame(t *testing.T) {
	s := NewStore()
	if err := s.Add(sampleRecord(2016020001, "2016-10-12")); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := s.Add(sampleRecord(2016020001, "2016-10-13")); err == nil {
		t.Fatal("duplicate game id accepted")
	}
}

func TestStoreSortOrder(t *testing.T) {
	s := NewStore()
	// Inserted out of order, plus a same-date pair.
	for _, r := range []*Record{
		sampleRecord(2016020004, "2016-10-14"),
		sampleRecord(2016020002, "2016-10-12"),
		sampleRecord(2016020001, "2016-10-12"),
		sampleRecord(2016020003, "2016-10-13"),
	} {
		if err := s.Add(r); err != nil {
			t.Fatal(err)
		}
	}
	s.Sort()

	want := []int64{2016020001, 2016020002, 2016020003, 2016020004}
	for i, r := range s.Records() {
		if r.GameID != want[i] {
			t.Errorf("position %d: game %d, want %d", i, r.GameID, want[i])
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	recs := []*Record{
		sampleRecord(2016020001, "2016-10-12"),
		sampleRecord(2016020002, "2016-10-13"),
	}
	recs[1].IsPlayoff = true
	recs[1].Winner = "BOS"
	recs[1].RegOrOT = EndedOvertime

	path := filepath.Join(t.TempDir(), "out", "TeamStats.csv")
	if err := WriteCSV(path, recs); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	store, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if store.Len() != len(recs) {
		t.Fatalf("got %d records, want %d", store.Len(), len(recs))
	}

	got, ok := store.Get(2016020001)
	if !ok {
		t.Fatal("game 2016020001 missing after round trip")
	}
	if *got != *recs[0] {
		t.Errorf("record changed across round trip:\n got %+v\nwant %+v", got, recs[0])
	}

	second, _ := store.Get(2016020002)
	if !second.IsPlayoff || second.Winner != "BOS" || second.RegOrOT != EndedOvertime {
		t.Errorf("key fields changed: %+v", second)
	}
}

func TestDBRoundTrip(t *testing.T) {
	recs := []*Record{
		sampleRecord(2016020001, "2016-10-12"),
		sampleRecord(2016020002, "2016-10-13"),
	}

	path := filepath.Join(t.TempDir(), "Database", "nhl_games.db")
	db, err := OpenDB(path)
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	if err := SaveAll(db, recs); err != nil {
		db.Close()
		t.Fatalf("SaveAll: %v", err)
	}
	db.Close()

	store, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if store.Len() != len(recs) {
		t.Fatalf("got %d records, want %d", store.Len(), len(recs))
	}
	got, ok := store.Get(2016020001)
	if !ok {
		t.Fatal("game 2016020001 missing after round trip")
	}
	if *got != *recs[0] {
		t.Errorf("record changed across round trip:\n got %+v\nwant %+v", got, recs[0])
	}
}

// SaveAll replaces the table wholesale, so rerunning the same batch must
// not accumulate rows.
func TestSaveAllIsIdempotent(t *testing.T) {
	recs := []*Record{sampleRecord(2016020001, "2016-10-12")}

	path := filepath.Join(t.TempDir(), "nhl_games.db")
	db, err := OpenDB(path)
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := SaveAll(db, recs); err != nil {
			t.Fatalf("SaveAll #%d: %v", i+1, err)
		}
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM game_summaries").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d rows after two saves, want 1", count)
	}
}
