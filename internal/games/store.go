package games

import (
	"fmt"
	"sort"
)

// Store is the in-memory game record collection the feature builder runs
// over. Records are kept in chronological order: date ascending, ties
// broken by game id so re-ingestion order never matters.
type Store struct {
	recs []*Record
	byID map[int64]*Record
}

func NewStore() *Store {
	return &Store{byID: make(map[int64]*Record)}
}

// Add appends a record. Exactly one record may exist per game id.
func (s *Store) Add(r *Record) error {
	if _, exists := s.byID[r.GameID]; exists {
		return fmt.Errorf("duplicate game id %d", r.GameID)
	}
	s.byID[r.GameID] = r
	s.recs = append(s.recs, r)
	return nil
}

// Sort restores chronological order after a batch of Adds.
func (s *Store) Sort() {
	sort.Slice(s.recs, func(i, j int) bool {
		if !s.recs[i].Date.Equal(s.recs[j].Date) {
			return s.recs[i].Date.Before(s.recs[j].Date)
		}
		return s.recs[i].GameID < s.recs[j].GameID
	})
}

// Records returns the chronologically ordered records. Callers must not
// mutate the slice.
func (s *Store) Records() []*Record { return s.recs }

func (s *Store) Len() int { return len(s.recs) }

func (s *Store) Get(id int64) (*Record, bool) {
	r, ok := s.byID[id]
	return r, ok
}
