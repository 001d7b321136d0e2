package games

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const tableGames = "game_summaries"

var keyColumns = []string{
	"game_id", "season", "date", "is_playoff", "winner", "reg_or_ot",
	"away_team", "home_team",
}

// allColumns is the full SQLite column list: the natural-key columns
// followed by away/home REAL pairs in statColumns order.
func allColumns() []string {
	cols := append([]string{}, keyColumns...)
	for _, c := range statColumns {
		base := dbColumn(c.id)
		cols = append(cols, "away_"+base, "home_"+base)
	}
	return cols
}

// OpenDB opens (creating if needed) the game summary database.
func OpenDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	var ddl strings.Builder
	fmt.Fprintf(&ddl, "CREATE TABLE IF NOT EXISTS %s (\n", tableGames)
	ddl.WriteString("\tgame_id INTEGER PRIMARY KEY,\n")
	ddl.WriteString("\tseason TEXT NOT NULL,\n")
	ddl.WriteString("\tdate TEXT NOT NULL,\n")
	ddl.WriteString("\tis_playoff INTEGER NOT NULL DEFAULT 0,\n")
	ddl.WriteString("\twinner TEXT NOT NULL,\n")
	ddl.WriteString("\treg_or_ot TEXT NOT NULL,\n")
	ddl.WriteString("\taway_team TEXT NOT NULL,\n")
	ddl.WriteString("\thome_team TEXT NOT NULL")
	for _, c := range statColumns {
		base := dbColumn(c.id)
		fmt.Fprintf(&ddl, ",\n\taway_%s REAL", base)
		fmt.Fprintf(&ddl, ",\n\thome_%s REAL", base)
	}
	ddl.WriteString("\n)")

	for _, stmt := range []string{
		ddl.String(),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_games_date ON %s(date)", tableGames),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_games_season ON %s(season)", tableGames),
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init schema: %w", err)
		}
	}

	return db, nil
}

// SaveAll replaces the table contents with the given records in one
// transaction. A full run completes or fails atomically.
func SaveAll(db *sql.DB, recs []*Record) error {
	cols := allColumns()
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",")
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableGames, strings.Join(cols, ", "), placeholders)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", tableGames)); err != nil {
		return fmt.Errorf("clear table: %w", err)
	}

	stmt, err := tx.Prepare(insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range recs {
		args := make([]any, 0, len(cols))
		args = append(args,
			r.GameID,
			r.Season,
			r.Date.Format("2006-01-02"),
			boolToInt(r.IsPlayoff),
			r.Winner,
			r.RegOrOT,
			r.AwayTeam,
			r.HomeTeam,
		)
		for _, c := range statColumns {
			p := c.pair(r)
			args = append(args, p.Away, p.Home)
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert game %d: %w", r.GameID, err)
		}
	}

	return tx.Commit()
}

// LoadStore reads every record from the database into a sorted Store.
func LoadStore(path string) (*Store, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	cols := allColumns()
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY game_id",
		strings.Join(cols, ", "), tableGames)

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	store := NewStore()
	for rows.Next() {
		r := &Record{}
		var date string
		var playoff int

		dests := make([]any, 0, len(cols))
		dests = append(dests,
			&r.GameID, &r.Season, &date, &playoff, &r.Winner, &r.RegOrOT,
			&r.AwayTeam, &r.HomeTeam,
		)
		for _, c := range statColumns {
			p := c.pair(r)
			dests = append(dests, &p.Away, &p.Home)
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}

		r.Date, err = time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("game %d: bad date %q: %w", r.GameID, date, err)
		}
		r.IsPlayoff = playoff != 0

		if err := store.Add(r); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read games: %w", err)
	}

	store.Sort()
	return store, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
