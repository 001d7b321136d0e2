// Command inspect_games dumps recent rows of the game summary database
// for eyeballing after a summarize run.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	_ "modernc.org/sqlite"
)

var compactQuery = `SELECT game_id, date, season,
	away_team||' @ '||home_team AS matchup,
	CAST(away_score AS INT)||'-'||CAST(home_score AS INT) AS score,
	winner, reg_or_ot,
	printf('%.1f', home_corsi_pct) AS h_corsi,
	printf('%.1f', home_fen_pct) AS h_fen,
	printf('%.2f', away_xg) AS a_xg,
	printf('%.2f', home_xg) AS h_xg
FROM game_summaries ORDER BY game_id DESC LIMIT ?`

func main() {
	n := flag.Int("n", 10, "number of recent games to display")
	dbPath := flag.String("db", "Database/nhl_games.db", "game summary database path")
	verbose := flag.Bool("v", false, "show all columns (raw schema)")
	flag.Parse()

	if *verbose {
		printRaw(*dbPath, *n)
		return
	}
	printCompact(*dbPath, *n)
}

func printCompact(dbPath string, n int) {
	fmt.Println("=== Game Summaries ===")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		fmt.Printf("  (cannot open %s: %v)\n", dbPath, err)
		return
	}
	defer db.Close()

	count := 0
	if err := db.QueryRow("SELECT COUNT(*) FROM game_summaries").Scan(&count); err != nil {
		fmt.Printf("  (cannot count rows: %v)\n", err)
		return
	}
	if count == 0 {
		fmt.Println("(no data)")
		return
	}

	fmt.Printf("Rows: %d  |  Showing last %d:\n", count, min(n, count))
	printQuery(db, compactQuery, n)
}

func printRaw(dbPath string, n int) {
	fmt.Println("=== Game Summaries (verbose) ===")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		fmt.Printf("  (cannot open %s: %v)\n", dbPath, err)
		return
	}
	defer db.Close()

	cols, err := schemaColumns(db, "game_summaries")
	if err != nil {
		fmt.Printf("  (cannot read schema: %v)\n", err)
		return
	}
	fmt.Printf("Schema: %s\n\n", strings.Join(cols, ", "))

	count := 0
	if err := db.QueryRow("SELECT COUNT(*) FROM game_summaries").Scan(&count); err != nil {
		fmt.Printf("  (cannot count rows: %v)\n", err)
		return
	}
	if count == 0 {
		fmt.Println("(no data)")
		return
	}

	fmt.Printf("Rows: %d  |  Showing last %d:\n", count, min(n, count))
	printQuery(db, "SELECT * FROM game_summaries ORDER BY game_id DESC LIMIT ?", n)
}

func printQuery(db *sql.DB, query string, n int) {
	rows, err := db.Query(query, n)
	if err != nil {
		fmt.Printf("  (query error: %v)\n", err)
		return
	}
	defer rows.Close()

	colNames, _ := rows.Columns()
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(colNames, "\t"))
	fmt.Fprintln(w, strings.Repeat("----\t", len(colNames)))

	vals := make([]any, len(colNames))
	ptrs := make([]any, len(colNames))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	var rowBuf [][]string
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			fmt.Fprintf(os.Stderr, "  scan error: %v\n", err)
			continue
		}
		cells := make([]string, len(colNames))
		for i, v := range vals {
			cells[i] = fmtCell(v)
		}
		rowBuf = append(rowBuf, cells)
	}

	for i := len(rowBuf) - 1; i >= 0; i-- {
		fmt.Fprintln(w, strings.Join(rowBuf[i], "\t"))
	}
	w.Flush()
}

func schemaColumns(db *sql.DB, table string) ([]string, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull int
		var dflt any
		var pk int
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols = append(cols, fmt.Sprintf("%s %s", name, ctype))
	}
	return cols, nil
}

func fmtCell(v any) string {
	if v == nil {
		return "-"
	}
	switch x := v.(type) {
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%.5f", x)
	case int64:
		return fmt.Sprintf("%d", x)
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", v)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
