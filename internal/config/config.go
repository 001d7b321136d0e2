package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Input data
	RawDataDir string // season play-by-play CSVs (nhl_pbp_YYYYYYYY.csv)
	XGFile     string // per-shot expected goals CSV

	// Game summary database
	DBPath     string
	SummaryCSV string

	// Feature table output
	FramesDir string

	// Rolling windows
	WindowSizes []int

	// Telemetry
	LogLevel string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		RawDataDir: envStr("RAW_DATA_DIR", "Raw Data"),
		XGFile:     envStr("XG_FILE", "Raw Data/xGData2010-2021.csv"),

		DBPath:     envStr("DB_PATH", "Database/nhl_games.db"),
		SummaryCSV: envStr("SUMMARY_CSV", "Database/NHLData.csv"),

		FramesDir: envStr("FRAMES_DIR", "DataFrames"),

		WindowSizes: envInts("WINDOW_SIZES", []int{5, 10, 20, 40, 82}),

		LogLevel: envStr("LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInts(key string, fallback []int) []int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []int
	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return fallback
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
