package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// config carries the run's paths: flags override these, these override the
// built-in defaults, and an optional .env file feeds the environment.
type config struct {
	DataDir      string
	OutputDir    string
	EquipDBDir   string
	ProgressFile string
	ItemsFile    string
}

func loadConfig() config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment and defaults")
	}

	return config{
		DataDir:      getenv("AZUR_DATA_DIR", "azur-lane-data/EN/sharecfgdata"),
		OutputDir:    getenv("AZUR_OUTPUT_DIR", "azur_lane_parsed_data"),
		EquipDBDir:   getenv("AZUR_EQUIPDB_DIR", "data/equipment"),
		ProgressFile: getenv("AZUR_PROGRESS_FILE", "progress.json"),
		ItemsFile:    getenv("AZUR_ITEMS_FILE", "collection_items.json"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
