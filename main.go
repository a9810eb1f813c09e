package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Coldaine/AzurKnowledge/analyze"
	"github.com/Coldaine/AzurKnowledge/export"
	"github.com/Coldaine/AzurKnowledge/gamedata"
	"github.com/Coldaine/AzurKnowledge/progress"
	"github.com/Coldaine/AzurKnowledge/scraper"
)

func main() {
	logFile, err := initLogger()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}
	defer logFile.Close()

	log.Info().Str("version", Version).Msg("AzurKnowledge")

	if len(os.Args) < 2 {
		log.Fatal().Msg("Usage: AzurKnowledge <parse|collect> [flags]")
	}

	cfg := loadConfig()
	switch os.Args[1] {
	case "parse":
		runParse(cfg, os.Args[2:])
	case "collect":
		runCollect(cfg, os.Args[2:])
	default:
		log.Fatal().Str("command", os.Args[1]).Msg("Unknown command")
	}
}

// runParse executes the full pipeline: parse the table snapshot, print the
// analysis reports, then export. Export failures are logged but each step
// runs regardless of the others.
func runParse(cfg config, args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	dataDir := fs.String("data", cfg.DataDir, "game data snapshot directory")
	outDir := fs.String("out", cfg.OutputDir, "export output directory")
	fs.Parse(args)

	log.Info().Str("data", *dataDir).Str("out", *outDir).Msg("Starting parse run")

	parser := gamedata.NewParser(*dataDir)
	weapons, equipment, ships := parser.ParseAll()
	catalog := parser.Catalog()

	fmt.Print(analyze.EquipmentReport(catalog))
	fmt.Print(analyze.ShipReport(catalog))
	fmt.Print(analyze.ShipVersionReport(catalog))

	exporter := export.NewExporter(*outDir)
	if err := exporter.WriteCSV(catalog); err != nil {
		log.Error().Err(err).Msg("CSV export incomplete")
	}
	if err := exporter.WriteJSON(catalog); err != nil {
		log.Error().Err(err).Msg("JSON export incomplete")
	}
	if err := exporter.WriteShipVersionReport(catalog); err != nil {
		log.Error().Err(err).Msg("Ship version report not written")
	}

	log.Info().
		Int("equipment", equipment).
		Int("ships", ships).
		Int("weapons", weapons).
		Msg("Parse run complete")
}

// runCollect executes the equipment collection batch.
func runCollect(cfg config, args []string) {
	fs := flag.NewFlagSet("collect", flag.ExitOnError)
	itemsFile := fs.String("items", cfg.ItemsFile, "collection list JSON file")
	dbDir := fs.String("db", cfg.EquipDBDir, "equipment store directory")
	progressFile := fs.String("progress", cfg.ProgressFile, "progress state file")
	fs.Parse(args)

	entries := scraper.LoadCollectionList(*itemsFile)
	tracker := progress.NewTracker(*progressFile)
	collector := scraper.NewCollector()

	commitPaths := []string{*dbDir, *progressFile}
	processed := collector.RunCollection(entries, *dbDir, tracker, commitPaths)

	log.Info().Int("processed", processed).Msg("Collection run complete")
}
