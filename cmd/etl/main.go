package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"catalogue-etl/internal/config"
	"catalogue-etl/internal/logger"
	"catalogue-etl/internal/pipeline"
	"catalogue-etl/internal/store"
	"catalogue-etl/pkg/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Invalid configuration: %v\n", err)
		return 1
	}

	log := logger.New(cfg.LogLevel)

	// Run history is optional for the CLI; an empty path disables it.
	runID := ""
	if cfg.HistoryDB != "" {
		if err := store.InitDB(cfg.HistoryDB); err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to open history database: %v\n", err)
			return 1
		}
		runID = uuid.New().String()
		if err := store.SaveRun(runID, cfg.InputFile); err != nil {
			log.Warn("failed to record run", "error", err)
			runID = ""
		}
	}
	if runID != "" {
		store.UpdateRunStatus(runID, "running")
	}

	results, err := pipeline.Run(cfg, log)
	if err != nil {
		if runID != "" {
			store.UpdateRunStatus(runID, "failed")
			store.SaveRunError(runID, err)
		}
		fmt.Fprintf(os.Stderr, "\n❌ Pipeline failed: %v\n", err)
		return 1
	}

	if runID != "" {
		store.SaveRunReport(runID, results.Report)
		store.UpdateRunStatus(runID, "completed")
	}

	report := results.Report
	fmt.Println()
	fmt.Println(utils.RenderSummary("ETL PIPELINE COMPLETED SUCCESSFULLY", [][2]string{
		{"Execution time", fmt.Sprintf("%.2f seconds", results.ExecutionTime)},
		{"Total records", fmt.Sprintf("%d", report.TotalRecords)},
		{"Valid products", fmt.Sprintf("%d", report.ValidRecords)},
		{"Filtered out", fmt.Sprintf("%d", report.FilteredRecords)},
		{"Validation errors", fmt.Sprintf("%d", report.InvalidRecords)},
		{"Success rate", fmt.Sprintf("%.1f%%", report.SuccessRate)},
		{"Output directory", cfg.OutputDir},
	}))

	return 0
}
