package main

import (
	"flag"
	"fmt"
	"os"

	"catalogue-etl/internal/api"
	"catalogue-etl/internal/config"
	"catalogue-etl/internal/logger"
	"catalogue-etl/internal/store"
)

// @title Catalogue ETL API
// @version 1.0
// @description Run management API for the product catalogue ETL pipeline
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	dbPath := cfg.HistoryDB
	if dbPath == "" {
		dbPath = "catalogue.db"
	}
	if err := store.InitDB(dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to open history database: %v\n", err)
		os.Exit(1)
	}

	r := api.NewRouter(cfg, log)
	r.Start(cfg.ListenAddr)
}
