package pipeline

import (
	"fmt"
	"time"

	"catalogue-etl/internal/config"
	"catalogue-etl/internal/logger"
	"catalogue-etl/internal/model"
)

// Run executes the complete extract → transform → load sequence for
// one catalogue file. Fatal errors (missing input, malformed JSON,
// unwritable output) propagate; per-record failures are absorbed into
// the metrics and never abort the run.
func Run(cfg config.Config, log *logger.Logger) (model.Results, error) {
	start := time.Now()

	fmt.Printf("🚀 Starting catalogue ETL pipeline: %s\n", cfg.InputFile)
	log.Info("pipeline starting",
		"input", cfg.InputFile,
		"output_dir", cfg.OutputDir,
		"batch_size", cfg.BatchSize)

	raw, err := Extract(cfg.InputFile, log)
	if err != nil {
		return model.Results{}, err
	}

	transformer := NewTransformer(cfg, log)
	transformer.Metrics().TotalRecords = len(raw)
	products := transformer.Transform(raw)

	report := model.NewValidationReport(transformer.Metrics(), time.Since(start))
	loader := NewLoader(cfg.OutputDir, log)
	paths, err := loader.Write(products, report)
	if err != nil {
		return model.Results{}, err
	}

	elapsed := time.Since(start)
	fmt.Printf("🏁 Pipeline completed in %.2fs: %d/%d products valid (%.1f%% success)\n",
		elapsed.Seconds(), report.ValidRecords, report.TotalRecords, report.SuccessRate)

	return model.Results{
		Status:        "success",
		ExecutionTime: elapsed.Seconds(),
		Report:        report,
		OutputFiles:   paths,
	}, nil
}
