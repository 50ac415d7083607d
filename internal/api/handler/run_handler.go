package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"catalogue-etl/internal/config"
	"catalogue-etl/internal/logger"
	"catalogue-etl/internal/pipeline"
	"catalogue-etl/internal/store"
	"catalogue-etl/pkg/utils"
)

// RunRequest is the payload accepted by POST /runs. All fields are
// optional overrides of the server configuration.
type RunRequest struct {
	InputFile string `json:"inputFile,omitempty"`
}

// RunHandler serves the run-management endpoints. Each triggered run
// writes its artifacts into a run-scoped subdirectory of the
// configured output dir.
type RunHandler struct {
	cfg config.Config
	log *logger.Logger
}

// NewRunHandler creates a handler bound to the server configuration.
func NewRunHandler(cfg config.Config, log *logger.Logger) *RunHandler {
	return &RunHandler{cfg: cfg, log: log}
}

// CreateRun triggers a new catalogue ETL run
// @Summary Trigger a pipeline run
// @Description Start a catalogue ETL run, optionally overriding the input file
// @Tags runs
// @Accept json
// @Produce json
// @Param run body RunRequest false "Run overrides"
// @Success 200 {object} map[string]interface{} "Run accepted"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [post]
func (h *RunHandler) CreateRun(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}
	}

	runID := uuid.New().String()
	runCfg := h.cfg
	if req.InputFile != "" {
		runCfg.InputFile = req.InputFile
	}
	runCfg.OutputDir = filepath.Join(h.cfg.OutputDir, runID)

	if err := store.SaveRun(runID, runCfg.InputFile); err != nil {
		http.Error(w, "Failed to save run", http.StatusInternalServerError)
		return
	}

	go func() {
		store.UpdateRunStatus(runID, "running")
		results, err := pipeline.Run(runCfg, h.log.With("run_id", runID))
		if err != nil {
			h.log.Error("pipeline run failed", "run_id", runID, "error", err)
			store.UpdateRunStatus(runID, "failed")
			store.SaveRunError(runID, err)
			return
		}
		store.SaveRunReport(runID, results.Report)
		store.UpdateRunStatus(runID, "completed")
	}()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":   "Run accepted",
		"runID":     runID,
		"status":    "pending",
		"createdAt": time.Now().UTC(),
	})
}

// ListRuns lists all recorded pipeline runs
// @Summary List runs
// @Description Get all pipeline runs with their current status
// @Tags runs
// @Produce json
// @Success 200 {array} map[string]interface{} "List of runs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [get]
func (h *RunHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch runs", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []map[string]interface{}{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

// GetRun fetches one run
// @Summary Get run
// @Description Retrieve the status of a specific run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run details"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id} [get]
func (h *RunHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID := pathSegment(r.URL.Path, 3)
	if runID == "" {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return
	}

	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}

	if run["status"] == "completed" {
		om := utils.NewOutputManager(h.cfg.OutputDir)
		artifacts := make(map[string]string)
		for _, name := range []string{
			pipeline.ProductsJSONFile,
			pipeline.ProductsCSVFile,
			pipeline.ValidationReportFile,
			pipeline.ValidationErrorsFile,
		} {
			if _, err := os.Stat(filepath.Join(h.cfg.OutputDir, runID, name)); err == nil {
				artifacts[name] = om.DownloadURL(runID, name)
			}
		}
		run["artifacts"] = artifacts
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

// GetRunReport fetches the validation report stored for a run
// @Summary Get run report
// @Description Retrieve the validation report produced by a completed run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} model.ValidationReport "Validation report"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Router /runs/{id}/report [get]
func (h *RunHandler) GetRunReport(w http.ResponseWriter, r *http.Request) {
	runID := pathSegment(r.URL.Path, 3)
	report, err := store.GetRunReport(runID)
	if err != nil {
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// GetRunErrors fetches the fatal errors recorded for a run
// @Summary Get run errors
// @Description Retrieve fatal errors recorded during a run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {array} map[string]interface{} "Run errors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/errors [get]
func (h *RunHandler) GetRunErrors(w http.ResponseWriter, r *http.Request) {
	runID := pathSegment(r.URL.Path, 3)
	errs, err := store.GetRunErrors(runID)
	if err != nil {
		http.Error(w, "Failed to fetch run errors", http.StatusInternalServerError)
		return
	}
	if errs == nil {
		errs = []map[string]interface{}{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(errs)
}

// DownloadArtifact serves an output file produced by a run
// @Summary Download run artifact
// @Description Download an output file (products.json, products.csv, validation_report.json, validation_errors.json) for a run
// @Tags runs
// @Produce octet-stream
// @Param id path string true "Run ID"
// @Param file path string true "Artifact file name"
// @Success 200 {file} file "Artifact content"
// @Failure 404 {object} map[string]interface{} "Artifact not found"
// @Router /download/{id}/{file} [get]
func (h *RunHandler) DownloadArtifact(w http.ResponseWriter, r *http.Request) {
	runID := pathSegment(r.URL.Path, 3)
	fileName := pathSegment(r.URL.Path, 4)
	if runID == "" || fileName == "" {
		http.Error(w, "Run ID and file name are required", http.StatusBadRequest)
		return
	}

	path := filepath.Join(h.cfg.OutputDir, filepath.Base(runID), filepath.Base(fileName))
	if _, err := os.Stat(path); err != nil {
		http.Error(w, "Artifact not found", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, path)
}

// pathSegment returns the zero-based nth segment of the request path.
func pathSegment(path string, n int) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if n >= len(segments) {
		return ""
	}
	return segments[n]
}
