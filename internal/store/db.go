package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"catalogue-etl/internal/model"
)

var db *sql.DB

// InitDB opens the run-history database and creates the schema when
// missing.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		input_file TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	reportTable := `
	CREATE TABLE IF NOT EXISTS run_reports (
		run_id TEXT PRIMARY KEY,
		report TEXT,
		created_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS run_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`

	for _, stmt := range []string{runTable, reportTable, errorTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun records a new pipeline run in pending state.
func SaveRun(runID, inputFile string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO runs (id, input_file, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		runID, inputFile, "pending", now, now)
	return err
}

// UpdateRunStatus moves a run to a new lifecycle status.
func UpdateRunStatus(runID, status string) error {
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), runID)
	return err
}

// SaveRunError records a fatal error for a run.
func SaveRunError(runID string, runErr error) error {
	if runErr == nil {
		return nil
	}
	_, err := db.Exec(`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, runErr.Error(), time.Now().UTC())
	return err
}

// SaveRunReport stores the validation report snapshot for a run.
func SaveRunReport(runID string, report model.ValidationReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT OR REPLACE INTO run_reports (run_id, report, created_at) VALUES (?, ?, ?)`,
		runID, data, time.Now().UTC())
	return err
}

// ListRuns returns all runs, newest first.
func ListRuns() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, input_file, status, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []map[string]interface{}
	for rows.Next() {
		var id, inputFile, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &inputFile, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, map[string]interface{}{
			"id":        id,
			"inputFile": inputFile,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return runs, rows.Err()
}

// GetRun fetches one run's status row.
func GetRun(runID string) (map[string]interface{}, error) {
	var inputFile, status string
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT input_file, status, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&inputFile, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":        runID,
		"inputFile": inputFile,
		"status":    status,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
	}, nil
}

// GetRunReport fetches the stored validation report for a run.
func GetRunReport(runID string) (model.ValidationReport, error) {
	var data string
	if err := db.QueryRow(`SELECT report FROM run_reports WHERE run_id = ?`, runID).Scan(&data); err != nil {
		return model.ValidationReport{}, err
	}

	var report model.ValidationReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return model.ValidationReport{}, err
	}
	return report, nil
}

// GetRunErrors fetches the fatal errors recorded for a run.
func GetRunErrors(runID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT error_message, created_at FROM run_errors WHERE run_id = ? ORDER BY created_at`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errs []map[string]interface{}
	for rows.Next() {
		var msg string
		var createdAt time.Time
		if err := rows.Scan(&msg, &createdAt); err != nil {
			return nil, err
		}
		errs = append(errs, map[string]interface{}{
			"error":     msg,
			"createdAt": createdAt,
		})
	}
	return errs, rows.Err()
}
