package model

import (
	"sort"
	"time"
)

// FieldError is a single field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorDetail captures every validation violation recorded for one
// input record.
type ErrorDetail struct {
	ProductID   string       `json:"product_id"`
	ProductName string       `json:"product_name"`
	Errors      []FieldError `json:"errors"`
	Timestamp   time.Time    `json:"timestamp"`
}

// Metrics accumulates counters while the orchestrator runs. It is
// owned by a single pipeline run and read-only once the run ends.
type Metrics struct {
	TotalRecords     int
	ValidRecords     int
	InvalidRecords   int
	FilteredRecords  int
	ValidationErrors []ErrorDetail
	CategoriesFound  map[string]struct{}
	BrandsProcessed  map[string]struct{}
}

// NewMetrics returns an empty metrics accumulator.
func NewMetrics() *Metrics {
	return &Metrics{
		CategoriesFound: make(map[string]struct{}),
		BrandsProcessed: make(map[string]struct{}),
	}
}

// AddBrand records a distinct brand seen among accepted records.
func (m *Metrics) AddBrand(brand string) {
	m.BrandsProcessed[brand] = struct{}{}
}

// AddCategory records a distinct category assigned to a valid record.
func (m *Metrics) AddCategory(category string) {
	m.CategoriesFound[category] = struct{}{}
}

// ValidationReport is the end-of-run snapshot written to
// validation_report.json.
type ValidationReport struct {
	TotalRecords     int           `json:"total_records"`
	ValidRecords     int           `json:"valid_records"`
	InvalidRecords   int           `json:"invalid_records"`
	FilteredRecords  int           `json:"filtered_records"`
	ValidationErrors []ErrorDetail `json:"validation_errors"`
	ProcessingTime   float64       `json:"processing_time"`
	Timestamp        time.Time     `json:"timestamp"`
	BrandsProcessed  []string      `json:"brands_processed"`
	CategoriesFound  []string      `json:"categories_found"`
	SuccessRate      float64       `json:"success_rate"`
}

// NewValidationReport builds a report from the final metrics and the
// elapsed processing time.
func NewValidationReport(m *Metrics, elapsed time.Duration) ValidationReport {
	report := ValidationReport{
		TotalRecords:     m.TotalRecords,
		ValidRecords:     m.ValidRecords,
		InvalidRecords:   m.InvalidRecords,
		FilteredRecords:  m.FilteredRecords,
		ValidationErrors: m.ValidationErrors,
		ProcessingTime:   elapsed.Seconds(),
		Timestamp:        time.Now().UTC(),
		BrandsProcessed:  sortedKeys(m.BrandsProcessed),
		CategoriesFound:  sortedKeys(m.CategoriesFound),
	}
	if report.ValidationErrors == nil {
		report.ValidationErrors = []ErrorDetail{}
	}
	if m.TotalRecords > 0 {
		report.SuccessRate = float64(m.ValidRecords) / float64(m.TotalRecords) * 100
	}
	return report
}

// Results summarizes one complete pipeline run.
type Results struct {
	Status        string            `json:"status"`
	ExecutionTime float64           `json:"execution_time"`
	Report        ValidationReport  `json:"report"`
	OutputFiles   map[string]string `json:"output_files"`
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
