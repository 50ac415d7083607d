package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"catalogue-etl/internal/logger"
	"catalogue-etl/internal/model"
	"catalogue-etl/pkg/utils"
)

// Output artifact names, all written to the configured output dir.
const (
	ProductsJSONFile     = "products.json"
	ProductsCSVFile      = "products.csv"
	ValidationReportFile = "validation_report.json"
	ValidationErrorsFile = "validation_errors.json"
)

// csvHeader is the fixed, explicit column order of products.csv.
var csvHeader = []string{
	"product_id", "brand", "name", "category", "sku",
	"in_stock", "device_state", "rating", "review_count",
	"network_technology", "storage_options", "color_options",
	"processed_timestamp",
}

// Loader writes the accepted records and the run report to the output
// directory. An empty accepted set still produces every unconditional
// artifact.
type Loader struct {
	out *utils.OutputManager
	log *logger.Logger
}

// NewLoader creates a loader writing into outputDir.
func NewLoader(outputDir string, log *logger.Logger) *Loader {
	return &Loader{out: utils.NewOutputManager(outputDir), log: log}
}

// Write serializes products and the report, returning the paths of
// every file written, keyed by artifact kind.
func (l *Loader) Write(products []model.TransformedProduct, report model.ValidationReport) (map[string]string, error) {
	if err := l.out.EnsureBaseDir(); err != nil {
		return nil, err
	}

	paths := make(map[string]string)

	jsonPath := l.out.ArtifactPath(ProductsJSONFile)
	if err := l.writeProductsJSON(jsonPath, products); err != nil {
		return nil, err
	}
	paths["json"] = jsonPath

	csvPath := l.out.ArtifactPath(ProductsCSVFile)
	if err := l.writeProductsCSV(csvPath, products); err != nil {
		return nil, err
	}
	paths["csv"] = csvPath

	reportPath := l.out.ArtifactPath(ValidationReportFile)
	if err := writeJSONFile(reportPath, report); err != nil {
		return nil, fmt.Errorf("failed to write validation report: %w", err)
	}
	paths["report"] = reportPath

	if len(report.ValidationErrors) > 0 {
		errorsPath := l.out.ArtifactPath(ValidationErrorsFile)
		if err := writeJSONFile(errorsPath, report.ValidationErrors); err != nil {
			return nil, fmt.Errorf("failed to write validation errors: %w", err)
		}
		paths["errors"] = errorsPath
		l.log.Warn("validation errors saved", "path", errorsPath, "count", len(report.ValidationErrors))
	}

	fmt.Printf("💾 Output written: %d products to %s\n", len(products), l.out.BaseDir)
	return paths, nil
}

// writeProductsJSON writes the full record array; an empty accepted
// set serializes as an empty list, never as null.
func (l *Loader) writeProductsJSON(path string, products []model.TransformedProduct) error {
	if products == nil {
		products = []model.TransformedProduct{}
	}
	if err := writeJSONFile(path, products); err != nil {
		return fmt.Errorf("failed to write products JSON: %w", err)
	}
	l.log.Info("JSON output saved", "path", path, "products", len(products))
	return nil
}

// writeProductsCSV writes the tabular form: pipe-joined option lists,
// Yes/No stock flag, blanks for absent optional fields. No products
// means a header-only file.
func (l *Loader) writeProductsCSV(path string, products []model.TransformedProduct) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create products CSV: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range products {
		if err := writer.Write(csvRow(p)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	l.log.Info("CSV output saved", "path", path, "rows", len(products))
	return nil
}

// csvRow renders one product in csvHeader order.
func csvRow(p model.TransformedProduct) []string {
	inStock := "No"
	if p.InStock {
		inStock = "Yes"
	}

	rating := ""
	if p.Rating != nil {
		rating = strconv.FormatFloat(*p.Rating, 'g', -1, 64)
	}
	reviewCount := ""
	if p.ReviewCount != nil {
		reviewCount = strconv.Itoa(*p.ReviewCount)
	}

	return []string{
		p.ProductID,
		p.Brand,
		p.Name,
		p.Category,
		p.SKU,
		inStock,
		stringOrEmpty(p.DeviceState),
		rating,
		reviewCount,
		stringOrEmpty(p.NetworkTechnology),
		strings.Join(p.StorageOptions, "|"),
		strings.Join(p.ColorOptions, "|"),
		p.ProcessedTimestamp.Format(time.RFC3339),
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func writeJSONFile(path string, v interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
