package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"catalogue-etl/internal/logger"
	"catalogue-etl/internal/model"
)

// Extract reads the catalogue document from disk. The root may be a
// list of records or a single record, which is wrapped into a
// one-element list. A missing file or malformed JSON aborts the run.
func Extract(path string, log *logger.Logger) ([]model.RawProduct, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat input file: %w", err)
	}

	log.Info("reading input file", "path", path, "size_mb", fmt.Sprintf("%.2f", float64(info.Size())/(1024*1024)))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	var records []model.RawProduct
	switch doc := raw.(type) {
	case []interface{}:
		records = make([]model.RawProduct, 0, len(doc))
		for _, item := range doc {
			// Non-object entries stay in the sequence as nil records
			// and are counted as invalid by the orchestrator.
			m, _ := item.(map[string]interface{})
			records = append(records, model.RawProduct(m))
		}
	case map[string]interface{}:
		log.Warn("JSON root is not a list, wrapping in list")
		records = []model.RawProduct{model.RawProduct(doc)}
	default:
		return nil, fmt.Errorf("unexpected JSON structure: root must be an object or a list")
	}

	fmt.Printf("📄 Extracted %d products from %s\n", len(records), path)
	logSampleBrands(records, log)

	return records, nil
}

// logSampleBrands logs a handful of brands from the head of the feed,
// mirroring what a quick manual inspection would look at.
func logSampleBrands(records []model.RawProduct, log *logger.Logger) {
	seen := make(map[string]struct{})
	sample := make([]string, 0, 5)
	for i, rec := range records {
		if i >= 100 || len(sample) >= 5 {
			break
		}
		brand, _ := rec["brand"].(string)
		if brand == "" {
			brand = "Unknown"
		}
		if _, ok := seen[brand]; ok {
			continue
		}
		seen[brand] = struct{}{}
		sample = append(sample, brand)
	}
	log.Debug("sample brands found", "brands", sample)
}
