package pipeline

import (
	"errors"
	"fmt"
	"time"

	"catalogue-etl/internal/config"
	"catalogue-etl/internal/logger"
	"catalogue-etl/internal/model"
	"catalogue-etl/pkg/utils"
)

// Transformer applies filter → validate → extract to each record and
// accumulates run metrics. It owns its Metrics for the duration of a
// run; callers read them only after Transform returns.
type Transformer struct {
	batchSize int
	filter    *Filter
	metrics   *model.Metrics
	log       *logger.Logger
}

// NewTransformer builds a transformer from the run configuration.
func NewTransformer(cfg config.Config, log *logger.Logger) *Transformer {
	return &Transformer{
		batchSize: cfg.BatchSize,
		filter:    NewFilter(cfg.ExcludedCategories, log),
		metrics:   model.NewMetrics(),
		log:       log,
	}
}

// Metrics exposes the accumulated counters. Read-only once the
// transform phase has finished.
func (t *Transformer) Metrics() *model.Metrics {
	return t.metrics
}

// Transform consumes the raw records in order and produces the
// accepted, validated, reshaped records. Batching only structures
// progress reporting; it has no effect on the output. A failure in
// one record never stops the rest.
func (t *Transformer) Transform(raw []model.RawProduct) []model.TransformedProduct {
	transformed := make([]model.TransformedProduct, 0, len(raw))

	totalBatches := (len(raw) + t.batchSize - 1) / t.batchSize
	for batchNum := 0; batchNum < totalBatches; batchNum++ {
		start := batchNum * t.batchSize
		end := start + t.batchSize
		if end > len(raw) {
			end = len(raw)
		}
		batch := raw[start:end]

		fmt.Printf("🔄 Processing batch %d/%d (%d products)\n", batchNum+1, totalBatches, len(batch))

		for _, rec := range batch {
			if product := t.processRecord(rec); product != nil {
				transformed = append(transformed, *product)
			}
		}
	}

	fmt.Printf("✅ Transformation complete: %d valid, %d filtered, %d invalid\n",
		t.metrics.ValidRecords, t.metrics.FilteredRecords, t.metrics.InvalidRecords)
	t.log.Info("transformation complete",
		"valid", t.metrics.ValidRecords,
		"filtered", t.metrics.FilteredRecords,
		"invalid", t.metrics.InvalidRecords,
		"categories", len(t.metrics.CategoriesFound),
		"brands", len(t.metrics.BrandsProcessed))

	return transformed
}

// processRecord runs one record through the full per-record chain.
// Panics from unexpected input shapes are contained here and counted
// as invalid records.
func (t *Transformer) processRecord(rec model.RawProduct) (out *model.TransformedProduct) {
	defer func() {
		if r := recover(); r != nil {
			t.metrics.InvalidRecords++
			t.log.Error("transformation error", "product_id", utils.String(rec["id"]), "panic", r)
			out = nil
		}
	}()

	if rec == nil {
		t.metrics.InvalidRecords++
		t.log.Error("transformation error", "reason", "record is not a JSON object")
		return nil
	}

	if !t.filter.ShouldInclude(rec) {
		t.metrics.FilteredRecords++
		return nil
	}

	brand := "Unknown"
	if raw, ok := rec["brand"]; ok {
		brand = utils.String(raw)
	}
	t.metrics.AddBrand(brand)

	product, err := ValidateProduct(rec)
	if err != nil {
		t.metrics.InvalidRecords++
		t.recordValidationFailure(rec, err)
		return nil
	}

	category := DetermineCategory(rec)
	t.metrics.AddCategory(category)
	t.metrics.ValidRecords++

	return &model.TransformedProduct{
		ProductID:          product.ID,
		Brand:              product.Brand,
		Name:               product.Name,
		Category:           category,
		SKU:                product.SKUCode,
		InStock:            product.InStock,
		DeviceState:        product.DeviceState,
		Rating:             product.AverageRating,
		ReviewCount:        product.TotalReviews,
		NetworkTechnology:  ExtractNetworkTechnology(rec),
		StorageOptions:     ExtractStorageOptions(rec),
		ColorOptions:       ExtractColorOptions(rec),
		ProcessedTimestamp: time.Now().UTC(),
	}
}

// recordValidationFailure appends one error-detail entry carrying
// every violation found for the record.
func (t *Transformer) recordValidationFailure(rec model.RawProduct, err error) {
	detail := model.ErrorDetail{
		ProductID:   "unknown",
		ProductName: "unknown",
		Timestamp:   time.Now().UTC(),
	}
	if raw, ok := rec["id"]; ok {
		detail.ProductID = utils.String(raw)
	}
	if raw, ok := rec["name"]; ok {
		detail.ProductName = utils.String(raw)
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		detail.Errors = ve.Violations
	} else {
		detail.Errors = []model.FieldError{{Field: "record", Message: err.Error()}}
	}

	t.metrics.ValidationErrors = append(t.metrics.ValidationErrors, detail)
	t.log.Warn("validation failed", "product_id", detail.ProductID, "errors", len(detail.Errors))
}
