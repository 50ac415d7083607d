package pipeline

import (
	"strings"

	"catalogue-etl/internal/logger"
	"catalogue-etl/internal/model"
	"catalogue-etl/pkg/utils"
)

// includeTerms marks entries worth keeping when no structural signal
// is present: device brand/model keywords, generic product words, and
// network generation markers.
var includeTerms = []string{
	"iphone", "galaxy", "pixel", "moto", "handset",
	"phone", "tariff", "pay monthly", "5g", "4g",
}

// Filter decides whether a raw record belongs in the output at all.
// Exclusion keywords are a denylist and win over every other signal.
type Filter struct {
	excluded []string
	log      *logger.Logger
}

// NewFilter builds a filter from the configured excluded-category
// keywords. Matching is case-insensitive substring matching.
func NewFilter(excludedCategories []string, log *logger.Logger) *Filter {
	excluded := make([]string, len(excludedCategories))
	for i, kw := range excludedCategories {
		excluded[i] = strings.ToLower(kw)
	}
	return &Filter{excluded: excluded, log: log}
}

// ShouldInclude reports whether the record should flow into the
// transform stage.
func (f *Filter) ShouldInclude(rec model.RawProduct) bool {
	searchText := strings.ToLower(strings.Join([]string{
		utils.String(rec["name"]),
		utils.String(rec["code"]),
		utils.String(rec["deviceState"]),
		utils.String(rec["productType"]),
	}, " "))

	// Denylist first: an excluded term rejects the record even when it
	// otherwise looks like a device.
	for _, excluded := range f.excluded {
		if strings.Contains(searchText, excluded) {
			f.log.Debug("excluding product", "id", utils.String(rec["id"]), "keyword", excluded)
			return false
		}
	}

	// A populated specification or device-option block is a structural
	// signal of a real device entry.
	if hasEntries(rec, "specificationGroups") || hasEntries(rec, "deviceOptions") {
		return true
	}

	for _, term := range includeTerms {
		if strings.Contains(searchText, term) {
			f.log.Debug("including product", "id", utils.String(rec["id"]), "term", term)
			return true
		}
	}

	return false
}

// hasEntries reports whether the record carries a non-empty list under
// the given key.
func hasEntries(rec model.RawProduct, key string) bool {
	list, ok := rec[key].([]interface{})
	return ok && len(list) > 0
}
