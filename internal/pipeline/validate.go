package pipeline

import (
	"fmt"
	"strings"

	"catalogue-etl/internal/model"
	"catalogue-etl/pkg/utils"
)

// ValidationError enumerates every constraint a record violated. It
// is the expected failure mode for bad input rows; the run continues
// past it.
type ValidationError struct {
	Violations []model.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return fmt.Sprintf("%d validation errors: %s", len(e.Violations), strings.Join(msgs, "; "))
}

// ValidateProduct narrows a raw record into a Product. All violations
// are collected before failing so one bad record surfaces every
// problem at once.
func ValidateProduct(rec model.RawProduct) (model.Product, error) {
	var violations []model.FieldError

	id := utils.TrimmedString(rec["id"])
	if id == "" {
		violations = append(violations, model.FieldError{Field: "id", Message: "required field cannot be empty"})
	}

	brand := utils.TrimmedString(rec["brand"])
	if brand == "" {
		violations = append(violations, model.FieldError{Field: "brand", Message: "required field cannot be empty"})
	}

	name := utils.TrimmedString(rec["name"])
	if name == "" {
		violations = append(violations, model.FieldError{Field: "name", Message: "required field cannot be empty"})
	}

	var rating *float64
	if raw, ok := rec["averageRating"]; ok && raw != nil {
		if f, numeric := utils.Float(raw); !numeric {
			violations = append(violations, model.FieldError{Field: "average_rating", Message: "value is not a valid number"})
		} else if f < 0 || f > 5 {
			violations = append(violations, model.FieldError{Field: "average_rating", Message: "must be between 0 and 5"})
		} else {
			rating = &f
		}
	}

	var reviews *int
	if raw, ok := rec["totalReviews"]; ok && raw != nil {
		if n, numeric := utils.Int(raw); !numeric {
			violations = append(violations, model.FieldError{Field: "total_reviews", Message: "value is not a valid integer"})
		} else if n < 0 {
			violations = append(violations, model.FieldError{Field: "total_reviews", Message: "must be greater than or equal to 0"})
		} else {
			reviews = &n
		}
	}

	if len(violations) > 0 {
		return model.Product{}, &ValidationError{Violations: violations}
	}

	var deviceState *string
	if raw, ok := rec["deviceState"]; ok && raw != nil {
		s := utils.String(raw)
		deviceState = &s
	}

	return model.Product{
		ID:            id,
		Brand:         brand,
		Name:          name,
		Code:          utils.TrimmedString(rec["code"]),
		SKUCode:       resolveSKU(rec, id, brand),
		DeviceState:   deviceState,
		InStock:       utils.Bool(rec["inStock"]),
		AverageRating: rating,
		TotalReviews:  reviews,
		ImageURL:      utils.String(rec["image"]),
		ProductURL:    utils.String(rec["url"]),
	}, nil
}

// resolveSKU walks the fallback chain: explicit SKU, then display
// code, then a brand_id synthesis. Empty components render as "NA",
// though after validation both brand and id are non-empty.
func resolveSKU(rec model.RawProduct, id, brand string) string {
	if sku := utils.TrimmedString(rec["skuCode"]); sku != "" {
		return sku
	}
	if code := utils.TrimmedString(rec["code"]); code != "" {
		return code
	}
	if brand == "" {
		brand = "NA"
	}
	if id == "" {
		id = "NA"
	}
	return fmt.Sprintf("%s_%s", brand, id)
}
