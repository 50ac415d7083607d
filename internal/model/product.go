package model

import "time"

// RawProduct is a schema-agnostic catalogue entry as decoded from the
// input document. Nothing about its shape is guaranteed until it has
// been through the validator.
type RawProduct map[string]interface{}

// Product categories assigned during transformation.
const (
	CategoryHandset    = "handset"
	CategoryPayMonthly = "pay_monthly"
	CategoryDevice     = "device"
)

// Product is a catalogue entry that passed field validation. Brand and
// Name are trimmed and non-empty; SKUCode is always resolved.
type Product struct {
	ID            string
	Brand         string
	Name          string
	Code          string
	SKUCode       string
	DeviceState   *string
	InStock       bool
	AverageRating *float64
	TotalReviews  *int
	ImageURL      string
	ProductURL    string
}

// TransformedProduct is the output-facing shape written to the JSON
// and CSV artifacts. Immutable once constructed.
type TransformedProduct struct {
	ProductID          string    `json:"product_id"`
	Brand              string    `json:"brand"`
	Name               string    `json:"name"`
	Category           string    `json:"category"`
	SKU                string    `json:"sku"`
	InStock            bool      `json:"in_stock"`
	DeviceState        *string   `json:"device_state"`
	Rating             *float64  `json:"rating"`
	ReviewCount        *int      `json:"review_count"`
	NetworkTechnology  *string   `json:"network_technology"`
	StorageOptions     []string  `json:"storage_options"`
	ColorOptions       []string  `json:"color_options"`
	ProcessedTimestamp time.Time `json:"processed_timestamp"`
}
