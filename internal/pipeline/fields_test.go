package pipeline

import (
	"reflect"
	"testing"

	"catalogue-etl/internal/model"
)

func TestDetermineCategory(t *testing.T) {
	tests := []struct {
		name string
		rec  model.RawProduct
		want string
	}{
		{"iphone in name", model.RawProduct{"name": "iPhone 15 Pro"}, model.CategoryHandset},
		{"galaxy in code", model.RawProduct{"name": "Flagship", "code": "GALAXY-S24"}, model.CategoryHandset},
		{"tariff in name", model.RawProduct{"name": "Unlimited Data Tariff"}, model.CategoryPayMonthly},
		{"plan in name", model.RawProduct{"name": "Family Plan 50GB"}, model.CategoryPayMonthly},
		{"handset term beats tariff term", model.RawProduct{"name": "Pixel tariff bundle"}, model.CategoryHandset},
		{"no match", model.RawProduct{"name": "Smart Watch"}, model.CategoryDevice},
		{"empty record", model.RawProduct{}, model.CategoryDevice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineCategory(tt.rec); got != tt.want {
				t.Errorf("DetermineCategory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractNetworkTechnology(t *testing.T) {
	rec := model.RawProduct{
		"specificationGroups": []interface{}{
			map[string]interface{}{
				"specifications": []interface{}{
					map[string]interface{}{"name": "Display Size", "value": "6.1 inch"},
				},
			},
			map[string]interface{}{
				"specifications": []interface{}{
					map[string]interface{}{"name": "Network Technology", "value": "5G"},
					map[string]interface{}{"name": "Network Bands", "value": "n1, n78"},
				},
			},
		},
	}

	got := ExtractNetworkTechnology(rec)
	if got == nil || *got != "5G" {
		t.Errorf("ExtractNetworkTechnology() = %v, want first network match %q", got, "5G")
	}
}

func TestExtractNetworkTechnology_Absent(t *testing.T) {
	tests := []struct {
		name string
		rec  model.RawProduct
	}{
		{"no specification groups", model.RawProduct{}},
		{
			"no network specification",
			model.RawProduct{
				"specificationGroups": []interface{}{
					map[string]interface{}{
						"specifications": []interface{}{
							map[string]interface{}{"name": "Weight", "value": "190g"},
						},
					},
				},
			},
		},
		{
			"malformed group entries",
			model.RawProduct{"specificationGroups": []interface{}{"not a map", 42}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractNetworkTechnology(tt.rec); got != nil {
				t.Errorf("ExtractNetworkTechnology() = %v, want nil", *got)
			}
		})
	}
}

func TestExtractStorageAndColorOptions(t *testing.T) {
	rec := model.RawProduct{
		"deviceOptions": []interface{}{
			map[string]interface{}{
				"color": map[string]interface{}{"name": "Black"},
				"capacityValues": []interface{}{
					map[string]interface{}{"name": "256GB"},
					map[string]interface{}{"name": "256GB"},
				},
			},
			map[string]interface{}{
				"color": map[string]interface{}{"name": "Blue"},
				"capacityValues": []interface{}{
					map[string]interface{}{"name": "128GB"},
					map[string]interface{}{"name": ""},
				},
			},
		},
	}

	storage := ExtractStorageOptions(rec)
	if !reflect.DeepEqual(storage, []string{"128GB", "256GB"}) {
		t.Errorf("ExtractStorageOptions() = %v, want deduplicated sorted [128GB 256GB]", storage)
	}

	colors := ExtractColorOptions(rec)
	if !reflect.DeepEqual(colors, []string{"Black", "Blue"}) {
		t.Errorf("ExtractColorOptions() = %v, want [Black Blue]", colors)
	}
}

func TestExtractOptions_MissingStructures(t *testing.T) {
	rec := model.RawProduct{"name": "Bare record"}

	if got := ExtractStorageOptions(rec); len(got) != 0 {
		t.Errorf("ExtractStorageOptions() = %v, want empty", got)
	}
	if got := ExtractColorOptions(rec); len(got) != 0 {
		t.Errorf("ExtractColorOptions() = %v, want empty", got)
	}
	if got := ExtractStorageOptions(rec); got == nil {
		t.Error("ExtractStorageOptions() returned nil, want empty slice")
	}
}
