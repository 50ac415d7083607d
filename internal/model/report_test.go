package model

import (
	"reflect"
	"testing"
	"time"
)

func TestNewValidationReport(t *testing.T) {
	m := NewMetrics()
	m.TotalRecords = 10
	m.ValidRecords = 7
	m.InvalidRecords = 1
	m.FilteredRecords = 2
	m.AddBrand("Samsung")
	m.AddBrand("Apple")
	m.AddCategory(CategoryHandset)

	report := NewValidationReport(m, 1500*time.Millisecond)

	if report.SuccessRate != 70 {
		t.Errorf("SuccessRate = %.1f, want 70", report.SuccessRate)
	}
	if report.ProcessingTime != 1.5 {
		t.Errorf("ProcessingTime = %v, want 1.5", report.ProcessingTime)
	}
	if !reflect.DeepEqual(report.BrandsProcessed, []string{"Apple", "Samsung"}) {
		t.Errorf("BrandsProcessed = %v, want sorted [Apple Samsung]", report.BrandsProcessed)
	}
	if report.ValidationErrors == nil {
		t.Error("ValidationErrors is nil, want empty list for JSON output")
	}
}

func TestNewValidationReport_ZeroTotal(t *testing.T) {
	report := NewValidationReport(NewMetrics(), time.Second)
	if report.SuccessRate != 0 {
		t.Errorf("SuccessRate = %.1f, want 0 when no records were processed", report.SuccessRate)
	}
}
