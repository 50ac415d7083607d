package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"catalogue-etl/internal/logger"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogue.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}
	return path
}

func TestExtract_ListRoot(t *testing.T) {
	path := writeInput(t, `[{"id":"1","name":"iPhone 15"},{"id":"2","name":"Pixel 8"}]`)

	records, err := Extract(path, logger.New("error"))
	if err != nil {
		t.Fatalf("Extract returned unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0]["id"] != "1" {
		t.Errorf("records[0][id] = %v, want 1", records[0]["id"])
	}
}

func TestExtract_SingleObjectWrapped(t *testing.T) {
	path := writeInput(t, `{"id":"1","name":"iPhone 15"}`)

	records, err := Extract(path, logger.New("error"))
	if err != nil {
		t.Fatalf("Extract returned unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want single record wrapped in list", len(records))
	}
}

func TestExtract_NonObjectEntriesKeptAsNil(t *testing.T) {
	path := writeInput(t, `[{"id":"1"},"bogus",42]`)

	records, err := Extract(path, logger.New("error"))
	if err != nil {
		t.Fatalf("Extract returned unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	if records[1] != nil || records[2] != nil {
		t.Error("non-object entries should be nil records")
	}
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "nope.json"), logger.New("error"))
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %q, want a not-found error", err)
	}
}

func TestExtract_MalformedJSON(t *testing.T) {
	path := writeInput(t, `{"id": "1",`)

	_, err := Extract(path, logger.New("error"))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error = %q, want a parse error", err)
	}
}

func TestExtract_ScalarRootRejected(t *testing.T) {
	path := writeInput(t, `"just a string"`)

	if _, err := Extract(path, logger.New("error")); err == nil {
		t.Fatal("expected error for scalar JSON root")
	}
}
