package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputManager handles output file organization for a pipeline run.
type OutputManager struct {
	BaseDir string
}

// NewOutputManager creates an output manager rooted at baseDir.
func NewOutputManager(baseDir string) *OutputManager {
	return &OutputManager{BaseDir: baseDir}
}

// EnsureBaseDir creates the output directory if it doesn't exist.
func (om *OutputManager) EnsureBaseDir() error {
	if err := os.MkdirAll(om.BaseDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// ArtifactPath returns the full path for a named output artifact.
// Path separators in the name are stripped.
func (om *OutputManager) ArtifactPath(name string) string {
	return filepath.Join(om.BaseDir, filepath.Base(name))
}

// DownloadURL generates the API download URL for a run artifact.
func (om *OutputManager) DownloadURL(runID, name string) string {
	return fmt.Sprintf("/api/v1/download/%s/%s", runID, filepath.Base(name))
}
