package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPathManager implements output path management
type DefaultPathManager struct{}

// NewDefaultPathManager creates a new path manager
func NewDefaultPathManager() *DefaultPathManager {
	return &DefaultPathManager{}
}

// GetDefaultOutputDir returns the default output directory for a scenario
func (p *DefaultPathManager) GetDefaultOutputDir(scenario string) string {
	s := strings.ToLower(strings.TrimSpace(scenario))
	if s == "" {
		s = "default"
	}
	s = strings.ReplaceAll(s, " ", "_")
	return filepath.Join("results", fmt.Sprintf("scenario_%s", s))
}

// EnsureDirectoryExists creates the directory if it does not exist
func (p *DefaultPathManager) EnsureDirectoryExists(path string) error {
	return os.MkdirAll(path, 0755)
}
