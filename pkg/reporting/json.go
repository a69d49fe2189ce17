package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katiapek/CompoundingSimulator/internal/simulation"
)

// DefaultJSONFormatter implements JSON output
type DefaultJSONFormatter struct{}

// NewDefaultJSONFormatter creates a new JSON formatter
func NewDefaultJSONFormatter() *DefaultJSONFormatter {
	return &DefaultJSONFormatter{}
}

// FormatResult marshals the full result document
func (f *DefaultJSONFormatter) FormatResult(result *simulation.Result) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// PrintResult writes the result document to stdout
func (f *DefaultJSONFormatter) PrintResult(result *simulation.Result) error {
	data, err := f.FormatResult(result)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// WriteResultJSON writes the result document to a file
func (f *DefaultJSONFormatter) WriteResultJSON(result *simulation.Result, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := f.FormatResult(result)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
