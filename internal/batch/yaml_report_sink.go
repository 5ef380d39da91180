package batch

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteReport encodes the batch results as YAML.
func WriteReport(w io.Writer, results []JobResult) error {
	enc := yaml.NewEncoder(w)
	defer func() {
		_ = enc.Close()
	}()

	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteReportFile writes the report to a file, creating it if needed.
func WriteReportFile(path string, results []JobResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create() > %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return WriteReport(f, results)
}
