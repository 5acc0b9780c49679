package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

// ReportStore persists and retrieves per-record reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
}

type reportFile struct {
	Records []m.Report `yaml:"records"`
}

type reportStore struct{}

// NewReportStore constructs a YAML-backed ReportStore.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveReports(path m.Path, reports []m.Report) error {
	doc := reportFile{Records: make([]m.Report, 0, len(reports))}

	for _, r := range reports {
		if r.Err != nil && r.Error == "" {
			r.Error = r.Err.Error()
		}

		doc.Records = append(doc.Records, r)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write reports to %s: %w", path, err)
	}

	return nil
}

func (rs *reportStore) LoadReports(path m.Path) ([]m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read reports from %s: %w", path, err)
	}

	var doc reportFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode reports from %s: %w", path, err)
	}

	return doc.Records, nil
}
