package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/compliance-report/internal/compliance"
)

// JSONReporter outputs the report as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format. Field order is the key
// order of the written object.
type JSONOutput struct {
	ModuleType          string          `json:"module_type"`
	ComplianceFramework string          `json:"compliance_framework"`
	Summary             json.RawMessage `json:"summary"`
	Status              string          `json:"status"`
	Notes               string          `json:"notes"`
}

// Report outputs the report as indented JSON
func (r *JSONReporter) Report(rep *compliance.Report) error {
	summary := rep.Summary
	if len(summary) == 0 {
		summary = json.RawMessage("{}")
	}

	output := JSONOutput{
		ModuleType:          rep.ModuleType,
		ComplianceFramework: rep.ComplianceFramework,
		Summary:             summary,
		Status:              string(rep.Status),
		Notes:               rep.Notes,
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(output)
}
