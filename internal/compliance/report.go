package compliance

import (
	"encoding/json"

	"github.com/pthm/compliance-report/internal/profile"
	"github.com/pthm/compliance-report/internal/results"
)

// Report is the read-only projection rendered by the reporters.
type Report struct {
	ModuleType          string
	ComplianceFramework string

	// Summary is the input summary object as written, extra keys included.
	Summary json.RawMessage

	// Counts is Summary normalized to the three check counts.
	Counts ScanSummary
	Status Status
	Notes  string

	Title     string
	Scope     string
	NoteItems []string
}

// NewReport builds a report from the loaded results and profile metadata.
func NewReport(doc *results.Document, p *profile.Profile) *Report {
	if doc == nil {
		doc = results.Default()
	}

	counts := Aggregate(doc)
	return &Report{
		ModuleType:          p.ModuleType,
		ComplianceFramework: p.ComplianceFramework,
		Summary:             doc.RawSummary(),
		Counts:              counts,
		Status:              StatusOf(doc),
		Notes:               p.Notes,
		Title:               p.Title,
		Scope:               p.Scope,
		NoteItems:           append([]string(nil), p.NoteItems...),
	}
}

// Compliant reports whether the report carries StatusCompliant.
func (r *Report) Compliant() bool {
	return r.Status == StatusCompliant
}
