package reporter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pthm/compliance-report/internal/compliance"
)

// Row labels and banners are consumed verbatim downstream.
const (
	labelPassed  = "\u2705 Passed"        // ✅
	labelFailed  = "\u274c Failed"        // ❌
	labelSkipped = "\u23ed\ufe0f Skipped" // ⏭️

	bannerCompliant      = "\u2705 **COMPLIANT**"             // ✅
	bannerReviewRequired = "\u26a0\ufe0f **REVIEW REQUIRED**" // ⚠️
)

// MarkdownReporter outputs the narrative Markdown report
type MarkdownReporter struct {
	w io.Writer
}

// NewMarkdownReporter creates a new Markdown reporter
func NewMarkdownReporter(w io.Writer) *MarkdownReporter {
	return &MarkdownReporter{w: w}
}

// Report outputs the report as Markdown
func (r *MarkdownReporter) Report(rep *compliance.Report) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", rep.Title)

	buf.WriteString("## Summary\n\n")
	fmt.Fprintf(&buf, "%s\n\n", rep.Scope)

	buf.WriteString("## Results\n\n")
	buf.WriteString("| Check Type | Count |\n")
	buf.WriteString("|------------|-------|\n")
	fmt.Fprintf(&buf, "| %s | %d |\n", labelPassed, rep.Counts.Passed)
	fmt.Fprintf(&buf, "| %s | %d |\n", labelFailed, rep.Counts.Failed)
	fmt.Fprintf(&buf, "| %s | %d |\n\n", labelSkipped, rep.Counts.Skipped)

	buf.WriteString("## Compliance Status\n\n")
	fmt.Fprintf(&buf, "%s\n\n", Banner(rep.Status))

	buf.WriteString("## Notes\n\n")
	for _, note := range rep.NoteItems {
		fmt.Fprintf(&buf, "- %s\n", note)
	}

	_, err := r.w.Write(buf.Bytes())
	return err
}

// Banner returns the Markdown compliance banner for a status.
func Banner(s compliance.Status) string {
	if s == compliance.StatusCompliant {
		return bannerCompliant
	}
	return bannerReviewRequired
}
