// Package compliance turns loaded Checkov results into a compliance report.
package compliance

import (
	"math"
	"strconv"
	"strings"

	"github.com/pthm/compliance-report/internal/results"
	"github.com/tidwall/gjson"
)

// ScanSummary holds the check counts of a scan.
type ScanSummary struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Status is the compliance verdict derived from a ScanSummary.
type Status string

const (
	StatusCompliant      Status = "compliant"
	StatusReviewRequired Status = "review_required"
)

// StatusFor returns StatusCompliant when no checks failed.
func StatusFor(s ScanSummary) Status {
	if s.Failed == 0 {
		return StatusCompliant
	}
	return StatusReviewRequired
}

// StatusOf returns the status for doc. The failed value counts as zero only
// when it is absent or numerically zero, so values that normalize to 0 in
// ScanSummary (0.5, "many", true) still require review.
func StatusOf(doc *results.Document) Status {
	if doc == nil {
		doc = results.Default()
	}
	if !isZero(doc.Summary().Get("failed")) {
		return StatusReviewRequired
	}
	return StatusFor(Aggregate(doc))
}

// Aggregate reads the summary counts from doc. Missing counts, or a missing
// summary, are zero. A nil doc is treated as results.Default().
func Aggregate(doc *results.Document) ScanSummary {
	if doc == nil {
		doc = results.Default()
	}

	s := doc.Summary()
	return ScanSummary{
		Passed:  count(s.Get("passed")),
		Failed:  count(s.Get("failed")),
		Skipped: count(s.Get("skipped")),
	}
}

// count converts a summary value to an int. Whole numbers that fit in an
// int and integer strings are used; anything else is 0.
func count(v gjson.Result) int {
	switch v.Type {
	case gjson.Number:
		if v.Num != math.Trunc(v.Num) || v.Num < math.MinInt || v.Num >= -math.MinInt {
			return 0
		}
		return int(v.Int())
	case gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func isZero(v gjson.Result) bool {
	switch {
	case !v.Exists():
		return true
	case v.Type == gjson.Number:
		return v.Num == 0
	case v.Type == gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(v.Str))
		return err == nil && n == 0
	default:
		return false
	}
}
