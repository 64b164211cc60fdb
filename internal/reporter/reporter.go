package reporter

import (
	"errors"
	"fmt"
	"io"

	"github.com/pthm/compliance-report/internal/compliance"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Formats lists the accepted formats in help order.
var Formats = []Format{FormatMarkdown, FormatJSON}

var (
	// ErrInvalidFormat indicates a format name other than markdown or json
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOutputWrite indicates the destination file could not be written
	ErrOutputWrite = errors.New("cannot write report")
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want markdown or json)", ErrInvalidFormat, s)
}

// Reporter defines the interface for rendering a compliance report
type Reporter interface {
	// Report renders r to the reporter's writer
	Report(r *compliance.Report) error
}

// New returns the reporter for format writing to w.
func New(format Format, w io.Writer) (Reporter, error) {
	switch format {
	case FormatMarkdown:
		return NewMarkdownReporter(w), nil
	case FormatJSON:
		return NewJSONReporter(w), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrInvalidFormat, format)
	}
}
