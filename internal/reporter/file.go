package reporter

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pthm/compliance-report/internal/compliance"
)

// WriteFile renders r in format and writes it to path, creating or
// truncating the file. The report is fully rendered before path is opened,
// so a render failure leaves any existing file untouched.
func WriteFile(path string, format Format, r *compliance.Report) error {
	var buf bytes.Buffer

	rep, err := New(format, &buf)
	if err != nil {
		return err
	}

	if err := rep.Report(r); err != nil {
		return fmt.Errorf("rendering %s report: %w", format, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	return nil
}
