package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	u := New(&buf, false)

	if u.IsInteractive() {
		t.Error("IsInteractive() = true for a bytes.Buffer")
	}
	if u.Styles.IconSuccess != "OK:" {
		t.Errorf("IconSuccess = %q, want ASCII fallback", u.Styles.IconSuccess)
	}
}

func TestVerbosef(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		want    string
	}{
		{"quiet", false, ""},
		{"verbose", true, "INFO: loaded 3 checks\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf, tt.verbose).Verbosef("loaded %d checks", 3)
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestSuccessf(t *testing.T) {
	var buf bytes.Buffer
	u := New(&buf, true)
	u.Successf("wrote %s", u.Path("out.md"))

	if got, want := buf.String(), "OK: wrote out.md\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWarnf_IgnoresVerbose(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Warnf("careful")

	if !strings.Contains(buf.String(), "WARN: careful") {
		t.Errorf("output = %q, want warning", buf.String())
	}
}
