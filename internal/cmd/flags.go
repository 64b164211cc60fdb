package cmd

import (
	"github.com/pthm/compliance-report/internal/reporter"
)

// formatFlag is a pflag.Value that only accepts reporter formats, so an
// invalid --format fails flag parsing before anything is read or written.
type formatFlag struct {
	value reporter.Format
}

func (f *formatFlag) String() string {
	return string(f.value)
}

func (f *formatFlag) Set(s string) error {
	v, err := reporter.ParseFormat(s)
	if err != nil {
		return err
	}
	f.value = v
	return nil
}

func (f *formatFlag) Type() string {
	return "format"
}
