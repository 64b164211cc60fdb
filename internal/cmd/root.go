package cmd

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/pthm/compliance-report/internal/compliance"
	"github.com/pthm/compliance-report/internal/profile"
	"github.com/pthm/compliance-report/internal/reporter"
	"github.com/pthm/compliance-report/internal/results"
	"github.com/pthm/compliance-report/internal/ui"
	"github.com/pthm/compliance-report/internal/version"
	"github.com/spf13/cobra"
)

type options struct {
	resultsDir string
	format     formatFlag
	output     string
	profile    string
	verbose    bool
}

// NewRootCmd builds the compliance-report command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "compliance-report",
		Short: "Summarize Checkov results as a compliance report",
		Long: `compliance-report reads checkov-results.json from a results directory
and writes a compliance summary as Markdown or JSON.

A missing results file is treated as a scan with no checks. The report
is "compliant" when no checks failed and "review_required" otherwise.`,
		Example: `  compliance-report --results-dir ./scan --format markdown --output COMPLIANCE.md
  compliance-report --results-dir ./scan --format json --output compliance.json`,
		Args:          cobra.NoArgs,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.resultsDir, "results-dir", "", "Directory containing "+results.FileName)
	f.Var(&opts.format, "format", "Output format (markdown, json)")
	f.StringVarP(&opts.output, "output", "o", "", "Report file to create or overwrite")
	f.StringVar(&opts.profile, "profile", profile.Default, "Report metadata profile")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	for _, name := range []string{"results-dir", "format", "output"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

// Execute runs the root command with fang's styled help and error output.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, NewRootCmd(),
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
	)
}

func runReport(cmd *cobra.Command, opts *options) error {
	u := ui.New(cmd.ErrOrStderr(), opts.verbose)
	u.Verbosef("%s", version.Info())

	prof, err := profile.Load(opts.profile)
	if err != nil {
		return err
	}

	if _, err := os.Stat(opts.resultsDir); errors.Is(err, fs.ErrNotExist) {
		u.Warnf("results directory %s does not exist", u.Path(opts.resultsDir))
	}

	doc, err := results.Load(opts.resultsDir)
	if err != nil {
		return err
	}
	if doc.Exists() {
		u.Verbosef("Loaded %s", u.Path(doc.Path))
	} else {
		u.Verbosef("No %s in %s, using an empty summary", results.FileName, u.Path(opts.resultsDir))
	}

	report := compliance.NewReport(doc, prof)
	u.Verbosef("Passed: %d, failed: %d, skipped: %d (%s)",
		report.Counts.Passed, report.Counts.Failed, report.Counts.Skipped, report.Status)

	if err := reporter.WriteFile(opts.output, opts.format.value, report); err != nil {
		return err
	}

	u.Successf("Wrote %s report to %s", opts.format.value, u.Path(opts.output))
	return nil
}
