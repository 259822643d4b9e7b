package doctor

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for doctor reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter writes a DoctorReport.
type Reporter struct {
	out     io.Writer
	format  Format
	verbose bool
}

// NewReporter creates a Reporter. Verbose text output includes passed and
// informational checks.
func NewReporter(out io.Writer, format Format, verbose bool) *Reporter {
	return &Reporter{
		out:     out,
		format:  format,
		verbose: verbose,
	}
}

// Report writes report, followed by fixes when any were attempted.
func (r *Reporter) Report(report *DoctorReport, fixes []FixResult) error {
	if report == nil {
		return nil
	}

	if r.format == FormatJSON {
		return r.reportJSON(report, fixes)
	}
	r.reportText(report, fixes)
	return nil
}

func (r *Reporter) reportJSON(report *DoctorReport, fixes []FixResult) error {
	v := struct {
		*DoctorReport
		Fixes []FixResult `json:"fixes,omitempty"`
	}{report, fixes}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encoding JSON report")
}

func (r *Reporter) reportText(report *DoctorReport, fixes []FixResult) {
	shown := 0
	for _, result := range report.Results {
		problem := result.Status == SeverityError || result.Status == SeverityWarning
		if !r.verbose && !problem {
			continue
		}
		shown++
		r.printResult(result, problem)
	}
	if shown > 0 {
		fmt.Fprintln(r.out)
	}

	for _, fix := range fixes {
		if fix.Fixed {
			fmt.Fprintf(r.out, "%s %s: %s\n", color.GreenString("fixed"), fix.Path, fix.Description)
		} else {
			fmt.Fprintf(r.out, "%s %s: %s\n", color.RedString("not fixed"), fix.Path, fix.Description)
		}
	}
	if len(fixes) > 0 {
		fmt.Fprintln(r.out)
	}

	s := report.Summary
	fmt.Fprintf(r.out, "Summary: %s, %d info, %s, %s\n",
		color.GreenString("%d passed", s.Passed),
		s.Info,
		color.YellowString("%d warnings", s.Warnings),
		color.RedString("%d errors", s.Errors))
}

func (r *Reporter) printResult(result *CheckResult, problem bool) {
	var sb strings.Builder
	sb.WriteString(statusIcon(result.Status))
	sb.WriteString(" ")
	sb.WriteString(color.New(color.Bold).Sprintf("[%s] %s", result.Category, result.Name))
	sb.WriteString(": ")
	sb.WriteString(result.Message)

	if r.verbose && len(result.Details) > 0 {
		parts := make([]string, 0, len(result.Details))
		for k, v := range result.Details {
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
		sort.Strings(parts)
		sb.WriteString(" ")
		sb.WriteString(color.New(color.FgHiBlack).Sprintf("(%s)", strings.Join(parts, ", ")))
	}
	fmt.Fprintln(r.out, sb.String())

	if problem && result.FixHint != "" {
		fmt.Fprintf(r.out, "  hint: %s\n", result.FixHint)
	}
}

func statusIcon(s Severity) string {
	switch s {
	case SeverityPass:
		return color.GreenString("✓")
	case SeverityInfo:
		return color.CyanString("ℹ")
	case SeverityWarning:
		return color.YellowString("⚠")
	case SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
