package doctor

import (
	"time"

	"github.com/cockroachdb/errors"
)

// Severity ranks a check result. Higher is worse.
type Severity int

const (
	SeverityPass Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

var severityNames = [...]string{"pass", "info", "warning", "error"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// MarshalText encodes s by name, so JSON reports read "warning" rather
// than 2.
func (s Severity) MarshalText() ([]byte, error) {
	if s.String() == "unknown" {
		return nil, errors.Newf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	for i, name := range severityNames {
		if name == string(text) {
			*s = Severity(i)
			return nil
		}
	}
	return errors.Newf("invalid severity %q", text)
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Status   Severity `json:"status"`
	Message  string   `json:"message"`

	// Details holds check-specific context, such as the instances whose
	// paths are missing.
	Details map[string]any `json:"details,omitempty"`

	// Fixable is set when doctor --fix can resolve the problem.
	Fixable bool   `json:"fixable,omitempty"`
	FixHint string `json:"fix_hint,omitempty"`

	Duration time.Duration `json:"duration_ns"`
}

// Summary counts results by severity.
type Summary struct {
	Passed   int `json:"passed"`
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

func (s *Summary) add(status Severity) {
	switch status {
	case SeverityPass:
		s.Passed++
	case SeverityInfo:
		s.Info++
	case SeverityWarning:
		s.Warnings++
	case SeverityError:
		s.Errors++
	}
}

// DoctorReport is the result of one doctor run.
type DoctorReport struct {
	Timestamp time.Time      `json:"timestamp"`
	Duration  time.Duration  `json:"duration_ns"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

// Worst returns the highest severity in the report.
func (r *DoctorReport) Worst() Severity {
	switch {
	case r.Summary.Errors > 0:
		return SeverityError
	case r.Summary.Warnings > 0:
		return SeverityWarning
	case r.Summary.Info > 0:
		return SeverityInfo
	}
	return SeverityPass
}
