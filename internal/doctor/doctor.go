// Package doctor diagnoses the Setup Configuration component, the
// registered instances and the vswhere configuration file.
package doctor

import (
	"log/slog"
	"time"
)

// Check is one diagnostic.
type Check interface {
	Name() string
	// Category groups checks in reports, such as "component" or "config".
	Category() string
	Run() *CheckResult
}

// Runner runs checks in registration order.
type Runner struct {
	logger *slog.Logger
	checks []Check
	now    func() time.Time
}

// NewRunner creates a Runner. A nil logger discards output.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{logger: logger, now: time.Now}
}

func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

func (r *Runner) Checks() []Check {
	return r.checks
}

// Run executes every check and summarizes the results. Results missing a
// name or category get the check's own.
func (r *Runner) Run() *DoctorReport {
	start := r.now()
	report := &DoctorReport{
		Timestamp: start.UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		began := r.now()
		result := check.Run()
		result.Duration = r.now().Sub(began)
		if result.Name == "" {
			result.Name = check.Name()
		}
		if result.Category == "" {
			result.Category = check.Category()
		}

		r.logger.Debug("check finished",
			"check", result.Name,
			"status", result.Status,
			"duration", result.Duration)

		report.Results = append(report.Results, result)
		report.Summary.add(result.Status)
	}

	report.Duration = r.now().Sub(start)
	return report
}
