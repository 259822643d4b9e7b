package doctor

import "log/slog"

// Fixer is implemented by checks that doctor --fix can repair. CanFix and
// Fix are only meaningful after Run.
type Fixer interface {
	CanFix() bool
	Fix() []FixResult
}

// FixResult is one attempted repair.
type FixResult struct {
	Path        string `json:"path"`
	Fixed       bool   `json:"fixed"`
	Description string `json:"description"`

	// Err is set when Fixed is false. Description carries its text.
	Err error `json:"-"`
}

func failedFix(path string, err error) FixResult {
	return FixResult{Path: path, Description: err.Error(), Err: err}
}

// RunFixes repairs whatever the already-run checks report as fixable.
func RunFixes(logger *slog.Logger, checks []Check) []FixResult {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var results []FixResult
	for _, c := range checks {
		f, ok := c.(Fixer)
		if !ok || !f.CanFix() {
			continue
		}
		for _, res := range f.Fix() {
			if res.Fixed {
				logger.Info("fixed", "check", c.Name(), "path", res.Path)
			} else {
				logger.Warn("fix failed", "check", c.Name(), "path", res.Path, "error", res.Err)
			}
			results = append(results, res)
		}
	}
	return results
}

// Fix runs RunFixes over the registered checks with the runner's logger.
func (r *Runner) Fix() []FixResult {
	return RunFixes(r.logger, r.checks)
}
