package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thoreinstein/vssetup/internal/config"
	"github.com/thoreinstein/vssetup/internal/errors"
	"github.com/thoreinstein/vssetup/internal/paths"
	"github.com/thoreinstein/vssetup/pkg/fileutil"
)

// ConfigCheck validates the vswhere configuration file. A missing file is
// fixable by writing the defaults.
type ConfigCheck struct {
	path    string
	cfg     *config.Config
	loadErr error

	missing bool
}

var (
	_ Check = (*ConfigCheck)(nil)
	_ Fixer = (*ConfigCheck)(nil)
)

// NewConfigCheck creates a configuration check for the file at path, given
// the result of loading it.
func NewConfigCheck(path string, cfg *config.Config, loadErr error) *ConfigCheck {
	return &ConfigCheck{path: path, cfg: cfg, loadErr: loadErr}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string {
	return "config-valid"
}

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string {
	return "config"
}

// Run executes the check.
func (c *ConfigCheck) Run() *CheckResult {
	details := map[string]any{"path": c.path}

	if c.loadErr != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("loading configuration: %v", c.loadErr),
			Details:  details,
			FixHint:  "fix or remove " + c.path,
		}
	}

	if errs := config.Validate(c.cfg); len(errs) > 0 {
		problems := make([]string, 0, len(errs))
		for _, err := range errs {
			problems = append(problems, err.Error())
		}
		details["problems"] = problems
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("%d invalid configuration value(s)", len(errs)),
			Details:  details,
			FixHint:  "run: vswhere config set <key> <value>",
		}
	}

	if _, err := os.Stat(c.path); errors.Is(err, os.ErrNotExist) {
		c.missing = true
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no configuration file; defaults in use",
			Details:  details,
			Fixable:  true,
			FixHint:  "run: vswhere doctor --fix",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "configuration is valid",
		Details:  details,
	}
}

// CanFix reports whether the configuration file is missing.
func (c *ConfigCheck) CanFix() bool {
	return c.missing
}

// Fix writes the default configuration.
func (c *ConfigCheck) Fix() []FixResult {
	if err := paths.EnsureDir(filepath.Dir(c.path), 0); err != nil {
		return []FixResult{failedFix(c.path, errors.Wrap(err, "creating config directory"))}
	}
	if err := fileutil.AtomicWriteYAML(c.path, config.Default()); err != nil {
		return []FixResult{failedFix(c.path, errors.Wrap(err, "writing default configuration"))}
	}

	c.missing = false
	return []FixResult{{Path: c.path, Fixed: true, Description: "wrote default configuration"}}
}
