package doctor

import (
	"fmt"
	"runtime"

	"github.com/thoreinstein/vssetup/internal/cli"
)

// ComponentCheck verifies that the Setup Configuration component is
// registered.
type ComponentCheck struct {
	locator cli.Locator
	openErr error
}

var _ Check = (*ComponentCheck)(nil)

// NewComponentCheck creates a component registration check.
func NewComponentCheck(locator cli.Locator) *ComponentCheck {
	return &ComponentCheck{locator: locator}
}

// NewComponentOpenFailure reports that the component could not be created
// for a reason other than being absent.
func NewComponentOpenFailure(err error) *ComponentCheck {
	return &ComponentCheck{openErr: err}
}

// Name returns the unique identifier for this check.
func (c *ComponentCheck) Name() string {
	return "component-registered"
}

// Category returns the grouping for this check.
func (c *ComponentCheck) Category() string {
	return "component"
}

// Run executes the check.
func (c *ComponentCheck) Run() *CheckResult {
	details := map[string]any{"os": runtime.GOOS}

	if c.openErr != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("creating setup configuration: %v", c.openErr),
			Details:  details,
			FixHint:  "repair the Visual Studio Installer",
		}
	}

	if c.locator.Installed() {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  "setup configuration component is registered",
			Details:  details,
		}
	}

	hint := "install Visual Studio 2017 or later, or the Visual Studio Installer"
	if runtime.GOOS != "windows" {
		hint = "the setup configuration component only exists on Windows"
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityWarning,
		Message:  "setup configuration component is not registered; no instances can be found",
		Details:  details,
		FixHint:  hint,
	}
}

// ExtendedEnumerationCheck reports whether incomplete instances can be
// listed with --all.
type ExtendedEnumerationCheck struct {
	locator cli.Locator
}

var _ Check = (*ExtendedEnumerationCheck)(nil)

// NewExtendedEnumerationCheck creates an extended enumeration check.
func NewExtendedEnumerationCheck(locator cli.Locator) *ExtendedEnumerationCheck {
	return &ExtendedEnumerationCheck{locator: locator}
}

// Name returns the unique identifier for this check.
func (c *ExtendedEnumerationCheck) Name() string {
	return "extended-enumeration"
}

// Category returns the grouping for this check.
func (c *ExtendedEnumerationCheck) Category() string {
	return "component"
}

// Run executes the check.
func (c *ExtendedEnumerationCheck) Run() *CheckResult {
	switch {
	case !c.locator.Installed():
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "skipped; component is not registered",
		}
	case c.locator.SupportsAllInstances():
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  "incomplete instances can be listed with --all",
		}
	default:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "installed component does not support --all",
			FixHint:  "update the Visual Studio Installer",
		}
	}
}
