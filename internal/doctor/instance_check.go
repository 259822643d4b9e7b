package doctor

import (
	"fmt"
	"os"

	"github.com/thoreinstein/vssetup/internal/cli"
)

// InstancePathCheck verifies that every registered instance still has its
// installation directory.
type InstancePathCheck struct {
	locator cli.Locator
	stat    func(string) (os.FileInfo, error)
}

var _ Check = (*InstancePathCheck)(nil)

// NewInstancePathCheck creates an installation path check.
func NewInstancePathCheck(locator cli.Locator) *InstancePathCheck {
	return &InstancePathCheck{locator: locator, stat: os.Stat}
}

// Name returns the unique identifier for this check.
func (c *InstancePathCheck) Name() string {
	return "instance-paths"
}

// Category returns the grouping for this check.
func (c *InstancePathCheck) Category() string {
	return "instances"
}

// Run executes the check.
func (c *InstancePathCheck) Run() *CheckResult {
	if !c.locator.Installed() {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "skipped; component is not registered",
		}
	}

	seq, err := c.locator.Instances(false)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("enumerating instances: %v", err),
		}
	}

	var checked int
	missing := map[string]any{}
	for inst := range seq {
		id, err := inst.ID()
		if err != nil {
			return &CheckResult{
				Name:     c.Name(),
				Category: c.Category(),
				Status:   SeverityError,
				Message:  fmt.Sprintf("reading instance id: %v", err),
			}
		}
		path, err := inst.Path()
		if err != nil {
			return &CheckResult{
				Name:     c.Name(),
				Category: c.Category(),
				Status:   SeverityError,
				Message:  fmt.Sprintf("reading installation path of %s: %v", id, err),
			}
		}

		checked++
		if info, err := c.stat(path); err != nil || !info.IsDir() {
			missing[id] = path
		}
	}

	details := map[string]any{"checked": checked}
	if len(missing) > 0 {
		details["missing"] = missing
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("%d of %d instance(s) have no installation directory", len(missing), checked),
			Details:  details,
			FixHint:  "repair or remove the affected instances with the Visual Studio Installer",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("%d instance(s) found", checked),
		Details:  details,
	}
}
