package commands

import (
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/vssetup/internal/config"
	"github.com/thoreinstein/vssetup/internal/doctor"
	"github.com/thoreinstein/vssetup/internal/errors"
	"github.com/thoreinstein/vssetup/internal/logging"
	"github.com/thoreinstein/vssetup/internal/paths"
)

var (
	doctorJSON bool
	doctorFix  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "write a default configuration file when none exists")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the setup component and configuration",
	Long: `Run diagnostic checks on the setup configuration component, the
registered instances and the vswhere configuration file.

Output modes:
  (default)   Show errors and warnings
  -v          Show all checks including passed ones
  -q          No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  # Check the installation
  vswhere doctor

  # Write a default configuration file if missing
  vswhere doctor --fix`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())
	runner := doctor.NewRunner(logger)

	loc, err := openLocator(logger)
	if err != nil {
		runner.AddCheck(doctor.NewComponentOpenFailure(err))
	} else {
		defer func() {
			if err := loc.Close(); err != nil {
				logger.Warn("closing setup configuration", "error", err)
			}
		}()
		runner.AddCheck(doctor.NewComponentCheck(loc))
		runner.AddCheck(doctor.NewExtendedEnumerationCheck(loc))
		runner.AddCheck(doctor.NewInstancePathCheck(loc))
	}

	// A missing file is reported by the check itself, as fixable.
	loadErr := configLoadErr
	if errors.Is(loadErr, fs.ErrNotExist) {
		loadErr = nil
	}
	var cfg *config.Config
	if loadErr == nil {
		cfg = config.Current()
	}
	runner.AddCheck(doctor.NewConfigCheck(configTarget(), cfg, loadErr))

	report := runner.Run()

	var fixes []doctor.FixResult
	if doctorFix {
		fixes = runner.Fix()
	}

	if !quiet {
		format := doctor.FormatText
		if doctorJSON {
			format = doctor.FormatJSON
		}
		if err := doctor.NewReporter(cmd.OutOrStdout(), format, verbosity > 0).Report(report, fixes); err != nil {
			return errors.NewSystemError(err, "")
		}
	}

	switch report.Worst() {
	case doctor.SeverityError:
		return errors.NewExitError(nil, errors.ExitSystem)
	case doctor.SeverityWarning:
		return errors.NewExitError(nil, errors.ExitUser)
	}
	return nil
}

// configTarget is the file config commands read and write.
func configTarget() string {
	if configFile != "" {
		return configFile
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return paths.ConfigFile()
}
