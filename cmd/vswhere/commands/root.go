// Package commands implements the vswhere CLI.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/vssetup/cmd"
	"github.com/thoreinstein/vssetup/internal/cli"
	"github.com/thoreinstein/vssetup/internal/config"
	"github.com/thoreinstein/vssetup/internal/errors"
	"github.com/thoreinstein/vssetup/internal/logging"
	"github.com/thoreinstein/vssetup/internal/paths"
)

// debugEnv raises the log level when no -v flag is given.
const debugEnv = "VSWHERE_DEBUG"

var (
	verbosity  int
	quiet      bool
	logFormat  string
	logFile    string
	configFile string

	listAll    bool
	listLocale string
	listPath   string
	listFormat string
)

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// openLocator is replaced in tests.
var openLocator = cli.Open

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v", "increase verbosity level (e.g., -v, -vv)")
	pf.BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	pf.StringVar(&logFormat, "log-format", "text", "log format: text, json")
	pf.StringVar(&logFile, "log-file", "", "write logs to file in JSON format")
	pf.StringVar(&configFile, "config", "", "configuration file (default: "+paths.ConfigFile()+")")
	pf.BoolVar(&listAll, config.KeyAll, false, "include incomplete instances")
	pf.StringVar(&listLocale, config.KeyLocale, "", "locale for display names and descriptions, as a BCP 47 tag")

	rootCmd.Flags().StringVar(&listPath, "path", "", "print the instance that owns this path")
	rootCmd.Flags().StringVar(&listFormat, config.KeyFormat, config.FormatText, "output format: text, json")

	rootCmd.Version = cmd.Info().Version
	rootCmd.SetVersionTemplate("vswhere version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()

	for _, key := range []string{config.KeyAll, config.KeyLocale, config.KeyFormat} {
		f := rootCmd.PersistentFlags().Lookup(key)
		if f == nil {
			f = rootCmd.Flags().Lookup(key)
		}
		_ = viper.BindPFlag(key, f)
	}

	_, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "vswhere",
	Short: "Locate Visual Studio 2017 and newer installations",
	Long: `vswhere lists the Visual Studio instances registered with the setup
configuration component: identifier, install date, name, path, version,
and the localized display name and description.

When the component is not registered nothing is printed and the exit
status is 0.`,
	Example: `  # List complete instances
  vswhere

  # Include incomplete instances, as JSON
  vswhere --all --format json

  # Find the instance owning a directory
  vswhere --path "C:\Program Files\Microsoft Visual Studio\2022\Community\Common7"

  See Also: vswhere pick, vswhere doctor, vswhere config`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfigLoaded(cmd)
	},
	RunE: runList,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			switch os.Getenv(debugEnv) {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	cfg := logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "check the --log-file path")
		}
		cfg.File = f
	}

	logger := logging.New(cfg)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfigLoaded surfaces a config load failure, except for commands
// that diagnose or replace the file.
func checkConfigLoaded(cmd *cobra.Command) error {
	if configLoadErr == nil {
		return nil
	}
	switch cmd.Name() {
	case "help", "version", "doctor", "init", "edit", "gen-doc":
		logging.FromContext(cmd.Context()).Debug("ignoring config load error", "command", cmd.Name(), "error", configLoadErr)
		return nil
	}
	return errors.NewConfigError(configLoadErr)
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
