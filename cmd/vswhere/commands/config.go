package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/vssetup/internal/config"
	"github.com/thoreinstein/vssetup/internal/editor"
	"github.com/thoreinstein/vssetup/internal/errors"
	"github.com/thoreinstein/vssetup/internal/paths"
	"github.com/thoreinstein/vssetup/pkg/fileutil"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing configuration file")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vswhere configuration",
	Long: `Manage the vswhere configuration file.

Without a subcommand, lists all configuration values. Keys: ` + strings.Join(config.Keys(), ", ") + `.
Every key can also be set with a VSWHERE_ environment variable, such as
VSWHERE_FORMAT=json.`,
	Example: `  # List all configuration
  vswhere config

  # Always print JSON
  vswhere config set format json

See Also: vswhere doctor`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the configuration file.

Values are validated: version is an integer of at least 1, all is a
boolean, locale is a BCP 47 tag or empty, format is text or json.`,
	Example: `  # Include incomplete instances by default
  vswhere config set all true

  # Show display names in German
  vswhere config set locale de-DE`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in an editor",
	Long: `Open the configuration file in $VSWHERE_EDITOR, $EDITOR or $VISUAL.

The file must exist; create it with 'vswhere config init'. The edited file
is validated when the editor exits.`,
	Example: `  # Edit with VS Code
  VSWHERE_EDITOR="code --wait" vswhere config edit`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

// openEditor is replaced in tests.
var openEditor = editor.Open

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !config.IsKey(key) {
		return unknownKey(key)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return errors.Wrap(err, "writing value")
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if !config.IsKey(key) {
		return unknownKey(key)
	}

	cfg := config.Current()
	if err := applyValue(cfg, key, value); err != nil {
		return errors.NewUserError(err, "Run: vswhere config set --help")
	}

	if err := writeConfig(configTarget(), cfg); err != nil {
		return errors.NewSystemError(err, "")
	}
	viper.Set(key, value)

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return errors.Wrap(err, "writing confirmation")
}

// applyValue parses value into the field named by key.
func applyValue(cfg *config.Config, key, value string) error {
	switch key {
	case config.KeyVersion:
		v, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "version %q is not an integer", value)
		}
		if v < 1 {
			return config.ErrVersionTooLow
		}
		cfg.Version = v
	case config.KeyAll:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "all %q is not a boolean", value)
		}
		cfg.All = v
	case config.KeyLocale:
		if err := config.ValidateLocale(value); err != nil {
			return err
		}
		cfg.Locale = value
	case config.KeyFormat:
		if err := config.ValidateFormat(value); err != nil {
			return err
		}
		cfg.Format = value
	default:
		return errors.Wrap(errors.ErrUnknownKey, key)
	}
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(config.Current())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	_, err = cmd.OutOrStdout().Write(data)
	return errors.Wrap(err, "writing config")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configTarget()
	if _, err := os.Stat(path); err == nil && !configInitForce {
		return errors.NewUserError(errors.Newf("config file already exists at %s", path), "use --force to overwrite it")
	}

	if err := writeConfig(path, config.Default()); err != nil {
		return errors.NewSystemError(err, "")
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return errors.Wrap(err, "writing confirmation")
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := configTarget()
	if _, err := os.Stat(path); err != nil {
		return errors.NewUserError(errors.Wrapf(err, "config file not found at %s", path), "Run: vswhere config init")
	}

	if err := openEditor(path, editor.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}); err != nil {
		return errors.NewSystemError(err, "set VSWHERE_EDITOR to a working editor")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return errors.NewConfigError(err)
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		return errors.NewConfigError(errors.Wrapf(errors.ErrInvalidConfig, "%v", errs))
	}
	return nil
}

func unknownKey(key string) error {
	return errors.NewUserError(
		errors.Wrapf(errors.ErrUnknownKey, "%q", key),
		"valid keys: "+strings.Join(config.Keys(), ", "))
}

// writeConfig writes cfg to path, creating its directory.
func writeConfig(path string, cfg *config.Config) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteYAML(path, cfg); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}
