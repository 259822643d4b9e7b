package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/vssetup/internal/paths"
)

// EnvPrefix prefixes environment overrides, as in VSWHERE_FORMAT.
const EnvPrefix = "VSWHERE"

// Configuration keys.
const (
	KeyVersion = "version"
	KeyAll     = "all"
	KeyLocale  = "locale"
	KeyFormat  = "format"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int    `mapstructure:"version" yaml:"version"`
	All     bool   `mapstructure:"all" yaml:"all"`
	Locale  string `mapstructure:"locale" yaml:"locale"`
	Format  string `mapstructure:"format" yaml:"format"`
}

// Keys returns the known configuration keys in display order.
func Keys() []string {
	return []string{KeyVersion, KeyAll, KeyLocale, KeyFormat}
}

// IsKey reports whether key is a known configuration key.
func IsKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Version: 1,
		Format:  FormatText,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths, in order of precedence
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault(KeyVersion, def.Version)
	viper.SetDefault(KeyAll, def.All)
	viper.SetDefault(KeyLocale, def.Locale)
	viper.SetDefault(KeyFormat, def.Format)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.WithHint(errors.Wrap(err, "reading config file"), "Run: vswhere config edit")
		}
		if path != "" {
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

// Current returns the configuration as currently resolved by Viper,
// including flag and environment overrides.
func Current() *Config {
	return &Config{
		Version: viper.GetInt(KeyVersion),
		All:     viper.GetBool(KeyAll),
		Locale:  viper.GetString(KeyLocale),
		Format:  viper.GetString(KeyFormat),
	}
}
