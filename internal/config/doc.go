// Package config provides configuration management for the vswhere CLI.
//
// Configuration is read by github.com/spf13/viper from config.yaml in the
// current directory or the vswhere XDG config directory, overlaid with
// VSWHERE_* environment variables and command flags.
//
//	version: 1
//	all: false      # include incomplete instances
//	locale: en-US   # empty for the user default
//	format: text    # text or json
//
// Call [Init] once at startup, then [Load]. [Validate] reports every invalid
// field rather than stopping at the first.
package config
