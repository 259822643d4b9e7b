// Package paths resolves the locations vswhere reads and writes.
//
// Locations follow the XDG Base Directory conventions through
// github.com/adrg/xdg. On Windows the config home is %LOCALAPPDATA%.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-application directory.
const AppName = "vswhere"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.yaml"

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o700

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the vswhere configuration directory.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the path of the vswhere configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// EnsureDir creates the directory and any necessary parents.
// If perm is 0, DefaultDirPerm is used.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
