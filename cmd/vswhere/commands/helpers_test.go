package commands

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"

	"github.com/thoreinstein/vssetup/internal/cli"
	climocks "github.com/thoreinstein/vssetup/internal/cli/mocks"
)

var testInstallDate = time.Date(2024, time.March, 1, 9, 30, 15, 250_000_000, time.UTC)

type result struct {
	stdout string
	stderr string
	err    error
}

// resetFlags restores every flag in the tree to its default.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs vswhere with args against loc, using the config file at
// configPath. A nil loc fails the test if the component is opened.
func execute(t *testing.T, loc cli.Locator, configPath string, args ...string) result {
	t.Helper()
	return executeWithOpen(t, func(*slog.Logger) (cli.Locator, error) {
		if loc == nil {
			t.Fatal("unexpected open of the setup component")
		}
		return loc, nil
	}, configPath, args...)
}

func executeWithOpen(t *testing.T, open func(*slog.Logger) (cli.Locator, error), configPath string, args ...string) result {
	t.Helper()

	viper.Reset()
	resetFlags(rootCmd)
	configLoadErr = nil

	origOpen, origLocation, origSelect := openLocator, outputLocation, selectInstance
	t.Cleanup(func() {
		openLocator, outputLocation, selectInstance = origOpen, origLocation, origSelect
		viper.Reset()
		resetFlags(rootCmd)
		slog.SetDefault(slog.New(slog.DiscardHandler))
	})

	openLocator = open
	outputLocation = time.UTC

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := rootCmd.ExecuteContext(t.Context())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// writeTestConfig writes content to a config.yaml in a temp dir.
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func defaultConfig(t *testing.T) string {
	t.Helper()
	return writeTestConfig(t, "version: 1\nformat: text\n")
}

func newLocator(t *testing.T) *climocks.MockLocator {
	t.Helper()
	loc := climocks.NewMockLocator(t)
	loc.EXPECT().Close().Return(nil)
	return loc
}

func newInstance(t *testing.T, id, path string) *climocks.MockInstance {
	t.Helper()
	m := climocks.NewMockInstance(t)
	m.EXPECT().ID().Return(id, nil)
	m.EXPECT().InstallDate().Return(testInstallDate, nil)
	m.EXPECT().Name().Return("VisualStudio/17.9.2+34622.214", nil)
	m.EXPECT().Path().Return(path, nil)
	m.EXPECT().Version().Return("17.9.34622.214", nil)
	m.EXPECT().DisplayName(mock.Anything).Return("Visual Studio Community 2022", nil)
	m.EXPECT().Description(mock.Anything).Return("Powerful IDE", nil)
	return m
}
