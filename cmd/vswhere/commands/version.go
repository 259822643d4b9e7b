package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vssetup/cmd"
	"github.com/thoreinstein/vssetup/internal/errors"
)

var versionJSON bool

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, build date, Go version and platform of vswhere.`,
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		b := cmd.Info()
		out := c.OutOrStdout()

		if versionJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return errors.Wrap(enc.Encode(b), "encoding version")
		}

		_, err := fmt.Fprintf(out, "vswhere version %s\n  commit: %s\n  built:  %s\n  go:     %s (%s)\n",
			b.Version, b.Commit, b.Date, b.GoVersion, b.Platform)
		return errors.Wrap(err, "writing version")
	},
}
