package commands

import (
	"fmt"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/vssetup/internal/cli"
	"github.com/thoreinstein/vssetup/internal/cli/prompt"
	"github.com/thoreinstein/vssetup/internal/errors"
	"github.com/thoreinstein/vssetup/internal/logging"
	"github.com/thoreinstein/vssetup/pkg/vssetup"
)

// selectInstance chooses one of summaries. It is replaced in tests.
var selectInstance = func(cmd *cobra.Command, summaries []cli.Summary, query string) (int, error) {
	if logging.IsTTY(os.Stdin) && logging.IsTTY(os.Stderr) {
		return fuzzySelect(summaries, query)
	}
	return prompt.NewSelectorWithIO(cmd.InOrStdin(), cmd.ErrOrStderr()).SelectInstance(summaries)
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick [query]",
	Short: "Choose an instance and print its installation path",
	Long: `Choose one installed instance and print its installation path.

On a terminal the choice is made with a fuzzy finder, seeded with the
optional query. Otherwise a numbered list is written to stderr and the
number is read from stdin. With a single instance no prompt is shown.`,
	Example: `  # Change to the chosen installation
  cd "$(vswhere pick)"

  # Start the finder filtered to previews
  vswhere pick preview --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	opts, err := resolveListOptions()
	if err != nil {
		return err
	}

	logger := logging.FromContext(cmd.Context())
	loc, err := openLocator(logger)
	if err != nil {
		return errors.NewSystemError(err, "Run: vswhere doctor")
	}
	defer func() {
		if err := loc.Close(); err != nil {
			logger.Warn("closing setup configuration", "error", err)
		}
	}()

	seq, err := loc.Instances(opts.all)
	if err != nil {
		if errors.Is(err, vssetup.ErrNotImplemented) {
			return errors.NewUserError(err, allUnsupportedHint)
		}
		return errors.NewSystemError(errors.Wrap(err, "enumerating instances"), "Run: vswhere doctor")
	}

	var summaries []cli.Summary
	for inst := range seq {
		s, err := cli.Summarize(inst, opts.lcid)
		if err != nil {
			return errors.NewSystemError(err, "")
		}
		summaries = append(summaries, s)
	}
	if len(summaries) == 0 {
		return errors.NewUserError(errors.ErrNoInstances, "install Visual Studio 2017 or later")
	}

	var query string
	if len(args) > 0 {
		query = args[0]
	}

	idx, err := selectInstance(cmd, summaries, query)
	switch {
	case errors.Is(err, fuzzyfinder.ErrAbort), errors.Is(err, prompt.ErrSelectionCancelled):
		logger.Debug("selection cancelled")
		return nil
	case errors.Is(err, prompt.ErrInvalidSelection):
		return errors.NewUserError(err, "enter a number from the list")
	case err != nil:
		return errors.NewSystemError(err, "")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), summaries[idx].Path)
	return errors.Wrap(err, "writing path")
}

func fuzzySelect(summaries []cli.Summary, query string) (int, error) {
	opts := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(summaries[i])
		}),
	}
	if query != "" {
		opts = append(opts, fuzzyfinder.WithQuery(query))
	}

	idx, err := fuzzyfinder.Find(
		summaries,
		func(i int) string {
			return fmt.Sprintf("%s %s", summaries[i].DisplayName, summaries[i].Version)
		},
		opts...,
	)
	if err != nil && !errors.Is(err, fuzzyfinder.ErrAbort) {
		return -1, errors.Wrap(err, "interactive selection failed")
	}
	return idx, err
}

func preview(s cli.Summary) string {
	return fmt.Sprintf("Name: %s\nVersion: %s\nPath: %s\nInstalled: %s\nID: %s\n\n%s",
		s.Name, s.Version, s.Path, s.InstallDate.Local().Format(cli.TimeLayout), s.ID, s.Description)
}
