package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vssetup/internal/cli"
	"github.com/thoreinstein/vssetup/internal/config"
	"github.com/thoreinstein/vssetup/internal/errors"
	"github.com/thoreinstein/vssetup/internal/logging"
	"github.com/thoreinstein/vssetup/pkg/vssetup"
)

// outputLocation is the zone for text install dates; nil means local time.
var outputLocation *time.Location

// listOptions are the resolved settings for a listing.
type listOptions struct {
	all    bool
	lcid   vssetup.LCID
	format cli.Format
}

// allUnsupportedHint is suggested when --all needs extended enumeration
// that the installed component lacks.
const allUnsupportedHint = "the installed setup component cannot list incomplete instances; omit --all"

// resolveListOptions merges flags, environment and config file through
// viper, then validates the result.
func resolveListOptions() (listOptions, error) {
	cfg := config.Current()

	if err := config.ValidateFormat(cfg.Format); err != nil {
		return listOptions{}, errors.NewUserError(err, "use --format text or --format json")
	}
	if err := config.ValidateLocale(cfg.Locale); err != nil {
		return listOptions{}, errors.NewUserError(err, "use a BCP 47 tag such as en-US")
	}

	lcid, err := vssetup.ParseLocale(cfg.Locale)
	if err != nil {
		return listOptions{}, errors.NewUserError(err, "use a BCP 47 tag such as en-US")
	}

	return listOptions{
		all:    cfg.All,
		lcid:   lcid,
		format: cli.Format(cfg.Format),
	}, nil
}

func runList(cmd *cobra.Command, _ []string) error {
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

	printer := cli.NewPrinter(cmd.OutOrStdout(), opts.format, opts.lcid, outputLocation)

	if listPath != "" {
		return printInstanceForPath(loc, printer, listPath)
	}

	seq, err := loc.Instances(opts.all)
	if err != nil {
		if errors.Is(err, vssetup.ErrNotImplemented) {
			return errors.NewUserError(err, allUnsupportedHint)
		}
		return errors.NewSystemError(errors.Wrap(err, "enumerating instances"), "Run: vswhere doctor")
	}

	n, err := printer.Print(seq)
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	logger.Debug("listed instances", "count", n, "all", opts.all)
	return nil
}

func printInstanceForPath(loc cli.Locator, printer *cli.Printer, path string) error {
	inst, err := loc.InstanceForPath(path)
	switch {
	case errors.Is(err, vssetup.ErrNotInstalled):
		return nil
	case vssetup.Code(err) == vssetup.StatusElementNotFound:
		return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "no instance owns %s", path), "Run: vswhere to list installed instances")
	case err != nil:
		return errors.NewSystemError(errors.Wrapf(err, "looking up %s", path), "")
	}
	defer inst.Close()

	if err := printer.PrintOne(inst); err != nil {
		return errors.NewSystemError(err, "")
	}
	return nil
}
