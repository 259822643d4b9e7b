// Package logging configures log/slog for vswhere.
//
// Terminal output uses [Handler], a compact colored text handler; JSON
// output and --log-file use [slog.JSONHandler]. [MultiHandler] joins the
// two. Levels come from the -v count via [LevelFromVerbosity], and
// [LevelTrace] sits below debug for per-call COM tracing:
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Output: os.Stderr,
//	})
//	ctx = logging.NewContext(ctx, logger)
//
// Commands fetch the logger again with [FromContext]. Tests use [ForTest].
package logging
