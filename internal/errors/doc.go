// Package errors is the error vocabulary of the vswhere commands.
//
// Wrapping helpers come from github.com/cockroachdb/errors so commands need
// one import. Commands return an [ExitError] to pick the process exit code
// (0 success, 1 user error, 2 system error) and to suggest a next step:
//
//	return errors.NewUserError(errors.Wrap(err, "parsing --locale"), "use a tag such as en-US")
//
// main hands the result to [Fprint].
package errors
