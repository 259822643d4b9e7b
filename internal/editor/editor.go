// Package editor launches the user's editor on a file.
package editor

import (
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
)

// Streams connects the editor to the terminal.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Open runs the editor on path and waits for it to exit. The editor is
// $VSWHERE_EDITOR, $EDITOR or $VISUAL, in that order; the value may carry
// arguments, as in "code --wait".
func Open(path string, s Streams) error {
	argv := append(Command(), path)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = s.In
	cmd.Stdout = s.Out
	cmd.Stderr = s.Err

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// Command returns the editor command line without the file argument.
func Command() []string {
	for _, env := range []string{"VSWHERE_EDITOR", "EDITOR", "VISUAL"} {
		if fields := strings.Fields(getenv(env)); len(fields) > 0 {
			return fields
		}
	}
	return []string{fallback(runtime.GOOS)}
}

func fallback(goos string) string {
	if goos == "windows" {
		return "notepad"
	}
	if _, err := lookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
