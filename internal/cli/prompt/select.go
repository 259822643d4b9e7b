// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/thoreinstein/vssetup/internal/cli"
	"github.com/thoreinstein/vssetup/internal/errors"
)

// Sentinel errors for instance selection.
var (
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector prompts for a numbered choice. It is the fallback when no
// terminal is available for the fuzzy finder.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stderr.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stderr,
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// SelectInstance prompts the user to choose one of instances and returns
// its index.
//
// Returns:
//   - errors.ErrNoInstances if the list is empty
//   - 0 without prompting if only one exists
//   - ErrInvalidSelection if the selection is not a number in range
//   - ErrSelectionCancelled if input ends before a line is read
func (s *Selector) SelectInstance(instances []cli.Summary) (int, error) {
	if len(instances) == 0 {
		return -1, errors.ErrNoInstances
	}
	if len(instances) == 1 {
		return 0, nil
	}

	fmt.Fprintln(s.writer, "Installed instances:")
	for i, inst := range instances {
		fmt.Fprintf(s.writer, "  [%d] %s %s (%s)\n", i+1, inst.DisplayName, inst.Version, inst.Path)
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	input, err := bufio.NewReader(s.reader).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return -1, errors.Wrap(err, "reading selection")
		}
		if strings.TrimSpace(input) == "" {
			return -1, ErrSelectionCancelled
		}
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return -1, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if selection < 1 || selection > len(instances) {
		return -1, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(instances))
	}

	return selection - 1, nil
}
