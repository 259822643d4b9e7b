package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/thoreinstein/vssetup/internal/errors"
	"github.com/thoreinstein/vssetup/pkg/vssetup"
)

// Format specifies how instances are printed.
type Format string

const (
	// FormatText prints one block of "key: value" lines per instance.
	FormatText Format = "text"
	// FormatJSON prints a JSON array of instances.
	FormatJSON Format = "json"
)

// TimeLayout is the text layout for install dates.
const TimeLayout = "2006-01-02 15:04:05.000 -07:00"

// Printer writes instance summaries.
type Printer struct {
	out    io.Writer
	format Format
	lcid   vssetup.LCID
	loc    *time.Location
}

// NewPrinter creates a Printer. Text output shows install dates in loc,
// which defaults to time.Local.
func NewPrinter(out io.Writer, format Format, lcid vssetup.LCID, loc *time.Location) *Printer {
	if loc == nil {
		loc = time.Local
	}
	return &Printer{
		out:    out,
		format: format,
		lcid:   lcid,
		loc:    loc,
	}
}

// Print writes every instance in seq. The first accessor failure stops the
// output; whatever was already complete is still written.
func (p *Printer) Print(seq iter.Seq[Instance]) (int, error) {
	if p.format == FormatJSON {
		return p.printJSON(seq)
	}
	return p.printText(seq)
}

func (p *Printer) printText(seq iter.Seq[Instance]) (int, error) {
	var n int
	for inst := range seq {
		s, err := Summarize(inst, p.lcid)
		if err != nil {
			return n, err
		}
		if n > 0 {
			fmt.Fprintln(p.out)
		}
		if err := p.writeBlock(s); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (p *Printer) writeBlock(s Summary) error {
	_, err := fmt.Fprintf(p.out,
		"instanceId: %s\ninstallDate: %s\ninstallationName: %s\ninstallationPath: %s\ninstallationVersion: %s\ndisplayName: %s\ndescription: %s\n",
		s.ID,
		s.InstallDate.In(p.loc).Format(TimeLayout),
		s.Name,
		s.Path,
		s.Version,
		s.DisplayName,
		s.Description,
	)
	return errors.Wrap(err, "writing instance")
}

func (p *Printer) printJSON(seq iter.Seq[Instance]) (int, error) {
	summaries := []Summary{}
	var readErr error
	for inst := range seq {
		s, err := Summarize(inst, p.lcid)
		if err != nil {
			readErr = err
			break
		}
		s.InstallDate = s.InstallDate.UTC()
		summaries = append(summaries, s)
	}

	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summaries); err != nil {
		return 0, errors.Wrap(err, "encoding JSON")
	}
	return len(summaries), readErr
}

// PrintOne writes a single instance in the printer's format.
func (p *Printer) PrintOne(inst Instance) error {
	_, err := p.Print(func(yield func(Instance) bool) {
		yield(inst)
	})
	return err
}
