package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"frontend/internal/diag"
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	}
	return color.New(color.FgCyan)
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <subject>: <SEV> <CODE>: <Message>
// затем Notes с отступом.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) error {
	for _, d := range bag.Items() {
		sev := d.Severity.String()
		if opts.Color {
			c := severityColor(d.Severity)
			c.EnableColor()
			sev = c.Sprint(sev)
		}
		prefix := ""
		if d.Subject != "" {
			prefix = d.Subject + ": "
		}
		if _, err := fmt.Fprintf(w, "%s%s %s: %s\n", prefix, sev, d.Code.ID(), d.Message); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			if _, err := fmt.Fprintf(w, "  note: %s: %s\n", n.Subject, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}
