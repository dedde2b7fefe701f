package actiontable

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/vmihailenco/msgpack/v5"
)

// TextOpts configures the text table.
type TextOpts struct {
	Color bool
}

var headers = []string{
	"ACTION", "MODULE-NAME", "IMMEDIATE", "SUFFIX", "DEPS", "HEADER",
	"TRACE", "MODULE", "DOC", "OUTPUT", "TEXTUAL",
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

func cells(r Row) []string {
	suffix := r.Suffix
	if suffix == "" {
		suffix = "-"
	}
	return []string{
		r.Action, yesNo(r.NeedsProperModuleName), yesNo(r.Immediate), suffix,
		yesNo(r.Dependencies), yesNo(r.Header), yesNo(r.LoadedModuleTrace),
		yesNo(r.Module), yesNo(r.ModuleDoc), yesNo(r.Output), yesNo(r.Textual),
	}
}

// Write renders rows in the chosen format.
func Write(w io.Writer, rows []Row, format Format, opts TextOpts) error {
	switch format {
	case FormatText:
		return WriteText(w, rows, opts)
	case FormatJSON:
		return WriteJSON(w, rows)
	case FormatMsgpack:
		return WriteMsgpack(w, rows)
	}
	return fmt.Errorf("unsupported format %s", format)
}

// WriteText prints an aligned table, one action per line.
func WriteText(w io.Writer, rows []Row, opts TextOpts) error {
	grid := make([][]string, 0, len(rows)+1)
	grid = append(grid, headers)
	for _, r := range rows {
		grid = append(grid, cells(r))
	}
	widths := make([]int, len(headers))
	for _, line := range grid {
		for i, c := range line {
			if cw := runewidth.StringWidth(c); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	// The renderer is bound to w, and Color forces ANSI even when w is
	// not a terminal.
	renderer := lipgloss.NewRenderer(w)
	if opts.Color {
		renderer.SetColorProfile(termenv.ANSI)
	}
	headerStyle := renderer.NewStyle().Bold(true)
	var sb strings.Builder
	for li, line := range grid {
		sb.Reset()
		for i, c := range line {
			padded := c
			if i < len(line)-1 {
				padded = runewidth.FillRight(c, widths[i]+2)
			}
			if li == 0 && opts.Color {
				padded = headerStyle.Render(padded)
			}
			sb.WriteString(padded)
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON prints rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// WriteMsgpack encodes rows as a msgpack array.
func WriteMsgpack(w io.Writer, rows []Row) error {
	return msgpack.NewEncoder(w).Encode(rows)
}

// ReadMsgpack decodes rows written by WriteMsgpack.
func ReadMsgpack(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := msgpack.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode action table: %w", err)
	}
	return rows, nil
}
