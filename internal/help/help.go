package help

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/elemgen-labs/elemgen/internal/branding"
	"github.com/elemgen-labs/elemgen/internal/dispatch"
	"github.com/elemgen-labs/elemgen/internal/element"
)

// Layout controls the parts of the help text that differ between entry points.
type Layout struct {
	Usage         string
	Indent        int // leading spaces before the left column
	Width         int // width of the left column
	HelpLabel     string
	GenerateLabel string
	// BlankAfterCommands adds an empty line between the command table and
	// the element table.
	BlankAfterCommands bool
}

// DirectLayout is used by the CLI binary, where "generate" is typed explicitly.
func DirectLayout() Layout {
	return Layout{
		Usage:         branding.CLIName(),
		Indent:        2,
		Width:         40,
		HelpLabel:     dispatch.HelpCommand.Cmd + ", " + dispatch.HelpCommand.Alias,
		GenerateLabel: dispatch.GenerateCommand.Cmd + "|" + dispatch.GenerateCommand.Alias + " [name|alias] [options]",
	}
}

// ScriptLayout is used by the package-script entry point, which is itself
// the generate command.
func ScriptLayout() Layout {
	return Layout{
		Usage:              branding.ScriptUsage(),
		Width:              25,
		HelpLabel:          dispatch.HelpCommand.Alias + ", " + dispatch.HelpCommand.Cmd,
		GenerateLabel:      "[name|alias] [options]",
		BlankAfterCommands: true,
	}
}

// ForMode picks the layout matching a dispatch mode.
func ForMode(mode dispatch.Mode) Layout {
	if mode == dispatch.ModeScript {
		return ScriptLayout()
	}
	return DirectLayout()
}

type column struct {
	title string
	width int
	value func(element.Element) string
}

var elementColumns = []column{
	{"name", 15, func(e element.Element) string { return e.Name }},
	{"alias", 10, func(e element.Element) string { return e.Alias }},
	{"description", 30, func(e element.Element) string { return e.Description }},
}

// Render writes the full help text for reg to w.
func Render(w io.Writer, layout Layout, reg *element.Registry) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Usage: %s\n\n", layout.Usage)

	b.WriteString("Commands:\n")
	writeRow(&b, layout, layout.HelpLabel, dispatch.HelpCommand.Description)
	writeRow(&b, layout, layout.GenerateLabel, dispatch.GenerateCommand.Description)
	if layout.BlankAfterCommands {
		b.WriteString("\n")
	}

	writeElements(&b, reg)

	b.WriteString("Options:\n")
	for _, opt := range dispatch.Options() {
		writeRow(&b, layout, opt.Flag, opt.Description)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeElements(b *strings.Builder, reg *element.Registry) {
	b.WriteString("Available elements:\n\n")

	cells := make([]string, len(elementColumns))
	total := 0
	for i, col := range elementColumns {
		cells[i] = padRight(col.title, col.width)
		total += col.width
	}
	b.WriteString(strings.Join(cells, " ") + "\n")
	b.WriteString(strings.Repeat("-", total) + "\n")

	for _, el := range reg.Elements() {
		for i, col := range elementColumns {
			cells[i] = padRight(col.value(el), col.width)
		}
		b.WriteString(strings.Join(cells, " ") + "\n")
	}
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, layout Layout, label, desc string) {
	cell := padLeft(padRight(label, layout.Width), layout.Width+layout.Indent)
	b.WriteString(cell + " " + desc + "\n")
}

// padRight pads s with spaces to width runes. Longer strings are kept whole.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
