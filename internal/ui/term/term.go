// Package term renders clock readings for a terminal.
package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"minuteclock/internal/core/daytime"
	"minuteclock/internal/core/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var ansiColors = map[model.ColorChoice]lipgloss.Color{
	model.ColorRed:    lipgloss.Color("1"),
	model.ColorYellow: lipgloss.Color("3"),
	model.ColorGreen:  lipgloss.Color("2"),
	model.ColorBlue:   lipgloss.Color("4"),
}

// Render formats all three units, one per line.
func Render(snapshot daytime.Snapshot, choice model.ColorChoice) string {
	valueStyle := lipgloss.NewStyle().Bold(true)
	captionStyle := lipgloss.NewStyle()
	if ansi, ok := ansiColors[choice]; ok {
		valueStyle = valueStyle.Foreground(ansi)
		captionStyle = captionStyle.Foreground(ansi)
	}

	width := 0
	for _, unit := range daytime.Units {
		if n := lipgloss.Width(unit.Value(snapshot.Display)); n > width {
			width = n
		}
	}

	lines := make([]string, 0, len(daytime.Units))
	for _, unit := range daytime.Units {
		value := unit.Value(snapshot.Display)
		padded := strings.Repeat(" ", width-lipgloss.Width(value)) + value
		lines = append(lines, valueStyle.Render(padded)+" "+captionStyle.Render(daytime.Caption(unit, value, snapshot.Countdown)))
	}
	return strings.Join(lines, "\n")
}

// Printer redraws readings in place on a terminal and appends them
// otherwise.
type Printer struct {
	out      io.Writer
	inPlace  bool
	drawn    int
	previous string
}

// NewPrinter writes to out, redrawing in place when out is a terminal.
func NewPrinter(out io.Writer) *Printer {
	inPlace := false
	if file, ok := out.(*os.File); ok {
		inPlace = isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}
	return &Printer{out: out, inPlace: inPlace}
}

// Print draws the reading unless it matches the last one drawn.
func (printer *Printer) Print(snapshot daytime.Snapshot, choice model.ColorChoice) error {
	rendered := Render(snapshot, choice)
	if rendered == printer.previous {
		return nil
	}
	if printer.inPlace && printer.drawn > 0 {
		if _, err := fmt.Fprintf(printer.out, "\x1b[%dA\x1b[J", printer.drawn); err != nil {
			return fmt.Errorf("clear previous reading: %w", err)
		}
	}
	if _, err := fmt.Fprintln(printer.out, rendered); err != nil {
		return fmt.Errorf("write reading: %w", err)
	}
	printer.previous = rendered
	printer.drawn = strings.Count(rendered, "\n") + 1
	return nil
}
