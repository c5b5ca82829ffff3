package daytime

import (
	"time"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display holds the counts rendered as grouped decimal strings.
type Display struct {
	Minutes string
	Seconds string
	Metric  string
}

// Snapshot is one published clock reading.
type Snapshot struct {
	Counts    DisplayCounts
	Display   Display
	Countdown bool
	At        time.Time
}

// Formatter renders counts with the digit grouping of a language.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a formatter for the given language tag.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// DetectFormatter uses the operating system locale, falling back to English
// when it cannot be read or parsed.
func DetectFormatter() *Formatter {
	return NewFormatter(DetectLanguage())
}

// DetectLanguage returns the OS user locale as a language tag.
func DetectLanguage() language.Tag {
	name, err := locale.GetLocale()
	if err != nil || name == "" {
		return language.English
	}
	return ParseLanguage(name)
}

// ParseLanguage accepts BCP 47 and POSIX style names ("de-DE", "de_DE.UTF-8").
func ParseLanguage(name string) language.Tag {
	for i, r := range name {
		if r == '.' || r == '@' {
			name = name[:i]
			break
		}
	}
	if name == "" || name == "C" || name == "POSIX" {
		return language.English
	}
	tag, err := language.Parse(name)
	if err != nil || tag == language.Und {
		return language.English
	}
	return tag
}

// Number formats a single count.
func (formatter *Formatter) Number(value int) string {
	return formatter.printer.Sprintf("%d", value)
}

// Format renders all three counts.
func (formatter *Formatter) Format(counts DisplayCounts) Display {
	return Display{
		Minutes: formatter.Number(counts.Minutes),
		Seconds: formatter.Number(counts.Seconds),
		Metric:  formatter.Number(counts.Metric),
	}
}

// Snapshot computes and formats the reading for now.
func (formatter *Formatter) Snapshot(now time.Time, countdown bool) Snapshot {
	counts := Compute(now, countdown)
	return Snapshot{
		Counts:    counts,
		Display:   formatter.Format(counts),
		Countdown: countdown,
		At:        now,
	}
}
