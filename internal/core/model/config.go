package model

// ColorChoice selects the clock text colour. Zero follows the theme.
type ColorChoice int

const (
	ColorDefault ColorChoice = iota
	ColorRed
	ColorYellow
	ColorGreen
	ColorBlue
)

// ColorChoices lists every selectable colour in menu order.
var ColorChoices = []ColorChoice{ColorDefault, ColorRed, ColorYellow, ColorGreen, ColorBlue}

// String returns the lower-case colour name.
func (choice ColorChoice) String() string {
	switch choice {
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	default:
		return "default"
	}
}

// Valid reports whether choice names a known colour.
func (choice ColorChoice) Valid() bool {
	return choice >= ColorDefault && choice <= ColorBlue
}

// ParseColorChoice maps a colour name back to its choice.
func ParseColorChoice(name string) (ColorChoice, bool) {
	for _, choice := range ColorChoices {
		if choice.String() == name {
			return choice, true
		}
	}
	return ColorDefault, false
}

// ClockConfig contains the preferences the TimeKeeper publishes with each
// reading.
type ClockConfig struct {
	Countdown bool
	Color     ColorChoice
	KeepAwake bool
}
