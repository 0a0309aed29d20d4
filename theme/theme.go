package theme

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"rgbpick/channel"
)

// Palette holds the accent colors used by the front ends. The composite
// itself is never themed; only labels and disabled channels are.
type Palette struct {
	Red      string
	Green    string
	Blue     string
	Disabled string
	Light    string // foreground on dark swatches
	Dark     string // foreground on light swatches
}

var DefaultPalette = Palette{
	Red:      "#bf616a",
	Green:    "#a3be8c",
	Blue:     "#81a1c1",
	Disabled: "#4c566a",
	Light:    "#FFFFFF",
	Dark:     "#000000",
}

// Current holds the active palette.
var Current = DefaultPalette

// ChannelColor returns the accent for ch, or the disabled color when off.
func ChannelColor(ch channel.Channel, enabled bool) string {
	if !enabled {
		return Current.Disabled
	}
	switch ch {
	case channel.Red:
		return Current.Red
	case channel.Green:
		return Current.Green
	default:
		return Current.Blue
	}
}

// Primary returns the full-intensity color of ch, e.g. #FF0000 for red.
func Primary(ch channel.Channel) colorful.Color {
	switch ch {
	case channel.Red:
		return colorful.Color{R: 1}
	case channel.Green:
		return colorful.Color{G: 1}
	default:
		return colorful.Color{B: 1}
	}
}

// IsDark reports whether text on c should be light. It compares CIE L*
// rather than the RGB mean so pure blue counts as dark and pure green as light.
func IsDark(c colorful.Color) bool {
	l, _, _ := c.Lab()
	return l < 0.5
}

// Foreground picks a readable text color for background c.
func Foreground(c colorful.Color) string {
	if IsDark(c) {
		return Current.Light
	}
	return Current.Dark
}

// Ramp returns the color at position value on the black-to-primary ramp of ch.
func Ramp(ch channel.Channel, value int) colorful.Color {
	t := float64(channel.Clamp(value)) / channel.MaxValue
	return colorful.Color{}.BlendRgb(Primary(ch), t)
}
