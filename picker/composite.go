package picker

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"rgbpick/channel"
)

// Composite is the color formed by the current channel values.
type Composite struct {
	R, G, B uint8
}

func compositeOf(s *channel.Store) Composite {
	return Composite{
		R: uint8(s.Value(channel.Red)),
		G: uint8(s.Value(channel.Green)),
		B: uint8(s.Value(channel.Blue)),
	}
}

// Hex returns the upper-case "#RRGGBB" code.
func (c Composite) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Pixel returns the opaque packed value 0xFFRRGGBB.
func (c Composite) Pixel() uint32 {
	return 0xff<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c Composite) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Colorful converts c for blending and lightness math.
func (c Composite) Colorful() colorful.Color {
	col, _ := colorful.MakeColor(c.RGBA())
	return col
}

// Channel returns the component for ch.
func (c Composite) Channel(ch channel.Channel) uint8 {
	switch ch {
	case channel.Red:
		return c.R
	case channel.Green:
		return c.G
	default:
		return c.B
	}
}
