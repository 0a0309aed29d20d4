package picker

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"rgbpick/channel"
)

func TestCompositeEncodings(t *testing.T) {
	c := Composite{R: 0x12, G: 0xAB, B: 0x0F}
	assert.Equal(t, "#12AB0F", c.Hex())
	assert.Equal(t, uint32(0xFF12AB0F), c.Pixel())
	assert.Equal(t, color.RGBA{0x12, 0xAB, 0x0F, 0xff}, c.RGBA())
	assert.Equal(t, uint8(0x12), c.Channel(channel.Red))
	assert.Equal(t, uint8(0xAB), c.Channel(channel.Green))
	assert.Equal(t, uint8(0x0F), c.Channel(channel.Blue))
	assert.Equal(t, "#12ab0f", c.Colorful().Hex())
}

func TestCompositeOfStore(t *testing.T) {
	s := channel.NewStore()
	assert.Equal(t, "#000000", compositeOf(s).Hex())
	s.SetValue(channel.Red, 255)
	s.SetValue(channel.Blue, 1)
	assert.Equal(t, "#FF0001", compositeOf(s).Hex())
	assert.Equal(t, uint32(0xFFFF0001), compositeOf(s).Pixel())
}
