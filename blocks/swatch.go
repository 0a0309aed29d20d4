package blocks

import (
	"strings"

	"rgbpick/picker"
	"rgbpick/theme"
)

const swatchName = "swatch"

// SwatchProvider shows the composite hex code on the composite color.
type SwatchProvider struct {
	prefix    string
	composite picker.Composite
	dirty     bool
	blk       Block
}

func NewSwatchProvider(prefix string) *SwatchProvider {
	p := &SwatchProvider{prefix: prefix, dirty: true}
	p.Refresh()
	return p
}

func (p *SwatchProvider) Name() string { return swatchName }

func (p *SwatchProvider) Current() Block { return p.blk }

func (p *SwatchProvider) SetComposite(c picker.Composite) {
	if c != p.composite {
		p.composite = c
		p.dirty = true
	}
}

func (p *SwatchProvider) Refresh() bool {
	if !p.dirty {
		return false
	}
	p.dirty = false
	hex := p.composite.Hex()
	text := strings.TrimSpace(p.prefix + " " + hex)
	if text == p.blk.FullText && hex == p.blk.Background {
		return false
	}
	p.blk = Block{
		Name:                swatchName,
		FullText:            text,
		Color:               theme.Foreground(p.composite.Colorful()),
		Background:          hex,
		Separator:           false,
		SeparatorBlockWidth: SeparatorWidth,
	}
	return true
}
