package blocks

import (
	"fmt"

	"rgbpick/channel"
	"rgbpick/theme"
)

var channelOrder = channel.All

// ChannelProvider renders one channel as "<prefix> <value>", or
// "<prefix> off" in the disabled color.
type ChannelProvider struct {
	ch      channel.Channel
	prefix  string
	value   int
	enabled bool
	dirty   bool
	blk     Block
}

func NewChannelProvider(ch channel.Channel, prefix string) *ChannelProvider {
	p := &ChannelProvider{ch: ch, prefix: prefix, enabled: true, dirty: true}
	p.Refresh()
	return p
}

func (p *ChannelProvider) Name() string { return p.ch.String() }

func (p *ChannelProvider) Channel() channel.Channel { return p.ch }

func (p *ChannelProvider) Current() Block { return p.blk }

func (p *ChannelProvider) SetValue(v int) {
	if v != p.value {
		p.value = v
		p.dirty = true
	}
}

func (p *ChannelProvider) SetEnabled(on bool) {
	if on != p.enabled {
		p.enabled = on
		p.dirty = true
	}
}

func (p *ChannelProvider) Refresh() bool {
	if !p.dirty {
		return false
	}
	p.dirty = false
	text := fmt.Sprintf("%s %d", p.prefix, p.value)
	if !p.enabled {
		text = p.prefix + " off"
	}
	color := theme.ChannelColor(p.ch, p.enabled)
	if text == p.blk.FullText && color == p.blk.Color { // no visible change
		return false
	}
	p.blk = Block{
		Name:                p.Name(),
		FullText:            text,
		Color:               color,
		Separator:           false,
		SeparatorBlockWidth: SeparatorWidth,
	}
	return true
}
