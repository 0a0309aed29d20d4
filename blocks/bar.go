package blocks

import (
	"rgbpick/channel"
	"rgbpick/config"
	"rgbpick/picker"
)

// Bar is the status-bar presenter: controller notifications are routed to
// the providers, and Row collects their blocks. Notifications for modules
// that are not shown are dropped.
type Bar struct {
	providers []Provider
	channels  map[channel.Channel]*ChannelProvider
	swatch    *SwatchProvider
}

func NewBar(cfg *config.Config) *Bar {
	b := &Bar{
		providers: BuildProviders(cfg),
		channels:  map[channel.Channel]*ChannelProvider{},
	}
	for _, p := range b.providers {
		switch p := p.(type) {
		case *ChannelProvider:
			b.channels[p.Channel()] = p
		case *SwatchProvider:
			b.swatch = p
		}
	}
	return b
}

func (b *Bar) Providers() []Provider { return b.providers }

func (b *Bar) CompositeChanged(c picker.Composite) {
	if b.swatch != nil {
		b.swatch.SetComposite(c)
	}
}

func (b *Bar) ChannelValueChanged(ch channel.Channel, value int) {
	if p, ok := b.channels[ch]; ok {
		p.SetValue(value)
	}
}

func (b *Bar) ChannelEnabledChanged(ch channel.Channel, enabled bool) {
	if p, ok := b.channels[ch]; ok {
		p.SetEnabled(enabled)
	}
}

// Row refreshes every provider and returns the blocks in display order,
// reporting whether any block changed since the previous Row.
func (b *Bar) Row() ([]Block, bool) {
	changed := false
	out := make([]Block, 0, len(b.providers))
	for _, p := range b.providers {
		if p.Refresh() {
			changed = true
		}
		out = append(out, p.Current())
	}
	return out, changed
}
