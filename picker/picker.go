// Package picker keeps the three input surfaces of each color channel (the
// enable switch, the slider and the normalized text field) consistent with
// the channel store, derives the composite color and hands every committed
// value to the persistence collaborator.
package picker

import "rgbpick/channel"

// Presenter receives state changes. Implementations render; the controller
// only reports.
type Presenter interface {
	// CompositeChanged is called after every mutation with the recomputed color.
	CompositeChanged(c Composite)
	// ChannelValueChanged asks the slider and text surfaces of ch to show value.
	ChannelValueChanged(ch channel.Channel, value int)
	// ChannelEnabledChanged activates or deactivates the slider and text surfaces of ch.
	ChannelEnabledChanged(ch channel.Channel, enabled bool)
}

// Persister is the durable key-value collaborator.
// Write must not block; its outcome is never reported back.
type Persister interface {
	ReadAll() (channel.Values, error)
	Write(ch channel.Channel, value int)
}

// NopPresenter discards every notification.
type NopPresenter struct{}

func (NopPresenter) CompositeChanged(Composite)                 {}
func (NopPresenter) ChannelValueChanged(channel.Channel, int)   {}
func (NopPresenter) ChannelEnabledChanged(channel.Channel, bool) {}
