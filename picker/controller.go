package picker

import (
	"github.com/sirupsen/logrus"

	"rgbpick/channel"
)

// Controller is the single point where toggles, slider moves, text commits
// and resets are applied to the channel store. Every committed change
// recomputes the composite and is handed to the persister. A Controller is
// driven from one goroutine.
type Controller struct {
	store     *channel.Store
	persist   Persister
	presenter Presenter
	log       *logrus.Entry
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the entry used for diagnostics.
func WithLogger(l *logrus.Entry) Option {
	return func(c *Controller) { c.log = l }
}

func New(persist Persister, presenter Presenter, opts ...Option) *Controller {
	if presenter == nil {
		presenter = NopPresenter{}
	}
	c := &Controller{
		store:     channel.NewStore(),
		persist:   persist,
		presenter: presenter,
		log:       logrus.WithField("component", "controller"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init loads the persisted values once and applies the caller's initial
// switch states. Channels missing from enabled start enabled. A disabled
// channel starts at 0 with the persisted value kept as its backup.
func (c *Controller) Init(enabled map[channel.Channel]bool) {
	saved, err := c.persist.ReadAll()
	if err != nil {
		c.log.WithError(err).Warn("read persisted values; starting from zero")
		saved = channel.Values{}
	}
	for _, ch := range channel.All {
		v := channel.Clamp(saved.Get(ch))
		on, ok := enabled[ch]
		if !ok {
			on = true
		}
		c.store.SetEnabled(ch, on)
		if on {
			c.store.SetValue(ch, v)
		} else {
			c.store.SetBackup(ch, v)
			c.store.SetValue(ch, 0)
		}
		c.presenter.ChannelEnabledChanged(ch, on)
		c.presenter.ChannelValueChanged(ch, c.store.Value(ch))
	}
	c.log.WithFields(logrus.Fields{
		"red":   c.store.Value(channel.Red),
		"green": c.store.Value(channel.Green),
		"blue":  c.store.Value(channel.Blue),
	}).Debug("initialized")
	c.recompute()
}

// SetEnabled applies a switch change. Only a real transition touches the
// store: off saves the value as backup and zeroes it, on restores the backup.
func (c *Controller) SetEnabled(ch channel.Channel, checked bool) {
	if c.store.Enabled(ch) == checked {
		return
	}
	if checked {
		c.store.SetValue(ch, c.store.Backup(ch))
	} else {
		c.store.SetBackup(ch, c.store.Value(ch))
		c.store.SetValue(ch, 0)
	}
	c.store.SetEnabled(ch, checked)
	c.presenter.ChannelEnabledChanged(ch, checked)
	c.commit(ch)
}

// SetFromSlider commits a slider position. Moves on a disabled channel are
// ignored.
func (c *Controller) SetFromSlider(ch channel.Channel, progress int) {
	if !c.store.Enabled(ch) {
		c.log.WithField("channel", ch).Debug("slider on disabled channel ignored")
		return
	}
	c.store.SetValue(ch, channel.Clamp(progress))
	c.commit(ch)
}

// SetFromText commits text typed into the normalized field of ch. Input
// that is not a number in [0, 1] leaves the store untouched and the field
// is asked to redisplay the current value. It reports whether the text was
// accepted.
func (c *Controller) SetFromText(ch channel.Channel, raw string) bool {
	if !c.store.Enabled(ch) {
		return false
	}
	v, ok := ParseFraction(raw)
	if !ok {
		c.presenter.ChannelValueChanged(ch, c.store.Value(ch))
		return false
	}
	c.store.SetValue(ch, v)
	c.commit(ch)
	return true
}

// Reset zeroes every channel. Backups and switch states are left as they are.
func (c *Controller) Reset() {
	for _, ch := range channel.All {
		c.store.SetValue(ch, 0)
		c.presenter.ChannelValueChanged(ch, 0)
	}
	c.recompute()
	for _, ch := range channel.All {
		c.persist.Write(ch, 0)
	}
}

func (c *Controller) Value(ch channel.Channel) int    { return c.store.Value(ch) }
func (c *Controller) Backup(ch channel.Channel) int   { return c.store.Backup(ch) }
func (c *Controller) Enabled(ch channel.Channel) bool { return c.store.Enabled(ch) }

// Composite returns the color for the current values.
func (c *Controller) Composite() Composite { return compositeOf(c.store) }

func (c *Controller) commit(ch channel.Channel) {
	v := c.store.Value(ch)
	c.presenter.ChannelValueChanged(ch, v)
	c.recompute()
	c.persist.Write(ch, v)
}

func (c *Controller) recompute() {
	c.presenter.CompositeChanged(compositeOf(c.store))
}
