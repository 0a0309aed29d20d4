package clicks

import (
	"github.com/sirupsen/logrus"

	"rgbpick/channel"
	"rgbpick/config"
)

// Controller is the subset of picker.Controller the bar drives.
type Controller interface {
	SetEnabled(ch channel.Channel, checked bool)
	SetFromSlider(ch channel.Channel, progress int)
	SetFromText(ch channel.Channel, raw string) bool
	Reset()
	Value(ch channel.Channel) int
	Enabled(ch channel.Channel) bool
}

// Dispatcher maps clicks on bar blocks to controller operations:
// left click toggles a channel, scrolling moves its slider by the configured
// step, a text payload commits a normalized value and a right click on the
// swatch resets every channel.
type Dispatcher struct {
	ctl Controller
	cfg *config.Config
	log *logrus.Entry
}

func NewDispatcher(ctl Controller, cfg *config.Config, log *logrus.Entry) *Dispatcher {
	return &Dispatcher{ctl: ctl, cfg: cfg, log: log}
}

// Handle applies c and reports whether it mapped to an operation.
func (d *Dispatcher) Handle(c Click) bool {
	if c.Name == "swatch" {
		if c.Button == ButtonRight {
			d.ctl.Reset()
			return true
		}
		return false
	}
	ch, ok := channel.Parse(c.Name)
	if !ok {
		d.log.WithField("name", c.Name).Debug("click on unknown block")
		return false
	}
	if c.Text != "" {
		if !d.ctl.SetFromText(ch, c.Text) {
			d.log.WithFields(logrus.Fields{"channel": ch, "text": c.Text}).Debug("text rejected")
		}
		return true
	}
	step := d.cfg.Channel(ch).Step
	switch c.Button {
	case ButtonLeft:
		d.ctl.SetEnabled(ch, !d.ctl.Enabled(ch))
	case ButtonScrollUp:
		d.slide(ch, step)
	case ButtonScrollDown:
		d.slide(ch, -step)
	default:
		return false
	}
	return true
}

func (d *Dispatcher) slide(ch channel.Channel, delta int) {
	if !d.ctl.Enabled(ch) {
		return
	}
	d.ctl.SetFromSlider(ch, channel.Clamp(d.ctl.Value(ch)+delta))
}
