package clicks

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rgbpick/channel"
	"rgbpick/config"
	"rgbpick/picker"
	"rgbpick/settings"
)

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestReadSkipsFramingAndGarbage(t *testing.T) {
	in := strings.Join([]string{
		"[",
		`{"name":"red","button":1,"x":3,"y":4,"modifiers":[]}`,
		"not json",
		`,{"name":"green","button":4,"modifiers":["Shift"]}`,
		"",
		`,{"name":"blue","text":"0.5"}`,
	}, "\n")
	out := make(chan Click, 8)
	Read(strings.NewReader(in), out, quietLog())

	var got []Click
	for c := range out {
		got = append(got, c)
	}
	require.Len(t, got, 3)
	assert.Equal(t, Click{Name: "red", Button: 1, X: 3, Y: 4, Modifiers: []string{}}, got[0])
	assert.Equal(t, "green", got[1].Name)
	assert.Equal(t, []string{"Shift"}, got[1].Modifiers)
	assert.Equal(t, "0.5", got[2].Text)
}

func TestReadDropsWhenFull(t *testing.T) {
	in := strings.Repeat(`{"name":"red","button":4}`+"\n", 5)
	out := make(chan Click, 2)
	Read(strings.NewReader(in), out, quietLog())

	n := 0
	for range out {
		n++
	}
	assert.Equal(t, 2, n)
}

func newDispatcher(t *testing.T) (*Dispatcher, *picker.Controller, *settings.Writer) {
	t.Helper()
	w := settings.NewWriter(settings.NewMemory(nil), quietLog())
	ctl := picker.New(w, nil)
	ctl.Init(nil)
	cfg := config.Defaults()
	cfg.Modules.Green.Step = 100
	return NewDispatcher(ctl, cfg, quietLog()), ctl, w
}

func TestDispatchScrollAndToggle(t *testing.T) {
	d, ctl, _ := newDispatcher(t)

	assert.True(t, d.Handle(Click{Name: "green", Button: ButtonScrollUp}))
	assert.True(t, d.Handle(Click{Name: "green", Button: ButtonScrollUp}))
	assert.Equal(t, 200, ctl.Value(channel.Green))
	d.Handle(Click{Name: "green", Button: ButtonScrollUp})
	assert.Equal(t, 255, ctl.Value(channel.Green))
	d.Handle(Click{Name: "red", Button: ButtonScrollDown})
	assert.Equal(t, 0, ctl.Value(channel.Red))

	assert.True(t, d.Handle(Click{Name: "green", Button: ButtonLeft}))
	assert.False(t, ctl.Enabled(channel.Green))
	assert.Equal(t, 0, ctl.Value(channel.Green))

	d.Handle(Click{Name: "green", Button: ButtonScrollUp})
	assert.Equal(t, 0, ctl.Value(channel.Green))

	d.Handle(Click{Name: "green", Button: ButtonLeft})
	assert.Equal(t, 255, ctl.Value(channel.Green))

	assert.False(t, d.Handle(Click{Name: "green", Button: ButtonMiddle}))
	assert.False(t, d.Handle(Click{Name: "clock", Button: ButtonLeft}))
}

func TestDispatchTextAndReset(t *testing.T) {
	d, ctl, w := newDispatcher(t)

	assert.True(t, d.Handle(Click{Name: "blue", Text: "0.500"}))
	assert.Equal(t, 127, ctl.Value(channel.Blue))
	assert.True(t, d.Handle(Click{Name: "blue", Text: "2"}))
	assert.Equal(t, 127, ctl.Value(channel.Blue))

	assert.False(t, d.Handle(Click{Name: "swatch", Button: ButtonLeft}))
	assert.True(t, d.Handle(Click{Name: "swatch", Button: ButtonRight}))
	assert.Equal(t, "#000000", ctl.Composite().Hex())

	d.Handle(Click{Name: "red", Button: ButtonScrollUp})
	w.Flush()
	saved, err := w.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, channel.Values{channel.Red: 8, channel.Green: 0, channel.Blue: 0}, saved)
}
