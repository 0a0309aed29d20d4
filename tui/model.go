// Package tui is the interactive terminal front end. The Model is both the
// Bubble Tea model and the controller's presenter: each channel row has a
// switch, a slider and a normalized text field, and the swatch line shows
// the composite color.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rgbpick/channel"
	"rgbpick/config"
	"rgbpick/picker"
)

// target is a focusable surface within a channel row.
type target int

const (
	targetSwitch target = iota
	targetSlider
	targetText
	targetsPerRow
)

const focusSlots = channel.Count * int(targetsPerRow)

type row struct {
	value   int
	enabled bool
	input   textinput.Model
}

type Model struct {
	ctl       *picker.Controller
	cfg       *config.Config
	rows      [channel.Count]row
	composite picker.Composite
	focus     int
	width     int
	quitting  bool
}

// New builds the model and its controller and loads the persisted values.
func New(cfg *config.Config, persist picker.Persister, opts ...picker.Option) *Model {
	m := &Model{cfg: cfg}
	for i := range m.rows {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 16
		ti.Width = 8
		m.rows[i].input = ti
	}
	m.ctl = picker.New(persist, m, opts...)
	m.ctl.Init(cfg.InitialEnabled())
	return m
}

// Controller exposes the underlying controller.
func (m *Model) Controller() *picker.Controller { return m.ctl }

func (m *Model) CompositeChanged(c picker.Composite) { m.composite = c }

func (m *Model) ChannelValueChanged(ch channel.Channel, value int) {
	r := &m.rows[ch]
	r.value = value
	r.input.SetValue(picker.FormatFraction(value))
	r.input.CursorEnd()
}

func (m *Model) ChannelEnabledChanged(ch channel.Channel, enabled bool) {
	m.rows[ch].enabled = enabled
	if !enabled {
		m.rows[ch].input.Blur()
		if fc, _ := m.focused(); fc == ch {
			m.focus = int(ch) * int(targetsPerRow)
		}
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if ch, tgt := m.focused(); tgt == targetText {
		var cmd tea.Cmd
		m.rows[ch].input, cmd = m.rows[ch].input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return m, m.quit()
	case "tab", "down":
		return m, m.moveFocus(1)
	case "shift+tab", "up":
		return m, m.moveFocus(-1)
	}

	ch, tgt := m.focused()
	if tgt == targetText {
		switch key {
		case "enter":
			return m, m.moveFocus(1)
		case "esc":
			m.ChannelValueChanged(ch, m.ctl.Value(ch))
			return m, nil
		}
		var cmd tea.Cmd
		m.rows[ch].input, cmd = m.rows[ch].input.Update(msg)
		return m, cmd
	}

	switch key {
	case "q":
		return m, m.quit()
	case "r":
		m.ctl.Reset()
		return m, nil
	}

	switch tgt {
	case targetSwitch:
		if key == " " || key == "enter" {
			m.ctl.SetEnabled(ch, !m.ctl.Enabled(ch))
		}
	case targetSlider:
		m.slide(ch, key)
	}
	return m, nil
}

func (m *Model) slide(ch channel.Channel, key string) {
	v := m.ctl.Value(ch)
	step := m.cfg.Channel(ch).Step
	switch key {
	case "left", "h":
		v--
	case "right", "l":
		v++
	case "pgdown":
		v -= step
	case "pgup":
		v += step
	case "home":
		v = 0
	case "end":
		v = channel.MaxValue
	default:
		return
	}
	m.ctl.SetFromSlider(ch, channel.Clamp(v))
}

func (m *Model) focused() (channel.Channel, target) {
	return channel.Channel(m.focus / int(targetsPerRow)), target(m.focus % int(targetsPerRow))
}

// leave commits the text field when focus exits it.
func (m *Model) leave() {
	ch, tgt := m.focused()
	if tgt != targetText {
		return
	}
	r := &m.rows[ch]
	r.input.Blur()
	m.ctl.SetFromText(ch, r.input.Value())
}

// moveFocus steps by delta over the focus slots, skipping the slider and
// text field of disabled channels.
func (m *Model) moveFocus(delta int) tea.Cmd {
	m.leave()
	for i := 1; i <= focusSlots; i++ {
		slot := ((m.focus+delta*i)%focusSlots + focusSlots) % focusSlots
		ch := channel.Channel(slot / int(targetsPerRow))
		if target(slot%int(targetsPerRow)) != targetSwitch && !m.rows[ch].enabled {
			continue
		}
		m.focus = slot
		break
	}
	if ch, tgt := m.focused(); tgt == targetText {
		m.rows[ch].input.CursorEnd()
		return m.rows[ch].input.Focus()
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.leave()
	m.quitting = true
	return tea.Quit
}
