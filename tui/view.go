package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rgbpick/channel"
	"rgbpick/theme"
)

const sliderWidth = 32

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	focusStyle  = lipgloss.NewStyle().Reverse(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	inputStyle  = lipgloss.NewStyle().Padding(0, 1)
	swatchStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	lines := []string{titleStyle.Render("rgbpick"), ""}
	for _, ch := range channel.All {
		lines = append(lines, m.viewRow(ch))
	}
	lines = append(lines, "", m.viewSwatch(), "", m.viewHelp())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewRow(ch channel.Channel) string {
	r := m.rows[ch]
	fc, tgt := m.focused()
	focus := func(t target, s string) string {
		if fc == ch && tgt == t {
			return focusStyle.Render(s)
		}
		return s
	}

	box := "[ ]"
	if r.enabled {
		box = "[x]"
	}
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ChannelColor(ch, r.enabled))).
		Render(fmt.Sprintf("%-6s", m.cfg.Channel(ch).Prefix))

	slider := m.viewSlider(ch, r.value, r.enabled)
	value := fmt.Sprintf("%3d", r.value)
	text := inputStyle.Render(r.input.View())
	if !r.enabled {
		value = mutedStyle.Render(value)
		text = mutedStyle.Render(inputStyle.Render(r.input.Value()))
	}
	return strings.Join([]string{focus(targetSwitch, box), label, focus(targetSlider, slider), value, focus(targetText, text)}, " ")
}

// viewSlider draws the filled part of the track on the channel's
// black-to-primary ramp.
func (m *Model) viewSlider(ch channel.Channel, value int, enabled bool) string {
	filled := value * sliderWidth / channel.MaxValue
	var b strings.Builder
	for i := 0; i < sliderWidth; i++ {
		if i >= filled || !enabled {
			b.WriteString(mutedStyle.Render("·"))
			continue
		}
		cell := theme.Ramp(ch, (i+1)*channel.MaxValue/sliderWidth)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(cell.Hex())).Render("█"))
	}
	return b.String()
}

func (m *Model) viewSwatch() string {
	hex := m.composite.Hex()
	return swatchStyle.
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(theme.Foreground(m.composite.Colorful()))).
		Render(hex)
}

func (m *Model) viewHelp() string {
	if _, tgt := m.focused(); tgt == targetText {
		return helpStyle.Render("type 0.0-1.0 · enter/tab commit · esc revert · ctrl+c quit")
	}
	return helpStyle.Render("tab/↑↓ focus · space toggle · ←/→ ±1 · pgup/pgdn ±step · r reset · q quit")
}
