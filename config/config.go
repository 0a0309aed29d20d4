package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"rgbpick/channel"
)

// Environment variables read by Load and ApplyEnv.
const (
	EnvConfig   = "RGBPICK_CONFIG"
	EnvLogLevel = "RGBPICK_LOG_LEVEL"
)

type Config struct {
	TickHz       int     `toml:"tick_hz"`
	SettingsPath string  `toml:"settings_path"` // "" = state dir default, "-" = keep in memory
	LogLevel     string  `toml:"log_level"`
	LogFile      string  `toml:"log_file"` // terminal front end only
	Modules      Modules `toml:"modules"`
	moduleOrder  []string // order of module tables as they appeared in TOML
}

type Modules struct {
	Swatch SwatchModule  `toml:"swatch"`
	Red    ChannelModule `toml:"red"`
	Green  ChannelModule `toml:"green"`
	Blue   ChannelModule `toml:"blue"`
}

type SwatchModule struct {
	Enabled bool   `toml:"enabled"`
	Prefix  string `toml:"prefix"`
}

type ChannelModule struct {
	Enabled bool   `toml:"enabled"` // block shown in the bar
	Active  bool   `toml:"active"`  // initial switch state
	Step    int    `toml:"step"`    // slider step for scroll and page keys (default 8)
	Prefix  string `toml:"prefix"`
}

func Defaults() *Config {
	return &Config{
		TickHz:   4,
		LogLevel: "info",
		Modules: Modules{
			Swatch: SwatchModule{Enabled: true},
			Red:    ChannelModule{Enabled: true, Active: true, Step: 8, Prefix: "R"},
			Green:  ChannelModule{Enabled: true, Active: true, Step: 8, Prefix: "G"},
			Blue:   ChannelModule{Enabled: true, Active: true, Step: 8, Prefix: "B"},
		},
	}
}

// Load loads configuration from explicit path, $RGBPICK_CONFIG or the search path.
// Missing file yields defaults and an error; parse errors also return defaults + error.
func Load(path string) (*Config, error) {
	defaults := Defaults()
	var chosen string
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		chosen = path
	} else {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err == nil {
				chosen = p
				break
			}
		}
	}
	if chosen == "" {
		defaults.normalize()
		return defaults, errors.New("no config file found; using defaults")
	}
	data, err := os.ReadFile(chosen)
	if err != nil {
		defaults.normalize()
		return defaults, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), defaults) // decode overlays onto defaults
	if err != nil {
		fresh := Defaults()
		fresh.normalize()
		return fresh, fmt.Errorf("parse config: %w", err)
	}
	seen := map[string]struct{}{}
	for _, k := range md.Keys() {
		if len(k) == 2 && k[0] == "modules" {
			name := k[1]
			if _, ok := seen[name]; !ok {
				defaults.moduleOrder = append(defaults.moduleOrder, name)
				seen[name] = struct{}{}
			}
		}
	}
	defaults.normalize()
	return defaults, nil
}

func searchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "rgbpick", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "rgbpick", "config.toml"))
	}
	return out
}

// ApplyEnv overrides values from the environment.
func (c *Config) ApplyEnv() {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.LogLevel = lvl
	}
	c.normalizeLog()
}

// ModuleOrder returns a copy of the module order slice (may be empty).
func (c *Config) ModuleOrder() []string {
	if len(c.moduleOrder) == 0 {
		return nil
	}
	out := make([]string, len(c.moduleOrder))
	copy(out, c.moduleOrder)
	return out
}

// Channel returns the module settings for ch.
func (c *Config) Channel(ch channel.Channel) ChannelModule {
	switch ch {
	case channel.Red:
		return c.Modules.Red
	case channel.Green:
		return c.Modules.Green
	default:
		return c.Modules.Blue
	}
}

// InitialEnabled returns the switch state each channel starts with.
func (c *Config) InitialEnabled() map[channel.Channel]bool {
	out := make(map[channel.Channel]bool, channel.Count)
	for _, ch := range channel.All {
		out[ch] = c.Channel(ch).Active
	}
	return out
}

// SettingsFile resolves where channel values are persisted.
func (c *Config) SettingsFile() string {
	if c.SettingsPath != "" {
		return c.SettingsPath
	}
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "rgbpick", "settings.toml")
	}
	if home, _ := os.UserHomeDir(); home != "" {
		return filepath.Join(home, ".local", "state", "rgbpick", "settings.toml")
	}
	return filepath.Join(os.TempDir(), "rgbpick-settings.toml")
}

// Level parses LogLevel; it is valid after normalize.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// normalize clamps and validates config values after decoding.
func (c *Config) normalize() {
	c.TickHz = clampInt(c.TickHz, 1, 20, 4)
	c.normalizeLog()
	c.Modules.Red.normalize("R")
	c.Modules.Green.normalize("G")
	c.Modules.Blue.normalize("B")
}

func (c *Config) normalizeLog() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		c.LogLevel = "info"
	}
}

func (m *ChannelModule) normalize(prefix string) {
	m.Step = clampInt(m.Step, 1, channel.MaxValue, 8)
	if m.Prefix == "" {
		m.Prefix = prefix
	}
}

func clampInt(val, min, max, fallback int) int {
	if val == 0 && fallback != 0 { // allow zero to trigger fallback when min>0
		val = fallback
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
