package blocks

import "rgbpick/config"

// ProviderSpec describes how to enable and build a provider.
type ProviderSpec struct {
	Name   string
	Enable func(*config.Config) bool
	Build  func(*config.Config) Provider
}

var (
	reg      = map[string]ProviderSpec{}
	regOrder []string
)

// Register adds a provider spec if not already present. Subsequent registrations
// with the same name overwrite the spec but preserve original ordering.
func Register(spec ProviderSpec) {
	if _, exists := reg[spec.Name]; !exists {
		regOrder = append(regOrder, spec.Name)
	}
	reg[spec.Name] = spec
}

// BuildProviders returns provider instances in the order:
// 1. Order of module tables as specified in config file.
// 2. Remaining registered providers (those not present in config order) in registration order.
func BuildProviders(cfg *config.Config) []Provider {
	order := cfg.ModuleOrder()
	seen := map[string]struct{}{}
	providers := []Provider{}
	appendIf := func(name string) {
		if _, done := seen[name]; done {
			return
		}
		spec, ok := reg[name]
		if !ok {
			return // unknown name in config
		}
		seen[name] = struct{}{}
		if spec.Enable != nil && !spec.Enable(cfg) {
			return
		}
		providers = append(providers, spec.Build(cfg))
	}
	for _, n := range order {
		appendIf(n)
	}
	for _, n := range regOrder {
		appendIf(n)
	}
	return providers
}

func init() {
	Register(ProviderSpec{
		Name:   swatchName,
		Enable: func(c *config.Config) bool { return c.Modules.Swatch.Enabled },
		Build:  func(c *config.Config) Provider { return NewSwatchProvider(c.Modules.Swatch.Prefix) },
	})
	for _, ch := range channelOrder {
		ch := ch
		Register(ProviderSpec{
			Name:   ch.String(),
			Enable: func(c *config.Config) bool { return c.Channel(ch).Enabled },
			Build:  func(c *config.Config) Provider { return NewChannelProvider(ch, c.Channel(ch).Prefix) },
		})
	}
}
