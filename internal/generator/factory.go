package generator

import (
	"fmt"

	"legibrief/internal/config"
	"legibrief/internal/port"
)

// ProviderFactory is a function that creates a TextGenerator from the generator config.
type ProviderFactory func(cfg *config.GeneratorConfig) (port.TextGenerator, error)

// registry of generation provider factories, populated by init() in each
// provider package or explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a generation provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewGenerator creates a TextGenerator using the registered factory for the
// configured provider.
func NewGenerator(cfg *config.GeneratorConfig) (port.TextGenerator, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown generation provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
