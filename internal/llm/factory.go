package llm

import (
	"fmt"
	"sort"

	"filinglens/internal/config"
	"filinglens/internal/port"
)

// ProviderFactory is a function that creates an AnalysisModel from the analyzer config.
type ProviderFactory func(cfg *config.AnalyzerConfig) (port.AnalysisModel, error)

// registry of model provider factories, populated by init() in each provider package
// or explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a model provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewModel creates an AnalysisModel from the analyzer config using the registered factory.
func NewModel(cfg *config.AnalyzerConfig) (port.AnalysisModel, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown analyzer provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// Providers lists the registered provider names.
func Providers() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
