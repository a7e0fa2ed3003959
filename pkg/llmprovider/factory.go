package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"goal-planner/config"
	"goal-planner/pkg/gemini"
	"goal-planner/pkg/openaicompat"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Providers come back sorted by priority with disabled ones filtered out.
// A provider that fails to initialize is skipped and reported in the
// returned warnings instead of failing the whole set.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, []string, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var warnings []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, warnings, fmt.Errorf("no providers successfully initialized: %s", strings.Join(warnings, "; "))
	}
	return providers, warnings, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	switch cfg.Name {
	case "gemini":
		gcfg := gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		}
		if d, err := time.ParseDuration(cfg.Timeout); err == nil && d > 0 {
			gcfg.HTTPClient = &http.Client{Timeout: d}
		}
		client, err := gemini.New(gcfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case openaicompat.VendorQwen, openaicompat.VendorDeepSeek:
		ocfg := openaicompat.Config{
			Vendor:  cfg.Name,
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		}
		if d, err := time.ParseDuration(cfg.Timeout); err == nil && d > 0 {
			ocfg.HTTPClient = &http.Client{Timeout: d}
		}
		client, err := openaicompat.New(ocfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewOpenAICompatAdapter(cfg.Name, client), nil

	case "anthropic", "claude":
		return NewAnthropicAdapter(AnthropicConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
