package config

import "time"

// WatchConfig describes the single resource being watched and where change notices go.
// It is immutable once the watch loop starts.
type WatchConfig struct {
	Site                 string `json:"site" yaml:"site" validate:"required,url"`
	Selector             string `json:"selector,omitempty" yaml:"selector,omitempty"`
	Diff                 bool   `json:"diff" yaml:"diff"`
	FrequencySeconds     int    `json:"frequency_seconds,omitempty" yaml:"frequency_seconds,omitempty" validate:"min=1"`
	NtfyChannel          string `json:"ntfy_channel,omitempty" yaml:"ntfy_channel,omitempty" validate:"omitempty,excludesall=/?#"`
	WebhookURL           string `json:"webhook_url,omitempty" yaml:"webhook_url,omitempty" validate:"omitempty,url"`
	MaxConsecutiveErrors int    `json:"max_consecutive_errors,omitempty" yaml:"max_consecutive_errors,omitempty" validate:"min=1"`

	// RawSite is the site exactly as the operator gave it, before normalisation.
	RawSite string `json:"-" yaml:"-"`
}

// NewDefaultWatchConfig creates default watch configuration
func NewDefaultWatchConfig() WatchConfig {
	return WatchConfig{
		Diff:                 false,
		FrequencySeconds:     DefaultWatchFrequencySeconds,
		MaxConsecutiveErrors: DefaultWatchMaxConsecutiveErrors,
	}
}

// Frequency returns the sleep between cycles.
func (wc WatchConfig) Frequency() time.Duration {
	return time.Duration(wc.FrequencySeconds) * time.Second
}

// Locator is the site as it appears in notification payloads: the operator's
// original spelling when known, the normalised URL otherwise.
func (wc WatchConfig) Locator() string {
	if wc.RawSite != "" {
		return wc.RawSite
	}
	return wc.Site
}

// HasSelector reports whether content should be narrowed with a CSS selector.
func (wc WatchConfig) HasSelector() bool {
	return wc.Selector != ""
}
