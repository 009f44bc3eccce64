package config

import "time"

// HTTPClientConfig defines configuration for the HTTP client used to fetch the site and deliver notifications
type HTTPClientConfig struct {
	TimeoutSeconds     int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"omitempty,min=1"`
	UserAgent          string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	FollowRedirects    bool   `json:"follow_redirects" yaml:"follow_redirects"`
	MaxRedirects       int    `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"omitempty,min=0"`
	MaxContentSize     int    `json:"max_content_size,omitempty" yaml:"max_content_size,omitempty" validate:"omitempty,min=0"` // bytes, 0 = unlimited
	EnableHTTP2        bool   `json:"enable_http2" yaml:"enable_http2"`
}

// NewDefaultHTTPClientConfig creates default HTTP client configuration
func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		TimeoutSeconds:     DefaultHTTPTimeoutSeconds,
		UserAgent:          DefaultHTTPUserAgent,
		InsecureSkipVerify: false,
		FollowRedirects:    true,
		MaxRedirects:       DefaultHTTPMaxRedirects,
		MaxContentSize:     0,
		EnableHTTP2:        true,
	}
}

// Timeout returns the per-request timeout.
func (hc HTTPClientConfig) Timeout() time.Duration {
	return time.Duration(hc.TimeoutSeconds) * time.Second
}
