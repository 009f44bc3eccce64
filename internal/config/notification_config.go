package config

import "time"

// NotificationConfig defines configuration for notification delivery.
// The destination itself (webhook or ntfy channel) lives in WatchConfig.
type NotificationConfig struct {
	NtfyServerURL  string `json:"ntfy_server_url,omitempty" yaml:"ntfy_server_url,omitempty" validate:"omitempty,url"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		NtfyServerURL:  DefaultNtfyServerURL,
		TimeoutSeconds: DefaultNotificationTimeoutSeconds,
	}
}

// Timeout returns the deadline applied to a single notification send.
func (nc NotificationConfig) Timeout() time.Duration {
	return time.Duration(nc.TimeoutSeconds) * time.Second
}
