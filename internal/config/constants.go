package config

const (
	// Watch Defaults
	DefaultWatchFrequencySeconds     = 30
	DefaultWatchMaxConsecutiveErrors = 3

	// HTTP Client Defaults
	DefaultHTTPUserAgent      = "Mozilla/5.0 (compatible; siteeagle/1.0; +https://github.com/aleister1102/siteeagle)"
	DefaultHTTPTimeoutSeconds = 30
	DefaultHTTPMaxRedirects   = 10

	// Notification Defaults
	DefaultNtfyServerURL              = "https://ntfy.sh"
	DefaultNotificationTimeoutSeconds = 30

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// ConfigPathEnv names the environment variable consulted for the config file location.
	ConfigPathEnv = "SITEEAGLE_CONFIG_PATH"
)
