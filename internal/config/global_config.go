package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/siteeagle/internal/common"
	"github.com/aleister1102/siteeagle/internal/urlhandler"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const maxConfigFileSize = 10 * 1024 * 1024

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	WatchConfig        WatchConfig        `json:"watch_config,omitempty" yaml:"watch_config,omitempty"`
	HTTPClientConfig   HTTPClientConfig   `json:"http_client_config,omitempty" yaml:"http_client_config,omitempty"`
	NotificationConfig NotificationConfig `json:"notification_config,omitempty" yaml:"notification_config,omitempty"`
	LogConfig          LogConfig          `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		WatchConfig:        NewDefaultWatchConfig(),
		HTTPClientConfig:   NewDefaultHTTPClientConfig(),
		NotificationConfig: NewDefaultNotificationConfig(),
		LogConfig:          NewDefaultLogConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// An explicitly provided path must exist. When no file is found the defaults are returned.
// YAML is used if the file extension is .yaml or .yml, JSON otherwise.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if providedPath != "" && !fileExists(providedPath) {
		return nil, common.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		logger.Debug().Msg("No config file found, using defaults")
		return cfg, nil
	}

	data, err := loadConfigFileContent(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	logger.Debug().Str("path", filePath).Msg("Config file loaded")
	return cfg, nil
}

// Normalize fills zero values that the file may have cleared and canonicalises the site URL.
// The operator's spelling of the site is kept in WatchConfig.RawSite.
func (gc *GlobalConfig) Normalize() error {
	if gc.WatchConfig.Site != "" {
		if gc.WatchConfig.RawSite == "" {
			gc.WatchConfig.RawSite = strings.TrimSpace(gc.WatchConfig.Site)
		}
		normalized, err := urlhandler.NormalizeURL(gc.WatchConfig.Site)
		if err != nil {
			return common.WrapError(err, "invalid site")
		}
		gc.WatchConfig.Site = normalized
	}
	if gc.NotificationConfig.NtfyServerURL == "" {
		gc.NotificationConfig.NtfyServerURL = DefaultNtfyServerURL
	}
	if gc.NotificationConfig.TimeoutSeconds == 0 {
		gc.NotificationConfig.TimeoutSeconds = DefaultNotificationTimeoutSeconds
	}
	if gc.HTTPClientConfig.TimeoutSeconds == 0 {
		gc.HTTPClientConfig.TimeoutSeconds = DefaultHTTPTimeoutSeconds
	}
	if gc.HTTPClientConfig.UserAgent == "" {
		gc.HTTPClientConfig.UserAgent = DefaultHTTPUserAgent
	}
	return nil
}

// loadConfigFileContent reads the config file, refusing anything unreasonably large
func loadConfigFileContent(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigFileSize {
		return nil, common.NewValidationError("config_file", filePath, "config file exceeds 10MB")
	}
	return os.ReadFile(filePath)
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
