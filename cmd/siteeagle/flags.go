package main

import (
	"flag"
	"io"

	"github.com/aleister1102/siteeagle/internal/config"
)

// AppFlags holds command line values. Only flags given explicitly override the config file.
type AppFlags struct {
	GlobalConfigFile string
	Site             string
	Selector         string
	Diff             bool
	FrequencySeconds int
	NtfyChannel      string
	WebhookURL       string
	LogLevel         string

	set map[string]bool
}

// flagAliases maps short flags to their long names.
var flagAliases = map[string]string{
	"d": "diff",
	"s": "site",
	"z": "selector",
	"f": "frequency",
	"c": "ntfy-channel",
	"w": "webhook-url",
	"g": "config",
}

// ParseFlags parses args (without the program name).
func ParseFlags(args []string, output io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("siteeagle", flag.ContinueOnError)
	fs.SetOutput(output)

	flags := AppFlags{set: make(map[string]bool)}

	fs.BoolVar(&flags.Diff, "diff", false, "Send a unified diff of the change instead of both versions")
	fs.BoolVar(&flags.Diff, "d", false, "Alias for -diff")

	fs.StringVar(&flags.Site, "site", "", "URL of the site to watch (required unless set in the config file)")
	fs.StringVar(&flags.Site, "s", "", "Alias for -site")

	fs.StringVar(&flags.Selector, "selector", "", "CSS selector narrowing the watched content")
	fs.StringVar(&flags.Selector, "z", "", "Alias for -selector")

	fs.IntVar(&flags.FrequencySeconds, "frequency", config.DefaultWatchFrequencySeconds, "Seconds to wait between checks")
	fs.IntVar(&flags.FrequencySeconds, "f", config.DefaultWatchFrequencySeconds, "Alias for -frequency")

	fs.StringVar(&flags.NtfyChannel, "ntfy-channel", "", "ntfy topic to publish notifications to")
	fs.StringVar(&flags.NtfyChannel, "c", "", "Alias for -ntfy-channel")

	fs.StringVar(&flags.WebhookURL, "webhook-url", "", "Webhook URL to post notifications to (takes priority over -ntfy-channel)")
	fs.StringVar(&flags.WebhookURL, "w", "", "Alias for -webhook-url")

	fs.StringVar(&flags.GlobalConfigFile, "config", "", "Path to a YAML/JSON configuration file. If not set, searches default locations.")
	fs.StringVar(&flags.GlobalConfigFile, "g", "", "Alias for -config")

	fs.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := flagAliases[name]; ok {
			name = long
		}
		flags.set[name] = true
	})

	return flags, nil
}

// IsSet reports whether the flag (long name) was given on the command line.
func (f AppFlags) IsSet(name string) bool {
	return f.set[name]
}

// ApplyTo overrides cfg with every explicitly given flag.
func (f AppFlags) ApplyTo(cfg *config.GlobalConfig) {
	if f.IsSet("site") {
		cfg.WatchConfig.Site = f.Site
	}
	if f.IsSet("selector") {
		cfg.WatchConfig.Selector = f.Selector
	}
	if f.IsSet("diff") {
		cfg.WatchConfig.Diff = f.Diff
	}
	if f.IsSet("frequency") {
		cfg.WatchConfig.FrequencySeconds = f.FrequencySeconds
	}
	if f.IsSet("ntfy-channel") {
		cfg.WatchConfig.NtfyChannel = f.NtfyChannel
	}
	if f.IsSet("webhook-url") {
		cfg.WatchConfig.WebhookURL = f.WebhookURL
	}
	if f.IsSet("log-level") {
		cfg.LogConfig.LogLevel = f.LogLevel
	}
}
