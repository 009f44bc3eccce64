package notifier

import (
	"context"

	"github.com/aleister1102/siteeagle/internal/config"
	"github.com/aleister1102/siteeagle/internal/httpclient"
	"github.com/aleister1102/siteeagle/internal/urlhandler"
	"github.com/rs/zerolog"
)

// Notifier delivers a payload over a single channel.
type Notifier interface {
	Notify(ctx context.Context, payload string) error
	Channel() string
}

// NewNotifier selects the delivery channel for a watch.
// A webhook URL wins over an ntfy channel; with neither set the result is a no-op.
func NewNotifier(watchCfg config.WatchConfig, notifCfg config.NotificationConfig, client *httpclient.HTTPClient, logger zerolog.Logger) (Notifier, error) {
	switch {
	case watchCfg.WebhookURL != "":
		logger.Info().Str("channel", ChannelWebhook).Msg("Notifications will be delivered to webhook")
		return NewWebhookNotifier(watchCfg.WebhookURL, client, logger), nil
	case watchCfg.NtfyChannel != "":
		server := notifCfg.NtfyServerURL
		if server == "" {
			server = config.DefaultNtfyServerURL
		}
		topicURL, err := urlhandler.JoinPathSegment(server, watchCfg.NtfyChannel)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("channel", ChannelNtfy).Str("topic_url", topicURL).Msg("Notifications will be delivered to ntfy")
		return NewNtfyNotifier(topicURL, client, logger), nil
	default:
		logger.Warn().Msg("No webhook URL or ntfy channel configured, notifications are disabled")
		return NopNotifier{}, nil
	}
}
