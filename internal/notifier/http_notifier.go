package notifier

import (
	"context"

	"github.com/aleister1102/siteeagle/internal/httpclient"
	"github.com/rs/zerolog"
)

// httpPostNotifier posts the payload verbatim as the request body.
type httpPostNotifier struct {
	channel string
	target  string
	client  *httpclient.HTTPClient
	logger  zerolog.Logger
}

func (n *httpPostNotifier) Channel() string {
	return n.channel
}

func (n *httpPostNotifier) Notify(ctx context.Context, payload string) error {
	resp, err := n.client.Post(ctx, n.target, []byte(payload))
	if err != nil {
		return &NotifyError{Channel: n.channel, Target: n.target, Err: err}
	}
	n.logger.Debug().Int("status_code", resp.StatusCode).Int("payload_size", len(payload)).Msg("Notification delivered")
	return nil
}

// WebhookNotifier posts payloads to an arbitrary webhook URL.
type WebhookNotifier struct {
	httpPostNotifier
}

// NewWebhookNotifier creates a WebhookNotifier.
func NewWebhookNotifier(webhookURL string, client *httpclient.HTTPClient, logger zerolog.Logger) *WebhookNotifier {
	return &WebhookNotifier{httpPostNotifier{
		channel: ChannelWebhook,
		target:  webhookURL,
		client:  client,
		logger:  logger.With().Str("component", "WebhookNotifier").Logger(),
	}}
}

// NtfyNotifier publishes payloads to an ntfy topic.
type NtfyNotifier struct {
	httpPostNotifier
}

// NewNtfyNotifier creates an NtfyNotifier for the full topic URL, e.g. https://ntfy.sh/alerts.
func NewNtfyNotifier(topicURL string, client *httpclient.HTTPClient, logger zerolog.Logger) *NtfyNotifier {
	return &NtfyNotifier{httpPostNotifier{
		channel: ChannelNtfy,
		target:  topicURL,
		client:  client,
		logger:  logger.With().Str("component", "NtfyNotifier").Logger(),
	}}
}

// NopNotifier drops every payload.
type NopNotifier struct{}

func (NopNotifier) Channel() string {
	return ChannelNop
}

func (NopNotifier) Notify(context.Context, string) error {
	return nil
}
