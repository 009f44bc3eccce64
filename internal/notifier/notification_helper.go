package notifier

import (
	"context"

	"github.com/aleister1102/siteeagle/internal/config"
	"github.com/rs/zerolog"
)

// NotificationHelper sends payloads without surfacing delivery failures to the caller.
type NotificationHelper struct {
	notifier Notifier
	cfg      config.NotificationConfig
	logger   zerolog.Logger
}

// NewNotificationHelper creates a new NotificationHelper.
func NewNotificationHelper(n Notifier, cfg config.NotificationConfig, logger zerolog.Logger) *NotificationHelper {
	if n == nil {
		n = NopNotifier{}
	}
	return &NotificationHelper{
		notifier: n,
		cfg:      cfg,
		logger:   logger.With().Str("module", "NotificationHelper").Logger(),
	}
}

// Send delivers payload once. Failures are logged and dropped.
func (nh *NotificationHelper) Send(ctx context.Context, payload string) {
	sendCtx := ctx
	if timeout := nh.cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := nh.notifier.Notify(sendCtx, payload); err != nil {
		nh.logger.Error().Err(err).Str("channel", nh.notifier.Channel()).Msg("Failed to send notification")
		return
	}
	nh.logger.Debug().Str("channel", nh.notifier.Channel()).Msg("Notification sent")
}
