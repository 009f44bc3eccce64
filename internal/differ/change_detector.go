package differ

import (
	"fmt"

	"github.com/aleister1102/siteeagle/internal/models"
	"github.com/rs/zerolog"
)

// ChangeDetector decides whether a new observation warrants a notification
// and builds its payload.
type ChangeDetector struct {
	formatter *UnifiedDiffFormatter
	logger    zerolog.Logger
}

// NewChangeDetector creates a ChangeDetector with the default diff configuration.
func NewChangeDetector(logger zerolog.Logger) *ChangeDetector {
	return NewChangeDetectorWithConfig(DefaultDiffConfig(), logger)
}

// NewChangeDetectorWithConfig creates a ChangeDetector with a custom diff configuration.
func NewChangeDetectorWithConfig(cfg DiffConfig, logger zerolog.Logger) *ChangeDetector {
	return &ChangeDetector{
		formatter: NewUnifiedDiffFormatter(cfg),
		logger:    logger.With().Str("component", "ChangeDetector").Logger(),
	}
}

// Detect compares current against previous. Nothing is sent for the first
// observation or when the fingerprints match.
func (cd *ChangeDetector) Detect(previous, current *models.Observation, diffMode bool, locator string) models.NotificationDecision {
	if previous == nil || current == nil {
		return models.NoNotification()
	}
	if previous.SameAs(current) {
		cd.logger.Debug().Str("url", locator).Str("fingerprint", current.Fingerprint).Msg("Content unchanged")
		return models.NoNotification()
	}

	ops := cd.formatter.processor.ProcessLineDiff(previous.Content, current.Content)
	stats := CalculateStats(ops)

	cd.logger.Info().
		Str("url", locator).
		Str("old_fingerprint", previous.Fingerprint).
		Str("new_fingerprint", current.Fingerprint).
		Int("lines_added", stats.LinesAdded).
		Int("lines_deleted", stats.LinesDeleted).
		Bool("diff_mode", diffMode).
		Msg("Content changed")

	if diffMode {
		return models.NotifyWith(cd.formatter.FormatOps(ops, locator+"_before", locator+"_after"))
	}
	return models.NotifyWith(FormatChangeMessage(locator, previous.Content, current.Content))
}

// FormatChangeMessage embeds both versions verbatim, without truncation.
func FormatChangeMessage(locator, before, after string) string {
	return fmt.Sprintf("Site (%s) change from '%s' to '%s'", locator, before, after)
}
