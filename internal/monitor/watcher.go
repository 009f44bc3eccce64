package monitor

import (
	"context"
	"time"

	"github.com/aleister1102/siteeagle/internal/config"
	"github.com/aleister1102/siteeagle/internal/models"
	"github.com/aleister1102/siteeagle/internal/notifier"
	"github.com/rs/zerolog"
)

// ContentFetcher obtains the current content of a watched resource.
type ContentFetcher interface {
	Fetch(ctx context.Context, locator, selector string) (string, error)
}

// ChangeDetector decides whether two observations differ enough to notify.
type ChangeDetector interface {
	Detect(previous, current *models.Observation, diffMode bool, locator string) models.NotificationDecision
}

// NotificationSender delivers payloads. Delivery failures never reach the watcher.
type NotificationSender interface {
	Send(ctx context.Context, payload string)
}

// SleepFunc waits for d or until ctx is done, returning ctx.Err() in the latter case.
type SleepFunc func(ctx context.Context, d time.Duration) error

// WatcherOption customises a Watcher.
type WatcherOption func(*Watcher)

// WithSleepFunc replaces the wait between cycles.
func WithSleepFunc(sleep SleepFunc) WatcherOption {
	return func(w *Watcher) {
		w.sleep = sleep
	}
}

// Watcher runs the fetch, compare, notify, sleep loop for a single resource.
// All state lives in the loop's goroutine.
type Watcher struct {
	cfg      config.WatchConfig
	fetcher  ContentFetcher
	detector ChangeDetector
	sender   NotificationSender
	sleep    SleepFunc
	state    models.WatchState
	tracker  *CycleTracker
	logger   zerolog.Logger
}

// NewWatcher creates a Watcher for cfg.
func NewWatcher(cfg config.WatchConfig, fetcher ContentFetcher, detector ChangeDetector, sender NotificationSender, logger zerolog.Logger, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		cfg:      cfg,
		fetcher:  fetcher,
		detector: detector,
		sender:   sender,
		sleep:    sleepContext,
		tracker:  NewCycleTracker(),
		logger:   logger.With().Str("component", "Watcher").Str("url", cfg.Site).Logger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run loops until ctx is cancelled or the failure threshold is exceeded.
// It returns ctx.Err() on cancellation and *TerminationError on giving up.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info().
		Str("locator", w.cfg.Locator()).
		Bool("has_selector", w.cfg.HasSelector()).
		Str("selector", w.cfg.Selector).
		Bool("diff", w.cfg.Diff).
		Dur("frequency", w.cfg.Frequency()).
		Int("max_consecutive_errors", w.cfg.MaxConsecutiveErrors).
		Msg("Watch started")

	for {
		if err := ctx.Err(); err != nil {
			w.logStopped(err)
			return err
		}

		if err := w.runCycle(ctx); err != nil {
			w.logStopped(err)
			return err
		}

		if err := w.sleep(ctx, w.cfg.Frequency()); err != nil {
			w.logStopped(err)
			return err
		}
	}
}

// State returns a copy of the loop state. Only call it when Run is not executing.
func (w *Watcher) State() models.WatchState {
	return w.state
}

// Stats returns cycle counters. Only call it when Run is not executing.
func (w *Watcher) Stats() CycleStats {
	return w.tracker.Stats()
}

func (w *Watcher) runCycle(ctx context.Context) error {
	cycleID := w.tracker.StartCycle(time.Now())
	logger := w.logger.With().Str("cycle_id", cycleID).Logger()

	content, err := w.fetcher.Fetch(ctx, w.cfg.Site, w.cfg.Selector)
	if err != nil {
		// A fetch aborted by shutdown is not a failure of the site.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return w.handleFailure(ctx, logger, err)
	}

	current := NewObservation(content, time.Now())
	if w.state.Previous != nil {
		decision := w.detector.Detect(w.state.Previous, current, w.cfg.Diff, w.cfg.Locator())
		if decision.Notify {
			w.tracker.RecordChange()
			w.notify(ctx, decision.Payload)
		}
	} else {
		logger.Info().Str("fingerprint", current.Fingerprint).Msg("Initial observation recorded")
	}

	w.state.Previous = current
	w.state.ConsecutiveErrors = 0
	return nil
}

func (w *Watcher) handleFailure(ctx context.Context, logger zerolog.Logger, fetchErr error) error {
	w.tracker.RecordFailure()
	terminating := w.state.ConsecutiveErrors >= w.cfg.MaxConsecutiveErrors

	logger.Warn().
		Err(fetchErr).
		Int("consecutive_errors", w.state.ConsecutiveErrors).
		Bool("terminating", terminating).
		Msg("Fetch failed")

	w.notify(ctx, notifier.FormatErrorMessage(w.cfg.Locator(), terminating))

	if terminating {
		return &TerminationError{
			URL:               w.cfg.Site,
			ConsecutiveErrors: w.state.ConsecutiveErrors + 1,
			Err:               fetchErr,
		}
	}

	w.state.ConsecutiveErrors++
	return nil
}

func (w *Watcher) notify(ctx context.Context, payload string) {
	w.tracker.RecordNotification()
	w.sender.Send(ctx, payload)
}

func (w *Watcher) logStopped(err error) {
	stats := w.tracker.Stats()
	w.logger.Info().
		Err(err).
		Str("last_cycle_id", w.tracker.GetCurrentCycleID()).
		Int("cycles", stats.Cycles).
		Int("changes", stats.Changes).
		Int("failures", stats.Failures).
		Msg("Watch stopped")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
