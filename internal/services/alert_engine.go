package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gastos/internal/config"
	"gastos/internal/core"
	"gastos/internal/log"
	"gastos/internal/storage"
)

// AlertNotifier receives every alert after it is logged. *amqp.Client
// satisfies it.
type AlertNotifier interface {
	PublishAlert(ctx context.Context, a core.Alert) error
}

// Evaluation is the outcome of one engine run.
type Evaluation struct {
	Figures Figures
	// Skipped is true when no averages exist and no check ran.
	Skipped bool
	Alerts  []core.Alert
}

// AlertEngine checks a freshly registered expense against the configured
// thresholds and records every breach.
type AlertEngine struct {
	alerts   storage.AlertLog
	notifier AlertNotifier
	logger   *log.Logger
	now      func() time.Time
	newID    func() string
}

// AlertEngineOption customises an AlertEngine.
type AlertEngineOption func(*AlertEngine)

// WithNotifier publishes each alert after it is logged.
func WithNotifier(n AlertNotifier) AlertEngineOption {
	return func(e *AlertEngine) { e.notifier = n }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) AlertEngineOption {
	return func(e *AlertEngine) { e.now = now }
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) AlertEngineOption {
	return func(e *AlertEngine) { e.logger = l }
}

func NewAlertEngine(alerts storage.AlertLog, opts ...AlertEngineOption) *AlertEngine {
	e := &AlertEngine{
		alerts: alerts,
		logger: log.Discard(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithComponent(log.ComponentAlerts)
	return e
}

// Evaluate runs every check enabled by cfg for an expense in category.
// items must already contain the new expense. Triggered alerts are
// returned even when logging them failed; those failures are joined into
// the returned error.
func (e *AlertEngine) Evaluate(ctx context.Context, items []core.Expense, category string, cfg *config.AlertConfig) (Evaluation, error) {
	today := core.DateOf(e.now())
	ev := Evaluation{Figures: ComputeFigures(items, today)}
	if !ev.Figures.HasHistory {
		ev.Skipped = true
		return ev, nil
	}

	structured := log.NewStructuredLogger(e.logger)
	var errs []error
	for _, checker := range CheckersFor(cfg, category) {
		th := checker.Evaluate(ev.Figures)
		if !th.Exceeded() {
			continue
		}

		alert := core.Alert{
			ID:       e.newID(),
			Date:     today,
			Kind:     th.Kind,
			Category: category,
			Amount:   th.Observed,
			Average:  core.MoneyFromDecimal(th.Average),
			Limit:    core.MoneyFromDecimal(th.Limit),
			Message:  th.Message(),
		}
		ev.Alerts = append(ev.Alerts, alert)
		structured.LogAlertTriggered(ctx, alert.ID, string(alert.Kind), alert.Category, alert.Limit.Cents)

		if err := e.alerts.AppendAlert(ctx, alert); err != nil {
			structured.LogError(ctx, "Failed to log alert", err, log.ComponentAlerts, log.OpAppend,
				log.NewFields().WithAlert(alert.ID, string(alert.Kind), alert.Category, alert.Limit.Cents))
			errs = append(errs, fmt.Errorf("append %s alert: %w", alert.Kind, err))
			continue
		}
		e.publish(ctx, alert)
	}
	return ev, errors.Join(errs...)
}

func (e *AlertEngine) publish(ctx context.Context, a core.Alert) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.PublishAlert(ctx, a); err != nil {
		// The alert is already logged locally.
		e.logger.ErrorContext(ctx, "Failed to publish alert",
			log.FieldAlertID, a.ID, log.FieldOperation, log.OpPublish, log.FieldError, err)
	}
}
