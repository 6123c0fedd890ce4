package services

import (
	"context"
	"fmt"
	"time"

	"gastos/internal/config"
	"gastos/internal/core"
	"gastos/internal/log"
	"gastos/internal/storage"
)

// AlertConfigLoader returns the current alert configuration; nil means
// alerting is off.
type AlertConfigLoader func() (*config.AlertConfig, error)

// NewExpense is the validated user input for one registration. A zero
// Date means today.
type NewExpense struct {
	Amount      core.Money
	Category    string
	Description string
	Date        core.Date
}

// Registration reports what happened after the expense was accepted.
type Registration struct {
	Expense core.Expense
	// Items is the updated snapshot, kept even when SaveErr is set.
	Items   []core.Expense
	SaveErr error
	// Evaluation is nil when the alert engine did not run.
	Evaluation *Evaluation
	// AlertErr covers both configuration and alert log failures.
	AlertErr error
}

// ExpenseService orchestrates registration: id assignment, persistence and
// the alert check.
type ExpenseService struct {
	store      storage.ExpenseStore
	engine     *AlertEngine
	loadConfig AlertConfigLoader
	logger     *log.Logger
	now        func() time.Time
}

func NewExpenseService(store storage.ExpenseStore, engine *AlertEngine, loadConfig AlertConfigLoader, logger *log.Logger) *ExpenseService {
	if logger == nil {
		logger = log.Discard()
	}
	if loadConfig == nil {
		loadConfig = func() (*config.AlertConfig, error) { return nil, nil }
	}
	return &ExpenseService{
		store:      store,
		engine:     engine,
		loadConfig: loadConfig,
		logger:     logger.WithComponent(log.ComponentExpense),
		now:        time.Now,
	}
}

// Register appends a new expense to items, saves the whole collection and
// runs the alert engine. The returned error is non-nil only for invalid
// input; persistence and alert problems are reported in the Registration.
func (s *ExpenseService) Register(ctx context.Context, items []core.Expense, in NewExpense) (Registration, error) {
	date := in.Date
	if date.IsZero() {
		date = core.DateOf(s.now())
	}
	e := core.Expense{
		ID:          core.NextID(items),
		Amount:      in.Amount,
		Category:    core.NormalizeCategory(in.Category),
		Description: in.Description,
		Date:        date,
	}
	if err := e.Validate(); err != nil {
		return Registration{}, fmt.Errorf("register expense: %w", err)
	}

	next := make([]core.Expense, 0, len(items)+1)
	next = append(next, items...)
	next = append(next, e)
	reg := Registration{Expense: e, Items: next}

	structured := log.NewStructuredLogger(s.logger)
	if err := s.store.Save(ctx, next); err != nil {
		structured.LogError(ctx, "Failed to save expenses", err, log.ComponentStorage, log.OpCreate,
			log.NewFields().WithExpense(e.ID, e.Amount.Cents, e.Category, e.Date.String()))
		reg.SaveErr = fmt.Errorf("save expenses: %w", err)
		// Alerts only run on persisted data.
		return reg, nil
	}
	structured.LogExpenseCreated(ctx, e.ID, e.Amount.Cents, e.Category, e.Date.String())

	if s.engine == nil {
		return reg, nil
	}
	cfg, err := s.loadConfig()
	if err != nil {
		s.logger.WarnContext(ctx, "Alert configuration unusable, alerts disabled", log.FieldError, err)
		reg.AlertErr = err
		return reg, nil
	}
	if cfg == nil {
		return reg, nil
	}
	ev, err := s.engine.Evaluate(ctx, next, e.Category, cfg)
	reg.Evaluation = &ev
	reg.AlertErr = err
	return reg, nil
}
