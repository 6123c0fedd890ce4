package storage

import (
	"context"

	"gastos/internal/core"
)

// Ports implemented by every storage backend.
type (
	// ExpenseStore loads and rewrites the whole expense collection.
	ExpenseStore interface {
		Load(ctx context.Context) ([]core.Expense, error)
		Save(ctx context.Context, items []core.Expense) error
	}

	// AlertLog is the append-only alert history.
	AlertLog interface {
		ListAlerts(ctx context.Context) ([]core.Alert, error)
		AppendAlert(ctx context.Context, a core.Alert) error
	}
)
