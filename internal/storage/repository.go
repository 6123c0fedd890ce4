package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gastos/internal/core"
	"gastos/internal/log"

	_ "modernc.org/sqlite"
)

// SQLiteRepository stores expenses and alerts in one SQLite database. It
// keeps the whole-collection contract of the JSON store: Save replaces every
// expense row inside a single transaction.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load implements ExpenseStore
func (r *SQLiteRepository) Load(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, amount_cents, category, description, date FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	items := make([]core.Expense, 0)
	for rows.Next() {
		var (
			e    core.Expense
			date string
		)
		if err := rows.Scan(&e.ID, &e.Amount.Cents, &e.Category, &e.Description, &date); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Date, _ = core.ParseDate(date)
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return items, nil
}

// Save implements ExpenseStore
func (r *SQLiteRepository) Save(ctx context.Context, items []core.Expense) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO expenses (id, amount_cents, category, description, date) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range items {
		if _, err := stmt.ExecContext(ctx, e.ID, e.Amount.Cents, e.Category, e.Description, e.Date.String()); err != nil {
			return fmt.Errorf("insert expense %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit expenses: %w", err)
	}

	slog.DebugContext(ctx, "Expenses saved to SQLite",
		log.FieldComponent, log.ComponentStorage,
		log.FieldCount, len(items))
	return nil
}

// ListAlerts implements AlertLog
func (r *SQLiteRepository) ListAlerts(ctx context.Context) ([]core.Alert, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, kind, category, amount_cents, average_cents, limit_cents, message
		 FROM alerts ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]core.Alert, 0)
	for rows.Next() {
		var (
			a    core.Alert
			date string
			kind string
		)
		if err := rows.Scan(&a.ID, &date, &kind, &a.Category,
			&a.Amount.Cents, &a.Average.Cents, &a.Limit.Cents, &a.Message); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		a.Date, _ = core.ParseDate(date)
		a.Kind = core.AlertKind(kind)
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alerts: %w", err)
	}
	return alerts, nil
}

// AppendAlert implements AlertLog
func (r *SQLiteRepository) AppendAlert(ctx context.Context, a core.Alert) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO alerts (id, date, kind, category, amount_cents, average_cents, limit_cents, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Date.String(), string(a.Kind), a.Category,
		a.Amount.Cents, a.Average.Cents, a.Limit.Cents, a.Message)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}

	slog.InfoContext(ctx, "Alert saved to SQLite",
		log.FieldComponent, log.ComponentStorage,
		log.FieldAlertKind, string(a.Kind),
		log.FieldCategory, a.Category)
	return nil
}
