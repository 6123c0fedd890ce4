package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gastos/internal/config"
	"gastos/internal/core"
	"gastos/internal/storage"
)

type failingStore struct{}

func (failingStore) Load(context.Context) ([]core.Expense, error) { return nil, nil }

func (failingStore) Save(context.Context, []core.Expense) error {
	return errors.New("read-only filesystem")
}

func TestExpenseService_RegisterPersists(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewJSONStore(filepath.Join(dir, "gastos.json"))
	svc := NewExpenseService(store, nil, nil, nil)
	svc.now = fixedClock
	ctx := context.Background()

	existing := []core.Expense{
		expense(3, "5.00", "Comida", "2024-03-01"),
		expense(7, "8.00", "Hogar", "2024-03-02"),
	}

	reg, err := svc.Register(ctx, existing, NewExpense{
		Amount:      core.NewMoney(12, 50),
		Category:    "salud",
		Description: "Farmacia",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if reg.SaveErr != nil {
		t.Fatalf("SaveErr = %v", reg.SaveErr)
	}
	if reg.Expense.ID != 8 {
		t.Errorf("ID = %d, want 8", reg.Expense.ID)
	}
	if reg.Expense.Category != "Salud" {
		t.Errorf("Category = %q, want Salud", reg.Expense.Category)
	}
	if !reg.Expense.Date.Equal(core.NewDate(2024, 3, 6)) {
		t.Errorf("Date = %s, want today", reg.Expense.Date)
	}
	if len(existing) != 2 {
		t.Error("Register() modified the input slice")
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("loaded %d records, want 3", len(loaded))
	}
	if got := loaded[2]; got.ID != 8 || got.Amount.Cents != 1250 || got.Description != "Farmacia" {
		t.Errorf("stored record = %+v", got)
	}
}

func TestExpenseService_RegisterRejectsInvalid(t *testing.T) {
	svc := NewExpenseService(failingStore{}, nil, nil, nil)

	tests := []struct {
		name string
		in   NewExpense
		want error
	}{
		{"zero amount", NewExpense{Category: "Comida", Description: "Pan"}, core.ErrInvalidAmount},
		{"digits in description", NewExpense{Amount: core.NewMoney(1, 0), Description: "Pan 2"}, core.ErrInvalidDescription},
		{"empty description", NewExpense{Amount: core.NewMoney(1, 0), Description: "  "}, core.ErrEmptyDescription},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), nil, tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("Register() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExpenseService_SaveFailureKeepsSnapshot(t *testing.T) {
	engine, alerts := newTestEngine(t)
	loads := 0
	loader := func() (*config.AlertConfig, error) {
		loads++
		return &config.AlertConfig{DailyPercent: pct(1)}, nil
	}
	svc := NewExpenseService(failingStore{}, engine, loader, nil)

	reg, err := svc.Register(context.Background(), nil, NewExpense{
		Amount: core.NewMoney(3, 0), Category: "Otros", Description: "Regalo",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if reg.SaveErr == nil {
		t.Fatal("SaveErr = nil, want failure")
	}
	if len(reg.Items) != 1 || reg.Items[0].ID != 1 {
		t.Errorf("Items = %+v, want the new record", reg.Items)
	}
	if reg.Evaluation != nil || loads != 0 {
		t.Error("alert engine ran on unsaved data")
	}
	logged, _ := alerts.ListAlerts(context.Background())
	if len(logged) != 0 {
		t.Errorf("logged %d alerts, want 0", len(logged))
	}
}

func TestExpenseService_RunsAlertEngine(t *testing.T) {
	engine, alerts := newTestEngine(t)
	svc := NewExpenseService(storage.NewJSONStore(filepath.Join(t.TempDir(), "g.json")), engine,
		func() (*config.AlertConfig, error) {
			return &config.AlertConfig{DailyPercent: pct(150)}, nil
		}, nil)
	svc.now = fixedClock

	items := []core.Expense{
		expense(1, "4.00", "Comida", "2024-03-04"),
		expense(2, "10.00", "Comida", "2024-03-05"),
	}
	reg, err := svc.Register(context.Background(), items, NewExpense{
		Amount: core.NewMoney(16, 0), Category: "Comida", Description: "Cena",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if reg.Evaluation == nil || len(reg.Evaluation.Alerts) != 1 {
		t.Fatalf("Evaluation = %+v, want one alert", reg.Evaluation)
	}
	logged, _ := alerts.ListAlerts(context.Background())
	if len(logged) != 1 {
		t.Errorf("logged %d alerts, want 1", len(logged))
	}
}

func TestExpenseService_BadAlertConfig(t *testing.T) {
	engine, _ := newTestEngine(t)
	svc := NewExpenseService(storage.NewJSONStore(filepath.Join(t.TempDir(), "g.json")), engine,
		func() (*config.AlertConfig, error) { return nil, errors.New("invalid json") }, nil)

	reg, err := svc.Register(context.Background(), nil, NewExpense{
		Amount: core.NewMoney(1, 0), Category: "Comida", Description: "Pan",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if reg.AlertErr == nil || reg.Evaluation != nil {
		t.Errorf("AlertErr = %v, Evaluation = %+v", reg.AlertErr, reg.Evaluation)
	}
}
