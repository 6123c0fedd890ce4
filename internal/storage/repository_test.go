package storage

import (
	"context"
	"path/filepath"
	"testing"

	"gastos/internal/core"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "db", "gastos.db"))
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepositorySaveReplacesCollection(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	items, err := repo.Load(ctx)
	if err != nil || len(items) != 0 {
		t.Fatalf("fresh database: items=%v err=%v", items, err)
	}

	first := []core.Expense{
		{ID: 1, Amount: core.NewMoney(50, 0), Category: "Comida", Description: "Almuerzo", Date: core.NewDate(2024, 3, 5)},
		{ID: 2, Amount: core.NewMoney(3, 20), Category: "Transporte", Description: "Bus", Date: core.NewDate(2024, 3, 5)},
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := append(first[:1:1], core.Expense{ID: 3, Amount: core.NewMoney(9, 99), Category: "Salud", Description: "Farmacia", Date: core.NewDate(2024, 3, 6)})
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	items, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 3 {
		t.Fatalf("unexpected items: %+v", items)
	}
	if items[1].Amount.Cents != 999 || !items[1].Date.Equal(core.NewDate(2024, 3, 6)) {
		t.Fatalf("fields not preserved: %+v", items[1])
	}
}

func TestSQLiteRepositoryAlertsKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	for _, id := range []string{"b", "a", "c"} {
		err := repo.AppendAlert(ctx, core.Alert{
			ID: id, Date: core.NewDate(2024, 3, 6), Kind: core.AlertCategory, Category: "Comida",
			Amount: core.NewMoney(16, 0), Average: core.NewMoney(10, 0), Limit: core.NewMoney(15, 0),
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	alerts, err := repo.ListAlerts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(alerts) != 3 || alerts[0].ID != "b" || alerts[2].ID != "c" {
		t.Fatalf("unexpected order: %+v", alerts)
	}
	if alerts[0].Kind != core.AlertCategory || alerts[0].Average.Cents != 1000 {
		t.Fatalf("fields not preserved: %+v", alerts[0])
	}
}

func TestSQLiteRepositoryReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "gastos.db")

	repo, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := repo.Save(ctx, []core.Expense{{ID: 7, Amount: core.NewMoney(1, 0), Category: "Hogar", Description: "Foco", Date: core.NewDate(2024, 1, 2)}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	repo.Close()

	repo, err = NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer repo.Close()
	items, _ := repo.Load(ctx)
	if len(items) != 1 || items[0].ID != 7 {
		t.Fatalf("unexpected items after reopen: %+v", items)
	}
}
