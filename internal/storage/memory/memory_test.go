package memory

import (
	"context"
	"testing"

	"gastos/internal/core"
)

func TestMemoryStoreSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := New(core.Expense{ID: 1, Amount: core.Money{Cents: 100}, Category: "Comida"})

	items, err := s.Load(ctx)
	if err != nil || len(items) != 1 {
		t.Fatalf("unexpected load: items=%v err=%v", items, err)
	}

	// Mutating the loaded slice must not leak into the store
	items[0].Category = "Salud"
	items = append(items, core.Expense{ID: 2, Amount: core.Money{Cents: 200}})

	again, _ := s.Load(ctx)
	if len(again) != 1 || again[0].Category != "Comida" {
		t.Fatalf("store was mutated through a loaded slice: %+v", again)
	}

	if err := s.Save(ctx, items); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, _ = s.Load(ctx)
	if len(again) != 2 {
		t.Fatalf("expected 2 items after save, got %d", len(again))
	}
}

func TestMemoryAlertLogAppends(t *testing.T) {
	ctx := context.Background()
	s := New()

	alerts, err := s.ListAlerts(ctx)
	if err != nil || len(alerts) != 0 {
		t.Fatalf("unexpected alerts: %v err=%v", alerts, err)
	}
	for _, k := range []core.AlertKind{core.AlertDaily, core.AlertDaily, core.AlertWeekly} {
		if err := s.AppendAlert(ctx, core.Alert{Kind: k}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	alerts, _ = s.ListAlerts(ctx)
	if len(alerts) != 3 || alerts[2].Kind != core.AlertWeekly {
		t.Fatalf("unexpected alerts: %+v", alerts)
	}
}
