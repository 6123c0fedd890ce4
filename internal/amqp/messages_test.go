package amqp

import (
	"encoding/json"
	"testing"
	"time"

	"gastos/internal/core"
)

func TestNewAlertMessage(t *testing.T) {
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	a := core.Alert{
		ID:       "5f1c",
		Date:     core.NewDate(2024, 3, 6),
		Kind:     core.AlertCategory,
		Category: "Comida",
		Amount:   core.NewMoney(16, 0),
		Average:  core.NewMoney(10, 0),
		Limit:    core.NewMoney(8, 0),
	}

	msg := NewAlertMessage(a, now)
	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]any{
		"id":           "5f1c",
		"date":         "2024-03-06",
		"kind":         "categoria",
		"category":     "Comida",
		"amount_cents": float64(1600),
		"limit_cents":  float64(800),
		"timestamp":    "2024-03-06T12:00:00Z",
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("%s = %v, want %v", k, decoded[k], v)
		}
	}
}
