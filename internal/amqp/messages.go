package amqp

import (
	"encoding/json"
	"time"

	"gastos/internal/core"
)

// AlertMessage is the broker payload for one triggered spending alert.
type AlertMessage struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	LimitCents  int64     `json:"limit_cents"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewAlertMessage builds the payload for a.
func NewAlertMessage(a core.Alert, now time.Time) *AlertMessage {
	return &AlertMessage{
		ID:          a.ID,
		Date:        a.Date.String(),
		Kind:        string(a.Kind),
		Category:    a.Category,
		AmountCents: a.Amount.Cents,
		LimitCents:  a.Limit.Cents,
		Timestamp:   now,
	}
}

// ToJSON converts the message to JSON bytes
func (m *AlertMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
