package core

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// UnmarshalJSON reads a stored record leniently. A numeric string id is
// accepted, and a field of the wrong type decodes to its zero value instead
// of failing the record. Only a value that is not a JSON object is an error.
func (e *Expense) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          json.RawMessage `json:"id"`
		Amount      Money           `json:"monto"`
		Category    json.RawMessage `json:"categoria"`
		Description json.RawMessage `json:"descripcion"`
		Date        Date            `json:"fecha"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Expense{
		ID:          lenientInt(raw.ID),
		Amount:      raw.Amount,
		Category:    lenientString(raw.Category),
		Description: lenientString(raw.Description),
		Date:        raw.Date,
	}
	return nil
}

func lenientInt(data json.RawMessage) int64 {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.IntPart()
}

func lenientString(data json.RawMessage) string {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ""
	}
	return s
}
