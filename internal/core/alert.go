package core

// AlertKind identifies which threshold produced an alert.
type AlertKind string

const (
	AlertDaily    AlertKind = "diario"
	AlertWeekly   AlertKind = "semanal"
	AlertCategory AlertKind = "categoria"
)

// Alert is one entry of the append-only alert log.
type Alert struct {
	ID       string    `json:"id"`
	Date     Date      `json:"fecha"`
	Kind     AlertKind `json:"tipo"`
	Category string    `json:"categoria"`
	Amount   Money     `json:"monto"`
	Average  Money     `json:"promedio"`
	Limit    Money     `json:"limite"`
	Message  string    `json:"mensaje"`
}

func (k AlertKind) IsValid() bool {
	switch k {
	case AlertDaily, AlertWeekly, AlertCategory:
		return true
	}
	return false
}

// Label is the user-facing name of the kind.
func (k AlertKind) Label() string {
	switch k {
	case AlertDaily:
		return "Diaria"
	case AlertWeekly:
		return "Semanal"
	case AlertCategory:
		return "Categoría"
	}
	return string(k)
}
