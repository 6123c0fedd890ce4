// Package report selects the records of a reporting period and exports
// them as JSON files.
package report

import (
	"context"
	"fmt"
	"path/filepath"

	"gastos/internal/core"
	"gastos/internal/log"
	"gastos/internal/stats"
	"gastos/internal/storage"
)

type Period string

const (
	Daily   Period = "diario"
	Weekly  Period = "semanal"
	Monthly Period = "mensual"
)

// weekDays is the length of the rolling weekly window.
const weekDays = 7

// Periods lists the periods in menu order.
func Periods() []Period { return []Period{Daily, Weekly, Monthly} }

// PeriodAt maps a 1-based menu choice to a period.
func PeriodAt(choice int) (Period, bool) {
	all := Periods()
	if choice < 1 || choice > len(all) {
		return "", false
	}
	return all[choice-1], true
}

// Label is the menu text of the period.
func (p Period) Label() string {
	switch p {
	case Daily:
		return "Diario"
	case Weekly:
		return "Semanal (últimos 7 días)"
	case Monthly:
		return "Mensual"
	}
	return string(p)
}

// Select returns the records of the period ending on today.
func (p Period) Select(items []core.Expense, today core.Date) []core.Expense {
	switch p {
	case Daily:
		return stats.OnDay(items, today)
	case Weekly:
		return stats.LastNDays(items, today, weekDays)
	case Monthly:
		return stats.InMonth(items, today.Year(), today.Month())
	}
	return []core.Expense{}
}

func (p Period) Title(today core.Date) string {
	switch p {
	case Daily:
		return fmt.Sprintf("Reporte diario (%s)", today)
	case Weekly:
		return fmt.Sprintf("Reporte semanal (%s a %s)", today.AddDays(-(weekDays - 1)), today)
	case Monthly:
		return fmt.Sprintf("Reporte mensual (%04d-%02d)", today.Year(), today.Month())
	}
	return "Reporte"
}

// FileName is the export file name for the period ending on today.
func (p Period) FileName(today core.Date) string {
	switch p {
	case Monthly:
		return fmt.Sprintf("reporte_mensual_%04d_%02d.json", today.Year(), today.Month())
	default:
		return fmt.Sprintf("reporte_%s_%s.json", p, today)
	}
}

// Report is a period's records with their total.
type Report struct {
	Period Period
	Title  string
	Items  []core.Expense
	Total  core.Money
}

func Build(p Period, items []core.Expense, today core.Date) Report {
	selected := p.Select(items, today)
	return Report{
		Period: p,
		Title:  p.Title(today),
		Items:  selected,
		Total:  stats.Total(selected),
	}
}

// Exporter writes period reports under a directory.
type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Export writes the period's records as a JSON array, [] when empty, and
// returns the file path.
func (x *Exporter) Export(ctx context.Context, p Period, items []core.Expense, today core.Date) (string, Report, error) {
	r := Build(p, items, today)
	path := filepath.Join(x.dir, p.FileName(today))
	logger := log.FromContext(ctx).WithComponent(log.ComponentReport)

	if err := storage.WriteJSON(path, r.Items); err != nil {
		logger.ErrorContext(ctx, "Failed to export report",
			log.FieldPeriod, string(p), log.FieldPath, path, log.FieldError, err)
		return "", r, fmt.Errorf("export %s report: %w", p, err)
	}
	logger.InfoContext(ctx, "Report exported",
		log.FieldPeriod, string(p), log.FieldPath, path, log.FieldCount, len(r.Items))
	return path, r, nil
}
