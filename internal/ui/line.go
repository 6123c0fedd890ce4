package ui

import (
	"fmt"
	"io"

	"gastos/internal/core"
)

// FormatLine renders one expense on a single line:
//
//	ID:1 | 2024-03-05 | Comida       | 50.00    | Almuerzo
func FormatLine(e core.Expense) string {
	return fmt.Sprintf("ID:%d | %s | %-12s | %-8s | %s",
		e.ID, e.Date, e.Category, e.Amount, e.Description)
}

func RenderLines(w io.Writer, items []core.Expense) {
	if len(items) == 0 {
		fmt.Fprintln(w, NoData)
		return
	}
	for _, e := range items {
		fmt.Fprintln(w, FormatLine(e))
	}
}

// ListView selects how expense lists are printed.
type ListView string

const (
	ViewTable ListView = "table"
	ViewLines ListView = "lines"
)

// RenderExpenses prints items in the chosen view; anything but ViewLines
// gets the table.
func RenderExpenses(w io.Writer, view ListView, items []core.Expense) {
	if view == ViewLines {
		RenderLines(w, items)
		return
	}
	RenderTable(w, items)
}
