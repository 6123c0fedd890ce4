package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"gastos/internal/core"
)

// NoData is printed instead of an empty table.
const NoData = "No hay datos para mostrar."

var (
	expenseHeaders = []string{"ID", "MONTO", "CATEGORÍA", "DESCRIPCIÓN", "FECHA"}
	alertHeaders   = []string{"FECHA", "TIPO", "CATEGORÍA", "MONTO", "PROMEDIO", "LÍMITE"}
)

// RenderTable prints expenses as a box-drawn table sized to the widest cell.
func RenderTable(w io.Writer, items []core.Expense) {
	rows := make([][]string, 0, len(items))
	for _, e := range items {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Amount.String(),
			e.Category,
			e.Description,
			e.Date.String(),
		})
	}
	renderBox(w, expenseHeaders, rows)
}

// RenderAlerts prints the alert history, oldest first, each followed by its
// message.
func RenderAlerts(w io.Writer, alerts []core.Alert) {
	rows := make([][]string, 0, len(alerts))
	for _, a := range alerts {
		rows = append(rows, []string{
			a.Date.String(),
			a.Kind.Label(),
			a.Category,
			a.Amount.String(),
			a.Average.String(),
			a.Limit.String(),
		})
	}
	renderBox(w, alertHeaders, rows)
	for i, a := range alerts {
		fmt.Fprintf(w, "%d. %s\n", i+1, a.Message)
	}
}

// RenderPairs prints a two-column label/value table under a title.
func RenderPairs(w io.Writer, title string, pairs [][2]string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p[0], p[1]})
	}
	renderBox(w, nil, rows)
}

func renderBox(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, NoData)
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Rows(rows...)
	if len(headers) > 0 {
		t = t.Headers(headers...)
	}
	fmt.Fprintln(w, t.Render())
}
