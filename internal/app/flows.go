package app

import (
	"context"
	"fmt"

	"gastos/internal/core"
	"gastos/internal/log"
	"gastos/internal/report"
	"gastos/internal/services"
	"gastos/internal/stats"
	"gastos/internal/ui"
)

func (a *App) register(ctx context.Context) error {
	fmt.Fprintln(a.out, "=== REGISTRAR NUEVO GASTO ===")

	amount, err := a.askAmount(ctx)
	if err != nil {
		return err
	}
	category, err := a.askCategory(ctx)
	if err != nil {
		return err
	}
	description, err := a.askDescription(ctx)
	if err != nil {
		return err
	}
	date, err := a.askDate(ctx)
	if err != nil {
		return err
	}

	reg, err := a.expenses.Register(ctx, a.items, services.NewExpense{
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	})
	if err != nil {
		ui.Failure(a.out, "No se pudo registrar el gasto: %v", err)
		return nil
	}
	a.items = reg.Items

	if reg.SaveErr != nil {
		ui.Failure(a.out, "Error al guardar el gasto.")
		return nil
	}
	ui.Success(a.out, "Gasto registrado correctamente (ID %d).", reg.Expense.ID)
	a.showEvaluation(reg)
	return nil
}

func (a *App) showEvaluation(reg services.Registration) {
	if reg.Evaluation == nil {
		if reg.AlertErr != nil {
			ui.Info(a.out, "Configuración de alertas inválida; alertas desactivadas.")
		}
		return
	}
	if reg.Evaluation.Skipped {
		ui.Info(a.out, "Aún no hay historial suficiente para calcular promedios.")
		return
	}
	for _, alert := range reg.Evaluation.Alerts {
		ui.Alert(a.out, alert)
	}
	if reg.AlertErr != nil {
		ui.Failure(a.out, "No se pudo guardar el historial de alertas.")
	}
}

func (a *App) askAmount(ctx context.Context) (core.Money, error) {
	for {
		answer, err := a.prompt.Ask(ctx, "Monto (solo números, mayor a 0) > ")
		if err != nil {
			return core.Money{}, err
		}
		cents, err := core.ParseDecimalToCents(answer)
		if err != nil {
			fmt.Fprintln(a.out, "Debe ingresar un número mayor a 0.")
			continue
		}
		return core.Money{Cents: cents}, nil
	}
}

func (a *App) askCategory(ctx context.Context) (string, error) {
	categories := core.Categories()
	ui.RenderChoices(a.out, "Categorías disponibles:", categories)
	for {
		idx, ok, err := a.prompt.AskInt(ctx, "Seleccione número de categoría > ")
		if err != nil {
			return "", err
		}
		if !ok {
			fmt.Fprintln(a.out, "Debe ingresar un número.")
			continue
		}
		if c, ok := core.CategoryAt(idx); ok {
			return c, nil
		}
		fmt.Fprintln(a.out, "Selección inválida.")
	}
}

func (a *App) askDescription(ctx context.Context) (string, error) {
	for {
		answer, err := a.prompt.Ask(ctx, "Descripción (solo texto) > ")
		if err != nil {
			return "", err
		}
		if err := core.ValidateDescription(answer); err != nil {
			fmt.Fprintln(a.out, "La descripción solo puede contener letras y espacios.")
			continue
		}
		return answer, nil
	}
}

func (a *App) askDate(ctx context.Context) (core.Date, error) {
	today := a.today()
	answer, err := a.prompt.Ask(ctx, fmt.Sprintf("Fecha (ENTER = hoy %s) [YYYY-MM-DD o DD/MM/YYYY] > ", today))
	if err != nil {
		return core.Date{}, err
	}
	if answer == "" {
		return today, nil
	}
	d, ok := core.ParseDate(answer)
	if !ok {
		ui.Info(a.out, "Formato de fecha inválido. Se toma la fecha de hoy.")
		return today, nil
	}
	return d, nil
}

func (a *App) listAll() {
	fmt.Fprintln(a.out, "=== LISTA DE GASTOS ===")
	if len(a.items) == 0 {
		fmt.Fprintln(a.out, "No hay gastos registrados.")
		return
	}
	ui.RenderExpenses(a.out, a.view, a.items)
	fmt.Fprintf(a.out, "Total: %s\n", stats.Total(a.items))
}

func (a *App) listByCategory(ctx context.Context) error {
	ui.RenderChoices(a.out, "Categorías disponibles:", core.Categories())
	idx, _, err := a.prompt.AskInt(ctx, "Seleccione número de categoría > ")
	if err != nil {
		return err
	}

	category, fromIndex := core.CategoryAt(idx)
	if !fromIndex {
		category, err = a.prompt.Ask(ctx, "Escribe la categoría manualmente > ")
		if err != nil {
			return err
		}
		if category == "" {
			category = core.OtherCategory
		}
	}

	matched := stats.FilterCategory(a.items, category)
	fmt.Fprintf(a.out, "Gastos de la categoría '%s'\n", category)
	if len(matched) == 0 {
		fmt.Fprintln(a.out, "No hay registros.")
		if !fromIndex {
			if s, ok := core.SuggestCategory(category); ok {
				fmt.Fprintf(a.out, "¿Quiso decir '%s'?\n", s)
			}
		}
		return nil
	}
	ui.RenderExpenses(a.out, a.view, matched)
	fmt.Fprintf(a.out, "Subtotal %s: %s\n", category, stats.Total(matched))
	return nil
}

func (a *App) totals() {
	fmt.Fprintln(a.out, "=== TOTALES ===")
	fmt.Fprintf(a.out, "Total general: %s\n", stats.Total(a.items))
	fmt.Fprintln(a.out, "Totales por categoría:")
	for _, c := range stats.SortedCategories(stats.ByCategory(a.items)) {
		fmt.Fprintf(a.out, "  %-15s: %s\n", c.Name, c.Amount)
	}
}

func (a *App) askPeriod(ctx context.Context) (report.Period, bool, error) {
	labels := make([]string, 0, len(report.Periods()))
	for _, p := range report.Periods() {
		labels = append(labels, p.Label())
	}
	ui.RenderChoices(a.out, "", labels)
	choice, _, err := a.prompt.AskInt(ctx, "Seleccione > ")
	if err != nil {
		return "", false, err
	}
	p, ok := report.PeriodAt(choice)
	if !ok {
		fmt.Fprintln(a.out, "Opción inválida.")
	}
	return p, ok, nil
}

func (a *App) reports(ctx context.Context) error {
	fmt.Fprintln(a.out, "=== REPORTES ===")
	p, ok, err := a.askPeriod(ctx)
	if err != nil || !ok {
		return err
	}

	r := report.Build(p, a.items, a.today())
	fmt.Fprintln(a.out, r.Title)
	if len(r.Items) == 0 {
		fmt.Fprintln(a.out, "No hay registros en este periodo.")
		return nil
	}
	ui.RenderExpenses(a.out, a.view, r.Items)
	fmt.Fprintf(a.out, "Total periodo: %s\n", r.Total)
	return nil
}

func (a *App) export(ctx context.Context) error {
	fmt.Fprintln(a.out, "=== GUARDAR REPORTE EN JSON ===")
	p, ok, err := a.askPeriod(ctx)
	if err != nil || !ok {
		return err
	}

	path, r, err := a.exporter.Export(ctx, p, a.items, a.today())
	if err != nil {
		ui.Failure(a.out, "Error guardando el reporte.")
		return nil
	}
	ui.Success(a.out, "Reporte guardado en %s (elementos: %d)", path, len(r.Items))
	return nil
}

func (a *App) alertHistory(ctx context.Context) {
	fmt.Fprintln(a.out, "=== HISTORIAL DE ALERTAS ===")
	if a.alerts == nil {
		fmt.Fprintln(a.out, "No hay alertas registradas.")
		return
	}
	alerts, err := a.alerts.ListAlerts(ctx)
	if err != nil {
		a.logger.ErrorContext(ctx, "Failed to read alert history", log.FieldError, err)
		ui.Failure(a.out, "No se pudo leer el historial de alertas.")
		return
	}
	if len(alerts) == 0 {
		fmt.Fprintln(a.out, "No hay alertas registradas.")
		return
	}
	ui.RenderAlerts(a.out, alerts)
}

func (a *App) panel(ctx context.Context) {
	fmt.Fprintln(a.out, "=== PROMEDIOS Y LÍMITES ===")
	f := services.ComputeFigures(a.items, a.today())
	if !f.HasHistory {
		fmt.Fprintln(a.out, "Aún no hay historial suficiente para calcular promedios.")
		return
	}
	ui.RenderPairs(a.out, "Gasto actual", [][2]string{
		{"Promedio diario", core.MoneyFromDecimal(f.AverageDaily).String()},
		{"Promedio semanal", core.MoneyFromDecimal(f.AverageWeekly).String()},
		{"Gasto de hoy", f.TodayTotal.String()},
		{"Gasto de la semana", f.WeekTotal.String()},
	})

	if a.loadConfig == nil {
		fmt.Fprintln(a.out, "Alertas desactivadas (sin configuración).")
		return
	}
	cfg, err := a.loadConfig()
	if err != nil {
		a.logger.WarnContext(ctx, "Alert configuration unusable", log.FieldError, err)
		ui.Info(a.out, "Configuración de alertas inválida; alertas desactivadas.")
		return
	}
	checkers := services.PanelCheckers(cfg)
	if len(checkers) == 0 {
		fmt.Fprintln(a.out, "Alertas desactivadas (sin configuración).")
		return
	}

	rows := make([][2]string, 0, len(checkers))
	for _, c := range checkers {
		th := c.Evaluate(f)
		label := th.Kind.Label()
		if th.Category != "" {
			label += " " + th.Category
		}
		status := "OK"
		if th.Exceeded() {
			status = "SUPERADO"
		}
		rows = append(rows, [2]string{
			fmt.Sprintf("%s (%s%%)", label, th.Percent),
			fmt.Sprintf("%s / %s %s", th.Observed, core.MoneyFromDecimal(th.Limit), status),
		})
	}
	ui.RenderPairs(a.out, "Límites configurados (actual / límite)", rows)
}
