// Package app runs the interactive menu loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"gastos/internal/core"
	"gastos/internal/log"
	"gastos/internal/report"
	"gastos/internal/services"
	"gastos/internal/storage"
	"gastos/internal/ui"
)

const (
	optRegister = iota + 1
	optListAll
	optListCategory
	optTotals
	optReports
	optExport
	optAlertHistory
	optPanel
	optExit
)

// Farewell is printed when input ends or the process is interrupted.
const Farewell = "Saliendo..."

// Deps groups everything the loop needs. Expenses and Exporter are
// required; the rest have usable zero values.
type Deps struct {
	Store       storage.ExpenseStore
	Alerts      storage.AlertLog
	Expenses    *services.ExpenseService
	Exporter    *report.Exporter
	AlertConfig services.AlertConfigLoader
	In          io.Reader
	Out         io.Writer
	Logger      *log.Logger
	// Pause waits for ENTER after each action.
	Pause bool
	// View picks table or one-line rendering for record lists.
	View ui.ListView
	Now  func() time.Time
}

// App owns the in-memory expense snapshot for one session.
type App struct {
	store      storage.ExpenseStore
	alerts     storage.AlertLog
	expenses   *services.ExpenseService
	exporter   *report.Exporter
	loadConfig services.AlertConfigLoader
	in         io.Reader
	out        io.Writer
	logger     *log.Logger
	pause      bool
	view       ui.ListView
	now        func() time.Time

	prompt *ui.Prompter
	items  []core.Expense
}

func New(d Deps) *App {
	a := &App{
		store:      d.Store,
		alerts:     d.Alerts,
		expenses:   d.Expenses,
		exporter:   d.Exporter,
		loadConfig: d.AlertConfig,
		in:         d.In,
		out:        d.Out,
		logger:     d.Logger,
		pause:      d.Pause,
		view:       d.View,
		now:        d.Now,
	}
	if a.out == nil {
		a.out = io.Discard
	}
	if a.logger == nil {
		a.logger = log.Discard()
	}
	a.logger = a.logger.WithComponent(log.ComponentMenu)
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

// Run loads the records and serves the menu until the user exits, input
// ends or ctx is cancelled. Flow failures are reported to the user and
// never end the loop.
func (a *App) Run(ctx context.Context) error {
	a.prompt = ui.NewPrompter(a.in, a.out)
	defer a.prompt.Close()

	items, err := a.store.Load(ctx)
	if err != nil {
		a.logger.ErrorContext(ctx, "Failed to load expenses", log.FieldError, err)
		ui.Failure(a.out, "No se pudieron leer los gastos guardados; se inicia vacío.")
		items = nil
	}
	a.items = items
	a.logger.InfoContext(ctx, "Session started", log.FieldCount, len(a.items))

	for {
		ui.RenderMenu(a.out)
		choice, ok, err := a.prompt.AskInt(ctx, "Seleccione una opción > ")
		if err != nil {
			return a.end(ctx, err)
		}
		if !ok || choice < optRegister || choice > optExit {
			fmt.Fprintln(a.out, "Opción inválida.")
			continue
		}
		if choice == optExit {
			fmt.Fprintln(a.out, "¡Hasta luego!")
			return nil
		}

		a.logger.DebugContext(ctx, "Menu option selected", log.FieldChoice, choice)
		if err := a.dispatch(ctx, choice); err != nil {
			return a.end(ctx, err)
		}
		if a.pause {
			if err := a.prompt.Pause(ctx); err != nil {
				return a.end(ctx, err)
			}
		}
	}
}

func (a *App) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case optRegister:
		return a.register(ctx)
	case optListAll:
		a.listAll()
	case optListCategory:
		return a.listByCategory(ctx)
	case optTotals:
		a.totals()
	case optReports:
		return a.reports(ctx)
	case optExport:
		return a.export(ctx)
	case optAlertHistory:
		a.alertHistory(ctx)
	case optPanel:
		a.panel(ctx)
	}
	return nil
}

// end turns end of input or an interrupt into a clean exit. A failed read
// is reported and returned.
func (a *App) end(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, Farewell)
		a.logger.InfoContext(context.WithoutCancel(ctx), "Session ended", log.FieldOperation, log.OpShutdown)
		return nil
	}
	fmt.Fprintln(a.out)
	ui.Failure(a.out, "Error leyendo la entrada: %v", err)
	a.logger.ErrorContext(ctx, "Input failed", log.FieldOperation, log.OpShutdown, log.FieldError, err)
	return err
}

func (a *App) today() core.Date {
	return core.DateOf(a.now())
}
