package main

import (
	"context"
	"os"

	"gastos/internal/app"
	"gastos/internal/cli"
	"gastos/internal/config"
	"gastos/internal/log"
	"gastos/internal/report"
	"gastos/internal/services"
	"gastos/internal/ui"
)

func main() {
	os.Exit(run())
}

// run wires the app and serves the menu. Deferred cleanup finishes before
// the exit code is returned.
func run() int {
	// Load .env file for local development
	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig(cli.SetupLogger("warn"))
	logger := cli.SetupLogger(cfg.LogLevel)

	// Interrupt ends the menu loop with a farewell instead of killing it
	ctx, stop := cli.ShutdownContext(context.Background())
	defer stop()
	ctx = log.NewContext(ctx, logger)

	res := cli.InitBackend(ctx, logger, cfg)
	if res.Cleanup != nil {
		defer func() {
			if err := res.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", log.FieldError, err)
			}
		}()
	}

	engineOpts := []services.AlertEngineOption{services.WithLogger(logger)}
	if notifier := cli.InitNotifier(logger, cfg); notifier != nil {
		defer notifier.Close()
		engineOpts = append(engineOpts, services.WithNotifier(notifier))
	}
	engine := services.NewAlertEngine(res.Backend, engineOpts...)

	loadAlertConfig := func() (*config.AlertConfig, error) {
		return config.LoadAlertConfig(cfg.AlertConfigFile)
	}

	loop := app.New(app.Deps{
		Store:       res.Backend,
		Alerts:      res.Backend,
		Expenses:    services.NewExpenseService(res.Backend, engine, loadAlertConfig, logger),
		Exporter:    report.NewExporter(cfg.ReportsDir),
		AlertConfig: loadAlertConfig,
		In:          os.Stdin,
		Out:         os.Stdout,
		Logger:      logger,
		Pause:       cfg.PauseAfterAction,
		View:        ui.ListView(cfg.ListView),
	})

	logger.Info("Starting gastos", log.FieldBackend, cfg.DataBackend)
	if err := loop.Run(ctx); err != nil {
		logger.Error("Session failed", log.FieldError, err)
		return 1
	}
	return 0
}
