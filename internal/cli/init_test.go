package cli

import (
	"context"
	"log/slog"
	"testing"

	"gastos/internal/config"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := SetupLogger(tt.level)
			if !logger.Enabled(context.Background(), tt.want) {
				t.Errorf("level %s not enabled", tt.want)
			}
			if tt.want > slog.LevelDebug && logger.Enabled(context.Background(), tt.want-4) {
				t.Errorf("level below %s enabled", tt.want)
			}
		})
	}
}

func TestInitNotifier_Disabled(t *testing.T) {
	if c := InitNotifier(SetupLogger("error"), &config.Config{}); c != nil {
		t.Error("InitNotifier without URL should return nil")
	}
}
