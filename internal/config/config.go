package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gastos/internal/log"
)

type Config struct {
	// Storage
	DataBackend  string
	ExpensesFile string
	AlertsFile   string
	SQLiteDBPath string

	// Alerting
	AlertConfigFile string

	// Reports
	ReportsDir string

	// AMQP (optional alert notifications)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Terminal
	LogLevel         string
	PauseAfterAction bool
	// ListView selects how record lists are printed: table or lines.
	ListView string
}

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

const (
	ListViewTable = "table"
	ListViewLines = "lines"
)

func Load() *Config {
	return &Config{
		DataBackend:  getEnv("DATA_BACKEND", BackendJSON),
		ExpensesFile: getEnv("EXPENSES_FILE", "./database/gastos.json"),
		AlertsFile:   getEnv("ALERTS_FILE", "./database/alertas.json"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./database/gastos.db"),

		AlertConfigFile: getEnv("ALERT_CONFIG_FILE", "./database/config_alertas.json"),

		ReportsDir: getEnv("REPORTS_DIR", "./reports"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "gastos"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "expense_alerts"),

		LogLevel:         getEnv("LOG_LEVEL", "warn"),
		PauseAfterAction: getEnvBool("PAUSE_AFTER_ACTION", true),
		ListView:         strings.ToLower(getEnv("LIST_VIEW", ListViewTable)),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{BackendJSON, BackendSQLite, BackendMemory}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == BackendJSON {
		if c.ExpensesFile == "" {
			errors = append(errors, "expenses file cannot be empty when using json backend")
		}
		if c.AlertsFile == "" {
			errors = append(errors, "alerts file cannot be empty when using json backend")
		}
	}

	if c.DataBackend == BackendSQLite && c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
	}

	if c.ReportsDir == "" {
		errors = append(errors, "reports directory cannot be empty")
	}

	// AMQP is optional; only check it when configured
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.ListView != ListViewTable && c.ListView != ListViewLines {
		errors = append(errors, fmt.Sprintf("invalid list view '%s': must be '%s' or '%s'", c.ListView, ListViewTable, ListViewLines))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
