package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Keys of the alert configuration document.
const (
	keyDailyPercent   = "porcentaje_alerta_diaria"
	keyWeeklyPercent  = "porcentaje_alerta_semanal"
	keyCategoryLimits = "limites_categoria"
)

// AlertConfig holds the spending thresholds, as percentages of the
// historical average. A nil percent disables that check.
type AlertConfig struct {
	DailyPercent  *decimal.Decimal
	WeeklyPercent *decimal.Decimal
	// CategoryLimits is keyed by lower-cased category name.
	CategoryLimits map[string]decimal.Decimal
}

// LoadAlertConfig reads the optional alert configuration file. A missing
// file (or empty path) returns nil, nil: alerting is simply off.
func LoadAlertConfig(path string) (*AlertConfig, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read alert config: %w", err)
	}

	cfg := &AlertConfig{CategoryLimits: map[string]decimal.Decimal{}}
	if v.IsSet(keyDailyPercent) {
		p := decimal.NewFromFloat(v.GetFloat64(keyDailyPercent))
		cfg.DailyPercent = &p
	}
	if v.IsSet(keyWeeklyPercent) {
		p := decimal.NewFromFloat(v.GetFloat64(keyWeeklyPercent))
		cfg.WeeklyPercent = &p
	}
	for name := range v.GetStringMap(keyCategoryLimits) {
		cfg.CategoryLimits[strings.ToLower(name)] = decimal.NewFromFloat(v.GetFloat64(keyCategoryLimits + "." + name))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CategoryPercent looks up the configured percent for category, ignoring case.
func (c *AlertConfig) CategoryPercent(category string) (decimal.Decimal, bool) {
	if c == nil {
		return decimal.Zero, false
	}
	p, ok := c.CategoryLimits[strings.ToLower(strings.TrimSpace(category))]
	return p, ok
}

// Validate rejects non-positive percentages.
func (c *AlertConfig) Validate() error {
	var errors []string
	if c.DailyPercent != nil && !c.DailyPercent.IsPositive() {
		errors = append(errors, fmt.Sprintf("%s must be positive, got %s", keyDailyPercent, c.DailyPercent))
	}
	if c.WeeklyPercent != nil && !c.WeeklyPercent.IsPositive() {
		errors = append(errors, fmt.Sprintf("%s must be positive, got %s", keyWeeklyPercent, c.WeeklyPercent))
	}
	for name, p := range c.CategoryLimits {
		if !p.IsPositive() {
			errors = append(errors, fmt.Sprintf("%s.%s must be positive, got %s", keyCategoryLimits, name, p))
		}
	}
	if len(errors) > 0 {
		return fmt.Errorf("alert configuration invalid:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}
