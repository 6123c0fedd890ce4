// Package services provides business logic and orchestration services.
//
// This file implements the Strategy Pattern for spending thresholds.
// Each alert kind (daily, weekly, category) has its own checker that picks
// the observed amount and the historical baseline it is compared against.
package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"gastos/internal/config"
	"gastos/internal/core"
	"gastos/internal/stats"
)

var hundred = decimal.NewFromInt(100)

// Figures is the snapshot every checker reads from.
type Figures struct {
	Today         core.Date
	TodayTotal    core.Money
	WeekTotal     core.Money
	AverageDaily  decimal.Decimal
	AverageWeekly decimal.Decimal
	// HasHistory is false when there is nothing to average.
	HasHistory bool

	todayItems []core.Expense
}

// ComputeFigures derives today's and this week's totals plus the historical
// averages from the full record set.
func ComputeFigures(items []core.Expense, today core.Date) Figures {
	todayItems := stats.OnDay(items, today)
	f := Figures{
		Today:      today,
		TodayTotal: stats.Total(todayItems),
		WeekTotal:  stats.Total(stats.InWeekOf(items, today)),
		todayItems: todayItems,
	}
	daily, okDaily := stats.AverageDaily(items)
	weekly, okWeekly := stats.AverageWeekly(items)
	f.AverageDaily, f.AverageWeekly = daily, weekly
	f.HasHistory = okDaily && okWeekly
	return f
}

// CategoryToday is today's spend restricted to category.
func (f Figures) CategoryToday(category string) core.Money {
	return stats.Total(stats.FilterCategory(f.todayItems, category))
}

// Threshold is the outcome of one checker against a Figures snapshot.
type Threshold struct {
	Kind     core.AlertKind
	Category string
	Observed core.Money
	Average  decimal.Decimal
	Percent  decimal.Decimal
	Limit    decimal.Decimal
}

// Exceeded reports whether the observed amount is strictly above the limit.
func (t Threshold) Exceeded() bool {
	return t.Observed.Decimal().GreaterThan(t.Limit)
}

// Message is the human-readable text stored with the alert.
func (t Threshold) Message() string {
	limit := core.MoneyFromDecimal(t.Limit)
	average := core.MoneyFromDecimal(t.Average)
	switch t.Kind {
	case core.AlertWeekly:
		return fmt.Sprintf("Gasto semanal %s supera el límite %s (%s%% del promedio semanal %s)",
			t.Observed, limit, t.Percent, average)
	case core.AlertCategory:
		return fmt.Sprintf("Gasto de hoy en %s %s supera el límite %s (%s%% del promedio diario %s)",
			t.Category, t.Observed, limit, t.Percent, average)
	default:
		return fmt.Sprintf("Gasto diario %s supera el límite %s (%s%% del promedio diario %s)",
			t.Observed, limit, t.Percent, average)
	}
}

// ThresholdChecker is the strategy interface for one kind of spending limit.
type ThresholdChecker interface {
	Kind() core.AlertKind
	// Evaluate computes the observed amount and the limit from f.
	Evaluate(f Figures) Threshold
}

// DailyChecker compares today's total with the average day.
type DailyChecker struct {
	Percent decimal.Decimal
}

func (DailyChecker) Kind() core.AlertKind { return core.AlertDaily }

func (c DailyChecker) Evaluate(f Figures) Threshold {
	return newThreshold(core.AlertDaily, "", f.TodayTotal, f.AverageDaily, c.Percent)
}

// WeeklyChecker compares the current ISO week's total with the average week.
type WeeklyChecker struct {
	Percent decimal.Decimal
}

func (WeeklyChecker) Kind() core.AlertKind { return core.AlertWeekly }

func (c WeeklyChecker) Evaluate(f Figures) Threshold {
	return newThreshold(core.AlertWeekly, "", f.WeekTotal, f.AverageWeekly, c.Percent)
}

// CategoryChecker compares today's spend in one category with the average
// day across all categories.
type CategoryChecker struct {
	Category string
	Percent  decimal.Decimal
}

func (CategoryChecker) Kind() core.AlertKind { return core.AlertCategory }

func (c CategoryChecker) Evaluate(f Figures) Threshold {
	return newThreshold(core.AlertCategory, c.Category, f.CategoryToday(c.Category), f.AverageDaily, c.Percent)
}

func newThreshold(kind core.AlertKind, category string, observed core.Money, average, percent decimal.Decimal) Threshold {
	return Threshold{
		Kind:     kind,
		Category: category,
		Observed: observed,
		Average:  average,
		Percent:  percent,
		Limit:    average.Mul(percent).Div(hundred),
	}
}

// CheckersFor returns the checkers enabled by cfg for an expense in
// category, in daily, weekly, category order. A nil cfg yields none.
func CheckersFor(cfg *config.AlertConfig, category string) []ThresholdChecker {
	if cfg == nil {
		return nil
	}
	var checkers []ThresholdChecker
	if cfg.DailyPercent != nil {
		checkers = append(checkers, DailyChecker{Percent: *cfg.DailyPercent})
	}
	if cfg.WeeklyPercent != nil {
		checkers = append(checkers, WeeklyChecker{Percent: *cfg.WeeklyPercent})
	}
	if p, ok := cfg.CategoryPercent(category); ok {
		checkers = append(checkers, CategoryChecker{Category: category, Percent: p})
	}
	return checkers
}

// PanelCheckers returns every configured checker, with one category checker
// per fixed category that has a limit. Used to show limits without a
// triggering expense.
func PanelCheckers(cfg *config.AlertConfig) []ThresholdChecker {
	if cfg == nil {
		return nil
	}
	checkers := CheckersFor(cfg, "")
	for _, c := range core.Categories() {
		if p, ok := cfg.CategoryPercent(c); ok {
			checkers = append(checkers, CategoryChecker{Category: c, Percent: p})
		}
	}
	return checkers
}
