// Package stats holds the pure reductions over an expense snapshot: period
// filters, totals and historical averages. Nothing here mutates its input
// or depends on input order.
package stats

import (
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"gastos/internal/core"
)

// Total sums the amounts; zero for an empty slice.
func Total(items []core.Expense) core.Money {
	var total core.Money
	for _, e := range items {
		total = total.Add(e.Amount)
	}
	return total
}

// ByCategory sums per category. Every fixed category is present, with zero
// when nothing was spent on it, plus any off-list category found in items.
func ByCategory(items []core.Expense) map[string]core.Money {
	sums := make(map[string]core.Money, len(core.Categories()))
	for _, c := range core.Categories() {
		sums[c] = core.Money{}
	}
	for _, e := range items {
		cat := e.Category
		if cat == "" {
			cat = core.OtherCategory
		}
		sums[cat] = sums[cat].Add(e.Amount)
	}
	return sums
}

// SortedCategories orders the result of ByCategory for display: fixed
// categories in menu order first, then off-list names alphabetically.
func SortedCategories(sums map[string]core.Money) []core.CategoryAmount {
	out := make([]core.CategoryAmount, 0, len(sums))
	for _, c := range core.Categories() {
		if amount, ok := sums[c]; ok {
			out = append(out, core.CategoryAmount{Name: c, Amount: amount})
		}
	}
	var extra []string
	for name := range sums {
		if !slices.Contains(core.Categories(), name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		out = append(out, core.CategoryAmount{Name: name, Amount: sums[name]})
	}
	return out
}

// FilterCategory keeps the records whose category matches name, ignoring case.
func FilterCategory(items []core.Expense, name string) []core.Expense {
	name = strings.TrimSpace(name)
	return filter(items, func(e core.Expense) bool {
		return strings.EqualFold(e.Category, name)
	})
}

// AverageDaily is the mean of per-date sums across all records. It reports
// false when there are no records.
func AverageDaily(items []core.Expense) (decimal.Decimal, bool) {
	return averageOf(items, func(e core.Expense) int {
		return int(e.Date.Unix() / 86400)
	})
}

// AverageWeekly is the mean of per-ISO-week sums. Weeks are keyed by week
// number alone, so week 1 of different years falls into the same bucket.
func AverageWeekly(items []core.Expense) (decimal.Decimal, bool) {
	return averageOf(items, func(e core.Expense) int {
		_, week := e.Date.ISOWeek()
		return week
	})
}

func averageOf(items []core.Expense, key func(core.Expense) int) (decimal.Decimal, bool) {
	if len(items) == 0 {
		return decimal.Zero, false
	}
	buckets := make(map[int]int64)
	var total int64
	for _, e := range items {
		buckets[key(e)] += e.Amount.Cents
		total += e.Amount.Cents
	}
	mean := decimal.New(total, -2).Div(decimal.NewFromInt(int64(len(buckets))))
	return mean, true
}

func filter(items []core.Expense, keep func(core.Expense) bool) []core.Expense {
	out := make([]core.Expense, 0)
	for _, e := range items {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
