package stats

import "gastos/internal/core"

// OnDay returns the records dated exactly day.
func OnDay(items []core.Expense, day core.Date) []core.Expense {
	return filter(items, func(e core.Expense) bool {
		return !e.Date.IsZero() && e.Date.Equal(day)
	})
}

// LastNDays returns the records inside the inclusive window
// [today-(n-1), today].
func LastNDays(items []core.Expense, today core.Date, n int) []core.Expense {
	if n < 1 {
		return []core.Expense{}
	}
	start := today.AddDays(-(n - 1))
	return filter(items, func(e core.Expense) bool {
		return !e.Date.IsZero() && !e.Date.Before(start) && !e.Date.After(today)
	})
}

// InMonth returns the records of the given calendar month.
func InMonth(items []core.Expense, year, month int) []core.Expense {
	return filter(items, func(e core.Expense) bool {
		return !e.Date.IsZero() && e.Date.Year() == year && e.Date.Month() == month
	})
}

// InWeekOf returns the records of the ISO week (year and number) containing day.
func InWeekOf(items []core.Expense, day core.Date) []core.Expense {
	year, week := day.ISOWeek()
	return filter(items, func(e core.Expense) bool {
		if e.Date.IsZero() {
			return false
		}
		y, w := e.Date.ISOWeek()
		return y == year && w == week
	})
}
