// Package memory provides a process-lifetime backend, handy for trial
// sessions and tests. Nothing survives a restart.
package memory

import (
	"context"
	"slices"
	"sync"

	"gastos/internal/core"
)

type Store struct {
	mu     sync.Mutex
	items  []core.Expense
	alerts []core.Alert
}

// New returns a store pre-populated with seed.
func New(seed ...core.Expense) *Store {
	return &Store{items: slices.Clone(seed)}
}

// Load returns a copy of the stored expenses.
func (s *Store) Load(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]core.Expense, 0, len(s.items)), s.items...), nil
}

// Save replaces the stored expenses with a copy of items.
func (s *Store) Save(_ context.Context, items []core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slices.Clone(items)
	return nil
}

func (s *Store) ListAlerts(_ context.Context) ([]core.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]core.Alert, 0, len(s.alerts)), s.alerts...), nil
}

func (s *Store) AppendAlert(_ context.Context, a core.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, a)
	return nil
}
