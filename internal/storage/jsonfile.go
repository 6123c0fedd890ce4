package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gastos/internal/core"
	"gastos/internal/log"
)

// JSONStore keeps the expense collection in a single JSON array file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string { return s.path }

// Load never fails: an absent, empty, unreadable or corrupt file yields an
// empty collection. Records are decoded one by one, so a malformed entry is
// skipped without losing the rest. Corruption is logged.
func (s *JSONStore) Load(ctx context.Context) ([]core.Expense, error) {
	var records []json.RawMessage
	if _, err := ReadJSON(s.path, &records); err != nil {
		slog.WarnContext(ctx, "Expense file unreadable, starting empty",
			log.FieldComponent, log.ComponentStorage,
			log.FieldPath, s.path,
			log.FieldError, err)
		return make([]core.Expense, 0), nil
	}

	items := make([]core.Expense, 0, len(records))
	for i, rec := range records {
		var e core.Expense
		if err := json.Unmarshal(rec, &e); err != nil {
			slog.WarnContext(ctx, "Skipping malformed expense record",
				log.FieldComponent, log.ComponentStorage,
				log.FieldPath, s.path,
				"index", i,
				log.FieldError, err)
			continue
		}
		items = append(items, e)
	}
	return items, nil
}

// Save rewrites the whole file.
func (s *JSONStore) Save(ctx context.Context, items []core.Expense) error {
	if items == nil {
		items = make([]core.Expense, 0)
	}
	if err := WriteJSON(s.path, items); err != nil {
		return fmt.Errorf("save expenses: %w", err)
	}
	slog.DebugContext(ctx, "Expenses saved",
		log.FieldComponent, log.ComponentStorage,
		log.FieldPath, s.path,
		log.FieldCount, len(items))
	return nil
}

// JSONAlertLog keeps alerts in a JSON array file; appending reads the whole
// file, adds one entry and writes it back.
type JSONAlertLog struct {
	path string
}

func NewJSONAlertLog(path string) *JSONAlertLog {
	return &JSONAlertLog{path: path}
}

func (l *JSONAlertLog) ListAlerts(ctx context.Context) ([]core.Alert, error) {
	alerts := make([]core.Alert, 0)
	if _, err := ReadJSON(l.path, &alerts); err != nil {
		slog.WarnContext(ctx, "Alert log unreadable, treating as empty",
			log.FieldComponent, log.ComponentStorage,
			log.FieldPath, l.path,
			log.FieldError, err)
		return make([]core.Alert, 0), nil
	}
	return alerts, nil
}

func (l *JSONAlertLog) AppendAlert(ctx context.Context, a core.Alert) error {
	alerts, _ := l.ListAlerts(ctx)
	alerts = append(alerts, a)
	if err := WriteJSON(l.path, alerts); err != nil {
		return fmt.Errorf("append alert: %w", err)
	}
	return nil
}

// ReadJSON decodes the file at path into v. It reports found=false without
// error when the file is absent or blank.
func ReadJSON(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// WriteJSON writes v as indented UTF-8 JSON, creating the parent directory.
// Non-ASCII text is kept literal. The file is replaced through a rename so a
// failed write leaves the previous content in place.
func WriteJSON(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Chmod(0o644)
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
