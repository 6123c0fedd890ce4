package ui

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"gastos/internal/core"
)

func sampleExpenses() []core.Expense {
	return []core.Expense{
		{ID: 1, Amount: core.NewMoney(50, 0), Category: "Comida", Description: "Almuerzo", Date: core.NewDate(2024, 3, 5)},
		{ID: 12, Amount: core.NewMoney(1234, 5), Category: "Entretenimiento", Description: "Concierto de música", Date: core.NewDate(2024, 3, 6)},
	}
}

func TestFormatLine(t *testing.T) {
	got := FormatLine(sampleExpenses()[0])
	want := "ID:1 | 2024-03-05 | Comida       | 50.00    | Almuerzo"
	if got != want {
		t.Errorf("FormatLine() = %q, want %q", got, want)
	}
}

func TestRenderExpenses(t *testing.T) {
	var lines, table bytes.Buffer
	RenderExpenses(&lines, ViewLines, sampleExpenses())
	RenderExpenses(&table, ViewTable, sampleExpenses())

	if got := strings.Count(lines.String(), "\n"); got != 2 {
		t.Errorf("line view printed %d lines, want 2:\n%s", got, lines.String())
	}
	if !strings.HasPrefix(lines.String(), FormatLine(sampleExpenses()[0])) {
		t.Errorf("line view = %q", lines.String())
	}
	if !strings.Contains(table.String(), "┌") {
		t.Errorf("table view missing border:\n%s", table.String())
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, sampleExpenses())
	out := buf.String()

	for _, want := range []string{"ID", "MONTO", "CATEGORÍA", "DESCRIPCIÓN", "FECHA", "1234.05", "Concierto de música", "2024-03-06", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	width := lipgloss.Width(lines[0])
	for i, line := range lines {
		if got := lipgloss.Width(line); got != width {
			t.Errorf("line %d width = %d, want %d", i, got, width)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	tests := []struct {
		name   string
		render func(w io.Writer)
	}{
		{"table", func(w io.Writer) { RenderTable(w, nil) }},
		{"lines", func(w io.Writer) { RenderLines(w, nil) }},
		{"alerts", func(w io.Writer) { RenderAlerts(w, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.render(&buf)
			if got := strings.TrimSpace(buf.String()); got != NoData {
				t.Errorf("output = %q, want %q", got, NoData)
			}
		})
	}
}

func TestRenderAlerts(t *testing.T) {
	var buf bytes.Buffer
	RenderAlerts(&buf, []core.Alert{{
		ID: "a1", Date: core.NewDate(2024, 3, 6), Kind: core.AlertDaily, Category: "Comida",
		Amount: core.NewMoney(16, 0), Average: core.NewMoney(10, 0), Limit: core.NewMoney(15, 0),
		Message: "Gasto diario 16.00 supera el límite 15.00",
	}})
	out := buf.String()
	for _, want := range []string{"Diaria", "16.00", "10.00", "15.00", "1. Gasto diario"} {
		if !strings.Contains(out, want) {
			t.Errorf("alerts output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMenu(t *testing.T) {
	var buf bytes.Buffer
	RenderMenu(&buf)
	out := buf.String()
	if !strings.Contains(out, "1. Registrar nuevo gasto") || !strings.Contains(out, "9. Salir") {
		t.Errorf("menu = %q", out)
	}
}

func TestNotices(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "Gasto %d guardado", 3)
	Alert(&buf, core.Alert{Kind: core.AlertWeekly, Message: "demasiado"})
	out := buf.String()
	if !strings.Contains(out, "Gasto 3 guardado") || !strings.Contains(out, "ALERTA Semanal: demasiado") {
		t.Errorf("notices = %q", out)
	}
}

func TestPrompter(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  hola \n7\nx\n"), &out)
	defer p.Close()
	ctx := context.Background()

	got, err := p.Ask(ctx, "> ")
	if err != nil || got != "hola" {
		t.Fatalf("Ask() = %q, %v", got, err)
	}
	n, ok, err := p.AskInt(ctx, "> ")
	if err != nil || !ok || n != 7 {
		t.Fatalf("AskInt() = %d, %v, %v", n, ok, err)
	}
	_, ok, err = p.AskInt(ctx, "> ")
	if err != nil || ok {
		t.Fatalf("AskInt(x) ok = %v, err = %v", ok, err)
	}
	if _, err := p.Ask(ctx, "> "); !errors.Is(err, io.EOF) {
		t.Errorf("Ask() at end of input error = %v, want io.EOF", err)
	}
	if !strings.HasPrefix(out.String(), "> > ") {
		t.Errorf("prompts not written: %q", out.String())
	}
}

func TestPrompter_Cancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewPrompter(r, io.Discard)
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := p.Ask(ctx, ""); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Ask() error = %v, want deadline exceeded", err)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestPrompter_ReadError(t *testing.T) {
	readErr := errors.New("device gone")
	p := NewPrompter(failingReader{err: readErr}, io.Discard)
	defer p.Close()

	_, err := p.Ask(context.Background(), "> ")
	if !errors.Is(err, readErr) {
		t.Errorf("Ask() error = %v, want %v", err, readErr)
	}
	if errors.Is(err, io.EOF) {
		t.Error("read failure reported as end of input")
	}
}

func TestPrompter_LongLine(t *testing.T) {
	long := strings.Repeat("a", 100*1024)
	p := NewPrompter(strings.NewReader(long+"\nnext\n"), io.Discard)
	defer p.Close()
	ctx := context.Background()

	got, err := p.Ask(ctx, "")
	if err != nil || len(got) != len(long) {
		t.Fatalf("Ask() = %d bytes, %v; want %d bytes", len(got), err, len(long))
	}
	if got, err := p.Ask(ctx, ""); err != nil || got != "next" {
		t.Errorf("Ask() after long line = %q, %v", got, err)
	}
}

func TestPrompter_LineTooLong(t *testing.T) {
	p := NewPrompter(strings.NewReader(strings.Repeat("a", maxLineSize+1)+"\n"), io.Discard)
	defer p.Close()

	if _, err := p.Ask(context.Background(), ""); !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("Ask() error = %v, want bufio.ErrTooLong", err)
	}
}
