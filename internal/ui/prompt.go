package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Prompter writes prompts and reads answers one line at a time. Input is
// read on a separate goroutine so a cancelled context ends a pending
// prompt.
type Prompter struct {
	out   io.Writer
	lines chan string
	done  chan struct{}
	once  sync.Once
	// err is set before lines is closed when reading failed.
	err error
}

// maxLineSize bounds a single answer.
const maxLineSize = 1 << 20

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:   out,
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go p.read(in)
	return p
}

func (p *Prompter) read(in io.Reader) {
	defer close(p.lines)
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		select {
		case p.lines <- sc.Text():
		case <-p.done:
			return
		}
	}
	if err := sc.Err(); err != nil {
		p.err = fmt.Errorf("read input: %w", err)
	}
}

// Close stops handing lines to Ask. A reader blocked on input is left to
// the process exit.
func (p *Prompter) Close() {
	p.once.Do(func() { close(p.done) })
}

// Ask prints prompt and returns the next line, trimmed. It returns io.EOF
// when input ends, the read error when input fails, and ctx.Err() when ctx
// is cancelled first.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			if p.err != nil {
				return "", p.err
			}
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// AskInt reads an integer. ok is false when the answer is not a number.
func (p *Prompter) AskInt(ctx context.Context, prompt string) (n int, ok bool, err error) {
	answer, err := p.Ask(ctx, prompt)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(answer)
	return n, convErr == nil, nil
}

// Pause waits for ENTER.
func (p *Prompter) Pause(ctx context.Context) error {
	_, err := p.Ask(ctx, "\nPresione ENTER para continuar...")
	return err
}
