package keypad

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/session"
)

// REPL drives a session from keyboard input and redraws the panel after each key
type REPL struct {
	session *session.Session
	out     io.Writer
}

// NewREPL creates a REPL writing panel lines to out
func NewREPL(s *session.Session, out io.Writer) *REPL {
	return &REPL{
		session: s,
		out:     out,
	}
}

type keyRead struct {
	key rune
	err error
}

// Run reads keys from in until quit, end of input or context cancellation.
// Cancellation does not interrupt a read already blocked on in: Run returns,
// but its reader goroutine lives until in yields a rune or an error, so
// callers that outlive Run should close in.
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	keys := make(chan keyRead)
	go readKeys(ctx, bufio.NewReader(in), keys)

	if err := r.draw(r.session.Snapshot()); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			r.finish()
			return ctx.Err()
		case read := <-keys:
			if read.err != nil {
				r.finish()
				if errors.Is(read.err, io.EOF) {
					return nil
				}
				return fmt.Errorf("failed to read key: %w", read.err)
			}

			action, ok := Lookup(read.key)
			if !ok {
				slog.Debug("Ignoring unmapped key", "key", read.key)
				continue
			}
			if action.Kind == KindQuit {
				r.finish()
				return nil
			}

			// Failures are shown by the panel's error indicator
			snap, _ := r.session.Do(action.Apply)
			if err := r.draw(snap); err != nil {
				return err
			}
		}
	}
}

func (r *REPL) draw(snap session.Snapshot) error {
	if _, err := fmt.Fprintf(r.out, "\r%s", snap.Panel.Line()); err != nil {
		return fmt.Errorf("failed to draw panel: %w", err)
	}
	return nil
}

func (r *REPL) finish() {
	fmt.Fprint(r.out, "\r\n")
}

func readKeys(ctx context.Context, in *bufio.Reader, keys chan<- keyRead) {
	for {
		key, _, err := in.ReadRune()
		select {
		case keys <- keyRead{key: key, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}
