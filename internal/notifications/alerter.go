package notifications

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// Alerter surfaces a notification to the user. Calls are made one at a
// time, in order, and the poller waits for each to return.
type Alerter interface {
	Alert(ctx context.Context, n Notification) error
}

type TerminalAlerter struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminalAlerter(out io.Writer) *TerminalAlerter {
	return &TerminalAlerter{out: out}
}

func (t *TerminalAlerter) Alert(ctx context.Context, n Notification) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintf(t.out, "🔔 %s\n", n.Message)
	return err
}

// MultiAlerter hands every notification to each alerter, even when an
// earlier one fails.
type MultiAlerter []Alerter

func (m MultiAlerter) Alert(ctx context.Context, n Notification) error {
	var errs []error
	for _, a := range m {
		if a == nil {
			continue
		}
		if err := a.Alert(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
