package ticker

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"simai/pkg/metrics"
)

// Repeater runs Task every Interval until stopped. A tick that fires while
// the previous run is still in flight is skipped.
type Repeater struct {
	Name      string
	Interval  time.Duration
	Immediate bool
	Task      func(ctx context.Context)

	running atomic.Bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
}

func NewRepeater(name string, interval time.Duration, immediate bool, task func(ctx context.Context)) *Repeater {
	return &Repeater{
		Name:      name,
		Interval:  interval,
		Immediate: immediate,
		Task:      task,
	}
}

// Start launches the loop. Calling Start on a started repeater is a no-op.
func (r *Repeater) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(ctx)
}

// Stop cancels the loop and waits for any in-flight run to return.
func (r *Repeater) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	r.wg.Wait()
}

func (r *Repeater) loop(ctx context.Context) {
	defer r.wg.Done()

	t := time.NewTicker(r.Interval)
	defer t.Stop()

	if r.Immediate {
		r.fire(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("[TICKER] %s encerrado", r.Name)
			return
		case <-t.C:
			r.fire(ctx)
		}
	}
}

func (r *Repeater) fire(ctx context.Context) {
	if !r.running.CompareAndSwap(false, true) {
		metrics.TicksSkipped.WithLabelValues(r.Name).Inc()
		log.Printf("[TICKER] %s ainda em execução, tick ignorado", r.Name)
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.running.Store(false)
		r.Task(ctx)
	}()
}
