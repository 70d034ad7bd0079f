package app

import (
	"context"
	"sync/atomic"

	"shotfix/internal/domain"
)

// Run is the handle of a batch started with Start.
type Run struct {
	canceled  atomic.Bool
	executing atomic.Bool
	done      chan struct{}
	summary   domain.Summary
	err       error
}

// Start runs Execute on its own goroutine. Cancel takes effect before the next
// file; the file being converted always finishes first.
func (r *BatchResizer) Start(ctx context.Context, settings domain.Settings, sink ProgressSink) *Run {
	run := &Run{done: make(chan struct{})}
	run.executing.Store(true)
	go func() {
		defer close(run.done)
		defer run.executing.Store(false)
		run.summary, run.err = r.Execute(ctx, settings, sink, run)
	}()
	return run
}

func (r *Run) Cancel() {
	r.canceled.Store(true)
}

func (r *Run) CancelRequested() bool {
	return r.canceled.Load()
}

func (r *Run) Executing() bool {
	return r.executing.Load()
}

func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the batch finished and returns its outcome.
func (r *Run) Wait() (domain.Summary, error) {
	<-r.done
	return r.summary, r.err
}
