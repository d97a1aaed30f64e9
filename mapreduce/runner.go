package mapreduce

import (
	"context"
	"fmt"
	"runtime"

	"github.com/guiguan/caster"
	"github.com/npillmayer/snarkmr/space"
	"golang.org/x/sync/errgroup"
)

// Event is broadcast whenever a mapper has finished a block. Err is the
// mapper's error, if any.
type Event struct {
	Block uint64
	Err   error
}

// Runner executes mappers for the blocks of a space with bounded
// parallelism.
type Runner struct {
	workers int
	cast    *caster.Caster // broadcasts an Event per finished block
}

// NewRunner creates a runner with at most workers mappers in flight.
// workers ≤ 0 selects GOMAXPROCS.
func NewRunner(workers int) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{
		workers: workers,
		cast:    caster.New(nil),
	}
}

// Workers returns the maximum number of concurrent mappers.
func (r *Runner) Workers() int {
	return r.workers
}

// Subscribe returns a channel of events for finished blocks. The channel is
// closed after ctx is done or the runner is closed.
//
// Publishing waits for slow subscribers, so subscribers have to drain their
// channel while a map stage is running, or cancel ctx. Once ctx is done,
// pending events are discarded and no longer hold up the map stage.
func (r *Runner) Subscribe(ctx context.Context, capacity uint) <-chan Event {
	events := make(chan Event, capacity)
	sub, _ := r.cast.Sub(ctx, capacity)
	go func() {
		defer close(events)
		// sub has to be drained until the caster closes it; otherwise a
		// blocked broadcast never gets to notice ctx.
		for m := range sub {
			e, ok := m.(Event)
			if !ok || ctx.Err() != nil {
				continue
			}
			select {
			case events <- e:
			case <-ctx.Done():
			}
		}
	}()
	return events
}

// Close stops broadcasting and closes all subscriber channels.
func (r *Runner) Close() {
	r.cast.Close()
}

// run calls fn for every block of sp, in ascending block order and with at
// most r.workers calls in flight. The first error cancels the context passed
// to the remaining calls; blocks not yet started are skipped.
func (r *Runner) run(ctx context.Context, sp space.Space, fn func(context.Context, uint64) error) error {
	if sp.N() != 1 {
		return fmt.Errorf("%w: have %d dimensions", ErrDimension, sp.N())
	}
	n := sp.NumBlocks()
	tracer().Debugf("mapreduce: mapping %d blocks of %v with %d workers", n, sp, r.workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for blk := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := fn(gctx, blk)
			r.cast.Pub(Event{Block: blk, Err: err})
			if err != nil {
				tracer().Errorf("mapreduce: block %d: %v", blk, err)
				return fmt.Errorf("block %d: %w", blk, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
