package aggregate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/findata/internal/domain/models"
	"github.com/guttosm/findata/internal/logger"
)

// ErrSkipped marks an item that was fetched fine but had too little data to use.
var ErrSkipped = errors.New("insufficient data")

// FetchFunc fetches one item by key.
type FetchFunc[T any] func(ctx context.Context, key string) (T, error)

// Outcome is the captured result of one item: either Value or Err is meaningful.
type Outcome[T any] struct {
	Key   string
	Value T
	Err   error
}

// Options tunes a Collect call.
//
// Fields:
//   - Parallelism: max concurrent fetches (values < 1 mean sequential).
//   - ItemTimeout: deadline applied to each fetch; zero means none.
//   - Now: clock used for FetchedAt; defaults to time.Now.
//   - Name: label used in logs (e.g., "market_summary").
type Options struct {
	Parallelism int
	ItemTimeout time.Duration
	Now         func() time.Time
	Name        string
}

// Run fetches every key independently and returns one Outcome per key, in key order.
//
// A failing fetch never cancels its siblings: errors are captured in the
// Outcome instead of being returned to the group.
func Run[T any](ctx context.Context, keys []string, fetch FetchFunc[T], opts Options) []Outcome[T] {
	limit := opts.Parallelism
	if limit < 1 {
		limit = 1
	}

	outcomes := make([]Outcome[T], len(keys))

	var g errgroup.Group
	g.SetLimit(limit)

	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					outcomes[i] = Outcome[T]{Key: key, Err: fmt.Errorf("fetch %s panicked: %v", key, r)}
				}
			}()

			itemCtx := ctx
			if opts.ItemTimeout > 0 {
				var cancel context.CancelFunc
				itemCtx, cancel = context.WithTimeout(ctx, opts.ItemTimeout)
				defer cancel()
			}

			v, err := fetch(itemCtx, key)
			outcomes[i] = Outcome[T]{Key: key, Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// Collect runs every fetch and merges the successes into an AggregateResult.
//
// Failed keys are dropped from Items and counted in Skipped; they are logged
// but never surfaced to the caller. The only error returned is the parent
// context's, in which case any partial result is discarded.
func Collect[T any](ctx context.Context, keys []string, fetch FetchFunc[T], opts Options) (models.AggregateResult[T], error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	fetchedAt := now()

	outcomes := Run(ctx, keys, fetch, opts)
	if err := ctx.Err(); err != nil {
		return models.AggregateResult[T]{}, err
	}

	res := models.AggregateResult[T]{
		Items:     make(map[string]T, len(outcomes)),
		FetchedAt: fetchedAt,
	}
	lg := logger.Component("aggregate")
	for _, o := range outcomes {
		if o.Err != nil {
			res.Skipped++
			ev := lg.Warn()
			if errors.Is(o.Err, ErrSkipped) {
				ev = lg.Debug()
			}
			ev.Str("batch", opts.Name).Str("key", o.Key).Err(o.Err).Msg("item dropped")
			continue
		}
		res.Items[o.Key] = o.Value
	}

	lg.Debug().
		Str("batch", opts.Name).
		Int("requested", len(keys)).
		Int("succeeded", len(res.Items)).
		Int("skipped", res.Skipped).
		Msg("aggregate collected")

	return res, nil
}
