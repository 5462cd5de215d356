package batch

import (
	"context"
	"sync"

	"github.com/crewbase/railway/pkg/rail"
)

// Source emits every value as a successful result, closing the channel when
// done or when the context ends.
func Source[T any](ctx context.Context, values []T) <-chan rail.Result[T] {
	out := make(chan rail.Result[T])

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- rail.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Through runs a stage over every result arriving on in, using the given
// number of worker lines. Failed inputs pass through untouched; the stage
// only sees success values. Per-item outcomes are independent: one failure
// does not stop the rest of the batch. Output order is not guaranteed when
// workers > 1.
func Through[In, Out any](ctx context.Context, in <-chan rail.Result[In],
	stage func(ctx context.Context, in In) rail.Result[Out], workers int) <-chan rail.Result[Out] {

	if workers < 1 {
		workers = 1
	}

	out := make(chan rail.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go line(ctx, in, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func line[In, Out any](ctx context.Context, in <-chan rail.Result[In],
	out chan<- rail.Result[Out], stage func(ctx context.Context, in In) rail.Result[Out],
	wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			var processed rail.Result[Out]
			if r.IsFailure() {
				processed = rail.FailFrom[In, Out](r)
			} else {
				processed = stage(ctx, r.Value())
			}

			select {
			case out <- processed:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Collect drains the channel into a slice, stopping early if the context
// ends.
func Collect[T any](ctx context.Context, in <-chan rail.Result[T]) []rail.Result[T] {
	results := make([]rail.Result[T], 0)

	for {
		select {
		case r, ok := <-in:
			if !ok {
				return results
			}
			results = append(results, r)
		case <-ctx.Done():
			return results
		}
	}
}

// Finalize maps each arriving result to a caller-shaped value, invoking
// exactly one of the two projections per item.
func Finalize[In, Out any](ctx context.Context, in <-chan rail.Result[In],
	onSuccess func(ctx context.Context, in In) Out,
	onFailure func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}

				final := rail.Match(r,
					func(v In) Out { return onSuccess(ctx, v) },
					func(err error) Out { return onFailure(ctx, err) })

				select {
				case out <- final:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
