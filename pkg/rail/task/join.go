package task

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/crewbase/railway/pkg/rail"
)

// Pair holds the combined values of two joined tasks.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the combined values of three joined tasks.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Join2 runs two independent tasks concurrently and combines their results.
// Failure precedence is argument order, not completion order: if both fail,
// the first task's failure wins. Scheduling never changes the outcome.
func Join2[A, B any](ta Task[A], tb Task[B]) Task[Pair[A, B]] {
	return func(ctx context.Context) rail.Result[Pair[A, B]] {
		var ra rail.Result[A]
		var rb rail.Result[B]

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			ra = ta(gctx)
			return nil
		})
		g.Go(func() error {
			rb = tb(gctx)
			return nil
		})
		_ = g.Wait()

		if ra.IsFailure() {
			return rail.FailFrom[A, Pair[A, B]](ra)
		}
		if rb.IsFailure() {
			return rail.FailFrom[B, Pair[A, B]](rb)
		}
		return rail.Success(Pair[A, B]{First: ra.Value(), Second: rb.Value()})
	}
}

// Join3 is Join2 for three tasks, with the same ordering guarantee.
func Join3[A, B, C any](ta Task[A], tb Task[B], tc Task[C]) Task[Triple[A, B, C]] {
	return func(ctx context.Context) rail.Result[Triple[A, B, C]] {
		var ra rail.Result[A]
		var rb rail.Result[B]
		var rc rail.Result[C]

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			ra = ta(gctx)
			return nil
		})
		g.Go(func() error {
			rb = tb(gctx)
			return nil
		})
		g.Go(func() error {
			rc = tc(gctx)
			return nil
		})
		_ = g.Wait()

		if ra.IsFailure() {
			return rail.FailFrom[A, Triple[A, B, C]](ra)
		}
		if rb.IsFailure() {
			return rail.FailFrom[B, Triple[A, B, C]](rb)
		}
		if rc.IsFailure() {
			return rail.FailFrom[C, Triple[A, B, C]](rc)
		}
		return rail.Success(Triple[A, B, C]{First: ra.Value(), Second: rb.Value(), Third: rc.Value()})
	}
}
