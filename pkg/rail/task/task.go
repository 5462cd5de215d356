package task

import (
	"context"

	"github.com/crewbase/railway/pkg/fault"
	"github.com/crewbase/railway/pkg/rail"
	"github.com/crewbase/railway/pkg/rail/step"
)

// Task is a deferred pipeline: a computation that produces a Result when
// forced. Workflow functions return tasks; nothing runs until Run.
type Task[T any] func(ctx context.Context) rail.Result[T]

// Resolved lifts an already computed result into a task.
func Resolved[T any](r rail.Result[T]) Task[T] {
	return func(ctx context.Context) rail.Result[T] {
		return r
	}
}

// Command lifts a side-effecting operation into the result domain. The
// effect runs exactly once; a returned error or a recovered panic becomes an
// INTERNAL_ERROR failure, otherwise interpret decides what the raw outcome
// means. This is the only recovery point in the engine: domain not-found and
// conflict logic lives in interpret, infrastructure surprises end here.
func Command[Raw, Out any](effect func(ctx context.Context) (Raw, error),
	interpret func(ctx context.Context, raw Raw) rail.Result[Out]) Task[Out] {

	return func(ctx context.Context) (res rail.Result[Out]) {
		defer func() {
			if r := recover(); r != nil {
				res = rail.Fail[Out](fault.Internalf("panic: %v", r))
			}
		}()

		raw, err := effect(ctx)
		if err != nil {
			return rail.Fail[Out](fault.Internal(err))
		}
		return interpret(ctx, raw)
	}
}

// Then appends a synchronous step to a task.
func Then[In, Out any](t Task[In],
	onSuccess func(ctx context.Context, in In) rail.Result[Out]) Task[Out] {

	return func(ctx context.Context) rail.Result[Out] {
		return step.Chain(ctx, t(ctx), onSuccess)
	}
}

// Map appends a pure transformation to a task.
func Map[In, Out any](t Task[In],
	onSuccess func(ctx context.Context, in In) Out) Task[Out] {

	return func(ctx context.Context) rail.Result[Out] {
		return step.Map(ctx, t(ctx), onSuccess)
	}
}

// Try appends a (value, error) call to a task, converting a returned error
// into a failure.
func Try[In, Out any](t Task[In],
	attempt func(ctx context.Context, in In) (Out, error)) Task[Out] {

	return func(ctx context.Context) rail.Result[Out] {
		return step.Try(ctx, t(ctx), attempt)
	}
}

// Bind sequences a task-producing continuation after a task: the next
// deferred stage only exists, and only runs, if the previous one succeeded.
func Bind[In, Out any](t Task[In],
	next func(ctx context.Context, in In) Task[Out]) Task[Out] {

	return func(ctx context.Context) rail.Result[Out] {
		prev := t(ctx)
		if prev.IsFailure() {
			return rail.FailFrom[In, Out](prev)
		}
		return next(ctx, prev.Value())(ctx)
	}
}

// Tee appends outcome side effects to a task without changing its result.
func Tee[T any](t Task[T],
	onSuccess func(ctx context.Context, in T),
	onFailure func(ctx context.Context, err error)) Task[T] {

	return func(ctx context.Context) rail.Result[T] {
		return step.TeeBoth(ctx, t(ctx), onSuccess, onFailure)
	}
}

// Run forces the task and returns the resolved result. Effects wrapped in
// Command cannot escape as panics, so for command-built pipelines Run always
// returns a plain result; a bare step that panics is a programming error and
// is not intercepted here.
func Run[T any](ctx context.Context, t Task[T]) rail.Result[T] {
	if t == nil {
		return rail.Fail[T](fault.Internalf("run: nil task"))
	}
	return t(ctx)
}
