package step

import (
	"context"

	"github.com/crewbase/railway/pkg/rail"
)

// Chain applies onSuccess to the value of a successful input; a failed input
// propagates unchanged, retyped to the output type. This is the single-step
// threading primitive the rest of the package builds on.
func Chain[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, in In) rail.Result[Out]) rail.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rail.FailFrom[In, Out](input)
}

// Map transforms the successful value with a pure function.
func Map[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, in In) Out) rail.Result[Out] {

	if input.IsSuccess() {
		return rail.Success(onSuccess(ctx, input.Value()))
	}
	return rail.FailFrom[In, Out](input)
}

// Try calls a (value, error) function and converts a returned error into a
// failure. It does not recover panics; that is the task.Command contract.
func Try[In, Out any](ctx context.Context, input rail.Result[In],
	attempt func(ctx context.Context, in In) (Out, error)) rail.Result[Out] {

	if input.IsFailure() {
		return rail.FailFrom[In, Out](input)
	}

	out, err := attempt(ctx, input.Value())
	if err != nil {
		return rail.Fail[Out](err)
	}
	return rail.Success(out)
}

// Validate keeps the input value when check returns nil and fails with the
// returned error otherwise.
func Validate[T any](ctx context.Context, input rail.Result[T],
	check func(ctx context.Context, in T) error) rail.Result[T] {

	if input.IsFailure() {
		return input
	}

	if err := check(ctx, input.Value()); err != nil {
		return rail.Fail[T](err)
	}
	return input
}

// Tee runs a side effect on success without changing the result.
func Tee[T any](ctx context.Context, input rail.Result[T],
	onSuccess func(ctx context.Context, in T)) rail.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

// TeeBoth runs one of two side effects depending on the lane, without
// changing the result. Used for outcome logging.
func TeeBoth[T any](ctx context.Context, input rail.Result[T],
	onSuccess func(ctx context.Context, in T),
	onFailure func(ctx context.Context, err error)) rail.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onFailure(ctx, input.Err())
	}
	return input
}

// Pipe threads a value through same-typed steps in declared order. On the
// first failure the remaining steps are skipped and the failure propagates
// unchanged. Zero steps returns the input untouched. Type-changing chains
// nest Chain instead.
func Pipe[T any](ctx context.Context, input rail.Result[T],
	steps ...func(ctx context.Context, in T) rail.Result[T]) rail.Result[T] {

	current := input
	for _, s := range steps {
		if current.IsFailure() {
			return current
		}
		current = s(ctx, current.Value())
	}
	return current
}
