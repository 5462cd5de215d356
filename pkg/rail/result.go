package rail

import (
	"time"

	"github.com/google/uuid"
)

// Result is a two-lane value: either a success holding a value of T, or a
// failure holding an error. The success flag is the single source of truth
// for which lane is populated. Values are immutable; combinators always
// build new results.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom retypes a failed Result[In] into a Result[Out], preserving the
// error, id, and creation time. Calling it on a success is a programming
// error; the value cannot cross the type change and is dropped.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success value; zero value of T on failures.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// CreatedAt is the creation time (UTC) of this result.
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// ID identifies this result instance; transport layers reuse it as the
// response trace id.
func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// Match folds the result into a single value, invoking exactly one of the
// two projections.
func Match[T, Out any](r Result[T], onSuccess func(T) Out, onFailure func(error) Out) Out {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
