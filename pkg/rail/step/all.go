package step

import (
	"github.com/crewbase/railway/pkg/rail"
)

// Field is one named entry of an AllNamed bundle.
type Field[T any] struct {
	name string
	res  rail.Result[T]
}

// Named binds an already computed result to a field name.
func Named[T any](name string, r rail.Result[T]) Field[T] {
	return Field[T]{name: name, res: r}
}

// AllNamed combines independently computed results into one. The output is
// a success holding name->value only if every field succeeded; otherwise it
// is the first failure in declaration order. Fields are an ordered list, not
// a map, so the precedence is deterministic.
func AllNamed[T any](fields ...Field[T]) rail.Result[map[string]T] {
	for _, f := range fields {
		if f.res.IsFailure() {
			return rail.FailFrom[T, map[string]T](f.res)
		}
	}

	values := make(map[string]T, len(fields))
	for _, f := range fields {
		values[f.name] = f.res.Value()
	}
	return rail.Success(values)
}
