// Package step contains the synchronous combinators that thread a value
// through single-responsibility functions with short-circuit-on-failure
// semantics.
//
// Highlights:
// - Chain: move from Result[In] to Result[Out] via a function
// - Pipe: thread same-typed steps in declared order
// - Map/Try: transform values, optionally converting (Out, error) returns
// - Validate: fail on a non-nil check error, keep the value otherwise
// - Tee/TeeBoth: side effects that leave the result untouched
// - AllNamed: combine named results with first-failure precedence
//
// None of these recover panics. Steps that can fail unexpectedly belong in
// task.Command, which is the one place exceptions enter the result domain.
package step
