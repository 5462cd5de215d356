// Package rail is the core of the railway-oriented workflow engine: a
// two-lane Result[T] carrying either a value or a coded error, plus the
// Match fold that collapses a result into a caller-shaped value.
//
// Composition lives in the subpackages:
// - step: synchronous combinators (Chain, Pipe, Map, Try, Validate, Tee,
//   AllNamed) that short-circuit on the first failure
// - task: deferred pipelines (Task, Command, Run) where effects enter the
//   result domain
// - batch: channel-lifted execution of a stage over many inputs
package rail
