// Package task models deferred pipelines. A Task[T] is a not-yet-executed
// computation producing a Result[T]; workflows are built by composing tasks
// and forced once, at the boundary, with Run.
//
// Highlights:
// - Command: the bridge between effects and results; returned errors and
//   panics become INTERNAL_ERROR failures, interpret maps raw outcomes
// - Then/Map/Try/Tee: append synchronous steps to a task
// - Bind: sequence a task-producing continuation (effect after effect)
// - Join2/Join3: run independent effects concurrently with deterministic,
//   declaration-order failure precedence
// - Run: force the pipeline and return the resolved result
//
// Within one task chain, stages execute strictly in declared order. The
// engine keeps no shared state; concurrent Run calls are independent.
package task
