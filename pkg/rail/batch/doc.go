// Package batch lifts a single stage over many inputs with a fixed number
// of worker lines. It is the bulk counterpart to task: per-item results stay
// independent, failed items flow through without stopping the batch, and
// context cancellation drains every line.
//
// Typical shape:
//
//	out := batch.Through(ctx, batch.Source(ctx, inputs), stage, 4)
//	results := batch.Collect(ctx, out)
package batch
