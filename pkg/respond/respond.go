// Package respond shapes resolved results into the transport envelope
// handlers serialize: {success, data, error: {code, message}, traceId}.
package respond

import (
	"github.com/crewbase/railway/pkg/fault"
	"github.com/crewbase/railway/pkg/rail"
)

// ErrorBody is the error half of the envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope is the uniform response payload. Data is nil on failures, Error
// is nil on successes.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data"`
	Error   *ErrorBody `json:"error"`
	TraceID string     `json:"traceId"`
}

// From folds a resolved result into an envelope, projecting the success
// value with project. The result id becomes the trace id, so one result maps
// to one traceable response.
func From[T any](r rail.Result[T], project func(v T) any) Envelope {
	trace := r.ID().String()

	return rail.Match(r,
		func(v T) Envelope {
			return Envelope{
				Success: true,
				Data:    project(v),
				TraceID: trace,
			}
		},
		func(err error) Envelope {
			return Envelope{
				Success: false,
				Error: &ErrorBody{
					Code:    fault.CodeOf(err),
					Message: fault.MessageOf(err),
				},
				TraceID: trace,
			}
		})
}

// OK builds a success envelope directly from a value.
func OK[T any](r rail.Result[T]) Envelope {
	return From(r, func(v T) any { return v })
}
