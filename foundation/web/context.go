package web

import (
	"context"
	"time"
)

// ctxKey represents the type of value for the context key.
type ctxKey int

// valuesKey is how request values are stored/retrieved from a
// context.Context.
const valuesKey ctxKey = 1

// Values carry information about each request, assigned by the App's
// Handle method before a handler runs.
type Values struct {
	TraceID    string
	Now        time.Time
	StatusCode int
}

// GetValues returns the values stored in the context, if any.
func GetValues(ctx context.Context) *Values {
	v, ok := ctx.Value(valuesKey).(*Values)
	if !ok {
		return &Values{TraceID: "00000000-0000-0000-0000-000000000000", Now: time.Now()}
	}
	return v
}

// GetTraceID returns the trace id from the context, if any.
func GetTraceID(ctx context.Context) string {
	return GetValues(ctx).TraceID
}

// SetStatusCode records the HTTP status code a handler is about to
// write, so logging middleware can report it after the fact.
func SetStatusCode(ctx context.Context, statusCode int) {
	GetValues(ctx).StatusCode = statusCode
}
