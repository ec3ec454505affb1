// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, client IP extraction,
// per-client rate limiting, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key used to store the browser session identifier in
// the context. Used together with GetSessionIDFromContext for type-safe
// retrieval of the session ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionIDCtxKey, "0191f9a2-...")
var SessionIDCtxKey = contextKey("sessionID")

// GetSessionIDFromContext retrieves the browser session identifier from the
// context.
//
// Returns the session ID and an ok flag:
//   - ok == true: value is found and has the correct string type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	sessionID, ok := utils.GetSessionIDFromContext(ctx)
//	if !ok {
//	    // handle missing session in context
//	}
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok
}

// TraceIDCtxKey is the key used to store the request trace identifier in the
// context, so outbound backend calls can carry the same X-Trace-ID the
// inbound request was tagged with.
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext retrieves the request trace identifier from the
// context. Returns the trace ID and an ok flag analogous to
// GetSessionIDFromContext.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
