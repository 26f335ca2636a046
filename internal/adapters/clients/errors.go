// Package clients provides the instrumented HTTP transport used to reach the quote API.
package clients

import "errors"

// ErrCircuitOpen is returned when the circuit breaker is open and the request was not sent.
// The quote API pipeline reports it as a network error.
var ErrCircuitOpen = errors.New("circuit breaker open")
