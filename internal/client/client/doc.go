// Package client talks to the idkeeper server.
//
// HTTPClient implements Client over the JSON API. HealthChecker probes the
// gRPC health endpoint and backs the CLI's online/offline indicator.
//
// Failures are reported as sentinel errors that callers match with
// errors.Is: ErrUnavailable when the server cannot be reached, and the
// common error kinds (validation, conflict, invalid token, invalid
// credentials) carried by *APIError.
package client
