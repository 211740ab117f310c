// Package errs defines the error shapes returned to API clients.
//
// Every failure leaving the HTTP layer is rendered as an HTTPError, so
// clients always see the same JSON structure: a machine-readable code, a
// message, the status, and optional per-field errors.
package errs
