// Package middleware holds the Echo middleware shared by every route:
// request ids, the request-scoped logger, New Relic tracing, CORS, secure
// headers, panic recovery, rate limiting, Clerk authentication and the global
// error handler.
package middleware
