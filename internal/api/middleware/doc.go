// Package middleware holds the HTTP middleware chain: request tracing,
// bearer-token authorization and Prometheus request metrics.
package middleware
