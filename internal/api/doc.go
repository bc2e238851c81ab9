// Package api adapts HTTP requests to the service layer. Handlers decode
// input, pull the authenticated user from the request context, call one
// service operation and shape the result into the {data} envelope. Errors
// are mapped to status codes in one place (HandleAPIError).
package api
