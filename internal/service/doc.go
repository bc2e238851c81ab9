// Package service contains the application use cases: user sessions,
// categories, and owner-scoped task management.
//
// Every operation validates its input through a validation.Schema before it
// touches a store, enforces ownership by scoping store calls to the calling
// user, and translates store errors into the domain error taxonomy
// (ValidationError, UnauthorizedError, NotFoundError). Anything else is
// wrapped in a ServiceError and surfaces to clients as an internal error.
//
// Services depend on the interfaces in internal/store and internal/service/auth,
// never on a concrete database.
package service
