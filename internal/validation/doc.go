// Package validation provides declarative input schemas.
//
// A Schema[T] validates a value and returns its sanitized form. Object schemas
// read struct `validate` tags (go-playground/validator) and apply defaults for
// types implementing Defaulter; Scalar schemas check a single value such as a
// path id. All failures surface as *domain.ValidationError with one message
// per offending field, named by its JSON key.
package validation
