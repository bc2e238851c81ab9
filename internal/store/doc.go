// Package store defines the persistence capabilities the services depend on.
// Implementations live under internal/platform (postgres, sqlite); they
// translate driver failures into the sentinel errors declared here so that
// services never see driver-specific types.
package store
