//go:build integration

// Package testdb provides helpers for tests that need a real PostgreSQL
// database. Tests using it are compiled only with the integration build tag
// and are skipped when no database URL is configured.
//
// Typical use:
//
//	db := testdb.Open(t)
//	testdb.Reset(t, db)
package testdb
