// Package postgres implements the internal/store interfaces on PostgreSQL.
//
// Connections go through the pgx stdlib driver and are wrapped in sqlx for
// struct scanning. The schema is managed by goose migrations embedded in the
// binary (see Migrate). Driver errors are translated to store sentinels by
// MapError so that callers never inspect pgconn types.
package postgres
