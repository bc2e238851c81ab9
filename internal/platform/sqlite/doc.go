// Package sqlite implements the internal/store interfaces on an embedded
// SQLite database through gorm. It backs local and single-node deployments
// (database.driver = sqlite) and in-memory test runs. The schema is created
// with gorm AutoMigrate from the record types in models.go.
package sqlite
