// Package persistence implements the repository ports on top of gorm.
//
// Postgres is the production driver; sqlite backs local runs and tests.
// The *gorm.DB pool is opened once by the binary and injected into every
// repository. Queries always carry the caller's context so request
// deadlines reach the database.
package persistence
