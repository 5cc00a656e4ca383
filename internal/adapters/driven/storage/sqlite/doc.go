// Package sqlite provides a SQLite-based implementation of the
// account, session, and audit driven ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite
// implementation that requires no CGO, enabling easy
// cross-compilation. It implements multiple store interfaces through
// a single database connection:
//
//   - UserStore: dashboard account persistence
//   - SessionStore: the single logged-in session
//   - AuditLog: user-visible activity history
//
// # Schema
//
// The database schema is managed through versioned migrations stored
// in the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.brandforge/data/studio.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level
// locking provided by SQLite in WAL mode.
package sqlite
