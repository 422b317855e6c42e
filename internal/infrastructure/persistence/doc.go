// Package persistence provides the database repository implementations.
// It uses GORM as the ORM layer over PostgreSQL or SQLite and stores users
// (with their profile inline) and kudos (with their style inline).
package persistence
