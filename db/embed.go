// Package db provides the embedded database schema and demo seed data.
package db

import _ "embed"

// Schema contains the DDL statements for all application tables.
//
//go:embed schema.sql
var Schema string

// Seed contains demo fixture rows for local development. Applied only by
// cmd/seed-db, never by the server.
//
//go:embed seed.sql
var Seed string
