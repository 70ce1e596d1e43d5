// Package database holds the versioned SQL schema, embedded so every binary
// migrates from the same files.
package database

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations holding the files.
const MigrationsDir = "migrations"
