// Package migrations holds the SQLite schema as embedded SQL files.
package migrations

import "embed"

// FS contains the migration files, applied in filename order.
//
//go:embed *.sql
var FS embed.FS
