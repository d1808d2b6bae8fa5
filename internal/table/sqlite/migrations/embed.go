package migrations

import "embed"

// FS contains embedded SQLite migrations for the roll-table catalog.
//
//go:embed *.sql
var FS embed.FS
