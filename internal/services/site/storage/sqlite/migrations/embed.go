package migrations

import "embed"

// FS contains embedded SQLite migrations for the site inbox.
//
//go:embed *.sql
var FS embed.FS
