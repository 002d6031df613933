package migrations

import "embed"

// FS contains embedded SQLite migrations for content storage.
//
//go:embed *.sql
var FS embed.FS
