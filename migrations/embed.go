// Package migrations embeds the goose SQL migrations of the relay's Postgres schema.
package migrations

import "embed"

// FS holds the migration files.
//
//go:embed *.sql
var FS embed.FS
