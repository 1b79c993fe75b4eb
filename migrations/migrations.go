// Package migrations embeds the goose SQL migrations applied by pg.Migrate.
package migrations

import "embed"

// FS holds every migration file; pass "." as the directory to pg.Migrate.
//
//go:embed *.sql
var FS embed.FS
