// Package migrations embeds the goose migrations of the server Postgres database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
