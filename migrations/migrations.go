// Package migrations embeds the SQL schema so the binary can initialize
// its own database file on first run.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
