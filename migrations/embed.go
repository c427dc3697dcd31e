// Package migrations embeds the SQL migration files so the server can apply
// the shops schema at boot and tests can drive goose programmatically.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Feed this to goose.NewProvider instead of relying on a filesystem
// path at runtime.
//
//go:embed *.sql
var FS embed.FS
