// Package migrations embeds the run history schema.
package migrations

import "embed"

// FS holds the numbered .up.sql/.down.sql pairs, applied in order.
//
//go:embed *.sql
var FS embed.FS
