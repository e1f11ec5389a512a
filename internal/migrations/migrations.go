// Package migrations embeds the goose SQL files for the shared registry and
// for tenant stores. Every statement is written to be safe on a file that
// already holds the schema.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed registry/*.sql tenant/*.sql
var files embed.FS

// Registry returns the schema set of the shared credential registry.
func Registry() fs.FS { return sub("registry") }

// Tenant returns the schema set of a tenant's private ledger store.
func Tenant() fs.FS { return sub("tenant") }

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		// dir is a compile-time constant matched by the embed pattern.
		panic(err)
	}
	return f
}
