// Package migrations embeds the goose schema migrations for the SQL store
// backends, one directory per dialect.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

// Dir returns the migration directory for a goose dialect name.
func Dir(dialect string) string {
	if dialect == "postgres" {
		return "postgres"
	}
	return "sqlite"
}
