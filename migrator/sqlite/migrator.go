// Package sqlite applies the embedded schema migrations for the show
// database at startup.
package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Migrate runs all pending migrations under sql/ in filename order.
func Migrate(db *sql.DB) error {
	m := sqlmigrator.New(db, darwin.SqliteDialect{})

	return m.Migrate(migrationFiles, "sql")
}
