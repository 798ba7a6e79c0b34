package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./db.sqlite". For in-memory
// databases, pass ":memory:".
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }

// OpenWithVectors registers the vector functions with cfg and then opens
// dsn, so every connection of the returned pool sees them.
func OpenWithVectors(dsn string, cfg *Config) (*sql.DB, error) {
	if err := RegisterVectorFunctions(cfg); err != nil {
		return nil, err
	}
	return Open(dsn)
}
