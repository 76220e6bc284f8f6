//go:build cgo_sqlite

// The mattn/go-sqlite3 driver backs core/sqlite, and so the export
// command's study databases, when the reader is built with cgo_sqlite.
// Build with: CGO_ENABLED=1 go build -tags cgo_sqlite ./cmd/reader

package sqliteexternal

import (
	_ "github.com/mattn/go-sqlite3" // registers "sqlite3"
)

const (
	// DriverName is the database/sql name core/sqlite.Open uses.
	DriverName = "sqlite3"

	// DriverType is reported by core/sqlite.DriverType and reader version info.
	DriverType = "cgo"

	// DriverPackage is the import path of the registered driver.
	DriverPackage = "github.com/mattn/go-sqlite3"
)
