// Package sqliteexternal registers the optional CGO SQLite driver.
//
// To use the CGO driver (github.com/mattn/go-sqlite3):
//
//	import _ "github.com/FocuswithJustin/JuniperReader/contrib/sqlite-external"
//
// Build with:
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite
//
// By default the reader tools use the pure Go modernc.org/sqlite driver; see
// github.com/FocuswithJustin/JuniperReader/core/sqlite. The CGO driver is
// faster on full-corpus exports.
package sqliteexternal
