// Package database handles the optional journal database connection.
//
// It wraps GORM to open MySQL or SQLite connections from the application's
// configuration. With the driver set to "none" (the default) Connect returns
// ErrDisabled and the asset loader simply runs without a journal.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns compare a live table with the columns the
// journal expects, so a stale schema is reported at startup instead of failing
// on the first insert.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if errors.Is(err, database.ErrDisabled) {
//	    // run without a journal
//	}
package database
