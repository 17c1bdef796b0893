// Package database opens the SQL database that backs the "database" profile store.
//
// It wraps GORM and picks the dialector from the configured driver:
//   - mysql: go-sql-driver DSN with connect/read/write timeouts.
//   - postgres: pgx-backed driver, URL DSN with connect_timeout.
//   - sqlite: a local file, handy for single-machine installs and tests.
//
// Connect pings the database before returning, so a misconfigured store fails
// the run up front instead of after the inventory has been processed.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
package database
