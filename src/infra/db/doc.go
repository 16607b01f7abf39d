// Package db provides database connection and schema management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization
//   - Connection health checks
//   - Schema migrations (goose, embedded SQL)
//
// Example usage:
//
//	db, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
package db
