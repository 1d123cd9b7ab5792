// Package database provides database connectivity for the SL Youth Jobs API.
//
// The database package abstracts SurrealDB operations and provides
// a consistent interface for data access across the application.
//
// # Database Interface
//
// The Database interface defines core operations:
//
//	type Database interface {
//	    Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
//	    QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
//	    Execute(ctx context.Context, query string, vars map[string]interface{}) error
//	    Close() error
//	}
//
// # Connection Management
//
// Connect to SurrealDB:
//
//	db := database.NewSurrealDB(database.Config{
//	    Host:      "localhost",
//	    Port:      "8000",
//	    Namespace: "slyouthjobs",
//	    Database:  "main",
//	    User:      "root",
//	    Password:  "secret",
//	})
//	err := db.Connect(ctx)
//
// # Schema
//
// ApplySchema runs the .surql files from the migrations directory at
// startup. The unique indexes defined there back the duplicate-email and
// duplicate-application guarantees; repositories translate index
// violations into ErrDuplicate.
//
// # Atomic Batches
//
// Multi-statement writes are BATCH-BASED, not connection-level. Queries
// accumulate in an AtomicBatch and execute together inside BEGIN/COMMIT
// TRANSACTION. There is no isolation between Add() calls (see
// transaction.go).
//
// # Error Types
//
// Standard error types for data operations, checked with errors.Is():
//
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection failed
//   - ErrQuery: Query execution failure
package database
