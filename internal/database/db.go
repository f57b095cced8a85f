package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Open connects with the given driver ("mysql" or "sqlite"), verifies the
// connection and applies the schema. The caller owns the returned handle.
func Open(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if driver == "sqlite" {
		if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
			db.Close()
			return nil, err
		}
		if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
			db.Close()
			return nil, err
		}
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("✅ %s connected", driver)
	return db, nil
}

// Migrate creates the rooms and users tables. Statements are kept portable
// across mysql and sqlite, so insertion order comes from created_at rather
// than an auto-increment column.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rooms (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			capacity INT NOT NULL,
			occupied BOOLEAN NOT NULL,
			created_at BIGINT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(36) PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			created_at BIGINT NOT NULL
		);`,
	}
	for _, s := range stmts {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if _, err := db.ExecContext(ctx, s); err != nil {
			cancel()
			return fmt.Errorf("migration failed: %w", err)
		}
		cancel()
	}
	return nil
}
