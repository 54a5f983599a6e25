package martdb

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"obrail.europe.org/internal/appconf"
)

//go:embed schema.sql
var ddl string

// Client is the main entry point for the mart database. It owns the
// connection pool and is safe for concurrent readers; the loader is expected
// to run as a single batch process.
type Client struct {
	config Config
	DB     *sql.DB
}

// NewClient opens (or creates) the mart database and applies the schema.
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		DB:     db,
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// Ping verifies the backing store is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		return nil, fmt.Errorf("test databases must be in-memory, got %q", config.DBPath)
	}

	db, err := sql.Open("sqlite", dsnFor(config.DBPath))
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// An in-memory database exists per connection, so the pool must not
	// open a second one.
	if config.DBPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err = db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	if err = performDatabaseMigration(context.Background(), db); err != nil {
		return nil, fmt.Errorf("error performing database migration: %w", err)
	}

	return db, nil
}

// dsnFor enables the foreign-key pragma on every pooled connection, not just
// the one that ran the PRAGMA statement.
func dsnFor(path string) string {
	if path == ":memory:" || strings.Contains(path, "?") {
		return path
	}
	return path + "?_pragma=foreign_keys(1)"
}

func performDatabaseMigration(ctx context.Context, db *sql.DB) error {
	statements := strings.Split(ddl, "-- migrate") // Split DDL into individual statements
	for _, stmt := range statements {
		trimmedStmt := strings.TrimSpace(stmt)
		if trimmedStmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, trimmedStmt); err != nil {
			return fmt.Errorf("error executing DDL statement [%s]: %w", trimmedStmt, err)
		}
	}
	return nil
}

// TableCounts returns the row count of every mart table, keyed by table name.
func (c *Client) TableCounts(ctx context.Context) (map[string]int64, error) {
	tables := []string{
		"dim_country", "dim_operator", "dim_station", "dim_route",
		"dim_time", "dim_date", "fact_trip_segment", "trip_stop",
	}

	counts := make(map[string]int64, len(tables))
	for _, table := range tables {
		var count int64
		err := c.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("error counting rows in %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}
