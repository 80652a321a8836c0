package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"waste-pickup/pkg/utils"
)

// DBIface interface untuk abstraction database
type DBIface interface {
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) *sql.Row
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)
	Begin(ctx context.Context) (*Tx, error)
	Ping(ctx context.Context) error
	Dialect() Dialect
	Close() error
}

// DB wraps *sql.DB and rebinds `?` placeholders for the active dialect.
type DB struct {
	conn    *sql.DB
	dialect Dialect
}

// Query implements DBIface
func (db *DB) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.conn.QueryContext(ctx, db.dialect.Rebind(query), args...)
}

// QueryRow implements DBIface
func (db *DB) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.conn.QueryRowContext(ctx, db.dialect.Rebind(query), args...)
}

// Exec implements DBIface
func (db *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.conn.ExecContext(ctx, db.dialect.Rebind(query), args...)
}

// Begin implements DBIface
func (db *DB) Begin(ctx context.Context) (*Tx, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, dialect: db.dialect}, nil
}

// Ping implements DBIface
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Dialect implements DBIface
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Close implements DBIface
func (db *DB) Close() error {
	return db.conn.Close()
}

// Tx is a transaction bound to the dialect of the DB that started it.
type Tx struct {
	tx      *sql.Tx
	dialect Dialect
}

func (t *Tx) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return t.tx.QueryRowContext(ctx, t.dialect.Rebind(query), args...)
}

func (t *Tx) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, t.dialect.Rebind(query), args...)
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// InitDB membuka koneksi database sesuai driver di config
func InitDB(config utils.DatabaseConfig) (*DB, error) {
	dialect, err := DialectFor(config.Driver)
	if err != nil {
		return nil, err
	}

	dsn := dialect.DSN(config)
	conn, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialect.Name(), err)
	}

	// Pool configuration
	switch dialect.Name() {
	case DialectSQLite:
		// single writer; one connection also keeps in-memory databases alive
		conn.SetMaxOpenConns(1)
	default:
		if config.MaxConns > 0 {
			conn.SetMaxOpenConns(int(config.MaxConns))
		}
		conn.SetConnMaxLifetime(30 * time.Minute)
		conn.SetConnMaxIdleTime(5 * time.Minute)
	}

	// Test connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return &DB{conn: conn, dialect: dialect}, nil
}
