package database

import (
	"fmt"
	"strconv"
	"strings"

	"waste-pickup/pkg/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Dialect captures the differences between the supported stores.
type Dialect interface {
	Name() string
	DriverName() string
	DSN(config utils.DatabaseConfig) string
	Rebind(query string) string
	Schema() []string
}

// DialectFor returns the dialect registered under name.
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DialectSQLite, "sqlite3":
		return sqliteDialect{}, nil
	case DialectPostgres, "postgresql", "pgx":
		return postgresDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", name)
	}
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string       { return DialectSQLite }
func (sqliteDialect) DriverName() string { return "sqlite3" }

func (sqliteDialect) DSN(config utils.DatabaseConfig) string {
	path := config.Path
	if path == "" {
		path = "agc_system.db"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	// foreign keys stay off: references are declared but not enforced
	return path + sep + "_busy_timeout=5000"
}

func (sqliteDialect) Rebind(query string) string { return query }

func (sqliteDialect) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			house_number TEXT,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			role TEXT CHECK(role IN ('resident','admin')) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pickup_requests (
			request_id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			timestamp TEXT,
			status TEXT CHECK(status IN ('PENDING','IN-PROGRESS','COMPLETED')) DEFAULT 'PENDING',
			FOREIGN KEY (user_id) REFERENCES users(user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS waste_logs (
			log_id INTEGER PRIMARY KEY AUTOINCREMENT,
			request_id INTEGER,
			waste_type TEXT,
			timestamp TEXT,
			FOREIGN KEY (request_id) REFERENCES pickup_requests(request_id)
		)`,
	}
}

type postgresDialect struct{}

func (postgresDialect) Name() string       { return DialectPostgres }
func (postgresDialect) DriverName() string { return "pgx" }

func (postgresDialect) DSN(config utils.DatabaseConfig) string {
	port := config.Port
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable host=%s port=%s",
		config.User, config.Password, config.Name, config.Host, port)
}

// Rebind rewrites `?` placeholders to `$1..$n`. Quoted literals are left alone.
func (postgresDialect) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Schema omits foreign keys: postgres cannot declare them without enforcing them.
func (postgresDialect) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			house_number TEXT,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL CHECK (role IN ('resident','admin'))
		)`,
		`CREATE TABLE IF NOT EXISTS pickup_requests (
			request_id BIGSERIAL PRIMARY KEY,
			user_id BIGINT,
			timestamp TEXT,
			status TEXT DEFAULT 'PENDING' CHECK (status IN ('PENDING','IN-PROGRESS','COMPLETED'))
		)`,
		`CREATE TABLE IF NOT EXISTS waste_logs (
			log_id BIGSERIAL PRIMARY KEY,
			request_id BIGINT,
			waste_type TEXT,
			timestamp TEXT
		)`,
	}
}
