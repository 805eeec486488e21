// Package repo implements the data persistence layer for questions and
// answers, backed by GORM. This file contains database bootstrapping helpers
// for PostgreSQL (pgx via gorm.io/driver/postgres) and SQLite (pure Go
// driver), connection pool sizing, and schema migrations.
package repo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// DefaultMaxConns is the connection pool cap used when Options.MaxConns is unset.
const DefaultMaxConns = 5

// Driver names returned by DriverFor.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// sqlitePragmas are applied to every pooled SQLite connection through the DSN.
// foreign_keys is per-connection in SQLite, so PRAGMA statements issued once
// after open would only reach a single connection.
var sqlitePragmas = []string{"foreign_keys(1)", "busy_timeout(5000)"}

// Options tunes Open.
type Options struct {
	// MaxConns caps open and idle connections. Values <= 0 use DefaultMaxConns.
	MaxConns int
	// Logger overrides the GORM logger. Nil keeps GORM's default.
	Logger logger.Interface
}

// Open connects to the store named by databaseURL, sizes the pool and pings
// the connection.
//
// Accepted forms:
//   - postgres://… or postgresql://…  → PostgreSQL
//   - sqlite://path, sqlite:path       → SQLite file
//   - file:…, :memory:, or a bare path → SQLite
func Open(ctx context.Context, databaseURL string, opts Options) (*gorm.DB, error) {
	driver, dsn, err := DriverFor(databaseURL)
	if err != nil {
		return nil, err
	}

	cfg := &gorm.Config{}
	if opts.Logger != nil {
		cfg.Logger = opts.Logger
	}

	var db *gorm.DB
	switch driver {
	case DriverPostgres:
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	default:
		db, err = OpenSQLite(dsn, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("pool handle: %w", err)
	}
	maxConns := opts.MaxConns
	if maxConns <= 0 {
		maxConns = DefaultMaxConns
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

// DriverFor picks the dialect for databaseURL and returns the DSN the
// dialector expects.
func DriverFor(databaseURL string) (driver, dsn string, err error) {
	u := strings.TrimSpace(databaseURL)
	if u == "" {
		return "", "", errors.New("database url is empty")
	}
	lower := strings.ToLower(u)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres, u, nil
	case strings.HasPrefix(lower, "sqlite://"):
		return DriverSQLite, withPragmas(u[len("sqlite://"):]), nil
	case strings.HasPrefix(lower, "sqlite:"):
		return DriverSQLite, withPragmas(u[len("sqlite:"):]), nil
	default:
		return DriverSQLite, withPragmas(u), nil
	}
}

// withPragmas appends the connection pragmas to a SQLite DSN.
func withPragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	parts := make([]string, 0, len(sqlitePragmas))
	for _, p := range sqlitePragmas {
		parts = append(parts, "_pragma="+p)
	}
	return dsn + sep + strings.Join(parts, "&")
}

// OpenSQLite opens (or creates) a SQLite database. File databases switch to
// WAL journaling.
func OpenSQLite(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	path := sqlitePath(dsn)
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				return nil, err
			}
		}
	}
	if cfg == nil {
		cfg = &gorm.Config{}
	}

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}
	if path != "" {
		db.Exec("PRAGMA journal_mode=WAL;")
		db.Exec("PRAGMA synchronous=NORMAL;")
	}
	return db, nil
}

// sqlitePath returns the filesystem path of a SQLite DSN, or "" for
// in-memory databases.
func sqlitePath(dsn string) string {
	p := dsn
	if i := strings.IndexByte(p, '?'); i >= 0 {
		if strings.Contains(p[i:], "mode=memory") {
			return ""
		}
		p = p[:i]
	}
	p = strings.TrimPrefix(p, "file:")
	if p == "" || p == ":memory:" {
		return ""
	}
	return p
}

// AutoMigrate creates or updates the questions and answers tables, including
// the answers→questions foreign key with ON DELETE CASCADE.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Question{},
		&domain.Answer{},
	)
}

// RedactDSN hides the password of a URL-style DSN so it can be logged.
func RedactDSN(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil || u.User == nil {
		return databaseURL
	}
	return u.Redacted()
}
