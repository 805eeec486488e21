package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// newTestDB opens a private in-memory SQLite database with the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	url := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := Open(context.Background(), url, Options{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return db
}

func TestDriverFor(t *testing.T) {
	cases := []struct {
		in         string
		wantDriver string
		wantPrefix string
	}{
		{"postgres://u:p@localhost:5432/qa", DriverPostgres, "postgres://u:p@localhost:5432/qa"},
		{"postgresql://localhost/qa?sslmode=disable", DriverPostgres, "postgresql://localhost/qa?sslmode=disable"},
		{"sqlite://data/qa.db", DriverSQLite, "data/qa.db?_pragma=foreign_keys(1)"},
		{"sqlite:qa.db", DriverSQLite, "qa.db?_pragma=foreign_keys(1)"},
		{"file:qa?mode=memory", DriverSQLite, "file:qa?mode=memory&_pragma=foreign_keys(1)"},
		{"qa.db", DriverSQLite, "qa.db?_pragma=foreign_keys(1)"},
	}
	for _, tc := range cases {
		driver, dsn, err := DriverFor(tc.in)
		if err != nil {
			t.Fatalf("DriverFor(%q): %v", tc.in, err)
		}
		if driver != tc.wantDriver {
			t.Errorf("DriverFor(%q) driver = %q; want %q", tc.in, driver, tc.wantDriver)
		}
		if !strings.HasPrefix(dsn, tc.wantPrefix) {
			t.Errorf("DriverFor(%q) dsn = %q; want prefix %q", tc.in, dsn, tc.wantPrefix)
		}
	}

	if _, _, err := DriverFor("   "); err == nil {
		t.Fatalf("expected error for empty url")
	}
}

func TestSQLitePath(t *testing.T) {
	cases := map[string]string{
		"qa.db?_pragma=x":                 "qa.db",
		"file:data/qa.db?_pragma=x":       "data/qa.db",
		"file:x?mode=memory&cache=shared": "",
		":memory:":                        "",
		"file::memory:?cache=shared":      "",
	}
	for in, want := range cases {
		if got := sqlitePath(in); got != want {
			t.Errorf("sqlitePath(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestOpen_ErrorOnBadPath(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "does-not-exist", "qa.db")

	db, err := Open(context.Background(), bad, Options{})
	if err == nil || db != nil {
		t.Fatalf("expected error opening %q, got db=%v err=%v", bad, db, err)
	}
	if !os.IsNotExist(err) && !strings.Contains(strings.ToLower(err.Error()), "no such file") &&
		!strings.Contains(strings.ToLower(err.Error()), "cannot find") {
		t.Fatalf("unexpected error opening %q: %v", bad, err)
	}
}

func TestOpen_FileDB_Pragmas_Pool_AndAutoMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qa.db")

	db, err := Open(context.Background(), "sqlite:"+path, Options{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	var journalMode string
	if err := db.Raw("PRAGMA journal_mode;").Row().Scan(&journalMode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if strings.ToLower(journalMode) != "wal" {
		t.Fatalf("expected journal_mode=wal, got %q", journalMode)
	}

	var fkOn int
	if err := db.Raw("PRAGMA foreign_keys;").Row().Scan(&fkOn); err != nil {
		t.Fatalf("PRAGMA foreign_keys: %v", err)
	}
	if fkOn != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fkOn)
	}

	if stats := sqlDB.Stats(); stats.MaxOpenConnections != DefaultMaxConns {
		t.Fatalf("expected MaxOpenConnections=%d, got %d", DefaultMaxConns, stats.MaxOpenConnections)
	}

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	m := db.Migrator()
	for _, tbl := range []any{&domain.Question{}, &domain.Answer{}} {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}
}

func TestAutoMigrate_ForeignKeyLivesOnAnswers(t *testing.T) {
	db := newTestDB(t)

	ddl := func(table string) string {
		t.Helper()
		var sql string
		if err := db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table).Row().Scan(&sql); err != nil {
			t.Fatalf("read ddl for %s: %v", table, err)
		}
		return strings.ToLower(sql)
	}
	if q := ddl("questions"); strings.Contains(q, "references") {
		t.Fatalf("questions must not carry a foreign key: %s", q)
	}
	a := ddl("answers")
	if !strings.Contains(a, "foreign key") || !strings.Contains(a, "questions") || !strings.Contains(a, "on delete cascade") {
		t.Fatalf("answers must reference questions with cascade: %s", a)
	}

	now := domain.Now()
	q := &domain.Question{QuestionUUID: uuid.New(), Title: "t", Description: "", CreatedAt: now}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("insert question: %v", err)
	}
	child := &domain.Answer{AnswerUUID: uuid.New(), QuestionUUID: q.QuestionUUID, Content: "c", CreatedAt: now}
	if err := db.Create(child).Error; err != nil {
		t.Fatalf("insert answer: %v", err)
	}
	orphan := &domain.Answer{AnswerUUID: uuid.New(), QuestionUUID: uuid.New(), Content: "x", CreatedAt: now}
	if err := db.Create(orphan).Error; err == nil || !isForeignKeyViolation(err) {
		t.Fatalf("orphan answer: expected foreign key violation, got %v", err)
	}

	if err := db.Delete(&domain.Question{}, "question_uuid = ?", q.QuestionUUID).Error; err != nil {
		t.Fatalf("delete question: %v", err)
	}
	var n int64
	if err := db.Model(&domain.Answer{}).Where("answer_uuid = ?", child.AnswerUUID).Count(&n).Error; err != nil {
		t.Fatalf("count answers: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected child answer removed with its question, got %d", n)
	}
}

func TestOpen_MaxConnsOverride(t *testing.T) {
	db, err := Open(context.Background(), "file:maxconns?mode=memory&cache=shared", Options{MaxConns: 2})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })
	if got := sqlDB.Stats().MaxOpenConnections; got != 2 {
		t.Fatalf("MaxOpenConnections = %d; want 2", got)
	}
}

func TestRedactDSN(t *testing.T) {
	got := RedactDSN("postgres://qa:secret@db:5432/qa")
	if strings.Contains(got, "secret") {
		t.Fatalf("password not redacted: %q", got)
	}
	if RedactDSN("qa.db") != "qa.db" {
		t.Fatalf("sqlite path should be unchanged")
	}
}

// Compile-time guard to ensure signature stability.
var _ func(context.Context, string, Options) (*gorm.DB, error) = Open
