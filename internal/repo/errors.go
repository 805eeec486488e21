package repo

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrInvalidUUID matches (via errors.Is) every DBError of kind KindInvalidUUID.
var ErrInvalidUUID = errors.New("invalid uuid")

// foreignKeyViolation is the PostgreSQL SQLSTATE for foreign_key_violation.
const foreignKeyViolation = "23503"

// ErrorKind classifies a DBError.
type ErrorKind int

const (
	// KindOther is any store failure not classified below.
	KindOther ErrorKind = iota
	// KindInvalidUUID means the identifier is malformed or names no existing row.
	KindInvalidUUID
)

// String returns the metric/log label of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidUUID:
		return "invalid_uuid"
	default:
		return "other"
	}
}

// DBError is the error type returned by every DAO operation.
//
// Detail carries the client-facing description for KindInvalidUUID. Err is the
// underlying parse or driver error.
type DBError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

// Error implements error.
func (e *DBError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

// Unwrap exposes the underlying cause.
func (e *DBError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidUUID and e has that kind.
func (e *DBError) Is(target error) bool {
	return target == ErrInvalidUUID && e.Kind == KindInvalidUUID
}

// IsInvalidUUID reports whether err is a DBError of kind KindInvalidUUID.
func IsInvalidUUID(err error) bool { return errors.Is(err, ErrInvalidUUID) }

func invalidUUID(err error) *DBError {
	return &DBError{Kind: KindInvalidUUID, Detail: err.Error(), Err: err}
}

func other(err error) *DBError {
	return &DBError{Kind: KindOther, Err: err}
}

// parseUUID parses an externally supplied identifier.
func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, invalidUUID(err)
	}
	return id, nil
}

// classifyWrite maps a store error from an insert that references a parent
// row. A foreign key violation means the parent does not exist and is
// reported as KindInvalidUUID.
func classifyWrite(err error) *DBError {
	if isForeignKeyViolation(err) {
		return invalidUUID(err)
	}
	return other(err)
}

// isForeignKeyViolation detects FK failures across drivers: pgx exposes the
// SQLSTATE, GORM's translator may return its sentinel, and SQLite reports
// "FOREIGN KEY constraint failed" as text.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == foreignKeyViolation
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
