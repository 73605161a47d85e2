package repoerr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind is the closed set of failure categories a repository can surface.
// Store-layer errors are mapped onto it at the repository boundary so
// services never branch on driver-specific values.
type Kind int

const (
	Unknown Kind = iota
	NotFound
	Conflict
	PermissionDenied
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case PermissionDenied:
		return "permission_denied"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap classifies a store error. Returns nil for nil input so call sites can
// wrap unconditionally.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: classify(err), Op: op, Err: err}
}

func classify(err error) Kind {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23503": // unique / foreign key violation
			return Conflict
		case "42501": // insufficient_privilege (row-level security denial)
			return PermissionDenied
		}
	}
	return Unknown
}

// KindOf extracts the kind from a wrapped error, Unknown otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == NotFound
}
