package martdb

import (
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

var (
	// ErrDuplicateKey reports an insert that violated a natural-key
	// uniqueness constraint.
	ErrDuplicateKey = errors.New("duplicate natural key")

	// ErrForeignKey reports a fact insert referencing a dimension key that
	// does not exist.
	ErrForeignKey = errors.New("missing dimension reference")

	// ErrInvalidFilter reports an out-of-range query filter value.
	ErrInvalidFilter = errors.New("invalid filter")
)

// wrapConstraintErr maps SQLite constraint failures onto the package error
// kinds so callers can branch with errors.Is.
func wrapConstraintErr(op string, err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlitelib.SQLITE_CONSTRAINT_UNIQUE, sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%s: %w", op, errors.Join(ErrDuplicateKey, err))
		case sqlitelib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%s: %w", op, errors.Join(ErrForeignKey, err))
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
