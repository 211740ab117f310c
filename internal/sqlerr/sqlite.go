package sqlerr

import (
	"strconv"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ConvertSQLiteError converts a modernc SQLite error into an Error.
//
// SQLite reports the offending column only in the message text, e.g.
// "NOT NULL constraint failed: form_messages.name".
func ConvertSQLiteError(src *msqlite.Error) *Error {
	out := &Error{
		Code:         mapSQLiteCode(src.Code()),
		Severity:     SeverityError,
		DatabaseCode: strconv.Itoa(src.Code()),
		Message:      src.Error(),
		driverErr:    src,
	}

	if _, after, ok := strings.Cut(src.Error(), "constraint failed: "); ok {
		target := strings.TrimSpace(after)
		if end := strings.IndexAny(target, " ,("); end >= 0 {
			target = target[:end]
		}
		if table, column, ok := strings.Cut(target, "."); ok {
			out.TableName = table
			out.ColumnName = column
		} else {
			out.ConstraintName = target
		}
	}

	return out
}

func mapSQLiteCode(code int) Code {
	switch code {
	case sqlite3lib.SQLITE_CONSTRAINT_NOTNULL:
		return NotNullViolation
	case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ForeignKeyViolation
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return UniqueViolation
	case sqlite3lib.SQLITE_CONSTRAINT_CHECK:
		return CheckViolation
	case sqlite3lib.SQLITE_MISMATCH:
		return InvalidValue
	case sqlite3lib.SQLITE_TOOBIG:
		return ValueTooLong
	case sqlite3lib.SQLITE_CANTOPEN, sqlite3lib.SQLITE_BUSY:
		return ConnectionException
	case sqlite3lib.SQLITE_FULL, sqlite3lib.SQLITE_NOMEM:
		return InsufficientResource
	}
	return Other
}
