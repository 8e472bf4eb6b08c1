package errors

// SQLite helpers for mapping driver errors to project ErrorCode and retry semantics

import (
	stderrs "errors"

	sqlite3 "modernc.org/sqlite/lib"
)

// sqliteCoder matches driver errors exposing the extended result code
// (modernc.org/sqlite *Error implements it)
type sqliteCoder interface {
	error
	Code() int
}

// ExtractSQLiteCode returns the extended result code if the chain holds a driver error
func ExtractSQLiteCode(err error) (int, bool) {
	var c sqliteCoder
	if err == nil || !stderrs.As(err, &c) {
		return 0, false
	}
	return c.Code(), true
}

// primary strips the extended bits, SQLITE_CONSTRAINT_UNIQUE -> SQLITE_CONSTRAINT
func primary(code int) int { return code & 0xff }

// IsBusy reports whether the database was locked by another connection
func IsBusy(err error) bool {
	code, ok := ExtractSQLiteCode(err)
	if !ok {
		return false
	}
	switch primary(code) {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	}
	return false
}

// IsCorrupt reports whether the prefs file is not a usable database
func IsCorrupt(err error) bool {
	code, ok := ExtractSQLiteCode(err)
	if !ok {
		return false
	}
	switch primary(code) {
	case sqlite3.SQLITE_CORRUPT, sqlite3.SQLITE_NOTADB:
		return true
	}
	return false
}

// DBErrorCode maps a SQLite error to an ErrorCode with an ok flag
// !ok means err wasn't a driver error; caller may fall back to generic handling
func DBErrorCode(err error) (ErrorCode, bool) {
	code, ok := ExtractSQLiteCode(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch primary(code) {
	case sqlite3.SQLITE_CONSTRAINT:
		return ErrorCodeInvalidArgument, true
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_READONLY:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeStorage, true
}

// FromSQLite wraps a driver error with a mapped ErrorCode and message
// If err is nil, returns nil
func FromSQLite(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeStorage, msg)
}
