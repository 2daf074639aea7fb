package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Portable sentinels so callers (and test fakes) don't depend on driver error
// types. The mysql implementation translates driver errors into these.
var (
	ErrDupKey     = errors.New("duplicate key")
	ErrTxConflict = errors.New("transaction conflict")
)

const (
	mysqlErrDupEntry        = 1062
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

func IsDupKeyErr(err error) bool {
	if errors.Is(err, ErrDupKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDupEntry
}

// IsTxConflictErr reports whether err is a concurrency conflict that makes the
// whole transaction worth retrying with a freshly resolved view.
func IsTxConflictErr(err error) bool {
	if errors.Is(err, ErrTxConflict) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	return mysqlErr.Number == mysqlErrDeadlock || mysqlErr.Number == mysqlErrLockWaitTimeout
}
