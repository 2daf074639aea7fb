package controllers

import "errors"

// Failure taxonomy surfaced to the route layer. ErrNotFound and ErrConflict
// mean nothing happened; ErrTxConflict means a concurrent operation won and
// the caller may retry; anything else is an internal storage failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrTxConflict = errors.New("conflicting concurrent operation")
)
