package domain

import "errors"

var (
	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account not found")

	// ErrOwnerNotFound is returned when the external identity service does not
	// confirm the owner. Transport failures during the lookup surface as this
	// error too (fail closed).
	ErrOwnerNotFound = errors.New("owner not found")
)
