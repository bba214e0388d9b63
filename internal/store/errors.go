package store

import "errors"

var (
	// ErrNotFound means the record is absent. Callers treat it as "no
	// results", not a fault.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a signup collides with an already
	// registered email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrAlreadyUnlocked is returned by CreateAchievement when the (user,
	// code) pair already exists, where the backend can detect it.
	ErrAlreadyUnlocked = errors.New("achievement already unlocked")
)
