package repository

import "errors"

var (
	// ErrUserNotFound indicates session/store desync: operations assume the
	// user record was created at login.
	ErrUserNotFound = errors.New("user not found")

	ErrUserExists      = errors.New("username already exists")
	ErrNoteNotFound    = errors.New("note not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrSessionNotFound = errors.New("session not found")
)
