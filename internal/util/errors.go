package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrChallengeNotFound    = errors.New("challenge not found")
	ErrInvalidVoteDirection = errors.New("invalid vote direction")
	ErrVoteConflict         = errors.New("vote transaction conflict")
)
