package repository

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrAlreadySignedUp     = errors.New("already signed up")
	ErrActivityFull        = errors.New("activity is full")
)
