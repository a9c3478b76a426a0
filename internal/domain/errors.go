package domain

import "errors"

// Domain errors.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student already signed up for this activity")
	ErrNotSignedUp      = errors.New("student not signed up for this activity")
)
