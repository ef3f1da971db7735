package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrMemberUnavailable marks a member already playing the hole in
	// another active group.
	ErrMemberUnavailable = errors.New("member unavailable")
)
