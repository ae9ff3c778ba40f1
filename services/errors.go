package services

import "errors"

var (
	ErrNotFound              = errors.New("record not found")
	ErrDuplicateSubscription = errors.New("email is already subscribed to newsletter")
	ErrUserExists            = errors.New("username or email already registered")
	ErrDuplicateSlug         = errors.New("slug already exists")
	ErrDuplicateName         = errors.New("name or slug already exists")
	ErrInvalidCredentials    = errors.New("incorrect username or password")
)
