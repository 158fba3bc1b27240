package domain

import "errors"

// Repository-level sentinels. Usecases translate them into apperror values.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
)
