package storage

import "errors"

var (
	ErrValidation = errors.New("storage validation error")

	// ErrStore wraps any failed statement against a backing store.
	ErrStore = errors.New("store statement failed")

	ErrTokenRequired = errors.New("push token must not be empty")

	ErrNewsTitleRequired   = errors.New("news title must not be empty")
	ErrNewsMessageRequired = errors.New("news message must not be empty")
)
