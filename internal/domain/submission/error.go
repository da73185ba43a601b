package submission

import (
	"errors"
)

var (
	ErrMissingFields = errors.New("all fields are required")
	ErrStorageWrite  = errors.New("failed to persist submissions")
	ErrNoSubmissions = errors.New("no submissions found")
	ErrUnknownFormat = errors.New("unknown export format")
)
