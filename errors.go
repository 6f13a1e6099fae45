package postgres

import "errors"

var (
	// ErrIterationInProgress means EachRow was re-entered from inside its
	// own row callback, which would iterate the same result twice at once.
	ErrIterationInProgress = errors.New("row iteration already in progress")
)
