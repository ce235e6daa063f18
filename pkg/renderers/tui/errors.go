package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrInvalidSubmission is returned when collected answers still fail
	// submission validation.
	ErrInvalidSubmission = errors.New("tui: invalid submission")
)
