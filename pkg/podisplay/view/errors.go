package view

import "errors"

var (
	// ErrDialogNotFound indicates an identifier with no dialog definition in the view.
	ErrDialogNotFound = errors.New("dialog not found")

	// ErrInvalidEvent indicates an event payload that failed boundary validation.
	ErrInvalidEvent = errors.New("invalid event")
)
