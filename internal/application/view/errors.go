package view

import "errors"

var (
	// ErrUnknownView is returned when no instance or factory is registered for an id.
	ErrUnknownView = errors.New("view: unknown view")
	// ErrInvalidFactory is returned for nil factories, nil views and factories returning nil.
	ErrInvalidFactory = errors.New("view: invalid factory")
	// ErrTransitionInProgress is returned when SetActiveView is re-entered.
	ErrTransitionInProgress = errors.New("view: transition in progress")
)
