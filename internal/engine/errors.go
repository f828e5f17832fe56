package engine

import "fmt"

// All engine errors are recoverable by the caller: they are returned
// before any mutation, never after a partial one.

type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

type InsufficientFundsError struct {
	Cost      int
	Available int
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("need %d coins, have %d", e.Cost, e.Available)
}

type AlreadyOwnedError struct {
	BuildingID   string
	DecorationID string
}

func (e AlreadyOwnedError) Error() string {
	return fmt.Sprintf("building %q already owns decoration %q", e.BuildingID, e.DecorationID)
}
