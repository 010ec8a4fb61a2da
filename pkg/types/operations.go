package types

import (
	"errors"
	"fmt"
)

// ErrUnknownOperation is returned by LookupOperation for a name the API does not define.
var ErrUnknownOperation = errors.New("unknown operation")

// Request is implemented by every operation input.
type Request interface {
	fmt.Stringer

	// Validate checks the documented service constraints locally. It is advisory: the
	// service enforces the same rules whether or not the caller validates first.
	Validate() error
}

// Result is implemented by every operation output.
type Result interface {
	fmt.Stringer
}

// Operation describes one CodeDeploy API action and the shapes it exchanges.
type Operation struct {
	// Name of the action, e.g. "CreateDeployment"
	Name string

	// NewRequest returns an empty input for the action
	NewRequest func() Request

	// NewResult returns an empty output for the action
	NewResult func() Result
}

// Operations returns every operation, ordered by name.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	return out
}

// LookupOperation returns the operation with the given name.
func LookupOperation(name string) (Operation, error) {
	for _, op := range operations {
		if op.Name == name {
			return op, nil
		}
	}
	return Operation{}, fmt.Errorf("%q: %w", name, ErrUnknownOperation)
}
