package superstring

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyModel is returned when a solver reports satisfiability without an assignment
	ErrEmptyModel = errors.New("solver reported a satisfiable formula without a model")
	// ErrNoSuperstring is returned when not even the concatenation of all strings was accepted
	ErrNoSuperstring = errors.New("no superstring was found within the search bounds")
)

// ConfigurationError reports an input source that cannot be used
type ConfigurationError struct {
	Path  string
	Cause string
}

func (err ConfigurationError) Error() string {
	return fmt.Sprintf("invalid input file %q: %v", err.Path, err.Cause)
}

// ValidationError reports a string that is not a non-empty sequence of '0' and '1'
type ValidationError struct {
	Line    int
	Content string
	Cause   string
}

func (err ValidationError) Error() string {
	if err.Line == 0 {
		return fmt.Sprintf("invalid input: %v", err.Cause)
	}
	return fmt.Sprintf("invalid input at line %d (%q): %v", err.Line, err.Content, err.Cause)
}

// DomainError reports a target length that no superstring can have
type DomainError struct {
	Length        int
	LongestLength int
}

func (err DomainError) Error() string {
	if err.Length <= 0 {
		return fmt.Sprintf("target length must be positive: %d", err.Length)
	}
	return fmt.Sprintf("target length %d is smaller than the longest string (%d)", err.Length, err.LongestLength)
}

// ModelError reports a model that does not assign exactly one character to a position
type ModelError struct {
	Position int
	Cause    string
}

func (err ModelError) Error() string {
	return fmt.Sprintf("invalid model at position %d: %v", err.Position, err.Cause)
}
