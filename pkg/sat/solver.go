package sat

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

type Status int

const (
	Satisfiable Status = iota + 1
	Unsatisfiable
)

func (status Status) String() string {
	switch status {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	}
	return "UNKNOWN"
}

// SATResult is the answer of a solver: a status and, when satisfiable, the model
type SATResult struct {
	Status   Status
	Solution SATSolution
}

func (result SATResult) Satisfiable() bool {
	return result.Status == Satisfiable
}

// SATSolver decides a SAT instance. An unsatisfiable instance is a valid answer and comes with a nil error;
// an error means the solver could not determine the status of the instance
type SATSolver interface {
	Solve(ctx context.Context, sat SAT) (SATResult, error)
}

var (
	// ErrIndeterminate is returned when the solver did not report a usable status
	ErrIndeterminate = errors.New("solver did not determine satisfiability")
	// ErrTimeout is returned when the solver did not finish within the context's deadline
	ErrTimeout = errors.New("solver timed out")
)

// ConfigurationError reports a solver that cannot be set up: a missing executable, an unusable CNF path or a broken config file
type ConfigurationError struct {
	Subject string
	Cause   string
}

func (err ConfigurationError) Error() string {
	return fmt.Sprintf("invalid solver configuration: %v: %v", err.Subject, err.Cause)
}

// contextError translates a finished context into ErrTimeout or its own error
func contextError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	return ctx.Err()
}
