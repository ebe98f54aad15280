package sat

import (
	"context"

	gophersat "github.com/crillab/gophersat/solver"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type gophersatSolver struct{}

// NewGophersatSolver solves instances in-process with gophersat's CDCL solver
func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (solver *gophersatSolver) Solve(ctx context.Context, sat SAT) (SATResult, error) {
	clauses := lo.Map(sat.Clauses, func(clause []int64, _ int) []int {
		return lo.Map(clause, func(literal int64, _ int) int { return int(literal) })
	})
	engine := gophersat.New(gophersat.ParseSlice(clauses))

	// gophersat cannot be interrupted, an abandoned search finishes in the background
	statusChannel := make(chan gophersat.Status, 1)
	go func() {
		statusChannel <- engine.Solve()
	}()

	select {
	case <-ctx.Done():
		return SATResult{}, contextError(ctx)
	case status := <-statusChannel:
		switch status {
		case gophersat.Unsat:
			return SATResult{Status: Unsatisfiable}, nil
		case gophersat.Sat:
			model := engine.Model()
			solution := make(SATSolution, len(model))
			for i, value := range model {
				variable := int64(i + 1)
				solution[i] = lo.Ternary(value, variable, -variable)
			}
			return SATResult{Status: Satisfiable, Solution: solution}, nil
		default:
			return SATResult{}, errors.Wrapf(ErrIndeterminate, "gophersat finished with status %v", status)
		}
	}
}
