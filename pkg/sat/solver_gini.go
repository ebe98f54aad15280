package sat

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

type giniSolver struct{}

// NewGiniSolver solves instances in-process with gini. A context deadline bounds the search
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(ctx context.Context, sat SAT) (SATResult, error) {
	engine := gini.NewVc(int(sat.Variables), len(sat.Clauses))
	for _, clause := range sat.Clauses {
		for _, literal := range clause {
			engine.Add(z.Dimacs2Lit(int(literal)))
		}
		engine.Add(z.LitNull)
	}

	var status int
	if deadline, ok := ctx.Deadline(); ok {
		status = engine.GoSolve().Try(time.Until(deadline))
	} else {
		status = engine.Solve()
	}

	switch status {
	case -1:
		return SATResult{Status: Unsatisfiable}, nil
	case 1:
		solution := make(SATSolution, 0, int(engine.MaxVar()))
		for variable := z.Var(1); variable <= engine.MaxVar(); variable++ {
			if engine.Value(variable.Pos()) {
				solution = append(solution, int64(variable))
			} else {
				solution = append(solution, -int64(variable))
			}
		}
		return SATResult{Status: Satisfiable, Solution: solution}, nil
	}

	if ctx.Err() != nil {
		return SATResult{}, contextError(ctx)
	}
	if _, ok := ctx.Deadline(); ok {
		return SATResult{}, ErrTimeout
	}
	return SATResult{}, errors.Wrap(ErrIndeterminate, "gini finished without a result")
}
