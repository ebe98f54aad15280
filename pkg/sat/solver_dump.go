package sat

import "context"

type dumpingSolver struct {
	solver  SATSolver
	cnfPath string
}

// WithDIMACSDump wraps solver so every instance is first written to cnfPath, as external solvers do
func WithDIMACSDump(solver SATSolver, cnfPath string) (SATSolver, error) {
	if err := checkOutputPath(cnfPath); err != nil {
		return nil, err
	}
	return &dumpingSolver{solver: solver, cnfPath: cnfPath}, nil
}

func (solver *dumpingSolver) Solve(ctx context.Context, sat SAT) (SATResult, error) {
	if err := sat.WriteDIMACS(solver.cnfPath); err != nil {
		return SATResult{}, err
	}
	return solver.solver.Solve(ctx, sat)
}
