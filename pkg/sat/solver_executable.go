package sat

import (
	"bytes"
	"context"
	"os/exec"
	"slices"
	"time"

	"github.com/pkg/errors"
)

// executableSolver runs an external SAT-competition style solver over a DIMACS file written to cnfPath
type executableSolver struct {
	name    string
	path    string
	args    []string
	cnfPath string
}

// newExecutableSolver resolves the executable and checks the CNF path eagerly, so setup problems surface before solving
func newExecutableSolver(name, executable, cnfPath string, args ...string) (SATSolver, error) {
	path, err := resolveExecutable(executable)
	if err != nil {
		return nil, err
	}
	if err := checkOutputPath(cnfPath); err != nil {
		return nil, err
	}

	return &executableSolver{
		name:    name,
		path:    path,
		args:    args,
		cnfPath: cnfPath,
	}, nil
}

func (solver *executableSolver) Solve(ctx context.Context, sat SAT) (SATResult, error) {
	// The CNF file is overwritten on every call
	if err := sat.WriteDIMACS(solver.cnfPath); err != nil {
		return SATResult{}, err
	}

	cmd := exec.CommandContext(ctx, solver.path, append(slices.Clone(solver.args), solver.cnfPath)...)
	cmd.WaitDelay = time.Second

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return SATResult{}, contextError(ctx)
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return SATResult{}, errors.Wrapf(err, "cannot execute %v", solver.name)
	}

	exitCode := cmd.ProcessState.ExitCode()
	if err != nil && exitCode != satisfiableExitCode && exitCode != unsatisfiableExitCode {
		return SATResult{}, errors.Errorf("an error occurred during %v execution: %v : %v", solver.name, err.Error(), stderr.String())
	}

	result, err := ParseSolverOutput(stdOut.String(), exitCode)
	if err != nil {
		return SATResult{}, errors.Wrapf(err, "cannot interpret %v output", solver.name)
	}
	return result, nil
}
