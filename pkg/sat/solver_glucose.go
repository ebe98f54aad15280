package sat

// DefaultGlucosePath is resolved through PATH when no explicit path is configured
const DefaultGlucosePath = "glucose-syrup"

// NewGlucoseSolver invokes glucose as "<executable> -model -verb=0 <cnfPath>"
func NewGlucoseSolver(executable, cnfPath string) (SATSolver, error) {
	return newExecutableSolver("glucose", executable, cnfPath, "-model", "-verb=0")
}
