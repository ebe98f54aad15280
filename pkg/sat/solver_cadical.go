package sat

const DefaultCadicalPath = "cadical"

func NewCadicalSolver(executable, cnfPath string) (SATSolver, error) {
	return newExecutableSolver("cadical", executable, cnfPath, "-q")
}
