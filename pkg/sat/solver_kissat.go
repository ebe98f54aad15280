package sat

const DefaultKissatPath = "kissat"

func NewKissatSolver(executable, cnfPath string) (SATSolver, error) {
	return newExecutableSolver("kissat", executable, cnfPath, "-q")
}
