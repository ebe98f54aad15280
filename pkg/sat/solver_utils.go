package sat

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
const (
	satisfiableExitCode   = 10
	unsatisfiableExitCode = 20
)

// SolverConfig maps each external solver to the path of its executable
type SolverConfig struct {
	GlucosePath string `mapstructure:"glucosePath"`
	KissatPath  string `mapstructure:"kissatPath"`
	CadicalPath string `mapstructure:"cadicalPath"`
}

// DefaultConfigPath returns the path of the config.json placed next to the running executable
func DefaultConfigPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execPath), "config.json")
}

// LoadConfig reads a JSON solver configuration. A missing file yields an empty configuration only when optional is set
func LoadConfig(path string, optional bool) (SolverConfig, error) {
	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && optional {
		return SolverConfig{}, nil
	} else if err != nil {
		return SolverConfig{}, ConfigurationError{Subject: path, Cause: err.Error()}
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return SolverConfig{}, ConfigurationError{Subject: path, Cause: "cannot parse config file: " + err.Error()}
	}

	var config SolverConfig
	if err := mapstructure.Decode(configJson, &config); err != nil {
		return SolverConfig{}, ConfigurationError{Subject: path, Cause: "cannot decode config file: " + err.Error()}
	}
	return config, nil
}

// ParseSolverOutput extracts the status ("s" line) and the model ("v" lines) from the standard output of a
// SAT-competition style solver. The exit-code, when it is 10 or 20, must agree with the status line
func ParseSolverOutput(solverOutput string, exitCode int) (SATResult, error) {
	lines := lo.Map(strings.Split(solverOutput, "\n"), func(line string, _ int) string { return strings.TrimSpace(line) })

	statusLines := lo.Uniq(lo.Filter(lines, func(line string, _ int) bool { return len(line) > 0 && line[0] == 's' }))
	if len(statusLines) == 0 {
		return SATResult{}, errors.Wrap(ErrIndeterminate, "no status line in solver output")
	} else if len(statusLines) > 1 {
		return SATResult{}, errors.Wrapf(ErrIndeterminate, "conflicting status lines in solver output: %v", statusLines)
	}

	var result SATResult
	switch strings.Join(strings.Fields(statusLines[0])[1:], " ") {
	case "SATISFIABLE":
		result.Status = Satisfiable
	case "UNSATISFIABLE":
		result.Status = Unsatisfiable
	default:
		return SATResult{}, errors.Wrapf(ErrIndeterminate, "unexpected status line %q", statusLines[0])
	}

	if (exitCode == satisfiableExitCode && result.Status != Satisfiable) ||
		(exitCode == unsatisfiableExitCode && result.Status != Unsatisfiable) {
		return SATResult{}, errors.Wrapf(ErrIndeterminate, "status %v contradicts exit-code %d", result.Status, exitCode)
	}

	if result.Status == Unsatisfiable {
		return result, nil
	}

	values := lo.FlatMap(
		lo.Filter(lines, func(line string, _ int) bool { return len(line) > 0 && line[0] == 'v' }),
		func(line string, _ int) []string { return strings.Fields(line)[1:] },
	)

	result.Solution = make(SATSolution, 0, len(values))
	for _, valueStr := range values {
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return SATResult{}, errors.Wrapf(ErrIndeterminate, "invalid literal %q in solver output", valueStr)
		}
		if value != 0 {
			result.Solution = append(result.Solution, value)
		}
	}

	return result, nil
}

// resolveExecutable finds an executable by path or, for bare names, through PATH
func resolveExecutable(executable string) (string, error) {
	if executable == "" {
		return "", ConfigurationError{Subject: "solver", Cause: "no executable was specified"}
	}
	path, err := exec.LookPath(executable)
	if err != nil {
		return "", ConfigurationError{Subject: executable, Cause: "executable is missing or cannot be executed"}
	}
	return path, nil
}

// checkOutputPath makes sure a CNF file can be (over)written at path
func checkOutputPath(path string) error {
	if path == "" {
		return ConfigurationError{Subject: "cnf output", Cause: "no path was specified"}
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return ConfigurationError{Subject: path, Cause: "cnf output path is a directory"}
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return ConfigurationError{Subject: path, Cause: "cnf output path is not writable"}
	}
	return file.Close()
}
