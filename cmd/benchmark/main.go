package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/limaJavier/superstring/pkg/sat"
	"github.com/limaJavier/superstring/pkg/superstring"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	resultsFile = "benchmark_results.csv"
	seed        = 2024
	callTimeout = 30 * time.Second
)

type SolverType int

const (
	gophersat SolverType = iota
	gini
	kissat
	cadical
	glucose
)

type StrategyType int

const (
	binary StrategyType = iota
	linear
)

type ResultType int

const (
	solved ResultType = iota
	timeout
	failed
)

var (
	solverTypes = map[SolverType]string{
		gophersat: "gophersat",
		gini:      "gini",
		kissat:    "kissat",
		cadical:   "cadical",
		glucose:   "glucose",
	}
	strategyTypes = map[StrategyType]string{
		binary: "binary",
		linear: "linear",
	}
	resultTypes = map[ResultType]string{
		solved:  "solved",
		timeout: "timeout",
		failed:  "failed",
	}
)

type TestMetadata struct {
	Name          string
	Input         superstring.InputSet
	Strings       int
	LongestLength int
	TotalLength   int
}

type BenchmarkResult struct {
	Solver   SolverType
	Strategy StrategyType
	Test     TestMetadata
	Duration int64
	Length   int
	Result   ResultType
}

func main() {
	cnfPath := filepath.Join(os.TempDir(), "superstring_benchmark.cnf")

	tests := getTests(rand.New(rand.NewPCG(seed, seed)))
	solvers := getSolvers(cnfPath)
	results := make([]BenchmarkResult, 0, len(tests)*len(solvers)*len(strategyTypes))

	for _, test := range tests {
		for _, solverType := range sortedSolverTypes(solvers) {
			for _, strategy := range []StrategyType{binary, linear} {
				fmt.Printf("Benchmarking test \"%v\" with solver \"%v\" and strategy \"%v\"\n", test.Name, solverTypes[solverType], strategyTypes[strategy])

				duration, length, result := measure(solvers[solverType], strategy, test.Input)

				results = append(results, BenchmarkResult{
					Solver:   solverType,
					Strategy: strategy,
					Test:     test,
					Duration: duration,
					Length:   length,
					Result:   result,
				})
			}
		}
	}

	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := toCsv(file, results); err != nil {
		log.Panicf("%v", err)
	}
}

func getTests(random *rand.Rand) []TestMetadata {
	tests := make([]TestMetadata, 0)
	for _, tuple := range lo.Flatten(lo.Map([]int{5, 10, 20}, func(count int, _ int) []lo.Tuple2[int, int] {
		return lo.Map([]int{5, 10, 20}, func(maxLength int, _ int) lo.Tuple2[int, int] { return lo.T2(count, maxLength) })
	})) {
		count, maxLength := tuple.A, tuple.B
		input, err := superstring.GenerateInput(random, count, maxLength)
		if err != nil {
			log.Fatalf("cannot generate input: %v", err)
		}

		tests = append(tests, TestMetadata{
			Name:          fmt.Sprintf("n%d_m%d", count, maxLength),
			Input:         input,
			Strings:       len(input.Strings),
			LongestLength: input.LongestLength,
			TotalLength:   input.TotalLength,
		})
	}

	return tests
}

// getSolvers returns the in-process solvers plus every external solver found on the PATH
func getSolvers(cnfPath string) map[SolverType]sat.SATSolver {
	solvers := map[SolverType]sat.SATSolver{
		gophersat: sat.NewGophersatSolver(),
		gini:      sat.NewGiniSolver(),
	}

	external := map[SolverType]func() (sat.SATSolver, error){
		kissat:  func() (sat.SATSolver, error) { return sat.NewKissatSolver(sat.DefaultKissatPath, cnfPath) },
		cadical: func() (sat.SATSolver, error) { return sat.NewCadicalSolver(sat.DefaultCadicalPath, cnfPath) },
		glucose: func() (sat.SATSolver, error) { return sat.NewGlucoseSolver(sat.DefaultGlucosePath, cnfPath) },
	}
	for solverType, newSolver := range external {
		solver, err := newSolver()
		if err != nil {
			fmt.Printf("Skipping solver \"%v\": %v\n", solverTypes[solverType], err)
			continue
		}
		solvers[solverType] = solver
	}

	return solvers
}

func sortedSolverTypes(solvers map[SolverType]sat.SATSolver) []SolverType {
	types := lo.Keys(solvers)
	slices.Sort(types)
	return types
}

func measure(solver sat.SATSolver, strategy StrategyType, input superstring.InputSet) (duration int64, length int, result ResultType) {
	options := superstring.Options{Timeout: callTimeout}

	var searcher superstring.Searcher
	if strategy == linear {
		searcher = superstring.NewLinearSearcher(input, solver, options)
	} else {
		searcher = superstring.NewBinarySearcher(input, solver, options)
	}

	start := time.Now()
	superstr, err := searcher.FindMinimum(context.Background())
	duration = time.Since(start).Milliseconds()

	if errors.Is(err, sat.ErrTimeout) {
		return duration, 0, timeout
	} else if err != nil || !superstring.Verify(superstr, input) {
		return duration, 0, failed
	}
	return duration, len(superstr), solved
}

func toCsv(out io.Writer, results []BenchmarkResult) error {
	writer := csv.NewWriter(out)

	header := []string{"Solver", "Strategy", "Test", "Strings", "Longest", "Total", "Duration(ms)", "Length", "Result"}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "cannot write CSV header")
	}

	for _, result := range results {
		record := []string{
			solverTypes[result.Solver],
			strategyTypes[result.Strategy],
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Strings),
			fmt.Sprintf("%d", result.Test.LongestLength),
			fmt.Sprintf("%d", result.Test.TotalLength),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%d", result.Length),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "cannot write CSV record")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "cannot flush CSV")
}
