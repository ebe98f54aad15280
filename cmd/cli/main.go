package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/superstring/pkg/sat"
	"github.com/limaJavier/superstring/pkg/superstring"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit-codes follow the SAT-competition convention
const (
	foundExitCode         = 10
	unsatisfiableExitCode = 20
	verificationExitCode  = 15
)

var (
	validBackends   = []string{"glucose", "kissat", "cadical", "gophersat", "gini"}
	validStrategies = []string{"binary", "linear"}
	searchers       = map[string]func(superstring.InputSet, sat.SATSolver, superstring.Options) superstring.Searcher{
		"binary": superstring.NewBinarySearcher,
		"linear": superstring.NewLinearSearcher,
	}
)

type options struct {
	output     string
	solverPath string
	input      string
	config     string
	backend    string
	strategy   string
	length     int
	fixed      bool
	timeout    time.Duration
	verify     bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatalf("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:   "scs",
		Short: "Finds a shortest common superstring of binary strings with a SAT solver",
		Long: `Finds a shortest common superstring of the binary strings listed (one per line) in the input file.
Each candidate length k is encoded as a CNF formula and decided by a SAT solver; without -k the
minimum feasible length is searched for. Exit-code 10 means a superstring was found, 20 that no
superstring of the requested length exists and 15 that the returned superstring failed verification.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			o.fixed = cmd.Flags().Changed("length")
			return o.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.New()
			if o.verbose {
				logger.SetLevel(logrus.DebugLevel)
			}

			exitCode, err := o.run(cmd.Context(), cmd.OutOrStdout(), logger)
			if err != nil {
				return err
			}
			os.Exit(exitCode)
			return nil
		},
	}

	cmd.Flags().StringVarP(&o.output, "output", "o", "formula.cnf", "output file for the CNF formula in DIMACS format, overwritten for every k")
	cmd.Flags().StringVarP(&o.solverPath, "solver", "s", "", fmt.Sprintf("path to the SAT solver executable; defaults to the config file entry, then to %q, %q or %q", sat.DefaultGlucosePath, sat.DefaultKissatPath, sat.DefaultCadicalPath))
	cmd.Flags().StringVarP(&o.input, "input", "i", "input.txt", "input file with the binary strings separated by newline")
	cmd.Flags().IntVarP(&o.length, "length", "k", 0, "decide whether a superstring of exactly this length exists instead of searching for the minimum")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "log every solver invocation")
	cmd.Flags().StringVar(&o.config, "config", "", "JSON file with solver paths (glucosePath, kissatPath, cadicalPath); defaults to config.json next to the executable")
	cmd.Flags().StringVar(&o.backend, "backend", "glucose", fmt.Sprintf("SAT solver backend, one of %v", strings.Join(validBackends, ", ")))
	cmd.Flags().StringVar(&o.strategy, "strategy", "binary", fmt.Sprintf("search strategy for the minimum length, one of %v", strings.Join(validStrategies, ", ")))
	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "time limit for every solver call, 0 means no limit")
	cmd.Flags().BoolVar(&o.verify, "verify", true, "check that the superstring contains every input string before reporting it")

	return cmd
}

func (o *options) validate() error {
	o.backend = strings.ToLower(o.backend)
	o.strategy = strings.ToLower(o.strategy)

	if !slices.Contains(validBackends, o.backend) {
		return errors.Errorf("%v is not a valid backend", o.backend)
	} else if !slices.Contains(validStrategies, o.strategy) {
		return errors.Errorf("%v is not a valid strategy", o.strategy)
	} else if o.fixed && o.length <= 0 {
		return superstring.DomainError{Length: o.length}
	} else if o.timeout < 0 {
		return errors.Errorf("timeout must not be negative: %v", o.timeout)
	}
	return nil
}

func (o *options) run(ctx context.Context, out io.Writer, logger *logrus.Logger) (int, error) {
	// Configuration problems surface before anything is encoded
	input, err := superstring.InputFromFile(o.input)
	if err != nil {
		return 0, errors.Wrap(err, "cannot load input")
	}
	solver, err := o.newSolver()
	if err != nil {
		return 0, errors.Wrap(err, "cannot initialize solver")
	}

	logger.WithFields(logrus.Fields{
		"strings": len(input.Strings),
		"longest": input.LongestLength,
		"total":   input.TotalLength,
		"backend": o.backend,
	}).Info("input loaded")

	searcher := searchers[o.strategy](input, solver, superstring.Options{
		Timeout: o.timeout,
		Logger:  logger,
	})

	var result string
	if o.fixed {
		var satisfiable bool
		result, satisfiable, err = searcher.Decide(ctx, o.length)
		if err != nil {
			return 0, err
		} else if !satisfiable {
			fmt.Fprintf(out, "No superstring of length %d exists\n", o.length)
			return unsatisfiableExitCode, nil
		}
	} else {
		result, err = searcher.FindMinimum(ctx)
		if err != nil {
			return 0, err
		}
	}

	if o.verify && !superstring.Verify(result, input) {
		logger.Errorf("superstring %v does not contain every input string", result)
		return verificationExitCode, nil
	}

	fmt.Fprintln(out, result)
	fmt.Fprintf(out, "Length: %d\n", len(result))
	return foundExitCode, nil
}

func (o *options) newSolver() (sat.SATSolver, error) {
	configPath, optional := o.config, false
	if configPath == "" {
		configPath, optional = sat.DefaultConfigPath(), true
	}
	config, err := sat.LoadConfig(configPath, optional)
	if err != nil {
		return nil, err
	}

	executable := func(configured, fallback string) string {
		path, _ := lo.Coalesce(o.solverPath, configured, fallback)
		return path
	}

	switch o.backend {
	case "kissat":
		return sat.NewKissatSolver(executable(config.KissatPath, sat.DefaultKissatPath), o.output)
	case "cadical":
		return sat.NewCadicalSolver(executable(config.CadicalPath, sat.DefaultCadicalPath), o.output)
	case "gophersat":
		return sat.WithDIMACSDump(sat.NewGophersatSolver(), o.output)
	case "gini":
		return sat.WithDIMACSDump(sat.NewGiniSolver(), o.output)
	default:
		return sat.NewGlucoseSolver(executable(config.GlucosePath, sat.DefaultGlucosePath), o.output)
	}
}
