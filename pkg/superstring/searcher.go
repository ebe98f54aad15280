package superstring

import (
	"context"
	"io"
	"time"

	"github.com/limaJavier/superstring/pkg/sat"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Searcher looks for superstrings of an InputSet by asking a SAT solver one target length at a time.
// Calls are sequential: each length is encoded, solved and decoded before the next one is tried
type Searcher interface {
	// Decide returns a superstring of exactly length characters, satisfiable is false when none exists
	Decide(ctx context.Context, length int) (superstring string, satisfiable bool, err error)
	// FindMinimum returns a shortest common superstring
	FindMinimum(ctx context.Context) (string, error)
}

type Options struct {
	// Timeout bounds every solver call, zero means no bound
	Timeout time.Duration
	Logger  logrus.FieldLogger
}

type searcher struct {
	input   InputSet
	solver  sat.SATSolver
	timeout time.Duration
	logger  logrus.FieldLogger
}

func newSearcher(input InputSet, solver sat.SATSolver, options Options) searcher {
	logger := options.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	return searcher{
		input:   input,
		solver:  solver,
		timeout: options.Timeout,
		logger:  logger,
	}
}

func (searcher searcher) Decide(ctx context.Context, length int) (string, bool, error) {
	logger := searcher.logger.WithField("k", length)

	encoding, err := Encode(searcher.input, length)
	if err != nil {
		return "", false, err
	}
	logger.WithFields(logrus.Fields{
		"variables": encoding.SAT.Variables,
		"clauses":   len(encoding.SAT.Clauses),
	}).Debug("formula encoded")

	if searcher.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, searcher.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := searcher.solver.Solve(ctx, encoding.SAT)
	if err != nil {
		return "", false, errors.Wrapf(err, "cannot decide length %d", length)
	}
	logger.WithFields(logrus.Fields{
		"status":  result.Status,
		"elapsed": time.Since(start),
	}).Debug("solver finished")

	if !result.Satisfiable() {
		return "", false, nil
	}

	superstring, err := Decode(result.Solution, length)
	if err != nil {
		return "", false, errors.Wrapf(err, "cannot decode model for length %d", length)
	}
	logger.WithField("placements", encoding.Placements(result.Solution)).Debugf("decoded %v", superstring)

	return superstring, true, nil
}

type binarySearcher struct {
	searcher
}

// NewBinarySearcher finds the minimum length by binary search over [longest length, total length],
// relying on satisfiability being monotonic in the length
func NewBinarySearcher(input InputSet, solver sat.SATSolver, options Options) Searcher {
	return &binarySearcher{searcher: newSearcher(input, solver, options)}
}

func (searcher *binarySearcher) FindMinimum(ctx context.Context) (string, error) {
	low, high := searcher.input.LongestLength, searcher.input.TotalLength

	best := ""
	for low <= high {
		middle := (low + high) / 2
		searcher.logger.WithFields(logrus.Fields{"low": low, "high": high}).Debugf("trying length %d", middle)

		superstring, satisfiable, err := searcher.Decide(ctx, middle)
		if err != nil {
			return "", err
		}

		if satisfiable {
			best = superstring
			high = middle - 1 // Search for something shorter
		} else {
			low = middle + 1
		}
	}

	if best == "" {
		return "", ErrNoSuperstring
	}
	return best, nil
}

type linearSearcher struct {
	searcher
}

// NewLinearSearcher tries every length from the longest string's upwards and stops at the first satisfiable one
func NewLinearSearcher(input InputSet, solver sat.SATSolver, options Options) Searcher {
	return &linearSearcher{searcher: newSearcher(input, solver, options)}
}

func (searcher *linearSearcher) FindMinimum(ctx context.Context) (string, error) {
	for length := searcher.input.LongestLength; length <= searcher.input.TotalLength; length++ {
		searcher.logger.Debugf("trying length %d", length)

		superstring, satisfiable, err := searcher.Decide(ctx, length)
		if err != nil {
			return "", err
		} else if satisfiable {
			return superstring, nil
		}
	}

	return "", ErrNoSuperstring
}
