package superstring

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/limaJavier/superstring/pkg/sat"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type solverFunc func(ctx context.Context, instance sat.SAT) (sat.SATResult, error)

func (solve solverFunc) Solve(ctx context.Context, instance sat.SAT) (sat.SATResult, error) {
	return solve(ctx, instance)
}

var (
	strategies = map[string]func(InputSet, sat.SATSolver, Options) Searcher{
		"binary": NewBinarySearcher,
		"linear": NewLinearSearcher,
	}
	backends = map[string]func() sat.SATSolver{
		"gophersat": sat.NewGophersatSolver,
		"gini":      sat.NewGiniSolver,
	}
)

func TestConcreteScenarios(t *testing.T) {
	for strategyName, strategy := range strategies {
		for backendName, backend := range backends {
			t.Run(strategyName+"/"+backendName, func(t *testing.T) {
				g := NewWithT(t)
				ctx := context.Background()

				//** Overlapping strings
				input, err := NewInputSet([]string{"01", "10", "1"})
				g.Expect(err).NotTo(HaveOccurred())
				searcher := strategy(input, backend(), Options{})

				superstring, err := searcher.FindMinimum(ctx)
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(superstring).To(HaveLen(3))
				g.Expect(superstring).To(BeElementOf("010", "101"))

				_, satisfiable, err := searcher.Decide(ctx, 2)
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(satisfiable).To(BeFalse())

				//** Strings without overlap
				input, err = NewInputSet([]string{"000", "111"})
				g.Expect(err).NotTo(HaveOccurred())
				searcher = strategy(input, backend(), Options{})

				superstring, err = searcher.FindMinimum(ctx)
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(superstring).To(BeElementOf("000111", "111000"))
			})
		}
	}
}

func TestDecideRejectsShortLengths(t *testing.T) {
	//** Arrange
	calls := 0
	solver := solverFunc(func(ctx context.Context, instance sat.SAT) (sat.SATResult, error) {
		calls++
		return sat.SATResult{Status: sat.Unsatisfiable}, nil
	})
	input, err := NewInputSet([]string{"0110", "01"})
	require.NoError(t, err)
	searcher := NewBinarySearcher(input, solver, Options{})

	for _, length := range []int{-2, 0, 1, 2, 3} {
		//** Act
		_, satisfiable, err := searcher.Decide(context.Background(), length)

		//** Assert
		var domainError DomainError
		assert.True(t, errors.As(err, &domainError), "length %d", length)
		assert.False(t, satisfiable)
	}
	assert.Zero(t, calls, "the solver must not be invoked for infeasible lengths")
}

func TestConcatenationLengthIsSatisfiable(t *testing.T) {
	solver := sat.NewGophersatSolver()

	for range 20 {
		//** Arrange
		input := randomSmallInput(t)
		searcher := NewBinarySearcher(input, solver, Options{})

		//** Act
		superstring, satisfiable, err := searcher.Decide(context.Background(), input.TotalLength)

		//** Assert
		require.NoError(t, err)
		require.True(t, satisfiable, "input %v", input.Strings)
		assert.Len(t, superstring, input.TotalLength)
		assert.True(t, Verify(superstring, input), "%v does not contain %v", superstring, input.Strings)
	}
}

func TestFindMinimumMatchesExhaustiveSearch(t *testing.T) {
	for backendName, backend := range backends {
		t.Run(backendName, func(t *testing.T) {
			solver := backend()

			for range 15 {
				//** Arrange
				input := randomSmallInput(t)
				expectedLength := bruteForceMinimum(input)

				//** Act
				binary, err1 := NewBinarySearcher(input, solver, Options{}).FindMinimum(context.Background())
				linear, err2 := NewLinearSearcher(input, solver, Options{}).FindMinimum(context.Background())

				//** Assert
				require.NoError(t, err1)
				require.NoError(t, err2)
				assert.Len(t, binary, expectedLength, "input %v", input.Strings)
				assert.Len(t, linear, expectedLength, "input %v", input.Strings)
				assert.True(t, Verify(binary, input))
				assert.True(t, Verify(linear, input))
			}
		})
	}
}

func TestSatisfiabilityIsMonotonic(t *testing.T) {
	solver := sat.NewGiniSolver()

	for range 10 {
		input := randomSmallInput(t)
		searcher := NewLinearSearcher(input, solver, Options{})

		seenSatisfiable := false
		for length := input.LongestLength; length <= input.TotalLength; length++ {
			superstring, satisfiable, err := searcher.Decide(context.Background(), length)
			require.NoError(t, err)

			if seenSatisfiable {
				assert.True(t, satisfiable, "input %v: length %d is unsatisfiable after a shorter one was satisfiable", input.Strings, length)
			}
			if satisfiable {
				seenSatisfiable = true
				assert.True(t, Verify(superstring, input))
			}
		}
		assert.True(t, seenSatisfiable)
	}
}

func TestDecodedSuperstringRoundTrip(t *testing.T) {
	solver := sat.NewGophersatSolver()

	for range 10 {
		//** Arrange
		input := randomSmallInput(t)
		superstring, err := NewBinarySearcher(input, solver, Options{}).FindMinimum(context.Background())
		require.NoError(t, err)

		//** Act
		singleton, err := NewInputSet([]string{superstring})
		require.NoError(t, err)
		decoded, satisfiable, err := NewBinarySearcher(singleton, solver, Options{}).Decide(context.Background(), len(superstring))

		//** Assert
		require.NoError(t, err)
		assert.True(t, satisfiable)
		assert.Equal(t, superstring, decoded)
	}
}

func TestSolverFailuresAbortTheSearch(t *testing.T) {
	input, err := NewInputSet([]string{"0101", "1100", "0011"})
	require.NoError(t, err)

	t.Run("Indeterminate answer", func(t *testing.T) {
		g := NewWithT(t)
		calls := 0
		solver := solverFunc(func(ctx context.Context, instance sat.SAT) (sat.SATResult, error) {
			calls++
			return sat.SATResult{}, sat.ErrIndeterminate
		})

		superstring, err := NewBinarySearcher(input, solver, Options{}).FindMinimum(context.Background())

		g.Expect(errors.Is(err, sat.ErrIndeterminate)).To(BeTrue())
		g.Expect(superstring).To(BeEmpty())
		g.Expect(calls).To(Equal(1))
	})

	t.Run("Bounded wait", func(t *testing.T) {
		g := NewWithT(t)
		solver := solverFunc(func(ctx context.Context, instance sat.SAT) (sat.SATResult, error) {
			<-ctx.Done()
			return sat.SATResult{}, sat.ErrTimeout
		})

		_, err := NewLinearSearcher(input, solver, Options{Timeout: 10 * time.Millisecond}).FindMinimum(context.Background())

		g.Expect(errors.Is(err, sat.ErrTimeout)).To(BeTrue())
	})

	t.Run("Satisfiable without model", func(t *testing.T) {
		g := NewWithT(t)
		solver := solverFunc(func(ctx context.Context, instance sat.SAT) (sat.SATResult, error) {
			return sat.SATResult{Status: sat.Satisfiable}, nil
		})

		_, satisfiable, err := NewBinarySearcher(input, solver, Options{}).Decide(context.Background(), input.TotalLength)

		g.Expect(errors.Is(err, ErrEmptyModel)).To(BeTrue())
		g.Expect(satisfiable).To(BeFalse())
	})

	t.Run("Oracle rejecting every length", func(t *testing.T) {
		g := NewWithT(t)
		solver := solverFunc(func(ctx context.Context, instance sat.SAT) (sat.SATResult, error) {
			return sat.SATResult{Status: sat.Unsatisfiable}, nil
		})

		_, err := NewBinarySearcher(input, solver, Options{}).FindMinimum(context.Background())

		g.Expect(err).To(MatchError(ErrNoSuperstring))
	})
}

func TestBinarySearchInvocations(t *testing.T) {
	//** Arrange
	input, err := NewInputSet([]string{"0000", "1111", "0101", "1010"})
	require.NoError(t, err)
	calls := 0
	gophersat := sat.NewGophersatSolver()
	solver := solverFunc(func(ctx context.Context, instance sat.SAT) (sat.SATResult, error) {
		calls++
		return gophersat.Solve(ctx, instance)
	})

	//** Act
	superstring, err := NewBinarySearcher(input, solver, Options{}).FindMinimum(context.Background())

	//** Assert
	require.NoError(t, err)
	assert.True(t, Verify(superstring, input))
	assert.LessOrEqual(t, calls, 4, "binary search over [4, 16] needs at most 4 solver calls")
}

// randomSmallInput draws at most 5 strings of at most 4 characters
func randomSmallInput(t *testing.T) InputSet {
	values := make([]string, rand.Intn(5)+1)
	for i := range values {
		values[i] = randomBinaryString(rand.Intn(4) + 1)
	}
	input, err := NewInputSet(values)
	require.NoError(t, err)
	return input
}

// bruteForceMinimum enumerates every binary string by increasing length until one contains all the input
func bruteForceMinimum(input InputSet) int {
	for length := input.LongestLength; ; length++ {
		for mask := range 1 << length {
			var builder strings.Builder
			for position := range length {
				builder.WriteByte(byte('0' + (mask>>position)&1))
			}
			if Verify(builder.String(), input) {
				return length
			}
		}
	}
}
