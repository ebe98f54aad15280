package superstring

import (
	"github.com/limaJavier/superstring/pkg/sat"
	"golang.org/x/sync/errgroup"
)

// Encoding is the formula stating that a superstring of Length characters contains every input string.
// It carries the variable numbering it was built with, which is only valid for this Length
type Encoding struct {
	SAT     sat.SAT
	Length  int
	indexer indexer
}

// Encode builds the formula for a superstring of exactly length characters.
// The same input and length always produce the same clauses in the same order
func Encode(input InputSet, length int) (Encoding, error) {
	if length <= 0 || length < input.LongestLength {
		return Encoding{}, DomainError{Length: length, LongestLength: input.LongestLength}
	}

	indexer := newIndexer(input, length)

	// Constraints functions, their clauses are concatenated in this order
	constraints := []func(state constraintState) [][]int64{
		positionConstraints,
		placementConstraints,
		matchingConstraints,
	}

	state := constraintState{
		input:   input,
		indexer: indexer,
		length:  length,
	}

	return Encoding{
		SAT:     buildSat(indexer.Variables(), constraints, state),
		Length:  length,
		indexer: indexer,
	}, nil
}

// Placements returns, for every input string, the offset the solution places it at (-1 if none)
func (encoding Encoding) Placements(solution sat.SATSolution) []int {
	placements := make([]int, len(encoding.indexer.firsts))
	for i := range placements {
		placements[i] = -1
	}

	for _, variable := range solution {
		if str, offset, ok := encoding.indexer.Attributes(variable); ok {
			placements[str] = offset
		}
	}
	return placements
}

func buildSat(variables uint64, constraints []func(state constraintState) [][]int64, state constraintState) sat.SAT {
	// Execute constraints functions on different goroutines, each one fills its own slot to keep the order stable
	collected := make([][][]int64, len(constraints))
	var group errgroup.Group
	for i, constraint := range constraints {
		group.Go(func() error {
			collected[i] = constraint(state)
			return nil
		})
	}
	_ = group.Wait() // Constraints functions never fail

	satInstance := sat.SAT{
		Variables: variables,
		Clauses:   make([][]int64, 0),
	}
	for _, clauses := range collected {
		satInstance.Clauses = append(satInstance.Clauses, clauses...)
	}
	return satInstance
}
