package superstring

import (
	"strings"

	"github.com/limaJavier/superstring/pkg/sat"
	"github.com/samber/lo"
)

// Decode reads the superstring of the given length out of a satisfying solution.
// Only the position variables are consulted, so the numbering of placements does not matter
func Decode(solution sat.SATSolution, length int) (string, error) {
	if len(solution) == 0 {
		return "", ErrEmptyModel
	}

	// Acknowledge only positive literals, absent variables are not assumed false
	trueVariables := lo.SliceToMap(
		lo.Filter(solution, func(literal int64, _ int) bool { return literal > 0 }),
		func(literal int64) (int64, bool) { return literal, true },
	)

	var builder strings.Builder
	builder.Grow(length)
	for position := range length {
		zero, one := trueVariables[positionVariable(position, 0)], trueVariables[positionVariable(position, 1)]
		switch {
		case zero && one:
			return "", ModelError{Position: position, Cause: "both bits are true"}
		case zero:
			builder.WriteByte('0')
		case one:
			builder.WriteByte('1')
		default:
			return "", ModelError{Position: position, Cause: "no bit is true"}
		}
	}

	return builder.String(), nil
}
