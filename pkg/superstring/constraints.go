package superstring

type constraintState struct {
	input   InputSet
	indexer indexer
	length  int
}

// Every position holds exactly one of the two bits
func positionConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0, 2*state.length)

	for position := range state.length {
		zero, one := state.indexer.Position(position, 0), state.indexer.Position(position, 1)
		clauses = append(clauses,
			[]int64{zero, one},
			[]int64{-zero, -one},
		)
	}

	return clauses
}

// Every string begins at exactly one offset: one clause over all its placements, then one clause per pair of placements
func placementConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)

	for str := range state.input.Strings {
		offsets := state.indexer.Offsets(str)

		atLeastOne := make([]int64, 0, offsets)
		for offset := range offsets {
			atLeastOne = append(atLeastOne, state.indexer.Placement(str, offset))
		}
		clauses = append(clauses, atLeastOne)

		for offset1 := range offsets - 1 {
			for offset2 := offset1 + 1; offset2 < offsets; offset2++ {
				clauses = append(clauses, []int64{
					-state.indexer.Placement(str, offset1),
					-state.indexer.Placement(str, offset2),
				})
			}
		}
	}

	return clauses
}

// Placing a string at an offset forbids, at every covered position, the bit that contradicts the string's character
func matchingConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)

	for str, value := range state.input.Strings {
		for offset := range state.indexer.Offsets(str) {
			placement := state.indexer.Placement(str, offset)

			for char := range len(value) {
				// '0' forbids the "1" variable and '1' forbids the "0" variable
				forbidden := 1
				if value[char] == '1' {
					forbidden = 0
				}
				clauses = append(clauses, []int64{-placement, -state.indexer.Position(offset+char, forbidden)})
			}
		}
	}

	return clauses
}
