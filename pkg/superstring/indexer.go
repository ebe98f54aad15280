package superstring

import "sort"

// indexer gives a unique variable to every position bit and every string placement for a fixed target length.
// Position variables come first (two per position), then the placements of each string in input order, offsets ascending.
// A fresh indexer is built for every target length
type indexer struct {
	length     int
	stringLens []int
	firsts     []int64 // First placement variable of each string
	variables  uint64
}

func newIndexer(input InputSet, length int) indexer {
	indexer := indexer{
		length:     length,
		stringLens: make([]int, len(input.Strings)),
		firsts:     make([]int64, len(input.Strings)),
	}

	next := int64(2*length) + 1
	for i, str := range input.Strings {
		indexer.stringLens[i] = len(str)
		indexer.firsts[i] = next
		next += int64(indexer.Offsets(i))
	}
	indexer.variables = uint64(next - 1)

	return indexer
}

// positionVariable returns the variable meaning "position holds bit"
func positionVariable(position, bit int) int64 {
	return int64(2*position+bit) + 1
}

func (indexer indexer) Position(position, bit int) int64 {
	return positionVariable(position, bit)
}

// Offsets returns how many offsets fit the string entirely within the target length
func (indexer indexer) Offsets(str int) int {
	return max(indexer.length-indexer.stringLens[str]+1, 0)
}

// Placement returns the variable meaning "string str begins at offset"
func (indexer indexer) Placement(str, offset int) int64 {
	return indexer.firsts[str] + int64(offset)
}

// Attributes returns the string and offset of a placement variable, ok is false for position variables or unknown ids
func (indexer indexer) Attributes(variable int64) (str int, offset int, ok bool) {
	if variable <= int64(2*indexer.length) || uint64(variable) > indexer.variables {
		return 0, 0, false
	}
	str = sort.Search(len(indexer.firsts), func(i int) bool { return indexer.firsts[i] > variable }) - 1
	return str, int(variable - indexer.firsts[str]), true
}

// Variables returns the highest variable id of the encoding
func (indexer indexer) Variables() uint64 {
	return indexer.variables
}
