package superstring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexerNumbering(t *testing.T) {
	//** Arrange
	input, err := NewInputSet([]string{"01", "10", "1"})
	require.NoError(t, err)

	//** Act
	indexer := newIndexer(input, 3)

	//** Assert
	// Positions come first, two per position
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, []int64{
		indexer.Position(0, 0), indexer.Position(0, 1),
		indexer.Position(1, 0), indexer.Position(1, 1),
		indexer.Position(2, 0), indexer.Position(2, 1),
	})
	// Then placements, strings in input order and offsets ascending
	assert.Equal(t, []int{2, 2, 3}, []int{indexer.Offsets(0), indexer.Offsets(1), indexer.Offsets(2)})
	assert.Equal(t, []int64{7, 8, 9, 10, 11, 12, 13}, []int64{
		indexer.Placement(0, 0), indexer.Placement(0, 1),
		indexer.Placement(1, 0), indexer.Placement(1, 1),
		indexer.Placement(2, 0), indexer.Placement(2, 1), indexer.Placement(2, 2),
	})
	assert.Equal(t, uint64(13), indexer.Variables())
}

func TestIndexerAttributes(t *testing.T) {
	for range 10 {
		//** Arrange
		values := make([]string, rand.Intn(6)+1)
		for i := range values {
			values[i] = randomBinaryString(rand.Intn(5) + 1)
		}
		input, err := NewInputSet(values)
		require.NoError(t, err)
		length := input.LongestLength + rand.Intn(input.TotalLength-input.LongestLength+1)

		//** Act
		indexer := newIndexer(input, length)

		//** Assert
		for str := range values {
			for offset := range indexer.Offsets(str) {
				attributeStr, attributeOffset, ok := indexer.Attributes(indexer.Placement(str, offset))
				assert.True(t, ok)
				assert.Equal(t, str, attributeStr)
				assert.Equal(t, offset, attributeOffset)
			}
		}
		for position := range length {
			_, _, ok := indexer.Attributes(indexer.Position(position, 1))
			assert.False(t, ok)
		}
		_, _, ok := indexer.Attributes(int64(indexer.Variables()) + 1)
		assert.False(t, ok)
	}
}

func randomBinaryString(length int) string {
	bytes := make([]byte, length)
	for i := range bytes {
		bytes[i] = byte('0' + rand.Intn(2))
	}
	return string(bytes)
}
