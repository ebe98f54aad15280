package superstring

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

const (
	MinStrings      = 2
	MaxStrings      = 99
	MinStringLength = 3
	MaxStringLength = 99
)

// GenerateInput draws count random binary strings whose lengths are uniform in [MinStringLength, maxLength]
func GenerateInput(random *rand.Rand, count, maxLength int) (InputSet, error) {
	if count < MinStrings || count > MaxStrings {
		return InputSet{}, errors.Errorf("number of strings must be between %d and %d: %d", MinStrings, MaxStrings, count)
	} else if maxLength < MinStringLength || maxLength > MaxStringLength {
		return InputSet{}, errors.Errorf("maximum length must be between %d and %d: %d", MinStringLength, MaxStringLength, maxLength)
	}

	values := make([]string, count)
	for i := range values {
		length := MinStringLength + random.IntN(maxLength-MinStringLength+1)

		var builder strings.Builder
		for range length {
			builder.WriteByte(byte('0' + random.IntN(2)))
		}
		values[i] = builder.String()
	}

	return NewInputSet(values)
}
