package superstring

import "strings"

// Verify checks that superstring is binary and contains every input string as a contiguous substring
func Verify(superstring string, input InputSet) bool {
	if validateString(superstring) != nil {
		return false
	}
	for _, str := range input.Strings {
		if !strings.Contains(superstring, str) {
			return false
		}
	}
	return true
}
