package superstring

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// InputSet is the ordered, immutable collection of binary strings a superstring must contain.
// The order of Strings is significant: it drives variable numbering
type InputSet struct {
	Strings       []string
	LongestLength int
	TotalLength   int
}

func NewInputSet(values []string) (InputSet, error) {
	if len(values) == 0 {
		return InputSet{}, ValidationError{Cause: "at least one string is required"}
	}

	for i, str := range values {
		if err := validateString(str); err != nil {
			return InputSet{}, ValidationError{Line: i + 1, Content: str, Cause: err.Error()}
		}
	}

	lengths := lo.Map(values, func(str string, _ int) int { return len(str) })
	return InputSet{
		Strings:       append([]string(nil), values...),
		LongestLength: lo.Max(lengths),
		TotalLength:   lo.Sum(lengths),
	}, nil
}

// InputFromReader reads one string per line. Surrounding whitespace is trimmed and blank lines are skipped
func InputFromReader(reader io.Reader) (InputSet, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(reader)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := validateString(line); err != nil {
			return InputSet{}, ValidationError{Line: lineNumber, Content: line, Cause: err.Error()}
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return InputSet{}, errors.Wrap(err, "cannot read input")
	}

	return NewInputSet(lines)
}

// InputFromFile loads the strings stored at path. Access problems and empty files are configuration errors
func InputFromFile(path string) (InputSet, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return InputSet{}, ConfigurationError{Path: path, Cause: "file does not exist"}
	} else if err != nil {
		return InputSet{}, ConfigurationError{Path: path, Cause: err.Error()}
	} else if info.IsDir() {
		return InputSet{}, ConfigurationError{Path: path, Cause: "path is a directory"}
	}

	file, err := os.Open(path)
	if err != nil {
		return InputSet{}, ConfigurationError{Path: path, Cause: "file cannot be read: " + err.Error()}
	}
	defer file.Close()

	input, err := InputFromReader(file)
	var validationError ValidationError
	if errors.As(err, &validationError) && validationError.Line == 0 {
		return InputSet{}, ConfigurationError{Path: path, Cause: "file contains no strings"}
	}
	return input, err
}

// WriteInput writes the strings of input to path, one per line
func WriteInput(path string, input InputSet) error {
	content := strings.Join(input.Strings, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		return errors.Wrapf(err, "cannot write input file %q", path)
	}
	return nil
}

func validateString(str string) error {
	if str == "" {
		return errors.New("string is empty")
	}
	if index := strings.IndexFunc(str, func(char rune) bool { return char != '0' && char != '1' }); index >= 0 {
		char, _ := utf8.DecodeRuneInString(str[index:])
		return errors.Errorf("character %q at offset %d is not a binary digit", char, index)
	}
	return nil
}
