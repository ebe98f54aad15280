package sat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SATSolution holds the signed literals of an assignment: a positive literal is a true variable
type SATSolution []int64

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// WriteDIMACS overwrites the file at path with the DIMACS-CNF representation of s
func (s SAT) WriteDIMACS(path string) error {
	if err := os.WriteFile(path, []byte(s.ToDIMACS()), 0666); err != nil {
		return errors.Wrapf(err, "cannot write DIMACS file %q", path)
	}
	return nil
}

// Satisfies reports whether solution is a consistent assignment satisfying every clause of s
func (s SAT) Satisfies(solution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range solution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range s.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}

// ParseDIMACS reads a DIMACS-CNF formula. Comment lines and a trailing "%" section are ignored
func ParseDIMACS(reader io.Reader) (SAT, error) {
	var sat SAT
	seenHeader := false
	clause := make([]int64, 0)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if line == "%" {
			break
		}
		// Problem line
		if strings.HasPrefix(line, "p") {
			if seenHeader {
				return SAT{}, errors.Errorf("line %d: duplicate problem line", lineNumber)
			}
			parts := strings.Fields(line)
			if len(parts) != 4 || parts[1] != "cnf" {
				return SAT{}, errors.Errorf("line %d: invalid problem line: %s", lineNumber, line)
			}
			variables, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return SAT{}, errors.Wrapf(err, "line %d: invalid variable count", lineNumber)
			}
			if _, err := strconv.ParseUint(parts[3], 10, 64); err != nil {
				return SAT{}, errors.Wrapf(err, "line %d: invalid clause count", lineNumber)
			}
			sat.Variables = variables
			seenHeader = true
			continue
		}
		if !seenHeader {
			return SAT{}, errors.Errorf("line %d: clause appears before the problem line", lineNumber)
		}

		// Clause line, a clause may span several lines and ends with 0
		for _, literalStr := range strings.Fields(line) {
			literal, err := strconv.ParseInt(literalStr, 10, 64)
			if err != nil {
				return SAT{}, errors.Wrapf(err, "line %d: invalid literal %q", lineNumber, literalStr)
			}
			if literal == 0 {
				sat.Clauses = append(sat.Clauses, clause)
				clause = make([]int64, 0)
				continue
			}
			if uint64(max(literal, -literal)) > sat.Variables {
				return SAT{}, errors.Errorf("line %d: literal %d out of range 1..%d", lineNumber, literal, sat.Variables)
			}
			clause = append(clause, literal)
		}
	}

	if err := scanner.Err(); err != nil {
		return SAT{}, errors.Wrap(err, "error reading DIMACS input")
	}
	if !seenHeader {
		return SAT{}, errors.New("missing \"p cnf\" problem line")
	}
	if len(clause) > 0 {
		return SAT{}, errors.New("last clause is missing its terminating 0")
	}

	return sat, nil
}

// ParseDIMACSFile reads the DIMACS-CNF formula stored at path
func ParseDIMACSFile(path string) (SAT, error) {
	file, err := os.Open(path)
	if err != nil {
		return SAT{}, errors.Wrap(err, "could not open file")
	}
	defer file.Close()

	return ParseDIMACS(file)
}
