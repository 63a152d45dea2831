// Package input loads puzzle input files as lists of lines.
//
// Line endings (\n and \r\n) are stripped and trailing empty lines are
// dropped, so an input saved with a final newline (or several) produces the
// same list as one without. Blank lines in the middle are kept; many puzzle
// formats use them as section separators.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// maxLineBytes bounds a single line; puzzle inputs rarely exceed a few KiB.
const maxLineBytes = 1 << 20

// ErrRead wraps every failure to open or scan an input.
var ErrRead = errors.New("input: read failed")

// ReadLines reads the file at path. See ParseLines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	lines, err := ParseLines(f)
	if err != nil {
		return nil, fmt.Errorf("input: %s: %w", path, err)
	}

	return lines, nil
}

// ParseLines splits r into lines, dropping trailing empty lines.
// The result is non-nil even for empty input.
func ParseLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lines := make([]string, 0, 64)
	for sc.Scan() {
		lines = append(lines, sc.Text()) // ScanLines already drops a trailing \r
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return TrimTrailingEmpty(lines), nil
}

// TrimTrailingEmpty returns lines without its trailing empty strings.
// The returned slice shares lines' backing array.
func TrimTrailingEmpty(lines []string) []string {
	n := len(lines)
	for n > 0 && lines[n-1] == "" {
		n--
	}

	return lines[:n]
}
