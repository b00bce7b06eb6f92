// SPDX-License-Identifier: MIT

// Package mtx: coordinate triplet reader implementation.

package mtx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// commentPrefix marks a skipped comment line in the Matrix Market layout.
const commentPrefix = "%"

// Entry is one nonzero coordinate record: 0-based row and column plus the
// stored value. Entries are immutable once produced by the reader.
type Entry struct {
	Row   int     // 0-based row index, >= 0
	Col   int     // 0-based column index, >= 0
	Value float64 // stored nonzero value
}

// ReadFile opens path and delegates to Read.
//
// Returns:
//   - []Entry: 0-based entries sorted ascending by (Row, Col).
//   - error:   ErrFileAccess if the file cannot be opened; otherwise any
//     error produced by Read.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrFileAccess, path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a coordinate triplet stream.
//
// Stages:
//  1. Skip '%' comment lines; the first remaining line is the header.
//  2. Parse and validate "rows cols nnz" (all positive).
//  3. Parse "row col value" triplets, converting 1-based to 0-based.
//  4. Sort entries ascending by (row, col).
//
// A valid header followed by no triplets returns an empty slice and a nil
// error; the emptiness is rejected at the CSR build boundary.
//
// Complexity: O(nnz log nnz) time, O(nnz) space.
func Read(r io.Reader) ([]Entry, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header, lineNo, err := headerLine(sc)
	if err != nil {
		return nil, err
	}

	rows, cols, nnz, err := parseHeader(header, lineNo)
	if err != nil {
		return nil, err
	}
	_ = rows // header dimensions are advisory; actual shape derives from entries
	_ = cols

	entries := make([]Entry, 0, nnz)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		e, perr := parseTriplet(line, lineNo)
		if perr != nil {
			return nil, perr
		}
		entries = append(entries, e)
	}
	if serr := sc.Err(); serr != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, serr)
	}

	// Row-major order is the CSR builder's precondition; establish it here.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Row == entries[j].Row {
			return entries[i].Col < entries[j].Col
		}

		return entries[i].Row < entries[j].Row
	})

	return entries, nil
}

// headerLine advances the scanner past comments and returns the first
// payload line together with its 1-based line number.
func headerLine(sc *bufio.Scanner) (string, int, error) {
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		return line, lineNo, nil
	}
	if err := sc.Err(); err != nil {
		return "", lineNo, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}

	return "", lineNo, fmt.Errorf("%w: missing dimension line", ErrBadFormat)
}

// parseHeader validates the "rows cols nnz" dimension line.
func parseHeader(line string, lineNo int) (rows, cols, nnz int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: line %d: want \"rows cols nnz\", got %q", ErrBadFormat, lineNo, line)
	}

	dims := make([]int, 3)
	for i, f := range fields {
		v, convErr := strconv.Atoi(f)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: line %d: non-integer dimension %q", ErrBadFormat, lineNo, f)
		}
		dims[i] = v
	}

	rows, cols, nnz = dims[0], dims[1], dims[2]
	if rows <= 0 || cols <= 0 || nnz <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: line %d: %d×%d nnz=%d", ErrInvalidDimensions, lineNo, rows, cols, nnz)
	}

	return rows, cols, nnz, nil
}

// parseTriplet parses one "row col value" line, converting the 1-based
// indices to 0-based.
func parseTriplet(line string, lineNo int) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Entry{}, fmt.Errorf("%w: line %d: want \"row col value\", got %q", ErrBadFormat, lineNo, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: line %d: non-integer row %q", ErrBadFormat, lineNo, fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: line %d: non-integer col %q", ErrBadFormat, lineNo, fields[1])
	}
	value, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: line %d: non-numeric value %q", ErrBadFormat, lineNo, fields[2])
	}

	if row < 1 || col < 1 {
		return Entry{}, fmt.Errorf("%w: line %d: indices are 1-based, got (%d,%d)", ErrBadFormat, lineNo, row, col)
	}

	return Entry{Row: row - 1, Col: col - 1, Value: value}, nil
}
