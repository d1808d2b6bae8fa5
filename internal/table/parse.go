package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedEntry indicates a table line that does not match the
// "LO-HI: text" or "VALUE: text" format.
var ErrMalformedEntry = errors.New("malformed table entry")

// Parse reads a table definition in text form.
//
// One entry per line, ranges first:
//
//	1-3: goblin ambush
//	4: abandoned camp
//	5-6: nothing
//
// Blank lines and lines starting with '#' are skipped. The parsed table is
// validated before being returned.
func Parse(name string, r io.Reader) (*Table, error) {
	t := &Table{Name: name}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		t.Entries = append(t.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func parseEntry(line string) (Entry, error) {
	rangeText, text, found := strings.Cut(line, ":")
	if !found {
		return Entry{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedEntry, line)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, fmt.Errorf("%w: missing text in %q", ErrMalformedEntry, line)
	}

	lo, hi, isRange := strings.Cut(strings.TrimSpace(rangeText), "-")
	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Entry{}, fmt.Errorf("%w: bad range in %q", ErrMalformedEntry, line)
	}
	max := min
	if isRange {
		max, err = strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return Entry{}, fmt.Errorf("%w: bad range in %q", ErrMalformedEntry, line)
		}
	}

	return Entry{Min: min, Max: max, Text: text}, nil
}
