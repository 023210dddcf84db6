package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/sixdegrees/pkg/errors"
)

// separator splits the columns of every data file.
const separator = "|"

// maxLineSize bounds a single record line.
const maxLineSize = 1 << 20

// Record is one parsed line of a data file.
type Record struct {
	Key   string // first column: an actor or movie ID
	Value string // second column: a name, a title, or an actor ID
}

// ReadRecords parses pipe-delimited records from r.
//
// Each non-blank line is split at its first "|"; anything after it,
// including further separators, belongs to Value. Trailing carriage returns
// are stripped so files written on Windows parse identically.
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		key, value, ok := strings.Cut(text, separator)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "line %d: expected <id>%s<value>, got %q", line, separator, text)
		}
		records = append(records, Record{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan line %d: %w", line+1, err)
	}
	return records, nil
}

// ReadRecordsFile opens path and parses it with [ReadRecords].
// A missing file is reported with FILE_NOT_FOUND.
func ReadRecordsFile(path string) ([]Record, error) {
	if err := errors.ValidateDataPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "data file %s does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
