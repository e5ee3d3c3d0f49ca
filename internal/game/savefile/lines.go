package savefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedSave is the only error returned for save content that does not
// follow the format. Errors from the underlying reader are passed through
// unchanged so callers can tell the two apart with errors.Is.
var ErrMalformedSave = errors.New("malformed save")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedSave, fmt.Sprintf(format, args...))
}

// LineReader hands out the lines of a save file one at a time and keeps
// track of the line number for error messages.
type LineReader struct {
	scanner *bufio.Scanner
	line    int
}

// MaxLineLength is the longest line a save file may hold.
const MaxLineLength = 16 * 1024 * 1024

func NewLineReader(r io.Reader) *LineReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	return &LineReader{scanner: s}
}

// scanErr reports why scanning stopped. A line that does not fit the buffer
// is bad content, anything else came from the reader.
func (lr *LineReader) scanErr() error {
	err := lr.scanner.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		return malformed("line %d: longer than %d bytes", lr.line+1, MaxLineLength)
	}
	return err
}

// Next returns the next line without its terminator. Running out of input
// is a malformed save; a read failure is returned as is.
func (lr *LineReader) Next() (string, error) {
	if !lr.scanner.Scan() {
		if err := lr.scanErr(); err != nil {
			return "", err
		}
		return "", malformed("line %d: unexpected end of file", lr.line+1)
	}
	lr.line++
	return strings.TrimSuffix(lr.scanner.Text(), "\r"), nil
}

// Line is the number of the line most recently returned by Next.
func (lr *LineReader) Line() int {
	return lr.line
}

// ExpectEOF fails if anything other than blank lines follows.
func (lr *LineReader) ExpectEOF() error {
	for lr.scanner.Scan() {
		lr.line++
		if strings.TrimSpace(lr.scanner.Text()) != "" {
			return malformed("line %d: unexpected content after the last entry", lr.line)
		}
	}
	return lr.scanErr()
}

func (lr *LineReader) malformed(format string, args ...any) error {
	return malformed("line %d: %s", lr.line, fmt.Sprintf(format, args...))
}

// parseInt accepts an optional minus sign followed by decimal digits and
// nothing else.
func parseInt(s string) (int, bool) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// parseFloat accepts plain decimal numbers, optionally with an exponent.
// Signs other than a leading minus, NaN and infinities are rejected.
func parseFloat(s string) (float64, bool) {
	if s == "" || strings.Trim(s, "0123456789.-eE") != "" || strings.HasPrefix(s, ".") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// splitFields splits s on sep and requires exactly n fields.
func splitFields(s, sep string, n int) ([]string, bool) {
	f := strings.Split(s, sep)
	return f, len(f) == n
}

// parseHeader reads a "Name:count" line and checks the name.
func (lr *LineReader) parseHeader(name string) (int, error) {
	line, err := lr.Next()
	if err != nil {
		return 0, err
	}
	f, ok := splitFields(line, ":", 2)
	if !ok {
		return 0, lr.malformed("expected %s:<count>, got %q", name, line)
	}
	if f[0] != name {
		return 0, lr.malformed("expected %s header, got %q", name, f[0])
	}
	n, ok := parseInt(f[1])
	if !ok || n < 0 {
		return 0, lr.malformed("invalid %s count %q", name, f[1])
	}
	return n, nil
}

// parseCount reads a line holding only a non-negative count.
func (lr *LineReader) parseCount(what string) (int, error) {
	line, err := lr.Next()
	if err != nil {
		return 0, err
	}
	n, ok := parseInt(line)
	if !ok || n < 0 {
		return 0, lr.malformed("invalid number of %s %q", what, line)
	}
	return n, nil
}
