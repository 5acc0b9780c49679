// Package adapter contains the input, output and storage adapters used by the codeseq CLI.
package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

// ErrMalformedRecord marks an input record that does not follow "<action> <digits>".
var ErrMalformedRecord = errors.New("malformed record")

// RecordError describes why a single record was rejected.
type RecordError struct {
	Record int // 1-based record position
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Record, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedRecord.
func (e *RecordError) Unwrap() error {
	return ErrMalformedRecord
}

// RecordReader yields validated queries one at a time.
// Next returns io.EOF once the input holds nothing but whitespace.
type RecordReader interface {
	Next() (m.Query, error)
}

// TextRecordReader parses the line protocol "<action> <digits>" where action is
// '#' (count) or '?' (list). Whitespace, newlines included, may separate the
// action from the digits; anything after the digits up to the end of the line
// must be whitespace.
type TextRecordReader struct {
	br    *bufio.Reader
	index int
}

// NewRecordReader wraps r in a TextRecordReader.
func NewRecordReader(r io.Reader) *TextRecordReader {
	return &TextRecordReader{br: bufio.NewReader(r)}
}

// Next reads the following record. A malformed record returns a *RecordError and
// leaves the reader at the start of the next line so reading can continue.
func (r *TextRecordReader) Next() (m.Query, error) {
	if err := r.skipSpace(); err != nil {
		return m.Query{}, err
	}

	action, err := r.br.ReadByte()
	if err != nil {
		return m.Query{}, r.readErr(err)
	}

	r.index++

	if err := r.skipSpace(); err != nil {
		if errors.Is(err, io.EOF) {
			return m.Query{}, r.malformed("missing digits")
		}

		return m.Query{}, err
	}

	token, err := r.readToken()
	if err != nil {
		return m.Query{}, err
	}

	query, err := NewQuery(r.index, m.Action(action), token)
	if err != nil {
		if discardErr := r.discardLine(); discardErr != nil {
			return m.Query{}, discardErr
		}

		return m.Query{}, err
	}

	clean, err := r.restOfLineBlank()
	if err != nil {
		return m.Query{}, err
	}

	if !clean {
		return m.Query{}, r.malformedLine("trailing characters after digits")
	}

	return query, nil
}

// NewQuery validates one record. The digits must be non-empty and contain only '0'..'9'.
func NewQuery(index int, action m.Action, digits string) (m.Query, error) {
	if !action.Valid() {
		return m.Query{}, &RecordError{Record: index, Reason: fmt.Sprintf("unknown action %q", byte(action))}
	}

	if digits == "" {
		return m.Query{}, &RecordError{Record: index, Reason: "missing digits"}
	}

	if i := indexNonDigit(digits); i >= 0 {
		return m.Query{}, &RecordError{Record: index, Reason: fmt.Sprintf("non-digit %q in %q", digits[i], digits)}
	}

	return m.Query{Index: index, Action: action, Digits: m.Digits(digits)}, nil
}

func (r *TextRecordReader) malformed(reason string) error {
	return &RecordError{Record: r.index, Reason: reason}
}

// malformedLine reports the record and skips the rest of its line.
func (r *TextRecordReader) malformedLine(reason string) error {
	if err := r.discardLine(); err != nil {
		return err
	}

	return r.malformed(reason)
}

func (r *TextRecordReader) readErr(err error) error {
	if errors.Is(err, io.EOF) {
		return io.EOF
	}

	return fmt.Errorf("failed to read input: %w", err)
}

func (r *TextRecordReader) skipSpace() error {
	for {
		b, err := r.br.ReadByte()
		if err != nil {
			return r.readErr(err)
		}

		if !isSpace(b) {
			return r.br.UnreadByte()
		}
	}
}

// readToken reads up to the next whitespace byte, which stays unread.
func (r *TextRecordReader) readToken() (string, error) {
	var token []byte

	for {
		b, err := r.br.ReadByte()
		if errors.Is(err, io.EOF) {
			return string(token), nil
		}

		if err != nil {
			return "", r.readErr(err)
		}

		if isSpace(b) {
			return string(token), r.br.UnreadByte()
		}

		token = append(token, b)
	}
}

// restOfLineBlank consumes the remainder of the current line and reports whether
// it held only whitespace. Reading stops at the first offending byte.
func (r *TextRecordReader) restOfLineBlank() (bool, error) {
	for {
		b, err := r.br.ReadByte()
		if errors.Is(err, io.EOF) {
			return true, nil
		}

		if err != nil {
			return false, r.readErr(err)
		}

		if b == '\n' {
			return true, nil
		}

		if !isSpace(b) {
			return false, nil
		}
	}
}

func (r *TextRecordReader) discardLine() error {
	_, err := r.br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return r.readErr(err)
	}

	return nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

func indexNonDigit(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return i
		}
	}

	return -1
}
