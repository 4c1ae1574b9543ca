// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Parser converts one token into an element value.
type Parser[T any] func(token string) (T, error)

// ScanParser returns a Parser backed by fmt.Fscan, which handles every
// numeric kind, bool and string. The whole token must be consumed, so "1.5"
// is rejected for integer T.
func ScanParser[T any]() Parser[T] {
	return func(token string) (T, error) {
		var v T
		r := strings.NewReader(token)
		if _, err := fmt.Fscan(r, &v); err != nil {
			return v, err
		}
		if r.Len() > 0 {
			return v, fmt.Errorf("trailing %q", token[len(token)-r.Len():])
		}

		return v, nil
	}
}

// ReadSession reads matrices from a seekable text stream line by line.
//
// The session keeps its own position: Line reports how many lines were
// consumed so far, and each read continues after the last consumed line.
// A failed read still consumes the lines it looked at. Reset rewinds to the
// offset the session started at. A ReadSession is not safe for concurrent use.
type ReadSession[T any] struct {
	src     io.ReadSeeker
	sc      *bufio.Scanner
	parse   Parser[T]
	origin  int64
	maxLine int
	line    int
	token   int
}

// NewReadSession starts a session at the current position of src. A nil p
// selects ScanParser.
func NewReadSession[T any](src io.ReadSeeker, p Parser[T], opts ...SessionOption) *ReadSession[T] {
	if p == nil {
		p = ScanParser[T]()
	}
	o := gatherSessionOptions(opts...)

	// Streams that cannot report their offset start at 0.
	origin, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		origin = 0
	}

	s := &ReadSession[T]{src: src, parse: p, origin: origin, maxLine: o.maxLine}
	s.sc = s.newScanner()

	return s
}

func (s *ReadSession[T]) newScanner() *bufio.Scanner {
	sc := bufio.NewScanner(s.src)
	sc.Buffer(make([]byte, 0, min(initialLineBuffer, s.maxLine)), s.maxLine)

	return sc
}

// Line returns the number of lines consumed since the session started or
// was last reset.
func (s *ReadSession[T]) Line() int { return s.line }

// Token returns how many tokens of the last consumed line were used.
func (s *ReadSession[T]) Token() int { return s.token }

// Reset rewinds the underlying stream to the offset the session started at
// and clears the position.
func (s *ReadSession[T]) Reset() error {
	if _, err := s.src.Seek(s.origin, io.SeekStart); err != nil {
		return fmt.Errorf("matrixio: Reset: %w", err)
	}
	s.sc = s.newScanner()
	s.line, s.token = 0, 0

	return nil
}

// next consumes one line and returns its tokens. ok is false at end of input.
func (s *ReadSession[T]) next() (tokens []string, ok bool, err error) {
	if !s.sc.Scan() {
		err = s.sc.Err()
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, false, lineErrorf(s.line+1, fmt.Errorf("longer than %d bytes: %w", s.maxLine, ErrLineTooLong))
		}
		if err != nil {
			return nil, false, fmt.Errorf("matrixio: line %d: %w", s.line+1, err)
		}
		return nil, false, nil
	}
	s.line++
	s.token = 0

	return splitTokens(s.sc.Text()), true, nil
}

// ReadInto fills the cells selected by t from the next lines of the stream.
// Tokens beyond the ones a line needs are ignored.
// Errors: matrix.ErrNilMatrix, matrix.ErrIndexOutOfRange for Row/Column
// indices outside m, ErrUnexpectedEOF, ErrEmptyLine, ErrTooFewTokens,
// ErrBadToken and ErrLineTooLong (all wrapped with the line number). On error m is unchanged.
func (s *ReadSession[T]) ReadInto(m *matrix.Matrix[T], t Traversal) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matrixio: ReadInto: %w", err)
	}
	plan, err := t.lines(m)
	if err != nil {
		return fmt.Errorf("matrixio: ReadInto %v: %w", t, err)
	}

	vals := make([][]T, len(plan))
	for i, cells := range plan {
		tokens, ok, err := s.next()
		if err != nil {
			return err
		}
		if !ok {
			return lineErrorf(s.line+1, fmt.Errorf("%v needs %d lines, got %d: %w", t, len(plan), i, ErrUnexpectedEOF))
		}
		if len(tokens) == 0 {
			return lineErrorf(s.line, ErrEmptyLine)
		}
		if len(tokens) < len(cells) {
			return lineErrorf(s.line, fmt.Errorf("have %d, want %d: %w", len(tokens), len(cells), ErrTooFewTokens))
		}
		if vals[i], err = s.parseLine(tokens[:len(cells)]); err != nil {
			return err
		}
	}

	for i, cells := range plan {
		for k, c := range cells {
			if err = m.Set(c.r, c.c, vals[i][k]); err != nil {
				return fmt.Errorf("matrixio: ReadInto: %w", err)
			}
		}
	}

	return nil
}

// ReadMatrix reads the next block of non-blank lines into a new matrix, one
// row per line. Leading blank lines are skipped; the block ends at a blank
// line (consumed) or at end of input. Every row must have as many tokens as
// the first.
// Errors: ErrUnexpectedEOF when no block remains, ErrTooFewTokens,
// ErrTooManyTokens, ErrBadToken, ErrLineTooLong.
func (s *ReadSession[T]) ReadMatrix(opts ...matrix.Option) (*matrix.Matrix[T], error) {
	var rows [][]T
	for {
		tokens, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if len(tokens) == 0 {
			if rows == nil {
				continue
			}
			break
		}
		if rows != nil {
			if want := len(rows[0]); len(tokens) < want {
				return nil, lineErrorf(s.line, fmt.Errorf("have %d, want %d: %w", len(tokens), want, ErrTooFewTokens))
			} else if len(tokens) > want {
				return nil, lineErrorf(s.line, fmt.Errorf("have %d, want %d: %w", len(tokens), want, ErrTooManyTokens))
			}
		}
		row, err := s.parseLine(tokens)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if rows == nil {
		return nil, lineErrorf(s.line+1, fmt.Errorf("no matrix block: %w", ErrUnexpectedEOF))
	}

	return matrix.NewFromRows(rows, opts...)
}

// parseLine converts tokens of the current line.
func (s *ReadSession[T]) parseLine(tokens []string) ([]T, error) {
	out := make([]T, len(tokens))
	for k, tok := range tokens {
		v, err := s.parse(tok)
		if err != nil {
			return nil, lineErrorf(s.line, fmt.Errorf("token %d %q: %w (%v)", k+1, tok, ErrBadToken, err))
		}
		out[k] = v
		s.token = k + 1
	}

	return out, nil
}

// splitTokens splits on whitespace and commas.
func splitTokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}
