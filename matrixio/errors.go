// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
)

// ErrIOFormat is the umbrella sentinel for malformed or insufficient input.
// Every specific read error below matches it under errors.Is.
var ErrIOFormat = errors.New("matrixio: format error")

var (
	// ErrUnexpectedEOF is returned when the stream ends before the traversal
	// has all the lines it needs.
	ErrUnexpectedEOF = fmt.Errorf("%w: unexpected end of input", ErrIOFormat)

	// ErrEmptyLine is returned when a traversal reads a blank line.
	ErrEmptyLine = fmt.Errorf("%w: empty line", ErrIOFormat)

	// ErrTooFewTokens is returned when a line holds fewer values than needed.
	ErrTooFewTokens = fmt.Errorf("%w: too few tokens", ErrIOFormat)

	// ErrTooManyTokens is returned by ReadMatrix for ragged blocks.
	ErrTooManyTokens = fmt.Errorf("%w: too many tokens", ErrIOFormat)

	// ErrBadToken is returned when a token cannot be parsed into the element type.
	ErrBadToken = fmt.Errorf("%w: bad token", ErrIOFormat)

	// ErrLineTooLong is returned when a line exceeds the session's maximum
	// line length (see WithMaxLineLength).
	ErrLineTooLong = fmt.Errorf("%w: line too long", ErrIOFormat)

	// ErrUnknownTraversal is returned by ParseTraversal for unknown names.
	ErrUnknownTraversal = errors.New("matrixio: unknown traversal")
)

// lineErrorf tags err with the 1-based line number it was detected on.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("matrixio: line %d: %w", line, err)
}
