// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Write emits the cells selected by t as text lines.
// Errors: matrix.ErrNilMatrix, matrix.ErrIndexOutOfRange for Row/Column
// indices outside m, and any error returned by w.
func Write[T any](w io.Writer, m *matrix.Matrix[T], t Traversal, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matrixio: Write: %w", err)
	}
	lines, err := collect(m, t)
	if err != nil {
		return fmt.Errorf("matrixio: Write %v: %w", t, err)
	}
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		for k, v := range line {
			if k > 0 {
				bw.WriteString(o.separator)
			}
			bw.WriteString(FormatValue(v, o.precision))
		}
		bw.WriteString(o.terminator)
	}

	return bw.Flush()
}

// Format is Write into a string.
func Format[T any](m *matrix.Matrix[T], t Traversal, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Write(&b, m, t, opts...); err != nil {
		return "", err
	}

	return b.String(), nil
}

// collect gathers the values of every line. Rows, columns and the main
// diagonal are read through iterator ranges; the other traversals read the
// planned cells directly.
func collect[T any](m *matrix.Matrix[T], t Traversal) ([][]T, error) {
	plan, err := t.lines(m)
	if err != nil {
		return nil, err
	}
	if m.IsEmpty() {
		return nil, nil
	}

	switch tt := t.(type) {
	case FullByRow:
		out := make([][]T, m.Rows())
		for i := range out {
			if out[i], err = rowValues(m, i); err != nil {
				return nil, err
			}
		}
		return out, nil
	case FullByColumn:
		out := make([][]T, m.Cols())
		for j := range out {
			if out[j], err = columnValues(m, j); err != nil {
				return nil, err
			}
		}
		return out, nil
	case Row:
		line, err := rowValues(m, tt.Index)
		return [][]T{line}, err
	case Column:
		line, err := columnValues(m, tt.Index)
		return [][]T{line}, err
	case MainDiagonal:
		first, err := m.DiagonalBegin(0)
		if err != nil {
			return nil, err
		}
		last, err := m.DiagonalEnd(0)
		if err != nil {
			return nil, err
		}
		line, err := rangeValues[T](first, last)
		return [][]T{line}, err
	}

	out := make([][]T, len(plan))
	for i, cells := range plan {
		out[i] = make([]T, len(cells))
		for k, c := range cells {
			if out[i][k], err = m.At(c.r, c.c); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func rowValues[T any](m *matrix.Matrix[T], r int) ([]T, error) {
	first, err := m.RowBegin(r)
	if err != nil {
		return nil, err
	}
	last, err := m.RowEnd(r)
	if err != nil {
		return nil, err
	}

	return rangeValues[T](first, last)
}

func columnValues[T any](m *matrix.Matrix[T], c int) ([]T, error) {
	first, err := m.ColumnBegin(c)
	if err != nil {
		return nil, err
	}
	last, err := m.ColumnEnd(c)
	if err != nil {
		return nil, err
	}

	return rangeValues[T](first, last)
}

func rangeValues[T any, I matrix.RandomAccess[T, I]](first, last I) ([]T, error) {
	seq, err := matrix.Values[T](first, last)
	if err != nil {
		return nil, err
	}

	return slices.Collect(seq), nil
}

// FormatValue renders floats with a fixed precision when prec >= 0 and every
// other value with fmt's %v.
func FormatValue(v any, prec int) string {
	if prec >= 0 {
		switch x := v.(type) {
		case float64:
			return strconv.FormatFloat(x, 'f', prec, 64)
		case float32:
			return strconv.FormatFloat(float64(x), 'f', prec, 32)
		}
	}

	return fmt.Sprint(v)
}
