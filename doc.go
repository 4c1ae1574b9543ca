// SPDX-License-Identifier: MIT

// Package lvmatrix is a dense two-dimensional container library with spare
// capacity, structural editing and random-access iterators in several
// traversal orders.
//
// The module is organized into focused packages:
//
//	matrix/    Matrix[T]: storage block, coordinate translator, N/Z/linear
//	           iterators, resize/insert/erase/split/concatenate, range
//	           algorithms (Sort, Find, Count, Fill, Values)
//	linalg/    numeric kernels (Add, Mul, Transpose, ...) and a gonum bridge
//	           for Det, Rank and Inverse
//	matrixio/  text I/O: Traversal, ReadSession, Write/Format
//	cmd/lvmatrix  command-line front end (cobra, charmbracelet/log, TOML config)
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]int{{0, 1, 2}, {10, 11, 12}})
//	for it := m.ZBegin(); !it.IsEnd(); it.Next() {
//		v, _ := it.Value()
//		fmt.Print(v, " ") // 0 11 1 12 10 2
//	}
//
// Iterators remember the shape generation of their matrix: after a resize,
// insert, erase or concatenate they report matrix.ErrStaleIterator instead of
// reading reshaped storage.
package lvmatrix
