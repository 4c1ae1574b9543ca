// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrices as whitespace-separated text.
//
// One line of text carries one row, one column or one diagonal, depending on
// the Traversal in use:
//
//	FullByRow{}     Rows lines, one row per line
//	FullByColumn{}  Cols lines, one column per line
//	Row{I}          one line holding row I
//	Column{J}       one line holding column J
//	MainDiagonal{}  one line, cells (k,k)
//	AntiDiagonal{}  one line, cells (k,Cols-1-k)
//	CursorRow{}     Row{m.RowCursor()}
//	CursorColumn{}  Column{m.ColumnCursor()}
//
// Reading goes through a ReadSession. The session owns its position in the
// stream, so consecutive ReadInto calls continue where the previous one
// stopped, and Reset rewinds explicitly. Sessions never share state.
//
// A ReadInto call either applies every value it read or none of them: the
// values are parsed first and only then written into the matrix.
//
// Writing goes through Write/Format. Row, column and main-diagonal traversals
// are emitted through the matrix iterators.
package matrixio
