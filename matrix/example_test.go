// SPDX-License-Identifier: MIT

package matrix_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// ExampleMatrix_ZBegin walks a 4×3 matrix diagonal by diagonal.
func ExampleMatrix_ZBegin() {
	m, _ := matrix.NewFromSlice(4, 3, []int{
		0, 1, 2,
		10, 11, 12,
		20, 21, 22,
		30, 31, 32,
	})
	for it := m.ZBegin(); !it.IsEnd(); it.Next() {
		v, _ := it.Value()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// 0 11 22 1 12 10 21 32 2 20 31 30
}

// ExampleMatrix_DiagonalBegin reads one off-diagonal.
func ExampleMatrix_DiagonalBegin() {
	m, _ := matrix.NewFromRows([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g", "h", "i"},
	})
	it, _ := m.DiagonalBegin(-1)
	for ; !it.IsEnd(); it.Next() {
		v, _ := it.Value()
		fmt.Printf("%v=%s ", it.Position(), v)
	}
	fmt.Println()
	// Output:
	// {1 0}=d {2 1}=h
}

// ExampleSort sorts a single row through its iterator range.
func ExampleSort() {
	m, _ := matrix.NewFromRows([][]int{{3, 1, 2}, {9, 8, 7}})
	first, _ := m.RowBegin(1)
	last, _ := m.RowEnd(1)
	_ = matrix.Sort(first, last, cmp.Compare[int])
	fmt.Print(m)
	// Output:
	// 3	1	2
	// 7	8	9
}

// ExampleMatrix_SplitByRow splits and reassembles a matrix.
func ExampleMatrix_SplitByRow() {
	m, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}, {5, 6}})
	top, bottom := matrix.NewEmpty[int](), matrix.NewEmpty[int]()
	_ = m.SplitByRow(top, bottom, 1)
	fmt.Println(top.ToRows(), bottom.ToRows())

	_ = m.ConcatenateByRow(bottom, top)
	fmt.Println(m.ToRows())
	// Output:
	// [[1 2]] [[3 4] [5 6]]
	// [[3 4] [5 6] [1 2]]
}

// ExampleMatrix_ResizeKeepingContentsFill grows a matrix in both dimensions.
func ExampleMatrix_ResizeKeepingContentsFill() {
	m, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
	_ = m.ResizeKeepingContentsFill(3, 3, 0)
	fmt.Println(m.ToRows())
	// Output:
	// [[1 2 0] [3 4 0] [0 0 0]]
}
