// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for iterator walks and the
// mutation engine, using deterministic fills.
package matrix_test

import (
	"cmp"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 256}

// sinks to defeat dead-code elimination
var (
	sinkI int
	sinkM *matrix.Matrix[int]
)

func BenchmarkNWalk(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustMatrix(b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sum := 0
				for it := m.Begin(); !it.IsEnd(); it.Next() {
					v, _ := it.Value()
					sum += v
				}
				sinkI = sum
			}
		})
	}
}

func BenchmarkZWalk(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustMatrix(b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sum := 0
				for it := m.ZBegin(); !it.IsEnd(); it.Next() {
					v, _ := it.Value()
					sum += v
				}
				sinkI = sum
			}
		})
	}
}

func BenchmarkInsertEraseRow(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustMatrix(b, n, n, matrix.WithReserve(n+1, n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := m.InsertRow(0); err != nil {
					b.Fatal(err)
				}
				if err := m.EraseRow(0); err != nil {
					b.Fatal(err)
				}
			}
			sinkM = m
		})
	}
}

func BenchmarkSortAll(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := mustMatrix(b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				m := src.Clone()
				b.StartTimer()
				if err := m.Sort(matrix.SortAll, func(x, y int) int { return cmp.Compare(y, x) }); err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
