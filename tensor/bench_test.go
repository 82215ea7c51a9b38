// Package tensor_test provides benchmarks for the reordering kernels on
// deterministic random tensors.
package tensor_test

import (
	"fmt"
	"testing"
)

// benchEntries are the entry counts to benchmark.
var benchEntries = []int{1_000, 10_000, 100_000}

// sinks to defeat dead-code elimination
var (
	sinkI int
	sinkB bool
)

func BenchmarkSortElementsByIndex(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchEntries {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			base := randomTensor(b, 1337, 3, n, 64)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				t := base.Clone()
				b.StartTimer()
				sinkB = t.SortElementsByIndex(false).IsSortedByIndex(false)
			}
		})
	}
}

func BenchmarkSortIndicesByNumber(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchEntries {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			t := randomTensor(b, 4242, 4, n, 128)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkI = t.SortIndicesByNumber(i%2 == 0).NumAxes()
			}
		})
	}
}

func BenchmarkNumUniqueValues(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchEntries {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			t := randomTensor(b, 7, 1, n, n/4+1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkI = t.NumUniqueValues(0)
			}
		})
	}
}
