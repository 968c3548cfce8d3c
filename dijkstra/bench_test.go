package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// BenchmarkAll_Random measures a full Dijkstra run on a sparse random graph.
func BenchmarkAll_Random(b *testing.B) {
	g := randomGraph(1, 2000, 10000, 100)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dijkstra.Distances[int](g, 0)
	}
}

// BenchmarkPath_Random measures a single-target search on the same graph.
func BenchmarkPath_Random(b *testing.B) {
	g := randomGraph(1, 2000, 10000, 100)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Path[int](g, 0, core.Is(1999))
	}
}
