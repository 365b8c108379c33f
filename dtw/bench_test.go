package dtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cellprof/dtw"
)

func sine(n int, phase float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2*math.Pi*float64(i)/float64(n) + phase)
	}
	return out
}

func BenchmarkDistance_FullMatrix(b *testing.B) {
	x, y := sine(300, 0), sine(280, 0.3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dtw.Distance(x, y)
	}
}

func BenchmarkDistance_TwoRowsWindow(b *testing.B) {
	x, y := sine(300, 0), sine(280, 0.3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dtw.Distance(x, y, dtw.WithMemoryMode(dtw.TwoRows), dtw.WithWindow(30))
	}
}
