package noise

import (
	"testing"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

var benchSink float32

func benchmarkNoise2(b *testing.B, nt NoiseType, ft FractalType) {
	n := New()
	if err := n.SetNoiseType(nt); err != nil {
		b.Fatal(err)
	}
	if err := n.SetFractalType(ft); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink += n.Noise2(float32(i&1023), float32(i>>10&1023))
	}
}

func benchmarkNoise3(b *testing.B, nt NoiseType) {
	n := New()
	if err := n.SetNoiseType(nt); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink += n.Noise3(float32(i&255), float32(i>>8&255), float32(i>>16&255))
	}
}

func BenchmarkOpenSimplex2_2D(b *testing.B)  { benchmarkNoise2(b, OpenSimplex2, FractalNone) }
func BenchmarkOpenSimplex2S_2D(b *testing.B) { benchmarkNoise2(b, OpenSimplex2S, FractalNone) }
func BenchmarkCellular2D(b *testing.B)       { benchmarkNoise2(b, Cellular, FractalNone) }
func BenchmarkPerlin2D(b *testing.B)         { benchmarkNoise2(b, Perlin, FractalNone) }
func BenchmarkValueCubic2D(b *testing.B)     { benchmarkNoise2(b, ValueCubic, FractalNone) }
func BenchmarkValue2D(b *testing.B)          { benchmarkNoise2(b, Value, FractalNone) }
func BenchmarkPerlinFBm2D(b *testing.B)      { benchmarkNoise2(b, Perlin, FractalFBm) }

func BenchmarkOpenSimplex2_3D(b *testing.B)  { benchmarkNoise3(b, OpenSimplex2) }
func BenchmarkOpenSimplex2S_3D(b *testing.B) { benchmarkNoise3(b, OpenSimplex2S) }
func BenchmarkCellular3D(b *testing.B)       { benchmarkNoise3(b, Cellular) }
func BenchmarkPerlin3D(b *testing.B)         { benchmarkNoise3(b, Perlin) }

func BenchmarkDomainWarp2D(b *testing.B) {
	n := New()
	n.SetDomainWarpAmp(30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, y := n.DomainWarp2(float32(i&1023), float32(i>>10&1023))
		benchSink += x + y
	}
}

func BenchmarkGrid2(b *testing.B) {
	n := New()
	dst := make([]float32, 256*256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := n.Grid2(dst, 256, 256, float32(i), 0, 1); err != nil {
			b.Fatal(err)
		}
	}
}

// The two benchmarks below evaluate other Go noise packages on the same
// sample pattern, as a baseline for the generators above.

func BenchmarkBaselineOpenSimplexGo2D(b *testing.B) {
	n := opensimplex.New32(1337)
	for i := 0; i < b.N; i++ {
		benchSink += n.Eval2(float32(i&1023)*0.01, float32(i>>10&1023)*0.01)
	}
}

func BenchmarkBaselineGoPerlin2D(b *testing.B) {
	p := perlin.NewPerlin(2, 2, 3, 1337)
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += p.Noise2D(float64(i&1023)*0.01, float64(i>>10&1023)*0.01)
	}
	benchSink += float32(sink)
}
