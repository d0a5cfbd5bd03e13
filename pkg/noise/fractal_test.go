package noise

import (
	"math"
	"testing"
)

func TestFractalBounding(t *testing.T) {
	tests := []struct {
		octaves int
		gain    float32
		want    float32
	}{
		{1, 0.5, 1},
		{2, 0.5, 1 / 1.5},
		{3, 0.5, 1 / 1.75},
		{3, -0.5, 1 / 1.75},
		{4, 1, 0.25},
	}
	for _, tt := range tests {
		n := New()
		if err := n.SetFractalOctaves(tt.octaves); err != nil {
			t.Fatal(err)
		}
		n.SetFractalGain(tt.gain)
		if got := n.fractalBounding(); math.Abs(float64(got-tt.want)) > 1e-7 {
			t.Errorf("octaves=%d gain=%v: bounding = %v, want %v", tt.octaves, tt.gain, got, tt.want)
		}
	}
}

func TestFractalBoundingTracksConfiguration(t *testing.T) {
	n := mustNoise(t, Perlin)
	if err := n.SetFractalType(FractalFBm); err != nil {
		t.Fatal(err)
	}
	before := n.Noise2(123, 456)

	if err := n.SetFractalOctaves(1); err != nil {
		t.Fatal(err)
	}
	single := mustNoise(t, Perlin)
	if got, want := n.Noise2(123, 456), single.Noise2(123, 456); got != want {
		t.Fatalf("one-octave FBm = %v, want single octave %v", got, want)
	}

	if err := n.SetFractalOctaves(3); err != nil {
		t.Fatal(err)
	}
	if got := n.Noise2(123, 456); got != before {
		t.Fatalf("restoring octaves gave %v, want %v", got, before)
	}
}

func TestFractalOctavesStayBounded(t *testing.T) {
	for _, ft := range []FractalType{FractalFBm, FractalRidged, FractalPingPong} {
		n := mustNoise(t, OpenSimplex2)
		if err := n.SetFractalType(ft); err != nil {
			t.Fatal(err)
		}
		var prev []float32
		for octaves := 1; octaves <= 12; octaves++ {
			if err := n.SetFractalOctaves(octaves); err != nil {
				t.Fatal(err)
			}
			var maxAbs float64
			cur := make([]float32, 0, 500)
			for i := 0; i < 500; i++ {
				v := n.Noise2(float32(i)*19.3-4000, float32(i)*7.1+900)
				cur = append(cur, v)
				maxAbs = math.Max(maxAbs, math.Abs(float64(v)))
			}
			if maxAbs > 1.2 {
				t.Fatalf("%v with %d octaves reached %f", ft, octaves, maxAbs)
			}
			if prev != nil && equalSlices(prev, cur) {
				t.Fatalf("%v: %d octaves produced the same values as %d", ft, octaves, octaves-1)
			}
			prev = cur
		}
	}
}

func TestFractalWeightedStrength(t *testing.T) {
	plain := mustNoise(t, Perlin)
	weighted := mustNoise(t, Perlin)
	for _, n := range []*Noise{plain, weighted} {
		if err := n.SetFractalType(FractalFBm); err != nil {
			t.Fatal(err)
		}
	}
	weighted.SetFractalWeightedStrength(1)

	differs := false
	for i := 0; i < 100; i++ {
		x, y := float32(i)*31.7, float32(i)*-12.9
		if plain.Noise2(x, y) != weighted.Noise2(x, y) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("weighted strength should change FBm output")
	}
}

func TestPingPongHelper(t *testing.T) {
	tests := []struct{ in, want float32 }{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 0.5},
		{2, 0},
		{2.25, 0.25},
		{3.5, 0.5},
	}
	for _, tt := range tests {
		if got := pingPong(tt.in); got != tt.want {
			t.Errorf("pingPong(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPingPongStrengthChangesBands(t *testing.T) {
	n := mustNoise(t, Perlin)
	if err := n.SetFractalType(FractalPingPong); err != nil {
		t.Fatal(err)
	}
	a := n.Noise2(77, 88)
	n.SetFractalPingPongStrength(3.5)
	if b := n.Noise2(77, 88); a == b {
		t.Errorf("ping pong strength had no effect: %v", a)
	}
}

func equalSlices(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
