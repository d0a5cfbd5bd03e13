package noise

import (
	"math"
	"testing"
)

func TestHashMixesSeed(t *testing.T) {
	if got := hash2(0, 1, 0); got != hashMultiplier {
		t.Errorf("hash2(0, 1, 0) = %#x, want %#x", got, hashMultiplier)
	}
	if got := hash3(0, 0, 0, 1); got != hashMultiplier {
		t.Errorf("hash3(0, 0, 0, 1) = %#x, want %#x", got, hashMultiplier)
	}
	if hash2(1337, primeX, primeY) == hash2(1338, primeX, primeY) {
		t.Error("hash2 ignores the seed")
	}
}

func TestDoubledPrimesWrap(t *testing.T) {
	for _, tt := range []struct{ p, p2 int32 }{
		{primeX, primeX2},
		{primeY, primeY2},
		{primeZ, primeZ2},
	} {
		p := tt.p
		if got := p + p; got != tt.p2 {
			t.Errorf("%d*2 wraps to %d, constant is %d", tt.p, got, tt.p2)
		}
	}
}

func TestValCoordRange(t *testing.T) {
	var neg, pos int
	for i := int32(-500); i < 500; i++ {
		for _, v := range []float32{
			valCoord2(1337, i*primeX, (i*7)*primeY),
			valCoord3(1337, i*primeX, (i*3)*primeY, (i*11)*primeZ),
		} {
			if v < -1 || v > 1 {
				t.Fatalf("value %v out of [-1, 1] at %d", v, i)
			}
			if v < 0 {
				neg++
			} else {
				pos++
			}
		}
	}
	if neg < 300 || pos < 300 {
		t.Errorf("values poorly spread: %d negative, %d positive", neg, pos)
	}
}

func TestGradientTables(t *testing.T) {
	for i := 0; i < len(gradients2D); i += 2 {
		l := math.Hypot(float64(gradients2D[i]), float64(gradients2D[i+1]))
		if math.Abs(l-1) > 1e-6 {
			t.Fatalf("gradients2D[%d] has length %v", i/2, l)
		}
	}
	for i := 0; i < len(gradients3D); i += 4 {
		x, y, z := float64(gradients3D[i]), float64(gradients3D[i+1]), float64(gradients3D[i+2])
		if l := x*x + y*y + z*z; l != 2 {
			t.Fatalf("gradients3D[%d] has squared length %v, want 2", i/4, l)
		}
		if gradients3D[i+3] != 0 {
			t.Fatalf("gradients3D[%d] padding is %v", i/4, gradients3D[i+3])
		}
	}
}

func TestRandVecsAreUnitLength(t *testing.T) {
	for i := 0; i < len(randVecs2D); i += 2 {
		l := math.Hypot(float64(randVecs2D[i]), float64(randVecs2D[i+1]))
		if math.Abs(l-1) > 1e-6 {
			t.Fatalf("randVecs2D[%d] has length %v", i/2, l)
		}
	}
	for i := 0; i < len(randVecs3D); i += 4 {
		x, y, z := float64(randVecs3D[i]), float64(randVecs3D[i+1]), float64(randVecs3D[i+2])
		if l := math.Sqrt(x*x + y*y + z*z); math.Abs(l-1) > 1e-6 {
			t.Fatalf("randVecs3D[%d] has length %v", i/4, l)
		}
		if randVecs3D[i+3] != 0 {
			t.Fatalf("randVecs3D[%d] padding is %v", i/4, randVecs3D[i+3])
		}
	}
}

func TestRandVecsDistinct(t *testing.T) {
	distinct2 := make(map[[2]float32]bool)
	for i := 0; i < len(randVecs2D); i += 2 {
		distinct2[[2]float32{randVecs2D[i], randVecs2D[i+1]}] = true
	}
	if len(distinct2) < 250 {
		t.Errorf("randVecs2D holds only %d distinct vectors", len(distinct2))
	}

	distinct3 := make(map[[3]float32]bool)
	for i := 0; i < len(randVecs3D); i += 4 {
		distinct3[[3]float32{randVecs3D[i], randVecs3D[i+1], randVecs3D[i+2]}] = true
	}
	if len(distinct3) < 250 {
		t.Errorf("randVecs3D holds only %d distinct vectors", len(distinct3))
	}
}
