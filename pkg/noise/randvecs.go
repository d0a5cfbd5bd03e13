package noise

import "math"

// randVecs2D and randVecs3D hold 256 random unit vectors each, used for
// cellular point jitter and domain warp displacement. 3D entries are padded
// to four components.
//
// Here they are filled once at init from a fixed xorshift sequence. Only
// integer operations, division and square root are involved, all of which
// are exactly rounded, so the tables are identical on every platform.
// Running cmd/gentables against a FastNoise Lite checkout replaces this file
// with that library's literal tables.
var (
	randVecs2D = buildRandVecs2D()
	randVecs3D = buildRandVecs3D()
)

const randVecsSeed uint32 = 0x2545f491

type xorshift32 uint32

// next returns a value in [-1, 1).
func (s *xorshift32) next() float64 {
	x := uint32(*s)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	*s = xorshift32(x)
	return float64(int32(x)) / (1 << 31)
}

func buildRandVecs2D() (t [512]float32) {
	rng := xorshift32(randVecsSeed)
	for i := 0; i < 256; i++ {
		for {
			x, y := rng.next(), rng.next()
			d := float64(x*x) + float64(y*y)
			if d < 1.0/64 || d > 1 {
				continue
			}
			l := math.Sqrt(d)
			t[i*2] = float32(x / l)
			t[i*2+1] = float32(y / l)
			break
		}
	}
	return t
}

func buildRandVecs3D() (t [1024]float32) {
	rng := xorshift32(randVecsSeed ^ 0x9e3779b9)
	for i := 0; i < 256; i++ {
		for {
			x, y, z := rng.next(), rng.next(), rng.next()
			d := float64(float64(x*x)+float64(y*y)) + float64(z*z)
			if d < 1.0/64 || d > 1 {
				continue
			}
			l := math.Sqrt(d)
			t[i*4] = float32(x / l)
			t[i*4+1] = float32(y / l)
			t[i*4+2] = float32(z / l)
			break
		}
	}
	return t
}
