package noise

import (
	"math"
	"testing"
)

var allWarpTypes = []DomainWarpType{WarpOpenSimplex2, WarpOpenSimplex2Reduced, WarpBasicGrid}

var warpFractalTypes = []FractalType{FractalNone, FractalDomainWarpProgressive, FractalDomainWarpIndependent}

func newWarp(t *testing.T, wt DomainWarpType, ft FractalType, amp float32) *Noise {
	t.Helper()
	n := mustNoise(t, Perlin)
	if err := n.SetDomainWarpType(wt); err != nil {
		t.Fatal(err)
	}
	if err := n.SetFractalType(ft); err != nil {
		t.Fatal(err)
	}
	n.SetDomainWarpAmp(amp)
	return n
}

func TestDomainWarpZeroAmplitudeIsIdentity(t *testing.T) {
	for _, wt := range allWarpTypes {
		for _, ft := range warpFractalTypes {
			n := newWarp(t, wt, ft, 0)
			for i := 0; i < 100; i++ {
				x := float32(i)*13.7 - 500
				y := float32(i)*2.9 + 40
				z := float32(i) * -6.1

				wx, wy := n.DomainWarp2(x, y)
				if wx != x || wy != y {
					t.Fatalf("%v/%v: DomainWarp2(%f, %f) = (%f, %f) with zero amplitude", wt, ft, x, y, wx, wy)
				}
				if n.Noise2(wx, wy) != n.Noise2(x, y) {
					t.Fatalf("%v/%v: noise at unwarped point changed", wt, ft)
				}

				wx, wy, wz := n.DomainWarp3(x, y, z)
				if wx != x || wy != y || wz != z {
					t.Fatalf("%v/%v: DomainWarp3(%f, %f, %f) = (%f, %f, %f) with zero amplitude", wt, ft, x, y, z, wx, wy, wz)
				}
			}
		}
	}
}

func TestDomainWarpChangesNoise(t *testing.T) {
	for _, wt := range allWarpTypes {
		for _, ft := range warpFractalTypes {
			n := newWarp(t, wt, ft, 30)
			changed2, changed3 := 0, 0
			for i := 0; i < 100; i++ {
				x := float32(i)*13.7 - 500.3
				y := float32(i)*2.9 + 40.7
				z := float32(i)*-6.1 + 0.9

				wx, wy := n.DomainWarp2(x, y)
				if n.Noise2(wx, wy) != n.Noise2(x, y) {
					changed2++
				}
				wx, wy, wz := n.DomainWarp3(x, y, z)
				if n.Noise3(wx, wy, wz) != n.Noise3(x, y, z) {
					changed3++
				}
			}
			if changed2 < 95 || changed3 < 95 {
				t.Errorf("%v/%v: warp changed only %d/100 2D and %d/100 3D samples", wt, ft, changed2, changed3)
			}
		}
	}
}

func TestDomainWarpDisplacementBounded(t *testing.T) {
	const amp = 10
	for _, wt := range allWarpTypes {
		n := newWarp(t, wt, FractalNone, amp)
		bound := float64(amp) * 4
		for i := 0; i < 2000; i++ {
			x := float32(i)*3.3 - 3000
			y := float32(i)*1.7 + 25
			z := float32(i) * 0.9

			wx, wy := n.DomainWarp2(x, y)
			if d := math.Hypot(float64(wx-x), float64(wy-y)); d > bound {
				t.Fatalf("%v: 2D displacement %f exceeds %f at (%f, %f)", wt, d, bound, x, y)
			}
			wx, wy, wz := n.DomainWarp3(x, y, z)
			dx, dy, dz := float64(wx-x), float64(wy-y), float64(wz-z)
			if d := math.Sqrt(dx*dx + dy*dy + dz*dz); d > bound {
				t.Fatalf("%v: 3D displacement %f exceeds %f at (%f, %f, %f)", wt, d, bound, x, y, z)
			}
		}
	}
}

func TestDomainWarpDeterministic(t *testing.T) {
	for _, wt := range allWarpTypes {
		for _, ft := range warpFractalTypes {
			a := newWarp(t, wt, ft, 25)
			b := newWarp(t, wt, ft, 25)
			for i := 0; i < 50; i++ {
				x, y, z := float32(i)*7.7, float32(i)*-3.1, float32(i)*1.9
				ax, ay := a.DomainWarp2(x, y)
				bx, by := b.DomainWarp2(x, y)
				if ax != bx || ay != by {
					t.Fatalf("%v/%v: DomainWarp2 not deterministic", wt, ft)
				}
				ax, ay, az := a.DomainWarp3(x, y, z)
				bx, by, bz := b.DomainWarp3(x, y, z)
				if ax != bx || ay != by || az != bz {
					t.Fatalf("%v/%v: DomainWarp3 not deterministic", wt, ft)
				}
			}
		}
	}
}

func TestDomainWarpFractalModesDiffer(t *testing.T) {
	single := newWarp(t, WarpOpenSimplex2, FractalNone, 40)
	progressive := newWarp(t, WarpOpenSimplex2, FractalDomainWarpProgressive, 40)
	independent := newWarp(t, WarpOpenSimplex2, FractalDomainWarpIndependent, 40)

	var progDiff, indepDiff, modeDiff int
	for i := 0; i < 100; i++ {
		x, y := float32(i)*11.3+0.7, float32(i)*-4.2+0.3
		sx, sy := single.DomainWarp2(x, y)
		px, py := progressive.DomainWarp2(x, y)
		ix, iy := independent.DomainWarp2(x, y)
		if sx != px || sy != py {
			progDiff++
		}
		if sx != ix || sy != iy {
			indepDiff++
		}
		if px != ix || py != iy {
			modeDiff++
		}
	}
	if progDiff == 0 || indepDiff == 0 || modeDiff == 0 {
		t.Errorf("fractal warp modes should differ: progressive %d, independent %d, between %d", progDiff, indepDiff, modeDiff)
	}
}

// The first octave of both fractal modes samples the same point, so with a
// single octave they must agree with each other and with a plain warp.
func TestDomainWarpSingleOctaveModesAgree(t *testing.T) {
	var ns []*Noise
	for _, ft := range warpFractalTypes {
		n := newWarp(t, WarpBasicGrid, ft, 15)
		if err := n.SetFractalOctaves(1); err != nil {
			t.Fatal(err)
		}
		ns = append(ns, n)
	}
	for i := 0; i < 50; i++ {
		x, y := float32(i)*9.9, float32(i)*4.4
		rx, ry := ns[0].DomainWarp2(x, y)
		for _, n := range ns[1:] {
			if gx, gy := n.DomainWarp2(x, y); gx != rx || gy != ry {
				t.Fatalf("%v: (%f, %f), want (%f, %f)", n.FractalType(), gx, gy, rx, ry)
			}
		}
	}
}
