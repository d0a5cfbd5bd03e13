package noise

// transformType3D is the rotation actually applied to 3D coordinates: the
// configured RotationType3D, or the default OpenSimplex rotation when none
// is configured and the active field is an OpenSimplex variant.
type transformType3D int

const (
	transformNone transformType3D = iota
	transformImproveXYPlanes
	transformImproveXZPlanes
	transformDefaultOpenSimplex2
)

// Noise2 returns the noise value at (x, y). The result is nominally in
// [-1, 1]; see the package documentation for per-type ranges.
func (n *Noise) Noise2(x, y float32) float32 {
	x, y = n.transform2(x, y)

	switch n.fractalType {
	case FractalFBm:
		return n.fractalFBm2(x, y)
	case FractalRidged:
		return n.fractalRidged2(x, y)
	case FractalPingPong:
		return n.fractalPingPong2(x, y)
	default:
		return n.single2(n.seed, x, y)
	}
}

// Noise3 returns the noise value at (x, y, z).
func (n *Noise) Noise3(x, y, z float32) float32 {
	x, y, z = n.transform3(x, y, z)

	switch n.fractalType {
	case FractalFBm:
		return n.fractalFBm3(x, y, z)
	case FractalRidged:
		return n.fractalRidged3(x, y, z)
	case FractalPingPong:
		return n.fractalPingPong3(x, y, z)
	default:
		return n.single3(n.seed, x, y, z)
	}
}

func (n *Noise) single2(seed int32, x, y float32) float32 {
	switch n.noiseType {
	case OpenSimplex2:
		return singleSimplex2(seed, x, y)
	case OpenSimplex2S:
		return singleOpenSimplex2S2(seed, x, y)
	case Cellular:
		return n.singleCellular2(seed, x, y)
	case Perlin:
		return singlePerlin2(seed, x, y)
	case ValueCubic:
		return singleValueCubic2(seed, x, y)
	case Value:
		return singleValue2(seed, x, y)
	default:
		return 0
	}
}

func (n *Noise) single3(seed int32, x, y, z float32) float32 {
	switch n.noiseType {
	case OpenSimplex2:
		return singleOpenSimplex2_3(seed, x, y, z)
	case OpenSimplex2S:
		return singleOpenSimplex2S3(seed, x, y, z)
	case Cellular:
		return n.singleCellular3(seed, x, y, z)
	case Perlin:
		return singlePerlin3(seed, x, y, z)
	case ValueCubic:
		return singleValueCubic3(seed, x, y, z)
	case Value:
		return singleValue3(seed, x, y, z)
	default:
		return 0
	}
}

// transform2 applies frequency and, for the OpenSimplex types, the simplex
// skew.
func (n *Noise) transform2(x, y float32) (float32, float32) {
	x *= n.frequency
	y *= n.frequency

	switch n.noiseType {
	case OpenSimplex2, OpenSimplex2S:
		t := (x + y) * skewF2
		x += t
		y += t
	}
	return x, y
}

func (n *Noise) transform3(x, y, z float32) (float32, float32, float32) {
	x *= n.frequency
	y *= n.frequency
	z *= n.frequency

	return rotate3(n.noiseTransform3D(), x, y, z)
}

func (n *Noise) noiseTransform3D() transformType3D {
	switch n.rotationType3D {
	case RotationImproveXYPlanes:
		return transformImproveXYPlanes
	case RotationImproveXZPlanes:
		return transformImproveXZPlanes
	}
	switch n.noiseType {
	case OpenSimplex2, OpenSimplex2S:
		return transformDefaultOpenSimplex2
	}
	return transformNone
}

func (n *Noise) warpTransform3D() transformType3D {
	switch n.rotationType3D {
	case RotationImproveXYPlanes:
		return transformImproveXYPlanes
	case RotationImproveXZPlanes:
		return transformImproveXZPlanes
	}
	switch n.warpType {
	case WarpOpenSimplex2, WarpOpenSimplex2Reduced:
		return transformDefaultOpenSimplex2
	}
	return transformNone
}

// rotate3 orients the lattice so that one axis points along the main
// diagonal. ImproveXYPlanes keeps XY slices isotropic (Z is "up"),
// ImproveXZPlanes does the same for XZ slices.
func rotate3(t transformType3D, x, y, z float32) (float32, float32, float32) {
	const (
		r3Diag  = 0.577350269189626
		r3Plane = -0.211324865405187
	)

	switch t {
	case transformImproveXYPlanes:
		xy := x + y
		s2 := xy * r3Plane
		z *= r3Diag
		x += s2 - z
		y = y + s2 - z
		z += xy * r3Diag
	case transformImproveXZPlanes:
		xz := x + z
		s2 := xz * r3Plane
		y *= r3Diag
		x += s2 - y
		z += s2 - y
		y += xz * r3Diag
	case transformDefaultOpenSimplex2:
		const r3 = 2.0 / 3.0
		r := (x + y + z) * r3
		x = r - x
		y = r - y
		z = r - z
	}
	return x, y, z
}
