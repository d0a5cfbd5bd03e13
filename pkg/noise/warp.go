package noise

// Gradient field maxima, used to bring each warp type to roughly unit
// displacement before the configured amplitude is applied.
const (
	warpScaleSimplex2        = 38.283687591552734375
	warpScaleSimplex2Reduced = 16.0
	warpScaleSimplex3        = 32.69428253173828125
	warpScaleSimplex3Reduced = 7.71604938271605
)

// DomainWarp2 returns (x, y) displaced by the configured warp field. With
// FractalDomainWarpProgressive or FractalDomainWarpIndependent the warp is
// layered over the configured octaves; any other fractal type applies a
// single warp pass.
func (n *Noise) DomainWarp2(x, y float32) (float32, float32) {
	switch n.fractalType {
	case FractalDomainWarpProgressive:
		return n.warpFractalProgressive2(x, y)
	case FractalDomainWarpIndependent:
		return n.warpFractalIndependent2(x, y)
	default:
		return n.warpSingle2(x, y)
	}
}

// DomainWarp3 is the 3D counterpart of DomainWarp2.
func (n *Noise) DomainWarp3(x, y, z float32) (float32, float32, float32) {
	switch n.fractalType {
	case FractalDomainWarpProgressive:
		return n.warpFractalProgressive3(x, y, z)
	case FractalDomainWarpIndependent:
		return n.warpFractalIndependent3(x, y, z)
	default:
		return n.warpSingle3(x, y, z)
	}
}

func (n *Noise) warpSingle2(x, y float32) (float32, float32) {
	amp := n.warpAmp * n.fractalBounding()
	xs, ys := n.warpTransform2(x, y)
	return n.warpOnce2(n.seed, amp, n.frequency, xs, ys, x, y)
}

func (n *Noise) warpSingle3(x, y, z float32) (float32, float32, float32) {
	amp := n.warpAmp * n.fractalBounding()
	xs, ys, zs := rotate3(n.warpTransform3D(), x, y, z)
	return n.warpOnce3(n.seed, amp, n.frequency, xs, ys, zs, x, y, z)
}

// Progressive: every octave samples the field at the point produced by the
// previous octave.
func (n *Noise) warpFractalProgressive2(x, y float32) (float32, float32) {
	seed := n.seed
	amp := n.warpAmp * n.fractalBounding()
	freq := n.frequency

	for i := 0; i < n.octaves; i++ {
		xs, ys := n.warpTransform2(x, y)
		x, y = n.warpOnce2(seed, amp, freq, xs, ys, x, y)

		seed++
		amp *= n.gain
		freq *= n.lacunarity
	}
	return x, y
}

func (n *Noise) warpFractalProgressive3(x, y, z float32) (float32, float32, float32) {
	seed := n.seed
	amp := n.warpAmp * n.fractalBounding()
	freq := n.frequency
	t := n.warpTransform3D()

	for i := 0; i < n.octaves; i++ {
		xs, ys, zs := rotate3(t, x, y, z)
		x, y, z = n.warpOnce3(seed, amp, freq, xs, ys, zs, x, y, z)

		seed++
		amp *= n.gain
		freq *= n.lacunarity
	}
	return x, y, z
}

// Independent: every octave samples the field at the original point and
// the displacements accumulate.
func (n *Noise) warpFractalIndependent2(x, y float32) (float32, float32) {
	xs, ys := n.warpTransform2(x, y)

	seed := n.seed
	amp := n.warpAmp * n.fractalBounding()
	freq := n.frequency

	for i := 0; i < n.octaves; i++ {
		x, y = n.warpOnce2(seed, amp, freq, xs, ys, x, y)

		seed++
		amp *= n.gain
		freq *= n.lacunarity
	}
	return x, y
}

func (n *Noise) warpFractalIndependent3(x, y, z float32) (float32, float32, float32) {
	xs, ys, zs := rotate3(n.warpTransform3D(), x, y, z)

	seed := n.seed
	amp := n.warpAmp * n.fractalBounding()
	freq := n.frequency

	for i := 0; i < n.octaves; i++ {
		x, y, z = n.warpOnce3(seed, amp, freq, xs, ys, zs, x, y, z)

		seed++
		amp *= n.gain
		freq *= n.lacunarity
	}
	return x, y, z
}

// warpTransform2 skews the sample point for the simplex warp fields. The
// frequency is applied later, per octave.
func (n *Noise) warpTransform2(x, y float32) (float32, float32) {
	switch n.warpType {
	case WarpOpenSimplex2, WarpOpenSimplex2Reduced:
		t := (x + y) * skewF2
		x += t
		y += t
	}
	return x, y
}

// warpOnce2 samples the field at (x, y) and returns (xr, yr) displaced by
// the result.
func (n *Noise) warpOnce2(seed int32, amp, freq, x, y, xr, yr float32) (float32, float32) {
	var dx, dy float32
	switch n.warpType {
	case WarpOpenSimplex2:
		dx, dy = warpSimplexGradient2(seed, amp*warpScaleSimplex2, freq, x, y, false)
	case WarpOpenSimplex2Reduced:
		dx, dy = warpSimplexGradient2(seed, amp*warpScaleSimplex2Reduced, freq, x, y, true)
	case WarpBasicGrid:
		dx, dy = warpBasicGrid2(seed, amp, freq, x, y)
	}
	return xr + dx, yr + dy
}

func (n *Noise) warpOnce3(seed int32, amp, freq, x, y, z, xr, yr, zr float32) (float32, float32, float32) {
	var dx, dy, dz float32
	switch n.warpType {
	case WarpOpenSimplex2:
		dx, dy, dz = warpOpenSimplex2Gradient3(seed, amp*warpScaleSimplex3, freq, x, y, z, false)
	case WarpOpenSimplex2Reduced:
		dx, dy, dz = warpOpenSimplex2Gradient3(seed, amp*warpScaleSimplex3Reduced, freq, x, y, z, true)
	case WarpBasicGrid:
		dx, dy, dz = warpBasicGrid3(seed, amp, freq, x, y, z)
	}
	return xr + dx, yr + dy, zr + dz
}

// warpBasicGrid2 interpolates random unit vectors stored at lattice points.
func warpBasicGrid2(seed int32, warpAmp, frequency, x, y float32) (float32, float32) {
	xf := x * frequency
	yf := y * frequency

	x0 := fastFloor(xf)
	y0 := fastFloor(yf)

	xs := interpHermite(xf - float32(x0))
	ys := interpHermite(yf - float32(y0))

	x0 *= primeX
	y0 *= primeY
	x1 := x0 + primeX
	y1 := y0 + primeY

	h0 := hash2(seed, x0, y0) & (255 << 1)
	h1 := hash2(seed, x1, y0) & (255 << 1)

	lx0x := lerp(randVecs2D[h0], randVecs2D[h1], xs)
	ly0x := lerp(randVecs2D[h0|1], randVecs2D[h1|1], xs)

	h0 = hash2(seed, x0, y1) & (255 << 1)
	h1 = hash2(seed, x1, y1) & (255 << 1)

	lx1x := lerp(randVecs2D[h0], randVecs2D[h1], xs)
	ly1x := lerp(randVecs2D[h0|1], randVecs2D[h1|1], xs)

	return lerp(lx0x, lx1x, ys) * warpAmp, lerp(ly0x, ly1x, ys) * warpAmp
}

func warpBasicGrid3(seed int32, warpAmp, frequency, x, y, z float32) (float32, float32, float32) {
	xf := x * frequency
	yf := y * frequency
	zf := z * frequency

	x0 := fastFloor(xf)
	y0 := fastFloor(yf)
	z0 := fastFloor(zf)

	xs := interpHermite(xf - float32(x0))
	ys := interpHermite(yf - float32(y0))
	zs := interpHermite(zf - float32(z0))

	x0 *= primeX
	y0 *= primeY
	z0 *= primeZ
	x1 := x0 + primeX
	y1 := y0 + primeY
	z1 := z0 + primeZ

	// edge interpolates the lattice vectors at (x0, y, z) and (x1, y, z).
	edge := func(y, z int32) (lx, ly, lz float32) {
		h0 := hash3(seed, x0, y, z) & (255 << 2)
		h1 := hash3(seed, x1, y, z) & (255 << 2)
		return lerp(randVecs3D[h0], randVecs3D[h1], xs),
			lerp(randVecs3D[h0|1], randVecs3D[h1|1], xs),
			lerp(randVecs3D[h0|2], randVecs3D[h1|2], xs)
	}

	lx0x, ly0x, lz0x := edge(y0, z0)
	lx1x, ly1x, lz1x := edge(y1, z0)

	lx0y := lerp(lx0x, lx1x, ys)
	ly0y := lerp(ly0x, ly1x, ys)
	lz0y := lerp(lz0x, lz1x, ys)

	lx0x, ly0x, lz0x = edge(y0, z1)
	lx1x, ly1x, lz1x = edge(y1, z1)

	return lerp(lx0y, lerp(lx0x, lx1x, ys), zs) * warpAmp,
		lerp(ly0y, lerp(ly0x, ly1x, ys), zs) * warpAmp,
		lerp(lz0y, lerp(lz0x, lz1x, ys), zs) * warpAmp
}

// warpSimplexGradient2 returns the displacement of a 2D simplex gradient
// field. With outGradOnly the raw random vectors are summed; otherwise each
// is scaled by its corner's gradient value.
func warpSimplexGradient2(seed int32, warpAmp, frequency, x, y float32, outGradOnly bool) (float32, float32) {
	g2 := unskewG2

	x *= frequency
	y *= frequency

	i := fastFloor(x)
	j := fastFloor(y)
	xi := x - float32(i)
	yi := y - float32(j)

	t := (xi + yi) * g2
	x0 := xi - t
	y0 := yi - t

	i *= primeX
	j *= primeY

	var vx, vy float32

	corner := func(w float32, ip, jp int32, xd, yd float32) {
		w4 := (w * w) * (w * w)
		var xo, yo float32
		if outGradOnly {
			xo, yo = gradCoordOut2(seed, ip, jp)
		} else {
			xo, yo = gradCoordDual2(seed, ip, jp, xd, yd)
		}
		vx += w4 * xo
		vy += w4 * yo
	}

	a := 0.5 - x0*x0 - y0*y0
	if a > 0 {
		corner(a, i, j, x0, y0)
	}

	c := simplexFarT*t + (simplexFarA + a)
	if c > 0 {
		x2 := x0 + (2*g2 - 1)
		y2 := y0 + (2*g2 - 1)
		corner(c, i+primeX, j+primeY, x2, y2)
	}

	if y0 > x0 {
		x1 := x0 + g2
		y1 := y0 + (g2 - 1)
		if b := 0.5 - x1*x1 - y1*y1; b > 0 {
			corner(b, i, j+primeY, x1, y1)
		}
	} else {
		x1 := x0 + (g2 - 1)
		y1 := y0 + g2
		if b := 0.5 - x1*x1 - y1*y1; b > 0 {
			corner(b, i+primeX, j, x1, y1)
		}
	}

	return vx * warpAmp, vy * warpAmp
}

// warpOpenSimplex2Gradient3 is the gradient-field counterpart of
// singleOpenSimplex2_3. The second lattice uses seed+1293373.
func warpOpenSimplex2Gradient3(seed int32, warpAmp, frequency, x, y, z float32, outGradOnly bool) (float32, float32, float32) {
	x *= frequency
	y *= frequency
	z *= frequency

	i := fastRound(x)
	j := fastRound(y)
	k := fastRound(z)
	x0 := x - float32(i)
	y0 := y - float32(j)
	z0 := z - float32(k)

	xNSign := int32(-x0-1.0) | 1
	yNSign := int32(-y0-1.0) | 1
	zNSign := int32(-z0-1.0) | 1

	ax0 := float32(xNSign) * -x0
	ay0 := float32(yNSign) * -y0
	az0 := float32(zNSign) * -z0

	i *= primeX
	j *= primeY
	k *= primeZ

	var vx, vy, vz float32

	corner := func(w float32, ip, jp, kp int32, xd, yd, zd float32) {
		w4 := (w * w) * (w * w)
		var xo, yo, zo float32
		if outGradOnly {
			xo, yo, zo = gradCoordOut3(seed, ip, jp, kp)
		} else {
			xo, yo, zo = gradCoordDual3(seed, ip, jp, kp, xd, yd, zd)
		}
		vx += w4 * xo
		vy += w4 * yo
		vz += w4 * zo
	}

	a := (0.6 - x0*x0) - (y0*y0 + z0*z0)
	for l := 0; ; l++ {
		if a > 0 {
			corner(a, i, j, k, x0, y0, z0)
		}

		b := a
		i1, j1, k1 := i, j, k
		x1, y1, z1 := x0, y0, z0

		switch {
		case ax0 >= ay0 && ax0 >= az0:
			x1 += float32(xNSign)
			b = b + ax0 + ax0
			i1 -= xNSign * primeX
		case ay0 > ax0 && ay0 >= az0:
			y1 += float32(yNSign)
			b = b + ay0 + ay0
			j1 -= yNSign * primeY
		default:
			z1 += float32(zNSign)
			b = b + az0 + az0
			k1 -= zNSign * primeZ
		}

		if b > 1 {
			b -= 1
			corner(b, i1, j1, k1, x1, y1, z1)
		}

		if l == 1 {
			break
		}

		ax0 = 0.5 - ax0
		ay0 = 0.5 - ay0
		az0 = 0.5 - az0

		x0 = float32(xNSign) * ax0
		y0 = float32(yNSign) * ay0
		z0 = float32(zNSign) * az0

		a += (0.75 - ax0) - (ay0 + az0)

		i += (xNSign >> 1) & primeX
		j += (yNSign >> 1) & primeY
		k += (zNSign >> 1) & primeZ

		xNSign = -xNSign
		yNSign = -yNSign
		zNSign = -zNSign

		seed += 1293373
	}

	return vx * warpAmp, vy * warpAmp, vz * warpAmp
}
