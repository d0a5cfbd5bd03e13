package noise

// Skew constants are evaluated in float32 at init rather than folded as
// exact constants, so they carry the same rounding as the reference tables.
var (
	sqrt3 float32 = 1.7320508075688772935274463415059

	skewF2   = 0.5 * (sqrt3 - 1)
	unskewG2 = (3 - sqrt3) / 6

	// Weight of the far corner, expressed through t and the near corner's a.
	simplexFarT = 2 * (1 - 2*unskewG2) * (1/unskewG2 - 2)
	simplexFarA = -2 * (1 - 2*unskewG2) * (1 - 2*unskewG2)
)

// singleSimplex2 expects coordinates already skewed by transform2.
func singleSimplex2(seed int32, x, y float32) float32 {
	g2 := unskewG2

	i := fastFloor(x)
	j := fastFloor(y)
	xi := x - float32(i)
	yi := y - float32(j)

	t := (xi + yi) * g2
	x0 := xi - t
	y0 := yi - t

	i *= primeX
	j *= primeY

	var n0, n1, n2 float32

	a := 0.5 - x0*x0 - y0*y0
	if a > 0 {
		n0 = (a * a) * (a * a) * gradCoord2(seed, i, j, x0, y0)
	}

	c := simplexFarT*t + (simplexFarA + a)
	if c > 0 {
		x2 := x0 + (2*g2 - 1)
		y2 := y0 + (2*g2 - 1)
		n2 = (c * c) * (c * c) * gradCoord2(seed, i+primeX, j+primeY, x2, y2)
	}

	if y0 > x0 {
		x1 := x0 + g2
		y1 := y0 + (g2 - 1)
		b := 0.5 - x1*x1 - y1*y1
		if b > 0 {
			n1 = (b * b) * (b * b) * gradCoord2(seed, i, j+primeY, x1, y1)
		}
	} else {
		x1 := x0 + (g2 - 1)
		y1 := y0 + g2
		b := 0.5 - x1*x1 - y1*y1
		if b > 0 {
			n1 = (b * b) * (b * b) * gradCoord2(seed, i+primeX, j, x1, y1)
		}
	}

	return (n0 + n1 + n2) * 99.83685446303647
}

// singleOpenSimplex2_3 evaluates two offset cube grids; the rotation that
// makes them a body-centred lattice is applied in transform3.
func singleOpenSimplex2_3(seed int32, x, y, z float32) float32 {
	i := fastRound(x)
	j := fastRound(y)
	k := fastRound(z)
	x0 := x - float32(i)
	y0 := y - float32(j)
	z0 := z - float32(k)

	xNSign := int32(-1.0-x0) | 1
	yNSign := int32(-1.0-y0) | 1
	zNSign := int32(-1.0-z0) | 1

	ax0 := float32(xNSign) * -x0
	ay0 := float32(yNSign) * -y0
	az0 := float32(zNSign) * -z0

	i *= primeX
	j *= primeY
	k *= primeZ

	var value float32
	a := (0.6 - x0*x0) - (y0*y0 + z0*z0)

	for l := 0; ; l++ {
		if a > 0 {
			value += (a * a) * (a * a) * gradCoord3(seed, i, j, k, x0, y0, z0)
		}

		switch {
		case ax0 >= ay0 && ax0 >= az0:
			b := a + ax0 + ax0
			if b > 1 {
				b -= 1
				value += (b * b) * (b * b) * gradCoord3(seed, i-xNSign*primeX, j, k, x0+float32(xNSign), y0, z0)
			}
		case ay0 > ax0 && ay0 >= az0:
			b := a + ay0 + ay0
			if b > 1 {
				b -= 1
				value += (b * b) * (b * b) * gradCoord3(seed, i, j-yNSign*primeY, k, x0, y0+float32(yNSign), z0)
			}
		default:
			b := a + az0 + az0
			if b > 1 {
				b -= 1
				value += (b * b) * (b * b) * gradCoord3(seed, i, j, k-zNSign*primeZ, x0, y0, z0+float32(zNSign))
			}
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

		seed = ^seed
	}

	return value * 32.69428253173828125
}
