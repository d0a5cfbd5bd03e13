package noise

// singleOpenSimplex2S2 is 2D simplex noise with a larger kernel: it sums
// four of the surrounding lattice points instead of three.
func singleOpenSimplex2S2(seed int32, x, y float32) float32 {
	g2 := unskewG2

	i := fastFloor(x)
	j := fastFloor(y)
	xi := x - float32(i)
	yi := y - float32(j)

	i *= primeX
	j *= primeY
	i1 := i + primeX
	j1 := j + primeY

	t := (xi + yi) * g2
	x0 := xi - t
	y0 := yi - t

	a0 := (2.0 / 3.0) - x0*x0 - y0*y0
	value := (a0 * a0) * (a0 * a0) * gradCoord2(seed, i, j, x0, y0)

	a1 := simplexFarT*t + (simplexFarA + a0)
	x1 := x0 - (1 - 2*g2)
	y1 := y0 - (1 - 2*g2)
	value += (a1 * a1) * (a1 * a1) * gradCoord2(seed, i1, j1, x1, y1)

	xmyi := xi - yi
	if t > g2 {
		if xi+xmyi > 1 {
			x2 := x0 + (3*g2 - 2)
			y2 := y0 + (3*g2 - 1)
			if a2 := (2.0 / 3.0) - x2*x2 - y2*y2; a2 > 0 {
				value += (a2 * a2) * (a2 * a2) * gradCoord2(seed, i+primeX2, j+primeY, x2, y2)
			}
		} else {
			x2 := x0 + g2
			y2 := y0 + (g2 - 1)
			if a2 := (2.0 / 3.0) - x2*x2 - y2*y2; a2 > 0 {
				value += (a2 * a2) * (a2 * a2) * gradCoord2(seed, i, j+primeY, x2, y2)
			}
		}

		if yi-xmyi > 1 {
			x3 := x0 + (3*g2 - 1)
			y3 := y0 + (3*g2 - 2)
			if a3 := (2.0 / 3.0) - x3*x3 - y3*y3; a3 > 0 {
				value += (a3 * a3) * (a3 * a3) * gradCoord2(seed, i+primeX, j+primeY2, x3, y3)
			}
		} else {
			x3 := x0 + (g2 - 1)
			y3 := y0 + g2
			if a3 := (2.0 / 3.0) - x3*x3 - y3*y3; a3 > 0 {
				value += (a3 * a3) * (a3 * a3) * gradCoord2(seed, i+primeX, j, x3, y3)
			}
		}
	} else {
		if xi+xmyi < 0 {
			x2 := x0 + (1 - g2)
			y2 := y0 - g2
			if a2 := (2.0 / 3.0) - x2*x2 - y2*y2; a2 > 0 {
				value += (a2 * a2) * (a2 * a2) * gradCoord2(seed, i-primeX, j, x2, y2)
			}
		} else {
			x2 := x0 + (g2 - 1)
			y2 := y0 + g2
			if a2 := (2.0 / 3.0) - x2*x2 - y2*y2; a2 > 0 {
				value += (a2 * a2) * (a2 * a2) * gradCoord2(seed, i+primeX, j, x2, y2)
			}
		}

		if yi < xmyi {
			x2 := x0 - g2
			y2 := y0 - (g2 - 1)
			if a2 := (2.0 / 3.0) - x2*x2 - y2*y2; a2 > 0 {
				value += (a2 * a2) * (a2 * a2) * gradCoord2(seed, i, j-primeY, x2, y2)
			}
		} else {
			x2 := x0 + g2
			y2 := y0 + (g2 - 1)
			if a2 := (2.0 / 3.0) - x2*x2 - y2*y2; a2 > 0 {
				value += (a2 * a2) * (a2 * a2) * gradCoord2(seed, i, j+primeY, x2, y2)
			}
		}
	}

	return value * 18.24196194486065
}

// singleOpenSimplex2S3 evaluates the 8 nearest points of two offset cube
// grids. Masks are 0 or -1 depending on which half of the cell the sample
// falls in; the skip flags avoid counting a second-grid point twice.
func singleOpenSimplex2S3(seed int32, x, y, z float32) float32 {
	i := fastFloor(x)
	j := fastFloor(y)
	k := fastFloor(z)
	xi := x - float32(i)
	yi := y - float32(j)
	zi := z - float32(k)

	i *= primeX
	j *= primeY
	k *= primeZ
	seed2 := seed + 1293373

	xNMask := int32(-0.5 - xi)
	yNMask := int32(-0.5 - yi)
	zNMask := int32(-0.5 - zi)

	x0 := xi + float32(xNMask)
	y0 := yi + float32(yNMask)
	z0 := zi + float32(zNMask)
	a0 := 0.75 - x0*x0 - y0*y0 - z0*z0
	value := (a0 * a0) * (a0 * a0) * gradCoord3(seed,
		i+(xNMask&primeX), j+(yNMask&primeY), k+(zNMask&primeZ), x0, y0, z0)

	x1 := xi - 0.5
	y1 := yi - 0.5
	z1 := zi - 0.5
	a1 := 0.75 - x1*x1 - y1*y1 - z1*z1
	value += (a1 * a1) * (a1 * a1) * gradCoord3(seed2,
		i+primeX, j+primeY, k+primeZ, x1, y1, z1)

	xAFlipMask0 := float32((xNMask|1)<<1) * x1
	yAFlipMask0 := float32((yNMask|1)<<1) * y1
	zAFlipMask0 := float32((zNMask|1)<<1) * z1
	xAFlipMask1 := float32(-2-(xNMask<<2))*x1 - 1.0
	yAFlipMask1 := float32(-2-(yNMask<<2))*y1 - 1.0
	zAFlipMask1 := float32(-2-(zNMask<<2))*z1 - 1.0

	xSign := float32(xNMask | 1)
	ySign := float32(yNMask | 1)
	zSign := float32(zNMask | 1)

	skip5 := false
	if a2 := xAFlipMask0 + a0; a2 > 0 {
		x2 := x0 - xSign
		value += (a2 * a2) * (a2 * a2) * gradCoord3(seed,
			i+(^xNMask&primeX), j+(yNMask&primeY), k+(zNMask&primeZ), x2, y0, z0)
	} else {
		if a3 := yAFlipMask0 + zAFlipMask0 + a0; a3 > 0 {
			y3 := y0 - ySign
			z3 := z0 - zSign
			value += (a3 * a3) * (a3 * a3) * gradCoord3(seed,
				i+(xNMask&primeX), j+(^yNMask&primeY), k+(^zNMask&primeZ), x0, y3, z3)
		}

		if a4 := xAFlipMask1 + a1; a4 > 0 {
			x4 := xSign + x1
			value += (a4 * a4) * (a4 * a4) * gradCoord3(seed2,
				i+(xNMask&primeX2), j+primeY, k+primeZ, x4, y1, z1)
			skip5 = true
		}
	}

	skip9 := false
	if a6 := yAFlipMask0 + a0; a6 > 0 {
		y6 := y0 - ySign
		value += (a6 * a6) * (a6 * a6) * gradCoord3(seed,
			i+(xNMask&primeX), j+(^yNMask&primeY), k+(zNMask&primeZ), x0, y6, z0)
	} else {
		if a7 := xAFlipMask0 + zAFlipMask0 + a0; a7 > 0 {
			x7 := x0 - xSign
			z7 := z0 - zSign
			value += (a7 * a7) * (a7 * a7) * gradCoord3(seed,
				i+(^xNMask&primeX), j+(yNMask&primeY), k+(^zNMask&primeZ), x7, y0, z7)
		}

		if a8 := yAFlipMask1 + a1; a8 > 0 {
			y8 := ySign + y1
			value += (a8 * a8) * (a8 * a8) * gradCoord3(seed2,
				i+primeX, j+(yNMask&primeY2), k+primeZ, x1, y8, z1)
			skip9 = true
		}
	}

	skipD := false
	if aA := zAFlipMask0 + a0; aA > 0 {
		zA := z0 - zSign
		value += (aA * aA) * (aA * aA) * gradCoord3(seed,
			i+(xNMask&primeX), j+(yNMask&primeY), k+(^zNMask&primeZ), x0, y0, zA)
	} else {
		if aB := xAFlipMask0 + yAFlipMask0 + a0; aB > 0 {
			xB := x0 - xSign
			yB := y0 - ySign
			value += (aB * aB) * (aB * aB) * gradCoord3(seed,
				i+(^xNMask&primeX), j+(^yNMask&primeY), k+(zNMask&primeZ), xB, yB, z0)
		}

		if aC := zAFlipMask1 + a1; aC > 0 {
			zC := zSign + z1
			value += (aC * aC) * (aC * aC) * gradCoord3(seed2,
				i+primeX, j+primeY, k+(zNMask&primeZ2), x1, y1, zC)
			skipD = true
		}
	}

	if !skip5 {
		if a5 := yAFlipMask1 + zAFlipMask1 + a1; a5 > 0 {
			y5 := ySign + y1
			z5 := zSign + z1
			value += (a5 * a5) * (a5 * a5) * gradCoord3(seed2,
				i+primeX, j+(yNMask&primeY2), k+(zNMask&primeZ2), x1, y5, z5)
		}
	}

	if !skip9 {
		if a9 := xAFlipMask1 + zAFlipMask1 + a1; a9 > 0 {
			x9 := xSign + x1
			z9 := zSign + z1
			value += (a9 * a9) * (a9 * a9) * gradCoord3(seed2,
				i+(xNMask&primeX2), j+primeY, k+(zNMask&primeZ2), x9, y1, z9)
		}
	}

	if !skipD {
		if aD := xAFlipMask1 + yAFlipMask1 + a1; aD > 0 {
			xD := xSign + x1
			yD := ySign + y1
			value += (aD * aD) * (aD * aD) * gradCoord3(seed2,
				i+(xNMask&primeX2), j+(yNMask&primeY2), k+primeZ, xD, yD, z1)
		}
	}

	return value * 9.046026385208288
}
