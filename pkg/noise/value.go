package noise

func singleValue2(seed int32, x, y float32) float32 {
	x1 := fastFloor(x)
	y1 := fastFloor(y)

	xs := interpHermite(x - float32(x1))
	ys := interpHermite(y - float32(y1))

	x1 *= primeX
	y1 *= primeY
	x2 := x1 + primeX
	y2 := y1 + primeY

	xf1 := lerp(valCoord2(seed, x1, y1), valCoord2(seed, x2, y1), xs)
	xf2 := lerp(valCoord2(seed, x1, y2), valCoord2(seed, x2, y2), xs)

	return lerp(xf1, xf2, ys)
}

func singleValue3(seed int32, x, y, z float32) float32 {
	x1 := fastFloor(x)
	y1 := fastFloor(y)
	z1 := fastFloor(z)

	xs := interpHermite(x - float32(x1))
	ys := interpHermite(y - float32(y1))
	zs := interpHermite(z - float32(z1))

	x1 *= primeX
	y1 *= primeY
	z1 *= primeZ
	x2 := x1 + primeX
	y2 := y1 + primeY
	z2 := z1 + primeZ

	xf00 := lerp(valCoord3(seed, x1, y1, z1), valCoord3(seed, x2, y1, z1), xs)
	xf10 := lerp(valCoord3(seed, x1, y2, z1), valCoord3(seed, x2, y2, z1), xs)
	xf01 := lerp(valCoord3(seed, x1, y1, z2), valCoord3(seed, x2, y1, z2), xs)
	xf11 := lerp(valCoord3(seed, x1, y2, z2), valCoord3(seed, x2, y2, z2), xs)

	yf0 := lerp(xf00, xf10, ys)
	yf1 := lerp(xf01, xf11, ys)

	return lerp(yf0, yf1, zs)
}

// singleValueCubic2 interpolates a 4x4 lattice neighbourhood. The 1/1.5^2
// factor brings the cubic overshoot back to about [-1, 1].
func singleValueCubic2(seed int32, x, y float32) float32 {
	x1 := fastFloor(x)
	y1 := fastFloor(y)

	xs := x - float32(x1)
	ys := y - float32(y1)

	x1 *= primeX
	y1 *= primeY
	x0 := x1 - primeX
	y0 := y1 - primeY
	x2 := x1 + primeX
	y2 := y1 + primeY
	x3 := x1 + primeX2
	y3 := y1 + primeY2

	return cubicLerp(
		cubicLerp(valCoord2(seed, x0, y0), valCoord2(seed, x1, y0), valCoord2(seed, x2, y0), valCoord2(seed, x3, y0), xs),
		cubicLerp(valCoord2(seed, x0, y1), valCoord2(seed, x1, y1), valCoord2(seed, x2, y1), valCoord2(seed, x3, y1), xs),
		cubicLerp(valCoord2(seed, x0, y2), valCoord2(seed, x1, y2), valCoord2(seed, x2, y2), valCoord2(seed, x3, y2), xs),
		cubicLerp(valCoord2(seed, x0, y3), valCoord2(seed, x1, y3), valCoord2(seed, x2, y3), valCoord2(seed, x3, y3), xs),
		ys) * (1 / (1.5 * 1.5))
}

func singleValueCubic3(seed int32, x, y, z float32) float32 {
	x1 := fastFloor(x)
	y1 := fastFloor(y)
	z1 := fastFloor(z)

	xs := x - float32(x1)
	ys := y - float32(y1)
	zs := z - float32(z1)

	x1 *= primeX
	y1 *= primeY
	z1 *= primeZ

	xp := [4]int32{x1 - primeX, x1, x1 + primeX, x1 + primeX2}
	yp := [4]int32{y1 - primeY, y1, y1 + primeY, y1 + primeY2}
	zp := [4]int32{z1 - primeZ, z1, z1 + primeZ, z1 + primeZ2}

	var zf [4]float32
	for k, zk := range zp {
		var yf [4]float32
		for j, yj := range yp {
			yf[j] = cubicLerp(
				valCoord3(seed, xp[0], yj, zk),
				valCoord3(seed, xp[1], yj, zk),
				valCoord3(seed, xp[2], yj, zk),
				valCoord3(seed, xp[3], yj, zk),
				xs)
		}
		zf[k] = cubicLerp(yf[0], yf[1], yf[2], yf[3], ys)
	}

	return cubicLerp(zf[0], zf[1], zf[2], zf[3], zs) * (1 / (1.5 * 1.5 * 1.5))
}
