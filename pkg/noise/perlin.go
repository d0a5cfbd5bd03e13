package noise

func singlePerlin2(seed int32, x, y float32) float32 {
	x0 := fastFloor(x)
	y0 := fastFloor(y)

	xd0 := x - float32(x0)
	yd0 := y - float32(y0)
	xd1 := xd0 - 1
	yd1 := yd0 - 1

	xs := interpQuintic(xd0)
	ys := interpQuintic(yd0)

	x0 *= primeX
	y0 *= primeY
	x1 := x0 + primeX
	y1 := y0 + primeY

	xf0 := lerp(gradCoord2(seed, x0, y0, xd0, yd0), gradCoord2(seed, x1, y0, xd1, yd0), xs)
	xf1 := lerp(gradCoord2(seed, x0, y1, xd0, yd1), gradCoord2(seed, x1, y1, xd1, yd1), xs)

	return lerp(xf0, xf1, ys) * 1.4247691104677813
}

func singlePerlin3(seed int32, x, y, z float32) float32 {
	x0 := fastFloor(x)
	y0 := fastFloor(y)
	z0 := fastFloor(z)

	xd0 := x - float32(x0)
	yd0 := y - float32(y0)
	zd0 := z - float32(z0)
	xd1 := xd0 - 1
	yd1 := yd0 - 1
	zd1 := zd0 - 1

	xs := interpQuintic(xd0)
	ys := interpQuintic(yd0)
	zs := interpQuintic(zd0)

	x0 *= primeX
	y0 *= primeY
	z0 *= primeZ
	x1 := x0 + primeX
	y1 := y0 + primeY
	z1 := z0 + primeZ

	xf00 := lerp(gradCoord3(seed, x0, y0, z0, xd0, yd0, zd0), gradCoord3(seed, x1, y0, z0, xd1, yd0, zd0), xs)
	xf10 := lerp(gradCoord3(seed, x0, y1, z0, xd0, yd1, zd0), gradCoord3(seed, x1, y1, z0, xd1, yd1, zd0), xs)
	xf01 := lerp(gradCoord3(seed, x0, y0, z1, xd0, yd0, zd1), gradCoord3(seed, x1, y0, z1, xd1, yd0, zd1), xs)
	xf11 := lerp(gradCoord3(seed, x0, y1, z1, xd0, yd1, zd1), gradCoord3(seed, x1, y1, z1, xd1, yd1, zd1), xs)

	yf0 := lerp(xf00, xf10, ys)
	yf1 := lerp(xf01, xf11, ys)

	return lerp(yf0, yf1, zs) * 0.964921414852142333984375
}
