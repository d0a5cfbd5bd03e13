package noise

// Lattice coordinates are multiplied by these primes before hashing. All
// arithmetic is int32 and wraps.
const (
	primeX int32 = 501125321
	primeY int32 = 1136930381
	primeZ int32 = 1720413743

	// Doubled primes, wrapped to int32.
	primeX2 int32 = 1002250642
	primeY2 int32 = -2021106534
	primeZ2 int32 = -854139810

	hashMultiplier int32 = 0x27d4eb2d
)

func hash2(seed, xPrimed, yPrimed int32) int32 {
	h := seed ^ xPrimed ^ yPrimed
	h *= hashMultiplier
	return h
}

func hash3(seed, xPrimed, yPrimed, zPrimed int32) int32 {
	h := seed ^ xPrimed ^ yPrimed ^ zPrimed
	h *= hashMultiplier
	return h
}

// valCoord2 maps a lattice point to a value in [-1, 1].
func valCoord2(seed, xPrimed, yPrimed int32) float32 {
	h := hash2(seed, xPrimed, yPrimed)
	h *= h
	h ^= h << 19
	return float32(h) * (1 / 2147483648.0)
}

func valCoord3(seed, xPrimed, yPrimed, zPrimed int32) float32 {
	h := hash3(seed, xPrimed, yPrimed, zPrimed)
	h *= h
	h ^= h << 19
	return float32(h) * (1 / 2147483648.0)
}

func gradCoord2(seed, xPrimed, yPrimed int32, xd, yd float32) float32 {
	h := hash2(seed, xPrimed, yPrimed)
	h ^= h >> 15
	h &= 127 << 1
	return float32(xd*gradients2D[h]) + float32(yd*gradients2D[h|1])
}

func gradCoord3(seed, xPrimed, yPrimed, zPrimed int32, xd, yd, zd float32) float32 {
	h := hash3(seed, xPrimed, yPrimed, zPrimed)
	h ^= h >> 15
	h &= 63 << 2
	return float32(float32(xd*gradients3D[h])+float32(yd*gradients3D[h|1])) + float32(zd*gradients3D[h|2])
}

// gradCoordOut2 returns a random unit vector for the lattice point.
func gradCoordOut2(seed, xPrimed, yPrimed int32) (xo, yo float32) {
	h := hash2(seed, xPrimed, yPrimed) & (255 << 1)
	return randVecs2D[h], randVecs2D[h|1]
}

func gradCoordOut3(seed, xPrimed, yPrimed, zPrimed int32) (xo, yo, zo float32) {
	h := hash3(seed, xPrimed, yPrimed, zPrimed) & (255 << 2)
	return randVecs3D[h], randVecs3D[h|1], randVecs3D[h|2]
}

// gradCoordDual2 scales a random unit vector by the gradient dot product,
// using independent bits of the hash for each.
func gradCoordDual2(seed, xPrimed, yPrimed int32, xd, yd float32) (xo, yo float32) {
	h := hash2(seed, xPrimed, yPrimed)
	index1 := h & (127 << 1)
	index2 := (h >> 7) & (255 << 1)

	value := float32(xd*gradients2D[index1]) + float32(yd*gradients2D[index1|1])
	return value * randVecs2D[index2], value * randVecs2D[index2|1]
}

func gradCoordDual3(seed, xPrimed, yPrimed, zPrimed int32, xd, yd, zd float32) (xo, yo, zo float32) {
	h := hash3(seed, xPrimed, yPrimed, zPrimed)
	index1 := h & (63 << 2)
	index2 := (h >> 6) & (255 << 2)

	value := float32(float32(xd*gradients3D[index1])+float32(yd*gradients3D[index1|1])) + float32(zd*gradients3D[index1|2])
	return value * randVecs3D[index2], value * randVecs3D[index2|1], value * randVecs3D[index2|2]
}
