package noise

// Largest jitter that keeps every cell point inside its 3x3(x3) search
// neighbourhood.
const (
	cellularJitter2 = 0.43701595
	cellularJitter3 = 0.39614353
)

// cellularDistance folds the components of an offset vector into a
// distance according to the configured function. Euclidean distances stay
// squared here; cellularResult takes the root only when it is needed.
func cellularDistance(f CellularDistanceFunction, vx, vy, vz float32) float32 {
	switch f {
	case DistanceManhattan:
		return fastAbs(vx) + fastAbs(vy) + fastAbs(vz)
	case DistanceHybrid:
		return (fastAbs(vx) + fastAbs(vy) + fastAbs(vz)) + (vx*vx + vy*vy + vz*vz)
	default:
		return vx*vx + vy*vy + vz*vz
	}
}

// singleCellular2 visits the 3x3 neighbourhood in x-major order (x outer,
// y inner, both ascending). A candidate only replaces the nearest point if
// it is strictly closer, so ties go to the point visited first.
func (n *Noise) singleCellular2(seed int32, x, y float32) float32 {
	xr := fastRound(x)
	yr := fastRound(y)

	distance0 := float32(1e10)
	distance1 := float32(1e10)
	var closestHash int32

	jitter := cellularJitter2 * n.cellularJitter

	xPrimed := (xr - 1) * primeX
	yPrimedBase := (yr - 1) * primeY

	for xi := xr - 1; xi <= xr+1; xi++ {
		yPrimed := yPrimedBase
		for yi := yr - 1; yi <= yr+1; yi++ {
			h := hash2(seed, xPrimed, yPrimed)
			idx := h & (255 << 1)

			vecX := (float32(xi) - x) + float32(randVecs2D[idx]*jitter)
			vecY := (float32(yi) - y) + float32(randVecs2D[idx|1]*jitter)

			newDistance := cellularDistance(n.cellularDistance, vecX, vecY, 0)

			distance1 = fastMax(fastMin(distance1, newDistance), distance0)
			if newDistance < distance0 {
				distance0 = newDistance
				closestHash = h
			}
			yPrimed += primeY
		}
		xPrimed += primeX
	}

	return n.cellularResult(distance0, distance1, closestHash)
}

// singleCellular3 visits the 3x3x3 neighbourhood with x outermost, then y,
// then z, all ascending. Ties resolve as in singleCellular2.
func (n *Noise) singleCellular3(seed int32, x, y, z float32) float32 {
	xr := fastRound(x)
	yr := fastRound(y)
	zr := fastRound(z)

	distance0 := float32(1e10)
	distance1 := float32(1e10)
	var closestHash int32

	jitter := cellularJitter3 * n.cellularJitter

	xPrimed := (xr - 1) * primeX
	yPrimedBase := (yr - 1) * primeY
	zPrimedBase := (zr - 1) * primeZ

	for xi := xr - 1; xi <= xr+1; xi++ {
		yPrimed := yPrimedBase
		for yi := yr - 1; yi <= yr+1; yi++ {
			zPrimed := zPrimedBase
			for zi := zr - 1; zi <= zr+1; zi++ {
				h := hash3(seed, xPrimed, yPrimed, zPrimed)
				idx := h & (255 << 2)

				vecX := (float32(xi) - x) + float32(randVecs3D[idx]*jitter)
				vecY := (float32(yi) - y) + float32(randVecs3D[idx|1]*jitter)
				vecZ := (float32(zi) - z) + float32(randVecs3D[idx|2]*jitter)

				newDistance := cellularDistance(n.cellularDistance, vecX, vecY, vecZ)

				distance1 = fastMax(fastMin(distance1, newDistance), distance0)
				if newDistance < distance0 {
					distance0 = newDistance
					closestHash = h
				}
				zPrimed += primeZ
			}
			yPrimed += primeY
		}
		xPrimed += primeX
	}

	return n.cellularResult(distance0, distance1, closestHash)
}

func (n *Noise) cellularResult(distance0, distance1 float32, closestHash int32) float32 {
	if n.cellularDistance == DistanceEuclidean && n.cellularReturn >= ReturnDistance {
		distance0 = fastSqrt(distance0)
		if n.cellularReturn >= ReturnDistance2 {
			distance1 = fastSqrt(distance1)
		}
	}

	switch n.cellularReturn {
	case ReturnCellValue:
		return float32(closestHash) * (1 / 2147483648.0)
	case ReturnDistance:
		return distance0 - 1
	case ReturnDistance2:
		return distance1 - 1
	case ReturnDistance2Add:
		return (distance1+distance0)*0.5 - 1
	case ReturnDistance2Sub:
		return distance1 - distance0 - 1
	case ReturnDistance2Mul:
		return distance1*distance0*0.5 - 1
	case ReturnDistance2Div:
		return distance0/distance1 - 1
	default:
		return 0
	}
}
