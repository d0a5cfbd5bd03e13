package noise

import "math"

// The float32 conversions around products keep the compiler from fusing
// multiply-add pairs, which would change results on architectures with FMA.

func fastFloor(f float32) int32 {
	if f >= 0 {
		return int32(f)
	}
	return int32(f) - 1
}

func fastRound(f float32) int32 {
	if f >= 0 {
		return int32(f + 0.5)
	}
	return int32(f - 0.5)
}

func fastAbs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func fastMin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fastMax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func fastSqrt(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}

func lerp(a, b, t float32) float32 {
	return a + float32(t*(b-a))
}

func interpHermite(t float32) float32 {
	return t * t * (3 - float32(t*2))
}

func interpQuintic(t float32) float32 {
	return t * t * t * (float32(t*float32(float32(t*6)-15)) + 10)
}

func cubicLerp(a, b, c, d, t float32) float32 {
	p := (d - c) - (a - b)
	return float32(float32(float32(t*t*t*p)+float32(t*t*((a-b)-p)))+float32(t*(c-a))) + b
}

func pingPong(t float32) float32 {
	t -= float32(int32(t*0.5) * 2)
	if t < 1 {
		return t
	}
	return 2 - t
}
