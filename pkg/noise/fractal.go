package noise

// Each octave uses seed+i and coordinates scaled by lacunarity^i. The first
// octave's amplitude is the fractal bounding, so that the sum of all
// amplitudes before weighting is 1.

func (n *Noise) fractalFBm2(x, y float32) float32 {
	seed := n.seed
	var sum float32
	amp := n.fractalBounding()

	for i := 0; i < n.octaves; i++ {
		v := n.single2(seed, x, y)
		seed++
		sum += float32(v * amp)
		amp *= lerp(1.0, fastMin(v+1, 2)*0.5, n.weightedStrength)

		x *= n.lacunarity
		y *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

func (n *Noise) fractalFBm3(x, y, z float32) float32 {
	seed := n.seed
	var sum float32
	amp := n.fractalBounding()

	for i := 0; i < n.octaves; i++ {
		v := n.single3(seed, x, y, z)
		seed++
		sum += float32(v * amp)
		amp *= lerp(1.0, fastMin(v+1, 2)*0.5, n.weightedStrength)

		x *= n.lacunarity
		y *= n.lacunarity
		z *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

// Ridged folds each octave around zero so that zero crossings become
// maxima: 1-2|v| maps [-1, 1] onto [-1, 1] with a ridge at v = 0.

func (n *Noise) fractalRidged2(x, y float32) float32 {
	seed := n.seed
	var sum float32
	amp := n.fractalBounding()

	for i := 0; i < n.octaves; i++ {
		v := fastAbs(n.single2(seed, x, y))
		seed++
		sum += float32((v*-2 + 1) * amp)
		amp *= lerp(1.0, 1-v, n.weightedStrength)

		x *= n.lacunarity
		y *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

func (n *Noise) fractalRidged3(x, y, z float32) float32 {
	seed := n.seed
	var sum float32
	amp := n.fractalBounding()

	for i := 0; i < n.octaves; i++ {
		v := fastAbs(n.single3(seed, x, y, z))
		seed++
		sum += float32((v*-2 + 1) * amp)
		amp *= lerp(1.0, 1-v, n.weightedStrength)

		x *= n.lacunarity
		y *= n.lacunarity
		z *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

// PingPong reflects the scaled octave value back and forth over [0, 1],
// which turns smooth gradients into bands.

func (n *Noise) fractalPingPong2(x, y float32) float32 {
	seed := n.seed
	var sum float32
	amp := n.fractalBounding()

	for i := 0; i < n.octaves; i++ {
		v := pingPong((n.single2(seed, x, y) + 1) * n.pingPongStrength)
		seed++
		sum += float32((v - 0.5) * 2 * amp)
		amp *= lerp(1.0, v, n.weightedStrength)

		x *= n.lacunarity
		y *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

func (n *Noise) fractalPingPong3(x, y, z float32) float32 {
	seed := n.seed
	var sum float32
	amp := n.fractalBounding()

	for i := 0; i < n.octaves; i++ {
		v := pingPong((n.single3(seed, x, y, z) + 1) * n.pingPongStrength)
		seed++
		sum += float32((v - 0.5) * 2 * amp)
		amp *= lerp(1.0, v, n.weightedStrength)

		x *= n.lacunarity
		y *= n.lacunarity
		z *= n.lacunarity
		amp *= n.gain
	}
	return sum
}
