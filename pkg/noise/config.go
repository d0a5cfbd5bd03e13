package noise

import "fmt"

// Noise holds every tunable parameter of the generator. The zero value is
// not useful; create one with New.
//
// Evaluation methods only read the configuration, so one instance may be
// shared by concurrent readers as long as nobody calls a setter meanwhile.
type Noise struct {
	seed      int32
	frequency float32

	noiseType      NoiseType
	rotationType3D RotationType3D

	fractalType      FractalType
	octaves          int
	lacunarity       float32
	gain             float32
	weightedStrength float32
	pingPongStrength float32

	cellularDistance CellularDistanceFunction
	cellularReturn   CellularReturnType
	cellularJitter   float32

	warpType DomainWarpType
	warpAmp  float32
}

// New returns a Noise with the default configuration: seed 1337, frequency
// 0.01, OpenSimplex2, no fractal, 3 octaves, lacunarity 2, gain 0.5.
func New() *Noise {
	return &Noise{
		seed:             1337,
		frequency:        0.01,
		noiseType:        OpenSimplex2,
		rotationType3D:   RotationNone,
		fractalType:      FractalNone,
		octaves:          3,
		lacunarity:       2.0,
		gain:             0.5,
		weightedStrength: 0.0,
		pingPongStrength: 2.0,
		cellularDistance: DistanceEuclideanSq,
		cellularReturn:   ReturnDistance,
		cellularJitter:   1.0,
		warpType:         WarpOpenSimplex2,
		warpAmp:          1.0,
	}
}

func (n *Noise) SetSeed(seed int32)             { n.seed = seed }
func (n *Noise) Seed() int32                    { return n.seed }
func (n *Noise) SetFrequency(f float32)         { n.frequency = f }
func (n *Noise) Frequency() float32             { return n.frequency }
func (n *Noise) NoiseType() NoiseType           { return n.noiseType }
func (n *Noise) RotationType3D() RotationType3D { return n.rotationType3D }
func (n *Noise) FractalType() FractalType       { return n.fractalType }

// SetNoiseType selects the base generator.
func (n *Noise) SetNoiseType(t NoiseType) error {
	if !t.valid() {
		return fmt.Errorf("%w: noise type %d", ErrInvalidArgument, int(t))
	}
	n.noiseType = t
	return nil
}

// SetRotationType3D selects the rotation applied before 3D evaluation.
func (n *Noise) SetRotationType3D(t RotationType3D) error {
	if !t.valid() {
		return fmt.Errorf("%w: rotation type %d", ErrInvalidArgument, int(t))
	}
	n.rotationType3D = t
	return nil
}

// SetFractalType selects the octave combination rule.
func (n *Noise) SetFractalType(t FractalType) error {
	if !t.valid() {
		return fmt.Errorf("%w: fractal type %d", ErrInvalidArgument, int(t))
	}
	n.fractalType = t
	return nil
}

// SetFractalOctaves sets the number of octaves; it must be at least 1.
func (n *Noise) SetFractalOctaves(octaves int) error {
	if octaves < 1 {
		return fmt.Errorf("%w: octaves %d < 1", ErrInvalidArgument, octaves)
	}
	n.octaves = octaves
	return nil
}

func (n *Noise) FractalOctaves() int { return n.octaves }

// SetFractalLacunarity sets the per-octave frequency multiplier.
func (n *Noise) SetFractalLacunarity(l float32) { n.lacunarity = l }
func (n *Noise) FractalLacunarity() float32     { return n.lacunarity }

// SetFractalGain sets the per-octave amplitude multiplier.
func (n *Noise) SetFractalGain(g float32) { n.gain = g }
func (n *Noise) FractalGain() float32     { return n.gain }

// SetFractalWeightedStrength scales octave amplitude by the previous
// octave's value. 0 disables weighting; 1 applies it fully.
func (n *Noise) SetFractalWeightedStrength(s float32) { n.weightedStrength = s }
func (n *Noise) FractalWeightedStrength() float32     { return n.weightedStrength }

// SetFractalPingPongStrength only affects FractalPingPong.
func (n *Noise) SetFractalPingPongStrength(s float32) { n.pingPongStrength = s }
func (n *Noise) FractalPingPongStrength() float32     { return n.pingPongStrength }

// SetCellularDistanceFunction selects the metric for Cellular noise.
func (n *Noise) SetCellularDistanceFunction(f CellularDistanceFunction) error {
	if !f.valid() {
		return fmt.Errorf("%w: cellular distance function %d", ErrInvalidArgument, int(f))
	}
	n.cellularDistance = f
	return nil
}

func (n *Noise) CellularDistanceFunction() CellularDistanceFunction { return n.cellularDistance }

// SetCellularReturnType selects the value Cellular noise returns.
func (n *Noise) SetCellularReturnType(t CellularReturnType) error {
	if !t.valid() {
		return fmt.Errorf("%w: cellular return type %d", ErrInvalidArgument, int(t))
	}
	n.cellularReturn = t
	return nil
}

func (n *Noise) CellularReturnType() CellularReturnType { return n.cellularReturn }

// SetCellularJitter sets the maximum offset of a cell point from its grid
// position. Values above 1 make cells overlap and produce artifacts.
func (n *Noise) SetCellularJitter(j float32) { n.cellularJitter = j }
func (n *Noise) CellularJitter() float32     { return n.cellularJitter }

// SetDomainWarpType selects the displacement field used by DomainWarp2/3.
func (n *Noise) SetDomainWarpType(t DomainWarpType) error {
	if !t.valid() {
		return fmt.Errorf("%w: domain warp type %d", ErrInvalidArgument, int(t))
	}
	n.warpType = t
	return nil
}

func (n *Noise) DomainWarpType() DomainWarpType { return n.warpType }

// SetDomainWarpAmp sets the maximum displacement of DomainWarp2/3.
func (n *Noise) SetDomainWarpAmp(a float32) { n.warpAmp = a }
func (n *Noise) DomainWarpAmp() float32     { return n.warpAmp }

// fractalBounding returns 1 over the sum of the octave amplitudes. It is
// derived from the current octaves and gain on every call.
func (n *Noise) fractalBounding() float32 {
	gain := fastAbs(n.gain)
	amp := gain
	ampFractal := float32(1.0)
	for i := 1; i < n.octaves; i++ {
		ampFractal += amp
		amp *= gain
	}
	return 1 / ampFractal
}
