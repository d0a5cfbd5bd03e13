package config

import (
	"fmt"

	"github.com/OCharnyshevich/fastnoise/pkg/noise"
)

// Config holds the generator settings and the sampling grid used by the
// noisegrid command. Enum fields are stored by name so presets stay
// readable.
type Config struct {
	Seed      int32   `json:"seed"`
	Frequency float32 `json:"frequency"`
	NoiseType string  `json:"noise_type"`
	Rotation  string  `json:"rotation_type_3d"` // "none", "improvexyplanes" or "improvexzplanes"

	FractalType      string  `json:"fractal_type"`
	Octaves          int     `json:"octaves"`
	Lacunarity       float32 `json:"lacunarity"`
	Gain             float32 `json:"gain"`
	WeightedStrength float32 `json:"weighted_strength"`
	PingPongStrength float32 `json:"ping_pong_strength"`

	CellularDistance string  `json:"cellular_distance"`
	CellularReturn   string  `json:"cellular_return"`
	CellularJitter   float32 `json:"cellular_jitter"`

	WarpType string  `json:"warp_type"`
	WarpAmp  float32 `json:"warp_amp"`

	// Sampling grid. Depth 0 samples a 2D plane.
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Depth  int     `json:"depth"`
	Step   float32 `json:"step"`
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Z      float32 `json:"z"`
	Warp   bool    `json:"warp"` // pass every sample through the domain warp first
}

// DefaultConfig returns a Config matching noise.New and a 64x64 plane.
func DefaultConfig() *Config {
	return &Config{
		Seed:             1337,
		Frequency:        0.01,
		NoiseType:        noise.OpenSimplex2.String(),
		Rotation:         noise.RotationNone.String(),
		FractalType:      noise.FractalNone.String(),
		Octaves:          3,
		Lacunarity:       2.0,
		Gain:             0.5,
		WeightedStrength: 0,
		PingPongStrength: 2.0,
		CellularDistance: noise.DistanceEuclideanSq.String(),
		CellularReturn:   noise.ReturnDistance.String(),
		CellularJitter:   1.0,
		WarpType:         noise.WarpOpenSimplex2.String(),
		WarpAmp:          1.0,
		Width:            64,
		Height:           64,
		Step:             1,
	}
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["frequency"] {
		cfg.Frequency = fromFile.Frequency
	}
	if !explicitFlags["noise-type"] {
		cfg.NoiseType = fromFile.NoiseType
	}
	if !explicitFlags["rotation-type"] {
		cfg.Rotation = fromFile.Rotation
	}
	if !explicitFlags["fractal-type"] {
		cfg.FractalType = fromFile.FractalType
	}
	if !explicitFlags["octaves"] {
		cfg.Octaves = fromFile.Octaves
	}
	if !explicitFlags["lacunarity"] {
		cfg.Lacunarity = fromFile.Lacunarity
	}
	if !explicitFlags["gain"] {
		cfg.Gain = fromFile.Gain
	}
	if !explicitFlags["weighted-strength"] {
		cfg.WeightedStrength = fromFile.WeightedStrength
	}
	if !explicitFlags["ping-pong-strength"] {
		cfg.PingPongStrength = fromFile.PingPongStrength
	}
	if !explicitFlags["cellular-distance"] {
		cfg.CellularDistance = fromFile.CellularDistance
	}
	if !explicitFlags["cellular-return"] {
		cfg.CellularReturn = fromFile.CellularReturn
	}
	if !explicitFlags["cellular-jitter"] {
		cfg.CellularJitter = fromFile.CellularJitter
	}
	if !explicitFlags["warp-type"] {
		cfg.WarpType = fromFile.WarpType
	}
	if !explicitFlags["warp-amp"] {
		cfg.WarpAmp = fromFile.WarpAmp
	}
	if !explicitFlags["width"] {
		cfg.Width = fromFile.Width
	}
	if !explicitFlags["height"] {
		cfg.Height = fromFile.Height
	}
	if !explicitFlags["depth"] {
		cfg.Depth = fromFile.Depth
	}
	if !explicitFlags["step"] {
		cfg.Step = fromFile.Step
	}
	if !explicitFlags["x"] {
		cfg.X = fromFile.X
	}
	if !explicitFlags["y"] {
		cfg.Y = fromFile.Y
	}
	if !explicitFlags["z"] {
		cfg.Z = fromFile.Z
	}
	if !explicitFlags["warp"] {
		cfg.Warp = fromFile.Warp
	}
}

// Build resolves the named settings and returns a configured generator.
func (c *Config) Build() (*noise.Noise, error) {
	n := noise.New()
	n.SetSeed(c.Seed)
	n.SetFrequency(c.Frequency)

	nt, err := noise.ParseNoiseType(c.NoiseType)
	if err != nil {
		return nil, err
	}
	if err := n.SetNoiseType(nt); err != nil {
		return nil, err
	}

	rt, err := noise.ParseRotationType3D(c.Rotation)
	if err != nil {
		return nil, err
	}
	if err := n.SetRotationType3D(rt); err != nil {
		return nil, err
	}

	ft, err := noise.ParseFractalType(c.FractalType)
	if err != nil {
		return nil, err
	}
	if err := n.SetFractalType(ft); err != nil {
		return nil, err
	}
	if err := n.SetFractalOctaves(c.Octaves); err != nil {
		return nil, err
	}
	n.SetFractalLacunarity(c.Lacunarity)
	n.SetFractalGain(c.Gain)
	n.SetFractalWeightedStrength(c.WeightedStrength)
	n.SetFractalPingPongStrength(c.PingPongStrength)

	df, err := noise.ParseCellularDistanceFunction(c.CellularDistance)
	if err != nil {
		return nil, err
	}
	if err := n.SetCellularDistanceFunction(df); err != nil {
		return nil, err
	}
	cr, err := noise.ParseCellularReturnType(c.CellularReturn)
	if err != nil {
		return nil, err
	}
	if err := n.SetCellularReturnType(cr); err != nil {
		return nil, err
	}
	n.SetCellularJitter(c.CellularJitter)

	wt, err := noise.ParseDomainWarpType(c.WarpType)
	if err != nil {
		return nil, err
	}
	if err := n.SetDomainWarpType(wt); err != nil {
		return nil, err
	}
	n.SetDomainWarpAmp(c.WarpAmp)

	return n, nil
}

// Samples returns the number of values the configured grid produces.
func (c *Config) Samples() (int, error) {
	if c.Depth < 0 {
		return 0, fmt.Errorf("%w: grid depth %d", noise.ErrInvalidArgument, c.Depth)
	}
	return noise.GridSize(c.Width, c.Height, max(c.Depth, 1))
}
