package noise

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when a configuration value is outside the
// closed set of supported values.
var ErrInvalidArgument = errors.New("invalid argument")

// NoiseType selects the base generator.
type NoiseType int

const (
	OpenSimplex2 NoiseType = iota
	OpenSimplex2S
	Cellular
	Perlin
	ValueCubic
	Value
)

var noiseTypeNames = [...]string{
	OpenSimplex2:  "opensimplex2",
	OpenSimplex2S: "opensimplex2s",
	Cellular:      "cellular",
	Perlin:        "perlin",
	ValueCubic:    "valuecubic",
	Value:         "value",
}

func (t NoiseType) String() string {
	if t < 0 || int(t) >= len(noiseTypeNames) {
		return fmt.Sprintf("NoiseType(%d)", int(t))
	}
	return noiseTypeNames[t]
}

func (t NoiseType) valid() bool { return t >= 0 && int(t) < len(noiseTypeNames) }

// ParseNoiseType maps a case-insensitive name to a NoiseType.
func ParseNoiseType(s string) (NoiseType, error) {
	i, err := parseName("noise type", s, noiseTypeNames[:])
	return NoiseType(i), err
}

// RotationType3D selects the rotation applied to 3D coordinates before
// evaluation. 2D evaluation ignores it.
type RotationType3D int

const (
	RotationNone RotationType3D = iota
	RotationImproveXYPlanes
	RotationImproveXZPlanes
)

var rotationTypeNames = [...]string{
	RotationNone:            "none",
	RotationImproveXYPlanes: "improvexyplanes",
	RotationImproveXZPlanes: "improvexzplanes",
}

func (t RotationType3D) String() string {
	if t < 0 || int(t) >= len(rotationTypeNames) {
		return fmt.Sprintf("RotationType3D(%d)", int(t))
	}
	return rotationTypeNames[t]
}

func (t RotationType3D) valid() bool { return t >= 0 && int(t) < len(rotationTypeNames) }

// ParseRotationType3D maps a case-insensitive name to a RotationType3D.
func ParseRotationType3D(s string) (RotationType3D, error) {
	i, err := parseName("rotation type", s, rotationTypeNames[:])
	return RotationType3D(i), err
}

// FractalType selects how octaves are combined. The two domain warp modes
// only affect DomainWarp2/DomainWarp3; Noise2/Noise3 treat them as None.
type FractalType int

const (
	FractalNone FractalType = iota
	FractalFBm
	FractalRidged
	FractalPingPong
	FractalDomainWarpProgressive
	FractalDomainWarpIndependent
)

var fractalTypeNames = [...]string{
	FractalNone:                  "none",
	FractalFBm:                   "fbm",
	FractalRidged:                "ridged",
	FractalPingPong:              "pingpong",
	FractalDomainWarpProgressive: "domainwarpprogressive",
	FractalDomainWarpIndependent: "domainwarpindependent",
}

func (t FractalType) String() string {
	if t < 0 || int(t) >= len(fractalTypeNames) {
		return fmt.Sprintf("FractalType(%d)", int(t))
	}
	return fractalTypeNames[t]
}

func (t FractalType) valid() bool { return t >= 0 && int(t) < len(fractalTypeNames) }

// ParseFractalType maps a case-insensitive name to a FractalType.
func ParseFractalType(s string) (FractalType, error) {
	i, err := parseName("fractal type", s, fractalTypeNames[:])
	return FractalType(i), err
}

// CellularDistanceFunction selects the metric used by cellular noise.
type CellularDistanceFunction int

const (
	DistanceEuclidean CellularDistanceFunction = iota
	DistanceEuclideanSq
	DistanceManhattan
	DistanceHybrid
)

var distanceFunctionNames = [...]string{
	DistanceEuclidean:   "euclidean",
	DistanceEuclideanSq: "euclideansq",
	DistanceManhattan:   "manhattan",
	DistanceHybrid:      "hybrid",
}

func (f CellularDistanceFunction) String() string {
	if f < 0 || int(f) >= len(distanceFunctionNames) {
		return fmt.Sprintf("CellularDistanceFunction(%d)", int(f))
	}
	return distanceFunctionNames[f]
}

func (f CellularDistanceFunction) valid() bool {
	return f >= 0 && int(f) < len(distanceFunctionNames)
}

// ParseCellularDistanceFunction maps a case-insensitive name to a
// CellularDistanceFunction.
func ParseCellularDistanceFunction(s string) (CellularDistanceFunction, error) {
	i, err := parseName("cellular distance function", s, distanceFunctionNames[:])
	return CellularDistanceFunction(i), err
}

// CellularReturnType selects what cellular noise reports. Distance2 is the
// distance to the second nearest point.
type CellularReturnType int

const (
	ReturnCellValue CellularReturnType = iota
	ReturnDistance
	ReturnDistance2
	ReturnDistance2Add
	ReturnDistance2Sub
	ReturnDistance2Mul
	ReturnDistance2Div
)

var returnTypeNames = [...]string{
	ReturnCellValue:    "cellvalue",
	ReturnDistance:     "distance",
	ReturnDistance2:    "distance2",
	ReturnDistance2Add: "distance2add",
	ReturnDistance2Sub: "distance2sub",
	ReturnDistance2Mul: "distance2mul",
	ReturnDistance2Div: "distance2div",
}

func (t CellularReturnType) String() string {
	if t < 0 || int(t) >= len(returnTypeNames) {
		return fmt.Sprintf("CellularReturnType(%d)", int(t))
	}
	return returnTypeNames[t]
}

func (t CellularReturnType) valid() bool { return t >= 0 && int(t) < len(returnTypeNames) }

// ParseCellularReturnType maps a case-insensitive name to a CellularReturnType.
func ParseCellularReturnType(s string) (CellularReturnType, error) {
	i, err := parseName("cellular return type", s, returnTypeNames[:])
	return CellularReturnType(i), err
}

// DomainWarpType selects the field used to displace coordinates.
type DomainWarpType int

const (
	WarpOpenSimplex2 DomainWarpType = iota
	WarpOpenSimplex2Reduced
	WarpBasicGrid
)

var warpTypeNames = [...]string{
	WarpOpenSimplex2:        "opensimplex2",
	WarpOpenSimplex2Reduced: "opensimplex2reduced",
	WarpBasicGrid:           "basicgrid",
}

func (t DomainWarpType) String() string {
	if t < 0 || int(t) >= len(warpTypeNames) {
		return fmt.Sprintf("DomainWarpType(%d)", int(t))
	}
	return warpTypeNames[t]
}

func (t DomainWarpType) valid() bool { return t >= 0 && int(t) < len(warpTypeNames) }

// ParseDomainWarpType maps a case-insensitive name to a DomainWarpType.
func ParseDomainWarpType(s string) (DomainWarpType, error) {
	i, err := parseName("domain warp type", s, warpTypeNames[:])
	return DomainWarpType(i), err
}

func parseName(kind, s string, names []string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for i, n := range names {
		if n == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s %q", ErrInvalidArgument, kind, s)
}
