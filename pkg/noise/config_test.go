package noise

import (
	"errors"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	n := New()
	if n.Seed() != 1337 || n.Frequency() != 0.01 {
		t.Errorf("seed %d frequency %v", n.Seed(), n.Frequency())
	}
	if n.NoiseType() != OpenSimplex2 || n.RotationType3D() != RotationNone || n.FractalType() != FractalNone {
		t.Errorf("types %v %v %v", n.NoiseType(), n.RotationType3D(), n.FractalType())
	}
	if n.FractalOctaves() != 3 || n.FractalLacunarity() != 2 || n.FractalGain() != 0.5 {
		t.Errorf("fractal %d %v %v", n.FractalOctaves(), n.FractalLacunarity(), n.FractalGain())
	}
	if n.FractalWeightedStrength() != 0 || n.FractalPingPongStrength() != 2 {
		t.Errorf("weighted %v ping pong %v", n.FractalWeightedStrength(), n.FractalPingPongStrength())
	}
	if n.CellularDistanceFunction() != DistanceEuclideanSq || n.CellularReturnType() != ReturnDistance || n.CellularJitter() != 1 {
		t.Errorf("cellular %v %v %v", n.CellularDistanceFunction(), n.CellularReturnType(), n.CellularJitter())
	}
	if n.DomainWarpType() != WarpOpenSimplex2 || n.DomainWarpAmp() != 1 {
		t.Errorf("warp %v %v", n.DomainWarpType(), n.DomainWarpAmp())
	}
}

func TestInvalidSettersLeaveStateUnchanged(t *testing.T) {
	n := New()
	before := *n

	errs := []error{
		n.SetNoiseType(NoiseType(6)),
		n.SetNoiseType(NoiseType(-1)),
		n.SetRotationType3D(RotationType3D(3)),
		n.SetFractalType(FractalType(42)),
		n.SetFractalOctaves(0),
		n.SetFractalOctaves(-3),
		n.SetCellularDistanceFunction(CellularDistanceFunction(4)),
		n.SetCellularReturnType(CellularReturnType(7)),
		n.SetDomainWarpType(DomainWarpType(-2)),
	}
	for i, err := range errs {
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("setter %d: err = %v, want ErrInvalidArgument", i, err)
		}
	}
	if *n != before {
		t.Errorf("rejected setters changed the configuration: %+v", *n)
	}
}

func TestSettersRoundTrip(t *testing.T) {
	n := New()
	n.SetSeed(-99)
	n.SetFrequency(0.25)
	if err := n.SetNoiseType(Cellular); err != nil {
		t.Fatal(err)
	}
	if err := n.SetRotationType3D(RotationImproveXZPlanes); err != nil {
		t.Fatal(err)
	}
	if err := n.SetFractalType(FractalPingPong); err != nil {
		t.Fatal(err)
	}
	if err := n.SetFractalOctaves(7); err != nil {
		t.Fatal(err)
	}
	n.SetFractalLacunarity(1.5)
	n.SetFractalGain(0.3)
	n.SetFractalWeightedStrength(0.7)
	n.SetFractalPingPongStrength(4)
	if err := n.SetCellularDistanceFunction(DistanceHybrid); err != nil {
		t.Fatal(err)
	}
	if err := n.SetCellularReturnType(ReturnDistance2Mul); err != nil {
		t.Fatal(err)
	}
	n.SetCellularJitter(0.4)
	if err := n.SetDomainWarpType(WarpBasicGrid); err != nil {
		t.Fatal(err)
	}
	n.SetDomainWarpAmp(55)

	want := Noise{
		seed:             -99,
		frequency:        0.25,
		noiseType:        Cellular,
		rotationType3D:   RotationImproveXZPlanes,
		fractalType:      FractalPingPong,
		octaves:          7,
		lacunarity:       1.5,
		gain:             0.3,
		weightedStrength: 0.7,
		pingPongStrength: 4,
		cellularDistance: DistanceHybrid,
		cellularReturn:   ReturnDistance2Mul,
		cellularJitter:   0.4,
		warpType:         WarpBasicGrid,
		warpAmp:          55,
	}
	if *n != want {
		t.Errorf("got %+v\nwant %+v", *n, want)
	}
}
