package noise

import (
	"errors"
	"testing"
)

func TestParseNames(t *testing.T) {
	for _, nt := range allNoiseTypes {
		got, err := ParseNoiseType(nt.String())
		if err != nil || got != nt {
			t.Errorf("ParseNoiseType(%q) = %v, %v", nt.String(), got, err)
		}
	}
	for rt := RotationNone; rt <= RotationImproveXZPlanes; rt++ {
		if got, err := ParseRotationType3D(rt.String()); err != nil || got != rt {
			t.Errorf("ParseRotationType3D(%q) = %v, %v", rt.String(), got, err)
		}
	}
	for ft := FractalNone; ft <= FractalDomainWarpIndependent; ft++ {
		if got, err := ParseFractalType(ft.String()); err != nil || got != ft {
			t.Errorf("ParseFractalType(%q) = %v, %v", ft.String(), got, err)
		}
	}
	for df := DistanceEuclidean; df <= DistanceHybrid; df++ {
		if got, err := ParseCellularDistanceFunction(df.String()); err != nil || got != df {
			t.Errorf("ParseCellularDistanceFunction(%q) = %v, %v", df.String(), got, err)
		}
	}
	for rt := ReturnCellValue; rt <= ReturnDistance2Div; rt++ {
		if got, err := ParseCellularReturnType(rt.String()); err != nil || got != rt {
			t.Errorf("ParseCellularReturnType(%q) = %v, %v", rt.String(), got, err)
		}
	}
	for _, wt := range allWarpTypes {
		if got, err := ParseDomainWarpType(wt.String()); err != nil || got != wt {
			t.Errorf("ParseDomainWarpType(%q) = %v, %v", wt.String(), got, err)
		}
	}
}

func TestParseIsLenient(t *testing.T) {
	tests := []struct {
		in   string
		want NoiseType
	}{
		{"OpenSimplex2S", OpenSimplex2S},
		{"open_simplex2", OpenSimplex2},
		{" Value-Cubic ", ValueCubic},
		{"PERLIN", Perlin},
	}
	for _, tt := range tests {
		if got, err := ParseNoiseType(tt.in); err != nil || got != tt.want {
			t.Errorf("ParseNoiseType(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if got, err := ParseFractalType("domain warp progressive"); err != nil || got != FractalDomainWarpProgressive {
		t.Errorf("ParseFractalType = %v, %v", got, err)
	}
}

func TestParseUnknown(t *testing.T) {
	for _, parse := range []func(string) error{
		func(s string) error { _, err := ParseNoiseType(s); return err },
		func(s string) error { _, err := ParseRotationType3D(s); return err },
		func(s string) error { _, err := ParseFractalType(s); return err },
		func(s string) error { _, err := ParseCellularDistanceFunction(s); return err },
		func(s string) error { _, err := ParseCellularReturnType(s); return err },
		func(s string) error { _, err := ParseDomainWarpType(s); return err },
	} {
		for _, s := range []string{"", "simplex3", "worley"} {
			if err := parse(s); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("parse(%q) err = %v, want ErrInvalidArgument", s, err)
			}
		}
	}
}

func TestStringOutOfRange(t *testing.T) {
	if got := NoiseType(17).String(); got != "NoiseType(17)" {
		t.Errorf("got %q", got)
	}
	if got := CellularReturnType(-1).String(); got != "CellularReturnType(-1)" {
		t.Errorf("got %q", got)
	}
}
