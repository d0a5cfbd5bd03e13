package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/OCharnyshevich/fastnoise/internal/config"
	"github.com/OCharnyshevich/fastnoise/internal/preset"
	"github.com/OCharnyshevich/fastnoise/pkg/noise"
)

func main() {
	cfg := config.DefaultConfig()

	flag.Func("seed", fmt.Sprintf("noise seed (default %d)", cfg.Seed), func(s string) error {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return err
		}
		cfg.Seed = int32(v)
		return nil
	})
	float32Var(&cfg.Frequency, "frequency", "base frequency")
	flag.StringVar(&cfg.NoiseType, "noise-type", cfg.NoiseType, "opensimplex2, opensimplex2s, cellular, perlin, valuecubic or value")
	flag.StringVar(&cfg.Rotation, "rotation-type", cfg.Rotation, "3D rotation: none, improvexyplanes or improvexzplanes")
	flag.StringVar(&cfg.FractalType, "fractal-type", cfg.FractalType, "none, fbm, ridged, pingpong, domainwarpprogressive or domainwarpindependent")
	flag.IntVar(&cfg.Octaves, "octaves", cfg.Octaves, "fractal octaves")
	float32Var(&cfg.Lacunarity, "lacunarity", "frequency multiplier per octave")
	float32Var(&cfg.Gain, "gain", "amplitude multiplier per octave")
	float32Var(&cfg.WeightedStrength, "weighted-strength", "octave weighting by previous octave value")
	float32Var(&cfg.PingPongStrength, "ping-pong-strength", "ping pong fractal strength")
	flag.StringVar(&cfg.CellularDistance, "cellular-distance", cfg.CellularDistance, "euclidean, euclideansq, manhattan or hybrid")
	flag.StringVar(&cfg.CellularReturn, "cellular-return", cfg.CellularReturn, "cellvalue, distance, distance2, distance2add, distance2sub, distance2mul or distance2div")
	float32Var(&cfg.CellularJitter, "cellular-jitter", "cell point jitter")
	flag.StringVar(&cfg.WarpType, "warp-type", cfg.WarpType, "opensimplex2, opensimplex2reduced or basicgrid")
	float32Var(&cfg.WarpAmp, "warp-amp", "domain warp amplitude")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "samples along x")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "samples along y")
	flag.IntVar(&cfg.Depth, "depth", cfg.Depth, "samples along z (0 for a 2D plane)")
	float32Var(&cfg.Step, "step", "distance between samples")
	float32Var(&cfg.X, "x", "grid origin x")
	float32Var(&cfg.Y, "y", "grid origin y")
	float32Var(&cfg.Z, "z", "grid origin z")
	flag.BoolVar(&cfg.Warp, "warp", cfg.Warp, "domain warp every sample before evaluation")

	var (
		presetDir   = flag.String("presets", "presets", "preset directory")
		presetName  = flag.String("preset", "", "load settings from a named preset; explicit flags win")
		saveName    = flag.String("save-preset", "", "save the effective settings as a named preset")
		listPresets = flag.Bool("list-presets", false, "list stored presets and exit")
		out         = flag.String("out", "", "output CSV file (default stdout)")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var store *preset.Store
	if *presetName != "" || *saveName != "" || *listPresets {
		var err error
		store, err = preset.New(*presetDir, log)
		if err != nil {
			log.Error("open preset store", "error", err)
			os.Exit(1)
		}
	}

	if *listPresets {
		names, err := store.List()
		if err != nil {
			log.Error("list presets", "error", err)
			os.Exit(1)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if *presetName != "" {
		fromFile := config.DefaultConfig()
		found, err := store.Load(*presetName, fromFile)
		if err != nil {
			log.Error("load preset", "error", err)
			os.Exit(1)
		}
		if !found {
			log.Error("preset not found", "name", *presetName, "dir", *presetDir)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	n, err := cfg.Build()
	if err != nil {
		log.Error("build generator", "error", err)
		os.Exit(1)
	}

	if *saveName != "" {
		if err := store.Save(*saveName, cfg); err != nil {
			log.Error("save preset", "error", err)
			os.Exit(1)
		}
	}

	values, err := sample(n, cfg)
	if err != nil {
		log.Error("sample grid", "error", err)
		os.Exit(1)
	}

	if err := writeOutput(*out, cfg, values); err != nil {
		log.Error("write output", "path", *out, "error", err)
		os.Exit(1)
	}

	log.Info("grid written",
		"noise", cfg.NoiseType,
		"fractal", cfg.FractalType,
		"width", cfg.Width,
		"height", cfg.Height,
		"depth", cfg.Depth,
		"samples", len(values),
	)
}

// float32Var registers a float32 flag; the standard flag package has no
// float32 kind.
func float32Var(p *float32, name, usage string) {
	flag.Func(name, fmt.Sprintf("%s (default %v)", usage, *p), func(s string) error {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return err
		}
		*p = float32(v)
		return nil
	})
}

func sample(n *noise.Noise, cfg *config.Config) ([]float32, error) {
	size, err := cfg.Samples()
	if err != nil {
		return nil, err
	}
	dst := make([]float32, size)

	switch {
	case cfg.Depth == 0 && cfg.Warp:
		err = n.WarpedGrid2(dst, cfg.Width, cfg.Height, cfg.X, cfg.Y, cfg.Step)
	case cfg.Depth == 0:
		err = n.Grid2(dst, cfg.Width, cfg.Height, cfg.X, cfg.Y, cfg.Step)
	case cfg.Warp:
		err = n.WarpedGrid3(dst, cfg.Width, cfg.Height, cfg.Depth, cfg.X, cfg.Y, cfg.Z, cfg.Step)
	default:
		err = n.Grid3(dst, cfg.Width, cfg.Height, cfg.Depth, cfg.X, cfg.Y, cfg.Z, cfg.Step)
	}
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// writeCSV emits one row per sample with the unwarped sample coordinates,
// x varying fastest.
// writeOutput writes the grid as CSV to path, or to stdout when path is
// empty. The file is closed before returning so a failed close is reported.
func writeOutput(path string, cfg *config.Config, values []float32) error {
	if path == "" {
		return writeBuffered(os.Stdout, cfg, values)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := writeBuffered(f, cfg, values); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func writeBuffered(w io.Writer, cfg *config.Config, values []float32) error {
	bw := bufio.NewWriter(w)
	if err := writeCSV(bw, cfg, values); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, cfg *config.Config, values []float32) error {
	cw := csv.NewWriter(w)
	is3D := cfg.Depth > 0

	header := []string{"x", "y", "value"}
	if is3D {
		header = []string{"x", "y", "z", "value"}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	format := func(f float32) string { return strconv.FormatFloat(float64(f), 'g', -1, 32) }

	depth := max(cfg.Depth, 1)
	row := make([]string, 0, 4)
	for k := 0; k < depth; k++ {
		z := cfg.Z + float32(k)*cfg.Step
		for j := 0; j < cfg.Height; j++ {
			y := cfg.Y + float32(j)*cfg.Step
			for i := 0; i < cfg.Width; i++ {
				x := cfg.X + float32(i)*cfg.Step
				row = append(row[:0], format(x), format(y))
				if is3D {
					row = append(row, format(z))
				}
				row = append(row, format(values[(k*cfg.Height+j)*cfg.Width+i]))
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
