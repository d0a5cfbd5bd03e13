package main

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"math"
	"regexp"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	vecs2DLen = 256 * 2
	vecs3DLen = 256 * 4

	// Upstream literals carry ten significant digits.
	unitTolerance = 1e-6
)

var (
	errTableNotFound = errors.New("table not found")
	errTableShape    = errors.New("table has wrong shape")

	numberRe = regexp.MustCompile(`[-+]?(?:\d+\.\d*|\.\d+|\d+)(?:[eE][-+]?\d+)?`)
)

// Tables holds the random vector literals as they appear in the header,
// without the float suffix.
type Tables struct {
	Vecs2D []string
	Vecs3D []string
}

type templateData struct {
	Package string
	Rows2D  []string
	Rows3D  []string
}

// parseRandVecs extracts RandVecs2D and RandVecs3D from a FastNoise Lite
// header and checks that every entry is a unit vector.
func parseRandVecs(src []byte) (*Tables, error) {
	v2, err := extractTable(src, "RandVecs2D")
	if err != nil {
		return nil, err
	}
	v3, err := extractTable(src, "RandVecs3D")
	if err != nil {
		return nil, err
	}

	if err := checkUnit(v2, 2, vecs2DLen); err != nil {
		return nil, fmt.Errorf("RandVecs2D: %w", err)
	}
	if err := checkUnit(v3, 4, vecs3DLen); err != nil {
		return nil, fmt.Errorf("RandVecs3D: %w", err)
	}
	return &Tables{Vecs2D: v2, Vecs3D: v3}, nil
}

// extractTable returns the numeric literals of the first braced initializer
// that follows "name[]".
func extractTable(src []byte, name string) ([]string, error) {
	re := regexp.MustCompile(regexp.QuoteMeta(name) + `\[\]\s*=\s*\{([^}]*)\}`)
	m := re.FindSubmatch(src)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", errTableNotFound, name)
	}
	return numberRe.FindAllString(string(m[1]), -1), nil
}

func checkUnit(vals []string, stride, want int) error {
	if len(vals) != want {
		return fmt.Errorf("%w: %d values, want %d", errTableShape, len(vals), want)
	}
	for i := 0; i < len(vals); i += stride {
		var sq float64
		for c := 0; c < stride; c++ {
			v, err := strconv.ParseFloat(vals[i+c], 64)
			if err != nil {
				return fmt.Errorf("entry %d: %w", i/stride, err)
			}
			if stride == 4 && c == 3 {
				if v != 0 {
					return fmt.Errorf("%w: entry %d padding is %v", errTableShape, i/stride, v)
				}
				continue
			}
			sq += v * v
		}
		if l := math.Sqrt(sq); math.Abs(l-1) > unitTolerance {
			return fmt.Errorf("%w: entry %d has length %v", errTableShape, i/stride, l)
		}
	}
	return nil
}

func rows(vals []string, perRow int) []string {
	var out []string
	for i := 0; i < len(vals); i += perRow {
		end := min(i+perRow, len(vals))
		out = append(out, strings.Join(vals[i:end], ", ")+",")
	}
	return out
}

func render(pkg string, t *Tables) ([]byte, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "randvecs.go.tmpl", templateData{
		Package: pkg,
		Rows2D:  rows(t.Vecs2D, 8),
		Rows3D:  rows(t.Vecs3D, 8),
	}); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return code, nil
}
