package noise

import (
	"fmt"
	"math"

	"github.com/dgravesa/go-parallel/parallel"
)

// Grid2 fills dst with width*height samples in row-major order. Sample
// (i, j) is taken at (x0 + i*step, y0 + j*step). Rows are evaluated in
// parallel; n must not be modified until Grid2 returns.
func (n *Noise) Grid2(dst []float32, width, height int, x0, y0, step float32) error {
	if err := checkGrid(len(dst), width, height, 1); err != nil {
		return err
	}
	parallel.For(height, func(j, _ int) {
		y := y0 + float32(j)*step
		row := dst[j*width : (j+1)*width]
		for i := range row {
			row[i] = n.Noise2(x0+float32(i)*step, y)
		}
	})
	return nil
}

// WarpedGrid2 is Grid2 with every sample point passed through DomainWarp2
// first.
func (n *Noise) WarpedGrid2(dst []float32, width, height int, x0, y0, step float32) error {
	if err := checkGrid(len(dst), width, height, 1); err != nil {
		return err
	}
	parallel.For(height, func(j, _ int) {
		y := y0 + float32(j)*step
		row := dst[j*width : (j+1)*width]
		for i := range row {
			wx, wy := n.DomainWarp2(x0+float32(i)*step, y)
			row[i] = n.Noise2(wx, wy)
		}
	})
	return nil
}

// Grid3 fills dst with width*height*depth samples, x fastest and z
// slowest. Each z slice is evaluated in parallel.
func (n *Noise) Grid3(dst []float32, width, height, depth int, x0, y0, z0, step float32) error {
	if err := checkGrid(len(dst), width, height, depth); err != nil {
		return err
	}
	plane := width * height
	parallel.For(depth, func(k, _ int) {
		z := z0 + float32(k)*step
		slice := dst[k*plane : (k+1)*plane]
		for j := 0; j < height; j++ {
			y := y0 + float32(j)*step
			for i := 0; i < width; i++ {
				slice[j*width+i] = n.Noise3(x0+float32(i)*step, y, z)
			}
		}
	})
	return nil
}

// WarpedGrid3 is Grid3 with every sample point passed through DomainWarp3
// first.
func (n *Noise) WarpedGrid3(dst []float32, width, height, depth int, x0, y0, z0, step float32) error {
	if err := checkGrid(len(dst), width, height, depth); err != nil {
		return err
	}
	plane := width * height
	parallel.For(depth, func(k, _ int) {
		z := z0 + float32(k)*step
		slice := dst[k*plane : (k+1)*plane]
		for j := 0; j < height; j++ {
			y := y0 + float32(j)*step
			for i := 0; i < width; i++ {
				wx, wy, wz := n.DomainWarp3(x0+float32(i)*step, y, z)
				slice[j*width+i] = n.Noise3(wx, wy, wz)
			}
		}
	})
	return nil
}

// GridSize returns width*height*depth, the buffer length a grid of those
// dimensions needs. Negative dimensions and products that overflow int are
// rejected with ErrInvalidArgument.
func GridSize(width, height, depth int) (int, error) {
	if width < 0 || height < 0 || depth < 0 {
		return 0, fmt.Errorf("%w: grid dimensions %dx%dx%d", ErrInvalidArgument, width, height, depth)
	}
	if width == 0 || height == 0 || depth == 0 {
		return 0, nil
	}
	size := 1
	for _, d := range [...]int{width, height, depth} {
		if size > math.MaxInt/d {
			return 0, fmt.Errorf("%w: grid %dx%dx%d overflows", ErrInvalidArgument, width, height, depth)
		}
		size *= d
	}
	return size, nil
}

func checkGrid(length, width, height, depth int) error {
	want, err := GridSize(width, height, depth)
	if err != nil {
		return err
	}
	if length != want {
		return fmt.Errorf("%w: buffer holds %d samples, grid needs %d", ErrInvalidArgument, length, want)
	}
	return nil
}
