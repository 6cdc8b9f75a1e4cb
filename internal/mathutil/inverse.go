package mathutil

import (
	"errors"
	"math"
)

// ErrSingular is returned when inversion meets a pivot too small to divide by.
var ErrSingular = errors.New("mathutil: matrix is near-singular")

// singularEps is the smallest pivot magnitude accepted by invert.
const singularEps = 1e-12

// invert writes the inverse of the n×n row-major matrix src into dst using
// Gauss-Jordan elimination with partial pivoting. n must be at most 4.
func invert(n int, src, dst []float64) error {
	var a, inv [16]float64
	copy(a[:], src[:n*n])
	for i := 0; i < n; i++ {
		inv[i*n+i] = 1
	}

	for col := 0; col < n; col++ {
		p := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r*n+col]) > math.Abs(a[p*n+col]) {
				p = r
			}
		}
		if math.Abs(a[p*n+col]) < singularEps {
			return ErrSingular
		}
		if p != col {
			for j := 0; j < n; j++ {
				a[p*n+j], a[col*n+j] = a[col*n+j], a[p*n+j]
				inv[p*n+j], inv[col*n+j] = inv[col*n+j], inv[p*n+j]
			}
		}

		pivot := a[col*n+col]
		for j := 0; j < n; j++ {
			a[col*n+j] /= pivot
			inv[col*n+j] /= pivot
		}

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := a[r*n+col]
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a[r*n+j] -= f * a[col*n+j]
				inv[r*n+j] -= f * inv[col*n+j]
			}
		}
	}

	copy(dst, inv[:n*n])
	return nil
}
