package raster

import "softraster/internal/mathutil"

// Viewport maps clip-space x,y in [-1,1] onto pixels [x, x+w] × [y, y+h]
// with y pointing down, and z onto 0.5·z + 1.
func Viewport(x, y, w, h int) mathutil.Mat4 {
	hw, hh := float64(w)/2, float64(h)/2
	return mathutil.Mat4{
		hw, 0, 0, hw + float64(x),
		0, -hh, 0, hh + float64(y),
		0, 0, 0.5, 1,
		0, 0, 0, 1,
	}
}
