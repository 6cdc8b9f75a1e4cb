package raster

import (
	"math"

	"softraster/internal/mathutil"
)

// Sample returns the texel nearest to uv. u and v are clamped to [0, 1];
// v = 0 is the top row of the texture.
func Sample(tex *FrameBuffer, uv mathutil.Vec2) mathutil.Vec4 {
	u := mathutil.Clamp(uv[0], 0, 1)
	v := mathutil.Clamp(uv[1], 0, 1)
	x := min(int(u*float64(tex.Width)), tex.Width-1)
	y := min(int(v*float64(tex.Height)), tex.Height-1)
	return tex.GetPixel(x, y)
}

// SampleBilinear filters the four texels around uv, wrapping UVs outside
// [0, 1) so tiled textures join without a seam.
func SampleBilinear(tex *FrameBuffer, uv mathutil.Vec2) mathutil.Vec4 {
	fx := wrap(uv[0]) * float64(tex.Width-1)
	fy := wrap(uv[1]) * float64(tex.Height-1)
	x0, y0 := int(fx), int(fy)
	x1, y1 := (x0+1)%tex.Width, (y0+1)%tex.Height
	tx, ty := fx-float64(x0), fy-float64(y0)

	top := tex.GetPixel(x0, y0).Lerp(tex.GetPixel(x1, y0), tx)
	bottom := tex.GetPixel(x0, y1).Lerp(tex.GetPixel(x1, y1), tx)
	return top.Lerp(bottom, ty)
}

func wrap(t float64) float64 {
	t -= math.Floor(t)
	if t >= 1 {
		return 0
	}
	return t
}
