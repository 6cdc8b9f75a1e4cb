// Package mesh holds triangle lists as handed to the pipeline and a few
// procedural shapes to feed it.
package mesh

import (
	"errors"
	"fmt"

	"softraster/internal/mathutil"
)

// ErrColorRange is returned when a colour channel lies outside 0..255.
var ErrColorRange = errors.New("mesh: colour component out of range")

// Triangle is one face. Vertices are stored counter-clockwise as seen from
// the front.
type Triangle struct {
	V        [3]mathutil.Vec4 // homogeneous model-space positions
	Normal   [3]mathutil.Vec3
	TexCoord [3]mathutil.Vec2
	Color    [3]mathutil.Vec3 // 0..1 per channel
}

// NewTriangle returns a triangle whose three positions are the origin with w = 1.
func NewTriangle() Triangle {
	var t Triangle
	for i := range t.V {
		t.V[i] = mathutil.Vec4{0, 0, 0, 1}
	}
	return t
}

// SetVertex sets the i-th position.
func (t *Triangle) SetVertex(i int, v mathutil.Vec4) { t.V[i] = v }

// SetNormal sets the i-th normal.
func (t *Triangle) SetNormal(i int, n mathutil.Vec3) { t.Normal[i] = n }

// SetTexCoord sets the i-th UV.
func (t *Triangle) SetTexCoord(i int, uv mathutil.Vec2) { t.TexCoord[i] = uv }

// SetColor sets the i-th colour from 8-bit channel values. The triangle is
// left unchanged when any channel is outside 0..255.
func (t *Triangle) SetColor(i int, r, g, b float64) error {
	for _, c := range [3]float64{r, g, b} {
		if c < 0 || c > 255 {
			return fmt.Errorf("%w: vertex %d: %v", ErrColorRange, i, c)
		}
	}
	t.Color[i] = mathutil.Vec3{r / 255, g / 255, b / 255}
	return nil
}

// FaceNormal returns the unit normal implied by the winding.
func (t *Triangle) FaceNormal() mathutil.Vec3 {
	a, b, c := t.V[0].XYZ(), t.V[1].XYZ(), t.V[2].XYZ()
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Mesh is a flat triangle list.
type Mesh []Triangle

// Bounds returns the axis-aligned extent of all positions.
func (m Mesh) Bounds() (lo, hi mathutil.Vec3) {
	if len(m) == 0 {
		return
	}
	lo = m[0].V[0].XYZ()
	hi = lo
	for i := range m {
		for _, v := range m[i].V {
			p := v.XYZ()
			for k := range 3 {
				lo[k] = min(lo[k], p[k])
				hi[k] = max(hi[k], p[k])
			}
		}
	}
	return lo, hi
}

// Fill sets every vertex colour to (r, g, b) in 0..255.
func (m Mesh) Fill(r, g, b float64) error {
	for i := range m {
		for v := range 3 {
			if err := m[i].SetColor(v, r, g, b); err != nil {
				return fmt.Errorf("mesh: triangle %d: %w", i, err)
			}
		}
	}
	return nil
}
