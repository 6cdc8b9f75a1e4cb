package mesh

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"softraster/internal/mathutil"
)

// quad appends two triangles for the corners a, b, c, d given
// counter-clockwise as seen from the front, with a flat normal n.
func (m Mesh) quad(a, b, c, d, n mathutil.Vec3) Mesh {
	uv := [4]mathutil.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	pos := [4]mathutil.Vec3{a, b, c, d}
	for _, idx := range [2][3]int{{0, 1, 2}, {0, 2, 3}} {
		t := NewTriangle()
		for i, k := range idx {
			t.SetVertex(i, pos[k].Vec4(1))
			t.SetNormal(i, n)
			t.SetTexCoord(i, uv[k])
			t.Color[i] = mathutil.Vec3{1, 1, 1}
		}
		m = append(m, t)
	}
	return m
}

// Plane returns a size×size square in the XZ plane facing +Y.
func Plane(size float64) Mesh {
	h := size / 2
	return Mesh(nil).quad(
		mathutil.Vec3{-h, 0, h},
		mathutil.Vec3{h, 0, h},
		mathutil.Vec3{h, 0, -h},
		mathutil.Vec3{-h, 0, -h},
		mathutil.Vec3{0, 1, 0},
	)
}

// Cube returns an axis-aligned cube centred on the origin, twelve
// triangles with outward normals and a full UV square per face.
func Cube(size float64) Mesh {
	h := size / 2
	var m Mesh
	faces := []struct {
		n, u, v mathutil.Vec3 // normal and in-face axes, u × v = n
	}{
		{mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 0, -1}, mathutil.Vec3{0, 1, 0}},
		{mathutil.Vec3{-1, 0, 0}, mathutil.Vec3{0, 0, 1}, mathutil.Vec3{0, 1, 0}},
		{mathutil.Vec3{0, 1, 0}, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 0, -1}},
		{mathutil.Vec3{0, -1, 0}, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 0, 1}},
		{mathutil.Vec3{0, 0, 1}, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 1, 0}},
		{mathutil.Vec3{0, 0, -1}, mathutil.Vec3{-1, 0, 0}, mathutil.Vec3{0, 1, 0}},
	}
	for _, f := range faces {
		c := f.n.Scale(h)
		u, v := f.u.Scale(h), f.v.Scale(h)
		m = m.quad(
			c.Sub(u).Sub(v),
			c.Add(u).Sub(v),
			c.Add(u).Add(v),
			c.Sub(u).Add(v),
			f.n,
		)
	}
	return m
}

// Sphere returns a UV sphere. rings is the number of latitude bands (at
// least 2) and segments the number of longitude slices (at least 3).
func Sphere(radius float64, rings, segments int) Mesh {
	rings = max(rings, 2)
	segments = max(segments, 3)

	point := func(ring, seg int) (mathutil.Vec3, mathutil.Vec2) {
		theta := math.Pi * float64(ring) / float64(rings)      // 0 at +Y
		phi := 2 * math.Pi * float64(seg) / float64(segments) // around Y
		n := mathutil.Vec3{
			math.Sin(theta) * math.Cos(phi),
			math.Cos(theta),
			-math.Sin(theta) * math.Sin(phi),
		}
		uv := mathutil.Vec2{float64(seg) / float64(segments), 1 - float64(ring)/float64(rings)}
		return n, uv
	}

	var m Mesh
	emit := func(corners [3][2]int) {
		t := NewTriangle()
		for i, c := range corners {
			n, uv := point(c[0], c[1])
			t.SetVertex(i, n.Scale(radius).Vec4(1))
			t.SetNormal(i, n)
			t.SetTexCoord(i, uv)
			t.Color[i] = mathutil.Vec3{1, 1, 1}
		}
		m = append(m, t)
	}

	for r := range rings {
		for s := range segments {
			// a-b on the upper ring, d-c on the lower one.
			a, b := [2]int{r, s}, [2]int{r, s + 1}
			d, c := [2]int{r + 1, s}, [2]int{r + 1, s + 1}
			if r != 0 {
				emit([3][2]int{a, d, b})
			}
			if r != rings-1 {
				emit([3][2]int{b, d, c})
			}
		}
	}
	return m
}

// ErrUnknownShape is returned by Named for an unrecognised shape name.
var ErrUnknownShape = errors.New("mesh: unknown shape")

// Named returns a unit-scale built-in shape: "cube" (the default for an
// empty name), "sphere" or "plane".
func Named(name string) (Mesh, error) {
	switch strings.ToLower(name) {
	case "", "cube":
		return Cube(1), nil
	case "sphere":
		return Sphere(0.75, 16, 24), nil
	case "plane":
		return Plane(1.5), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}
