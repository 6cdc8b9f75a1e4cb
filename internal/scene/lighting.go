package scene

import (
	"math"

	"softraster/internal/mathutil"
)

// Light is a point light with a soft range limit.
type Light struct {
	Position  mathutil.Vec4
	Radiance  mathutil.Vec4
	Intensity float64
	Radius    float64 // contribution fades to zero here
	Falloff   float64 // scale on the range fade
}

// DefaultLight returns the demo light above and to the side of the camera.
func DefaultLight() Light {
	return Light{
		Position:  mathutil.Vec4{2, 2, -2, 1},
		Radiance:  mathutil.Vec4{5, 5, 5, 1},
		Intensity: 10,
		Radius:    5,
		Falloff:   0.85,
	}
}

// Material holds the colour terms and the Blinn-Phong parameters.
type Material struct {
	Ambient  mathutil.Vec4
	Diffuse  mathutil.Vec4
	Specular mathutil.Vec4

	Shininess        float64 // specular exponent
	SpecularStrength float64
	Gamma            float64 // output exponent applied to RGB
}

// DefaultMaterial returns the grey demo material.
func DefaultMaterial() Material {
	return Material{
		Ambient:          mathutil.Vec4{0.55, 0.55, 0.55, 1},
		Diffuse:          mathutil.Vec4{0.20, 0.20, 0.20, 1},
		Specular:         mathutil.Vec4{0.05, 0.05, 0.05, 1},
		Shininess:        750,
		SpecularStrength: 0.7937,
		Gamma:            0.454,
	}
}

// Shade returns the light's diffuse plus specular contribution at pos.
// n must be unit length; kd tints the diffuse term. Both Lambert and
// specular terms use |cos| so faces are lit from either side.
func Shade(l Light, m Material, pos, n, eye, kd mathutil.Vec3) mathutil.Vec4 {
	lp := l.Position.XYZ()
	d2 := lp.Sub(pos).Len2()
	if d2 < 1e-12 {
		return mathutil.Vec4{}
	}

	L := pos.Sub(lp).Normalize()
	V := eye.Sub(pos).Normalize()
	H := L.Add(V).Normalize()

	spec := math.Pow(math.Abs(H.Dot(n)), m.Shininess)
	lambert := math.Abs(L.Dot(n))
	intensity := l.Intensity / d2
	falloff := mathutil.Clamp(1-d2/(l.Radius*l.Radius), 0, 1) * l.Falloff

	s := m.Specular.Scale(m.SpecularStrength * spec * intensity)
	d := m.Diffuse.Mul(kd.Vec4(1)).Scale(lambert * intensity)
	return l.Radiance.Mul(s.Add(d)).Scale(falloff)
}

// gammaRGB raises the colour channels to g, leaving alpha.
func gammaRGB(c mathutil.Vec4, g float64) mathutil.Vec4 {
	for i := range 3 {
		c[i] = math.Pow(max(c[i], 0), g)
	}
	return c
}
