package mathutil

import "math"

// RotX returns a 3×3 rotation about the X axis. Angle in radians.
func RotX(a float64) Mat3 { return planeRotation(1, 2, a) }

// RotY returns a 3×3 rotation about the Y axis.
func RotY(a float64) Mat3 { return planeRotation(2, 0, a) }

// RotZ returns a 3×3 rotation about the Z axis.
func RotZ(a float64) Mat3 { return planeRotation(0, 1, a) }

// planeRotation turns axis i toward axis j by a radians.
func planeRotation(i, j int, a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	m := Mat3Identity()
	m[i*3+i], m[i*3+j] = c, -s
	m[j*3+i], m[j*3+j] = s, c
	return m
}
