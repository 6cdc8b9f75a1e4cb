package mathutil

import "math"

// Quat is a rotation quaternion stored as (x, y, z, w).
type Quat [4]float64

// AxisAngle returns the rotation of a radians about the unit vector axis.
func AxisAngle(axis Vec3, a float64) Quat {
	s := math.Sin(a / 2)
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, math.Cos(a / 2)}
}

// EulerToQuat composes rotations about X, then Y, then Z (radians), matching
// RotateEuler.
func EulerToQuat(rx, ry, rz float64) Quat {
	qx := AxisAngle(Vec3{1, 0, 0}, rx)
	qy := AxisAngle(Vec3{0, 1, 0}, ry)
	qz := AxisAngle(Vec3{0, 0, 1}, rz)
	return qz.Mul(qy).Mul(qx)
}

// Mul returns the Hamilton product q·r, which applies r first.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		q[3]*r[0] + q[0]*r[3] + q[1]*r[2] - q[2]*r[1],
		q[3]*r[1] - q[0]*r[2] + q[1]*r[3] + q[2]*r[0],
		q[3]*r[2] + q[0]*r[1] - q[1]*r[0] + q[2]*r[3],
		q[3]*r[3] - q[0]*r[0] - q[1]*r[1] - q[2]*r[2],
	}
}

// Mat3 converts a unit quaternion to a rotation matrix.
func (q Quat) Mat3() Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	return Mat3{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	}
}

// Mat4 returns the rotation as a 4×4 affine matrix.
func (q Quat) Mat4() Mat4 {
	return FromMat3Translation(q.Mat3(), Vec3{})
}
