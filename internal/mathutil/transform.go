package mathutil

import "math"

// Translate returns a translation matrix.
func Translate(x, y, z float64) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Scale returns an axis scale matrix.
func Scale(x, y, z float64) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateEuler returns Rz(z) × Ry(y) × Rx(x). Angles in radians.
func RotateEuler(x, y, z float64) Mat4 {
	return FromMat3Translation(RotZ(z).Mul(RotY(y)).Mul(RotX(x)), Vec3{})
}

// RotateQuat returns the rotation for Euler angles (radians) built through a quaternion.
func RotateQuat(x, y, z float64) Mat4 {
	return EulerToQuat(x, y, z).Mat4()
}

// LookAt builds a right-handed view matrix for a camera at eye looking at
// center. Points in front of the camera get a negative view-space z.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4{
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0, 0, 0, 1,
	}
}

// Ortho returns an orthographic projection of the box [l,r]×[b,t]×[n,f].
func Ortho(l, r, b, t, n, f float64) Mat4 {
	return Mat4{
		2 / (r - l), 0, 0, -(l + r) / (r - l),
		0, 2 / (t - b), 0, -(t + b) / (t - b),
		0, 0, 2 / (n - f), -(n + f) / (n - f),
		0, 0, 0, 1,
	}
}

// Perspective returns a perspective projection. fov is the vertical field of
// view in radians. The sign of near picks the handedness: negative near/far
// (right-handed view space looking down -z, as produced by LookAt) negates x
// and y so they survive the divide by the negative w. Either way w is the
// view-space z and NDC z is +1 at the near plane and -1 at the far plane, so
// a larger depth value means closer to the camera.
func Perspective(fov, aspect, near, far float64) Mat4 {
	tanHalf := math.Tan(fov * 0.5)
	sign := Sign(near)
	return Mat4{
		sign / (aspect * tanHalf), 0, 0, 0,
		0, sign / tanHalf, 0, 0,
		0, 0, (near + far) / (near - far), 2 * near * far / (far - near),
		0, 0, 1, 0,
	}
}
