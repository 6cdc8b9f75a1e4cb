package mathutil

// Mat2 is a 2×2 matrix stored row-major.
type Mat2 [4]float64

func Mat2Identity() Mat2 {
	return Mat2{1, 0, 0, 1}
}

func (m Mat2) At(r, c int) float64 {
	return m[r*2+c]
}

func (a Mat2) Add(b Mat2) Mat2 {
	return Mat2{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Mat2) Sub(b Mat2) Mat2 {
	return Mat2{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (m Mat2) Scale(s float64) Mat2 {
	return Mat2{m[0] * s, m[1] * s, m[2] * s, m[3] * s}
}

func (a Mat2) Mul(b Mat2) Mat2 {
	return Mat2{
		a[0]*b[0] + a[1]*b[2], a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2], a[2]*b[1] + a[3]*b[3],
	}
}

func (m Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{m[0]*v[0] + m[1]*v[1], m[2]*v[0] + m[3]*v[1]}
}

func (m Mat2) Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

func (m Mat2) Transpose() Mat2 {
	return Mat2{m[0], m[2], m[1], m[3]}
}

func (m Mat2) Inverse() (Mat2, error) {
	var inv Mat2
	if err := invert(2, m[:], inv[:]); err != nil {
		return Mat2{}, err
	}
	return inv, nil
}
