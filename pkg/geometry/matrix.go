package geometry

import "math"

// Matrix4 is a 4x4 transform stored row-major, points are column vectors
type Matrix4 [16]float64

// Mul returns m*other, so other is applied first
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// TransformPoint applies the affine part of m to p
func (m Matrix4) TransformPoint(p Vector3) Vector3 {
	return Vector3{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// ProjectPoint applies the full transform and performs the perspective divide.
// The returned w is the clip-space w before the divide; w <= 0 means the point
// is behind the viewer and the returned vector is meaningless.
func (m Matrix4) ProjectPoint(p Vector3) (Vector3, float64) {
	w := m[12]*p.X + m[13]*p.Y + m[14]*p.Z + m[15]
	v := m.TransformPoint(p)
	if w == 0 {
		return v, 0
	}
	return v.Mul(1 / w), w
}

// LookAt builds a right-handed view matrix looking from eye towards target
func LookAt(eye, target, up Vector3) Matrix4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Matrix4{
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	}
}

// Perspective builds an OpenGL style projection, fovY in radians
func Perspective(fovY, aspect, near, far float64) Matrix4 {
	t := 1 / math.Tan(fovY/2)
	return Matrix4{
		t / aspect, 0, 0, 0,
		0, t, 0, 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	}
}
