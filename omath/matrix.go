package omath

import (
	"github.com/chewxy/math32"
)

// Matrix is a 3x3 linear transform stored as its three column basis vectors. Right, Up and Forward
// are the images of the x, y and z axes respectively, so transforming a vector v yields
// Right*v.x + Up*v.y + Forward*v.z.
//
// The zero value is the zero matrix, not the identity. Use Identity to obtain the identity.
// Nothing keeps the basis orthonormal except an explicit call to Orthonormalize.
type Matrix struct {
	Right   Vector3
	Up      Vector3
	Forward Vector3
}

// NewMatrix returns the matrix with the given basis vectors as its columns.
func NewMatrix(right, up, forward Vector3) Matrix {
	return Matrix{Right: right, Up: up, Forward: forward}
}

// Identity ...
func Identity() Matrix {
	return Matrix{
		Right:   Vector3{1, 0, 0},
		Up:      Vector3{0, 1, 0},
		Forward: Vector3{0, 0, 1},
	}
}

// Scale returns the diagonal matrix scaling the x, y and z axes by sx, sy and sz.
func Scale(sx, sy, sz float32) Matrix {
	return Matrix{
		Right:   Vector3{sx, 0, 0},
		Up:      Vector3{0, sy, 0},
		Forward: Vector3{0, 0, sz},
	}
}

// ScaleVec is Scale with the factors taken from s.
func ScaleVec(s Vector3) Matrix {
	return Scale(s[0], s[1], s[2])
}

// RotationX returns the right-handed rotation of angle radians about the x-axis.
func RotationX(angle float32) Matrix {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Matrix{
		Right:   Vector3{1, 0, 0},
		Up:      Vector3{0, c, s},
		Forward: Vector3{0, -s, c},
	}
}

// RotationY returns the right-handed rotation of angle radians about the y-axis.
func RotationY(angle float32) Matrix {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Matrix{
		Right:   Vector3{c, 0, -s},
		Up:      Vector3{0, 1, 0},
		Forward: Vector3{s, 0, c},
	}
}

// RotationZ returns the right-handed rotation of angle radians about the z-axis.
func RotationZ(angle float32) Matrix {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Matrix{
		Right:   Vector3{c, s, 0},
		Up:      Vector3{-s, c, 0},
		Forward: Vector3{0, 0, 1},
	}
}

// FromEulerAngles builds the rotation RotationY(yaw) * RotationX(pitch) * RotationZ(roll): roll is
// applied first, then pitch, then yaw. EulerAngles inverts it.
func FromEulerAngles(pitch, yaw, roll float32) Matrix {
	return RotationY(yaw).Mul(RotationX(pitch)).Mul(RotationZ(roll))
}

// FromEulerAnglesVec is FromEulerAngles with the angles packed as (pitch, yaw, roll).
func FromEulerAnglesVec(angles Vector3) Matrix {
	return FromEulerAngles(angles[0], angles[1], angles[2])
}

// Multiply sets m to lhs * rhs. Transforming a vector by the result is the same as transforming it
// by rhs and then by lhs. m may be lhs or rhs.
func (m *Matrix) Multiply(lhs, rhs Matrix) {
	*m = Matrix{
		Right:   lhs.Transform(rhs.Right),
		Up:      lhs.Transform(rhs.Up),
		Forward: lhs.Transform(rhs.Forward),
	}
}

// Mul returns m * o.
func (m Matrix) Mul(o Matrix) Matrix {
	var result Matrix
	result.Multiply(m, o)
	return result
}

// MulAssign sets m to m * o.
func (m *Matrix) MulAssign(o Matrix) {
	m.Multiply(*m, o)
}

// Transform applies m to the column vector v.
func (m Matrix) Transform(v Vector3) Vector3 {
	return Vector3{
		m.Right[0]*v[0] + m.Up[0]*v[1] + m.Forward[0]*v[2],
		m.Right[1]*v[0] + m.Up[1]*v[1] + m.Forward[1]*v[2],
		m.Right[2]*v[0] + m.Up[2]*v[1] + m.Forward[2]*v[2],
	}
}

// Transpose swaps the rows and columns of m. It is the inverse only if m is orthonormal.
func (m Matrix) Transpose() Matrix {
	return Matrix{
		Right:   Vector3{m.Right[0], m.Up[0], m.Forward[0]},
		Up:      Vector3{m.Right[1], m.Up[1], m.Forward[1]},
		Forward: Vector3{m.Right[2], m.Up[2], m.Forward[2]},
	}
}

// Determinant ...
func (m Matrix) Determinant() float32 {
	r, u, f := m.Right, m.Up, m.Forward
	return r[0]*(u[1]*f[2]-u[2]*f[1]) -
		r[1]*(u[0]*f[2]-u[2]*f[0]) +
		r[2]*(u[0]*f[1]-u[1]*f[0])
}

// Inverse returns the inverse of m, computed from its cofactors. If |det(m)| < 1e-6 the matrix is
// treated as singular and the identity is returned instead. Callers that need to tell the two
// apart must check Determinant themselves.
func (m Matrix) Inverse() Matrix {
	det := m.Determinant()
	if math32.Abs(det) < Epsilon {
		return Identity()
	}
	invDet := 1 / det
	r, u, f := m.Right, m.Up, m.Forward

	return Matrix{
		Right: Vector3{
			(u[1]*f[2] - u[2]*f[1]) * invDet,
			(r[2]*f[1] - r[1]*f[2]) * invDet,
			(r[1]*u[2] - r[2]*u[1]) * invDet,
		},
		Up: Vector3{
			(u[2]*f[0] - u[0]*f[2]) * invDet,
			(r[0]*f[2] - r[2]*f[0]) * invDet,
			(r[2]*u[0] - r[0]*u[2]) * invDet,
		},
		Forward: Vector3{
			(u[0]*f[1] - u[1]*f[0]) * invDet,
			(r[1]*f[0] - r[0]*f[1]) * invDet,
			(r[0]*u[1] - r[1]*u[0]) * invDet,
		},
	}
}

// Equal reports whether every basis vector of m is Equal to the matching one of o.
func (m Matrix) Equal(o Matrix) bool {
	return m.Right.Equal(o.Right) && m.Up.Equal(o.Up) && m.Forward.Equal(o.Forward)
}

// IsIdentity reports whether each basis vector is within eps of the matching identity axis.
func (m Matrix) IsIdentity(eps float32) bool {
	id := Identity()
	return m.Right.IsNear(id.Right, eps) &&
		m.Up.IsNear(id.Up, eps) &&
		m.Forward.IsNear(id.Forward, eps)
}

// IsOrthogonal reports whether the basis vectors are pairwise perpendicular within eps. Their
// lengths are not checked, so a scaled orthogonal basis passes.
func (m Matrix) IsOrthogonal(eps float32) bool {
	return math32.Abs(m.Right.Dot(m.Up)) < eps &&
		math32.Abs(m.Right.Dot(m.Forward)) < eps &&
		math32.Abs(m.Up.Dot(m.Forward)) < eps
}

// Orthonormalize turns m into a right-handed orthonormal basis with Gram-Schmidt. Right keeps its
// direction, Up loses its component along Right, and Forward is rebuilt as Right × Up, discarding
// whatever it held before.
func (m *Matrix) Orthonormalize() {
	m.Right.Normalize()
	m.Up = m.Up.Sub(m.Right.Mul(m.Up.Dot(m.Right)))
	m.Up.Normalize()
	m.Forward = m.Right.Cross(m.Up)
}

// EulerAngles decomposes a matrix built by FromEulerAngles back into (pitch, yaw, roll) in radians.
// At gimbal lock, when forward points straight up or down, yaw and roll cannot be told apart; the
// whole rotation about the vertical axis is reported as yaw and roll is 0.
//
// Pitch is asin(-forward.y) with the argument clamped to [-1, 1]. A plain asin would return NaN
// for a scaled basis whose forward.y lies outside that range; here pitch saturates at ±π/2.
func (m Matrix) EulerAngles() Vector3 {
	var angles Vector3
	angles[0] = math32.Asin(ClampFloat(-m.Forward[1], -1, 1))

	if math32.Abs(m.Forward[1]) < gimbalLockThreshold {
		angles[1] = math32.Atan2(m.Forward[0], m.Forward[2])
		angles[2] = math32.Atan2(m.Right[1], m.Up[1])
	} else {
		angles[1] = math32.Atan2(-m.Right[2], m.Right[0])
		angles[2] = 0
	}
	return angles
}

// GimbalLocked reports whether m is close enough to pointing straight up or down that
// EulerAngles reports a roll of 0.
func (m Matrix) GimbalLocked() bool {
	return math32.Abs(m.Forward[1]) >= gimbalLockThreshold
}
