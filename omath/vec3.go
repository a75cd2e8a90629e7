package omath

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/ogeom/assert"
)

// Vector3 is a three component vector laid out as [x, y, z]. It follows the same value
// semantics and division guards as Vector2.
type Vector3 [3]float32

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// ZeroVector3 returns (0, 0, 0).
func ZeroVector3() Vector3 { return Vector3{0, 0, 0} }

// OneVector3 returns (1, 1, 1).
func OneVector3() Vector3 { return Vector3{1, 1, 1} }

// UpVector3 returns (0, 1, 0).
func UpVector3() Vector3 { return Vector3{0, 1, 0} }

// RightVector3 returns (1, 0, 0).
func RightVector3() Vector3 { return Vector3{1, 0, 0} }

// ForwardVector3 returns (0, 0, 1).
func ForwardVector3() Vector3 { return Vector3{0, 0, 1} }

// X ...
func (v Vector3) X() float32 { return v[0] }

// Y ...
func (v Vector3) Y() float32 { return v[1] }

// Z ...
func (v Vector3) Z() float32 { return v[2] }

// Component returns the component at index i (0 for x, 1 for y, 2 for z). It panics for any other index.
func (v Vector3) Component(i int) float32 {
	assert.InRange(i, 3, "vector3 component")
	return v[i]
}

// SetComponent sets the component at index i. It panics for an index outside of [0, 3).
func (v *Vector3) SetComponent(i int, f float32) {
	assert.InRange(i, 3, "vector3 component")
	v[i] = f
}

// Add ...
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub ...
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Mul scales the vector by s.
func (v Vector3) Mul(s float32) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

// MulVec multiplies the vectors component-wise.
func (v Vector3) MulVec(o Vector3) Vector3 {
	return Vector3{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

// Div divides the vector by s. Dividing by zero returns the zero vector.
func (v Vector3) Div(s float32) Vector3 {
	if s != 0 {
		return Vector3{v[0] / s, v[1] / s, v[2] / s}
	}
	return Vector3{}
}

// DivVec divides the vectors component-wise. Any component divided by zero becomes zero.
func (v Vector3) DivVec(o Vector3) Vector3 {
	return Vector3{safeDiv(v[0], o[0]), safeDiv(v[1], o[1]), safeDiv(v[2], o[2])}
}

// Neg ...
func (v Vector3) Neg() Vector3 {
	return Vector3{-v[0], -v[1], -v[2]}
}

// AddAssign adds o to v in place.
func (v *Vector3) AddAssign(o Vector3) {
	v[0] += o[0]
	v[1] += o[1]
	v[2] += o[2]
}

// SubAssign subtracts o from v in place.
func (v *Vector3) SubAssign(o Vector3) {
	v[0] -= o[0]
	v[1] -= o[1]
	v[2] -= o[2]
}

// MulAssign scales v by s in place.
func (v *Vector3) MulAssign(s float32) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
}

// MulVecAssign multiplies v by o component-wise in place.
func (v *Vector3) MulVecAssign(o Vector3) {
	v[0] *= o[0]
	v[1] *= o[1]
	v[2] *= o[2]
}

// DivAssign divides v by s in place. Dividing by zero leaves v unchanged.
func (v *Vector3) DivAssign(s float32) {
	if s == 0 {
		return
	}
	v[0] /= s
	v[1] /= s
	v[2] /= s
}

// DivVecAssign divides v by o component-wise in place, zeroing components divided by zero.
func (v *Vector3) DivVecAssign(o Vector3) {
	*v = v.DivVec(o)
}

// Equal reports whether every component of v is within Epsilon of the matching component of o.
func (v Vector3) Equal(o Vector3) bool {
	return Float32ApproxEq(v[0], o[0], Epsilon) &&
		Float32ApproxEq(v[1], o[1], Epsilon) &&
		Float32ApproxEq(v[2], o[2], Epsilon)
}

// Dot ...
func (v Vector3) Dot(o Vector3) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Magnitude ...
func (v Vector3) Magnitude() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// MagnitudeSquared ...
func (v Vector3) MagnitudeSquared() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Length is an alias of Magnitude.
func (v Vector3) Length() float32 {
	return v.Magnitude()
}

// LengthSquared is an alias of MagnitudeSquared.
func (v Vector3) LengthSquared() float32 {
	return v.MagnitudeSquared()
}

// Normalized returns the unit vector pointing the same way as v, or (0, 0, 0) if v has no length.
func (v Vector3) Normalized() Vector3 {
	if mag := v.Magnitude(); mag > 0 {
		return v.Div(mag)
	}
	return Vector3{}
}

// Normalize scales v to unit length in place. The zero vector is left unchanged.
func (v *Vector3) Normalize() {
	if mag := v.Magnitude(); mag > 0 {
		v.DivAssign(mag)
	}
}

// Distance ...
func (v Vector3) Distance(o Vector3) float32 {
	return v.Sub(o).Magnitude()
}

// DistanceSquared ...
func (v Vector3) DistanceSquared(o Vector3) float32 {
	return v.Sub(o).MagnitudeSquared()
}

// Lerp linearly interpolates from v to o without clamping t.
func (v Vector3) Lerp(o Vector3, t float32) Vector3 {
	return Vector3{lerp(v[0], o[0], t), lerp(v[1], o[1], t), lerp(v[2], o[2], t)}
}

// Reflect reflects v off a surface with the given normal. The normal should be normalized.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// IsNull reports whether all components are exactly zero.
func (v Vector3) IsNull() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// IsNear reports whether o is closer than eps to v.
func (v Vector3) IsNear(o Vector3, eps float32) bool {
	return v.Distance(o) < eps
}
