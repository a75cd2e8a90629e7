package omath

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/ogeom/assert"
)

// Vector2 is a two component vector laid out as [x, y]. It is a value type: methods with a value
// receiver return a new vector and never modify the one they were called on, while the few
// methods with a pointer receiver (Normalize, Rotate and the *Assign family) update it in place.
// None of the operations fail. Division by zero and normalisation of the zero vector produce
// zero components rather than infinities or NaN, except DivAssign by zero, which leaves the
// vector as it was.
type Vector2 [2]float32

// NewVector2 returns the vector (x, y).
func NewVector2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// ZeroVector2 returns (0, 0).
func ZeroVector2() Vector2 { return Vector2{0, 0} }

// OneVector2 returns (1, 1).
func OneVector2() Vector2 { return Vector2{1, 1} }

// UpVector2 returns (0, 1).
func UpVector2() Vector2 { return Vector2{0, 1} }

// DownVector2 returns (0, -1).
func DownVector2() Vector2 { return Vector2{0, -1} }

// LeftVector2 returns (-1, 0).
func LeftVector2() Vector2 { return Vector2{-1, 0} }

// RightVector2 returns (1, 0).
func RightVector2() Vector2 { return Vector2{1, 0} }

// FromAngle returns a vector of the given magnitude pointing at angle radians counter-clockwise
// from the positive x-axis. Use a magnitude of 1 for a unit direction.
func FromAngle(angle, magnitude float32) Vector2 {
	return Vector2{math32.Cos(angle) * magnitude, math32.Sin(angle) * magnitude}
}

// X ...
func (v Vector2) X() float32 { return v[0] }

// Y ...
func (v Vector2) Y() float32 { return v[1] }

// Component returns the component at index i (0 for x, 1 for y). It panics for any other index.
func (v Vector2) Component(i int) float32 {
	assert.InRange(i, 2, "vector2 component")
	return v[i]
}

// SetComponent sets the component at index i (0 for x, 1 for y). It panics for any other index.
func (v *Vector2) SetComponent(i int, f float32) {
	assert.InRange(i, 2, "vector2 component")
	v[i] = f
}

// Add ...
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v[0] + o[0], v[1] + o[1]}
}

// Sub ...
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v[0] - o[0], v[1] - o[1]}
}

// Mul scales the vector by s.
func (v Vector2) Mul(s float32) Vector2 {
	return Vector2{v[0] * s, v[1] * s}
}

// MulVec multiplies the vectors component-wise.
func (v Vector2) MulVec(o Vector2) Vector2 {
	return Vector2{v[0] * o[0], v[1] * o[1]}
}

// Div divides the vector by s. Dividing by zero returns the zero vector.
func (v Vector2) Div(s float32) Vector2 {
	if s != 0 {
		return Vector2{v[0] / s, v[1] / s}
	}
	return Vector2{}
}

// DivVec divides the vectors component-wise. Any component divided by zero becomes zero.
func (v Vector2) DivVec(o Vector2) Vector2 {
	return Vector2{safeDiv(v[0], o[0]), safeDiv(v[1], o[1])}
}

// Neg ...
func (v Vector2) Neg() Vector2 {
	return Vector2{-v[0], -v[1]}
}

// Pos returns v unchanged.
func (v Vector2) Pos() Vector2 {
	return v
}

// AddAssign adds o to v in place.
func (v *Vector2) AddAssign(o Vector2) {
	v[0] += o[0]
	v[1] += o[1]
}

// SubAssign subtracts o from v in place.
func (v *Vector2) SubAssign(o Vector2) {
	v[0] -= o[0]
	v[1] -= o[1]
}

// MulAssign scales v by s in place.
func (v *Vector2) MulAssign(s float32) {
	v[0] *= s
	v[1] *= s
}

// MulVecAssign multiplies v by o component-wise in place.
func (v *Vector2) MulVecAssign(o Vector2) {
	v[0] *= o[0]
	v[1] *= o[1]
}

// DivAssign divides v by s in place. Dividing by zero leaves v unchanged.
func (v *Vector2) DivAssign(s float32) {
	if s == 0 {
		return
	}
	v[0] /= s
	v[1] /= s
}

// DivVecAssign divides v by o component-wise in place, zeroing components divided by zero.
func (v *Vector2) DivVecAssign(o Vector2) {
	*v = v.DivVec(o)
}

// Equal reports whether every component of v is within Epsilon of the matching component of o.
func (v Vector2) Equal(o Vector2) bool {
	return Float32ApproxEq(v[0], o[0], Epsilon) && Float32ApproxEq(v[1], o[1], Epsilon)
}

// Less orders vectors by x first and y second, using exact comparisons.
func (v Vector2) Less(o Vector2) bool {
	return v[0] < o[0] || (v[0] == o[0] && v[1] < o[1])
}

// Dot ...
func (v Vector2) Dot(o Vector2) float32 {
	return v[0]*o[0] + v[1]*o[1]
}

// Cross returns the z component of the 3D cross product of (v.x, v.y, 0) and (o.x, o.y, 0).
func (v Vector2) Cross(o Vector2) float32 {
	return v[0]*o[1] - v[1]*o[0]
}

// Magnitude ...
func (v Vector2) Magnitude() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1])
}

// Length is an alias of Magnitude.
func (v Vector2) Length() float32 {
	return v.Magnitude()
}

// MagnitudeSquared ...
func (v Vector2) MagnitudeSquared() float32 {
	return v[0]*v[0] + v[1]*v[1]
}

// LengthSquared is an alias of MagnitudeSquared.
func (v Vector2) LengthSquared() float32 {
	return v.MagnitudeSquared()
}

// Normalized returns the unit vector pointing the same way as v, or (0, 0) if v has no length.
func (v Vector2) Normalized() Vector2 {
	if mag := v.Magnitude(); mag > 0 {
		return v.Div(mag)
	}
	return Vector2{}
}

// Normalize scales v to unit length in place. The zero vector is left unchanged.
func (v *Vector2) Normalize() {
	v.NormalizeAndGetLength()
}

// NormalizeAndGetLength scales v to unit length in place and returns the length it had before.
// The zero vector is left unchanged and 0 is returned.
func (v *Vector2) NormalizeAndGetLength() float32 {
	mag := v.Magnitude()
	if mag > 0 {
		v.DivAssign(mag)
	}
	return mag
}

// Distance ...
func (v Vector2) Distance(o Vector2) float32 {
	return v.Sub(o).Magnitude()
}

// DistanceSquared ...
func (v Vector2) DistanceSquared(o Vector2) float32 {
	return v.Sub(o).MagnitudeSquared()
}

// Lerp linearly interpolates from v to o. t is not clamped, so values outside of [0, 1]
// extrapolate along the line through both vectors.
func (v Vector2) Lerp(o Vector2, t float32) Vector2 {
	return Vector2{lerp(v[0], o[0], t), lerp(v[1], o[1], t)}
}

// Smoothstep interpolates from v to o after easing t with 3t²-2t³.
func (v Vector2) Smoothstep(o Vector2, t float32) Vector2 {
	t = t * t * (3 - 2*t)
	return v.Lerp(o, t)
}

// Slerp spherically interpolates between the unit vectors v and o. When v and o are parallel or
// antiparallel, the perpendicular direction degenerates to (0, 0) and the result only follows
// the cosine term.
func (v Vector2) Slerp(o Vector2, t float32) Vector2 {
	dot := ClampFloat(v.Dot(o), -1, 1)
	theta := math32.Acos(dot) * t
	relative := o.Sub(v.Mul(dot)).Normalized()

	return v.Mul(math32.Cos(theta)).Add(relative.Mul(math32.Sin(theta)))
}

// Reflect reflects v off a surface with the given normal. The normal should be normalized.
func (v Vector2) Reflect(normal Vector2) Vector2 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Project returns the projection of v onto the given vector, or (0, 0) if it has no length.
func (v Vector2) Project(onto Vector2) Vector2 {
	if magSq := onto.MagnitudeSquared(); magSq > 0 {
		return onto.Mul(v.Dot(onto) / magSq)
	}
	return Vector2{}
}

// Reject returns the component of v orthogonal to from.
func (v Vector2) Reject(from Vector2) Vector2 {
	return v.Sub(v.Project(from))
}

// Perpendicular returns v rotated 90 degrees counter-clockwise.
func (v Vector2) Perpendicular() Vector2 {
	return Vector2{-v[1], v[0]}
}

// Perp is an alias of Perpendicular.
func (v Vector2) Perp() Vector2 {
	return v.Perpendicular()
}

// Rotated returns v rotated counter-clockwise by angle radians.
func (v Vector2) Rotated(angle float32) Vector2 {
	sin, cos := math32.Sin(angle), math32.Cos(angle)
	return Vector2{
		v[0]*cos - v[1]*sin,
		v[0]*sin + v[1]*cos,
	}
}

// Rotate rotates v counter-clockwise by angle radians in place.
func (v *Vector2) Rotate(angle float32) {
	*v = v.Rotated(angle)
}

// Angle returns the angle of v from the positive x-axis in (-π, π].
func (v Vector2) Angle() float32 {
	return math32.Atan2(v[1], v[0])
}

// AngleTo returns the signed angle in (-π, π] that rotates v onto o. Positive is counter-clockwise.
func (v Vector2) AngleTo(o Vector2) float32 {
	return math32.Atan2(v.Cross(o), v.Dot(o))
}

// SignedAngleTo is an alias of AngleTo.
func (v Vector2) SignedAngleTo(o Vector2) float32 {
	return v.AngleTo(o)
}

// UnsignedAngleTo returns the angle between v and o in [0, π].
func (v Vector2) UnsignedAngleTo(o Vector2) float32 {
	return math32.Abs(v.AngleTo(o))
}

// IsNull reports whether both components are exactly zero.
func (v Vector2) IsNull() bool {
	return v[0] == 0 && v[1] == 0
}

// IsZero is an alias of IsNull.
func (v Vector2) IsZero() bool {
	return v.IsNull()
}

// IsNear reports whether o is closer than eps to v.
func (v Vector2) IsNear(o Vector2, eps float32) bool {
	return v.Distance(o) < eps
}

// IsNormalized reports whether the squared magnitude of v is within eps of 1.
func (v Vector2) IsNormalized(eps float32) bool {
	return math32.Abs(v.MagnitudeSquared()-1) < eps
}

// IsUnit is an alias of IsNormalized.
func (v Vector2) IsUnit(eps float32) bool {
	return v.IsNormalized(eps)
}

// MinVec returns the component-wise minimum of v and o.
func (v Vector2) MinVec(o Vector2) Vector2 {
	return Vector2{math32.Min(v[0], o[0]), math32.Min(v[1], o[1])}
}

// MaxVec returns the component-wise maximum of v and o.
func (v Vector2) MaxVec(o Vector2) Vector2 {
	return Vector2{math32.Max(v[0], o[0]), math32.Max(v[1], o[1])}
}

// Clamp clamps each component of v between the matching components of min and max.
func (v Vector2) Clamp(min, max Vector2) Vector2 {
	return Vector2{ClampFloat(v[0], min[0], max[0]), ClampFloat(v[1], min[1], max[1])}
}

// ClampScalar clamps both components of v between min and max.
func (v Vector2) ClampScalar(min, max float32) Vector2 {
	return Vector2{ClampFloat(v[0], min, max), ClampFloat(v[1], min, max)}
}

// Abs ...
func (v Vector2) Abs() Vector2 {
	return Vector2{math32.Abs(v[0]), math32.Abs(v[1])}
}

// Floor ...
func (v Vector2) Floor() Vector2 {
	return Vector2{math32.Floor(v[0]), math32.Floor(v[1])}
}

// Ceil ...
func (v Vector2) Ceil() Vector2 {
	return Vector2{math32.Ceil(v[0]), math32.Ceil(v[1])}
}

// Round rounds each component to the nearest integer, halves away from zero.
func (v Vector2) Round() Vector2 {
	return Vector2{math32.Round(v[0]), math32.Round(v[1])}
}

// Fract returns v minus its floor, so every component lies in [0, 1).
func (v Vector2) Fract() Vector2 {
	return v.Sub(v.Floor())
}

// Sign returns -1, 0 or 1 for each component depending on its sign.
func (v Vector2) Sign() Vector2 {
	return Vector2{Sign(v[0]), Sign(v[1])}
}
