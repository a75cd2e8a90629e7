package omath

import (
	"testing"

	"github.com/chewxy/math32"
)

// matrixNear reports whether every component of a is within eps of the matching component of b.
func matrixNear(a, b Matrix, eps float32) bool {
	for i := 0; i < 3; i++ {
		if !Float32ApproxEq(a.Right[i], b.Right[i], eps) ||
			!Float32ApproxEq(a.Up[i], b.Up[i], eps) ||
			!Float32ApproxEq(a.Forward[i], b.Forward[i], eps) {
			return false
		}
	}
	return true
}

var sampleVectors = []Vector3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 2, 3},
	{-4.5, 0.25, 7},
	{0.001, -0.002, 0.003},
}

func TestIdentityTransform(t *testing.T) {
	id := Identity()
	for _, v := range sampleVectors {
		if got := id.Transform(v); got != v {
			t.Errorf("identity transform of %v = %v", v, got)
		}
	}
	if !id.IsIdentity(Epsilon) || id.Determinant() != 1 {
		t.Fatal("Identity should be the identity matrix")
	}
	if (Matrix{}).Determinant() != 0 {
		t.Fatal("the zero value should be the zero matrix")
	}
}

func TestMatrixTransform(t *testing.T) {
	m := NewMatrix(Vector3{1, 2, 3}, Vector3{4, 5, 6}, Vector3{7, 8, 9})
	// right*1 + up*0 + forward*-1
	if got := m.Transform(Vector3{1, 0, -1}); got != (Vector3{-6, -6, -6}) {
		t.Fatalf("transform = %v, want (-6, -6, -6)", got)
	}

	tests := []struct {
		name string
		m    Matrix
		in   Vector3
		want Vector3
	}{
		{"rotate x takes y to z", RotationX(math32.Pi / 2), UpVector3(), ForwardVector3()},
		{"rotate y takes z to x", RotationY(math32.Pi / 2), ForwardVector3(), RightVector3()},
		{"rotate z takes x to y", RotationZ(math32.Pi / 2), RightVector3(), UpVector3()},
		{"scale", Scale(2, 3, 4), OneVector3(), Vector3{2, 3, 4}},
		{"scale vec", ScaleVec(Vector3{-1, 0.5, 0}), Vector3{2, 2, 2}, Vector3{-2, 1, 0}},
	}
	for _, tt := range tests {
		if got := tt.m.Transform(tt.in); !got.Equal(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	a := RotationX(0.3).Mul(Scale(1, 2, 3))
	b := RotationZ(1.1).Mul(NewMatrix(Vector3{1, 0.5, 0}, Vector3{0, 1, 0}, Vector3{0.25, 0, 1}))

	before := a
	a.Multiply(a, b)
	for _, v := range sampleVectors {
		want := before.Transform(b.Transform(v))
		if got := a.Transform(v); !got.IsNear(want, 1e-5) {
			t.Errorf("(A*B)v = %v, want A(Bv) = %v", got, want)
		}
	}

	c := before
	c.MulAssign(b)
	if c != a || before.Mul(b) != a {
		t.Fatal("Mul, MulAssign and Multiply disagree")
	}

	// Multiplying into the right hand side operand must read it before overwriting it.
	d := b
	d.Multiply(before, d)
	if d != a {
		t.Fatalf("Multiply with rhs aliasing the receiver gave %v, want %v", d, a)
	}
}

func TestMatrixTranspose(t *testing.T) {
	m := NewMatrix(Vector3{1, 2, 3}, Vector3{4, 5, 6}, Vector3{7, 8, 9})
	want := NewMatrix(Vector3{1, 4, 7}, Vector3{2, 5, 8}, Vector3{3, 6, 9})
	if got := m.Transpose(); got != want {
		t.Fatalf("transpose = %v, want %v", got, want)
	}
	if m.Transpose().Transpose() != m {
		t.Fatal("transposing twice should give back the matrix")
	}

	r := FromEulerAngles(0.4, -1.2, 2.0)
	if !matrixNear(r.Transpose(), r.Inverse(), 1e-5) {
		t.Fatal("the transpose of a rotation should be its inverse")
	}
}

func TestMatrixDeterminant(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float32
	}{
		{"identity", Identity(), 1},
		{"zero", Matrix{}, 0},
		{"scale", Scale(2, 3, 5), 30},
		{"swapped axes", NewMatrix(UpVector3(), RightVector3(), ForwardVector3()), -1},
		{"general", NewMatrix(Vector3{2, 1, 0}, Vector3{0, 1, 3}, Vector3{1, 0, 1}), 5},
		{"repeated column", NewMatrix(Vector3{1, 2, 3}, Vector3{1, 2, 3}, Vector3{0, 1, 0}), 0},
	}
	for _, tt := range tests {
		if got := tt.m.Determinant(); got != tt.want {
			t.Errorf("%s: determinant = %v, want %v", tt.name, got, tt.want)
		}
	}
	if d := FromEulerAngles(0.3, 2.1, -0.8).Determinant(); !Float32ApproxEq(d, 1, 1e-5) {
		t.Fatalf("determinant of a rotation = %v, want 1", d)
	}
}

func TestMatrixInverse(t *testing.T) {
	if got := Scale(2, 4, 8).Inverse(); got != Scale(0.5, 0.25, 0.125) {
		t.Fatalf("inverse of scale = %v", got)
	}

	m := NewMatrix(Vector3{2, 1, 0}, Vector3{0, 1, 3}, Vector3{1, 0, 1})
	inv := m.Inverse()
	if !m.Mul(inv).IsIdentity(1e-5) || !inv.Mul(m).IsIdentity(1e-5) {
		t.Fatalf("m * m⁻¹ should be the identity, got %v", m.Mul(inv))
	}
	for _, v := range sampleVectors {
		if got := inv.Transform(m.Transform(v)); !got.IsNear(v, 1e-5) {
			t.Errorf("m⁻¹(m(%v)) = %v", v, got)
		}
	}

	singular := []Matrix{
		{},
		NewMatrix(Vector3{1, 2, 3}, Vector3{1, 2, 3}, Vector3{0, 1, 0}),
		Scale(1e-3, 1e-3, 0.5),
	}
	for _, s := range singular {
		if got := s.Inverse(); got != Identity() {
			t.Errorf("inverse of singular %v = %v, want the identity", s, got)
		}
	}
}

func TestMatrixPredicates(t *testing.T) {
	scaled := Scale(2, 3, 5)
	if !scaled.IsOrthogonal(Epsilon) {
		t.Fatal("scaled axes are pairwise orthogonal")
	}
	if scaled.IsIdentity(Epsilon) {
		t.Fatal("scaled axes are not the identity")
	}
	if NewMatrix(Vector3{1, 1, 0}, UpVector3(), ForwardVector3()).IsOrthogonal(Epsilon) {
		t.Fatal("a sheared basis is not orthogonal")
	}
	if RotationZ(0.1).IsIdentity(Epsilon) || !RotationZ(0.1).IsOrthogonal(1e-5) {
		t.Fatal("a small rotation is orthogonal but not the identity")
	}
	if !RotationZ(1e-8).IsIdentity(Epsilon) {
		t.Fatal("a rotation smaller than epsilon should count as the identity")
	}
	if !Identity().Equal(NewMatrix(Vector3{1, 0, 0}, Vector3{0, 1.0000005, 0}, Vector3{0, 0, 1})) {
		t.Fatal("Equal should use a 1e-6 component tolerance")
	}
}

func TestMatrixOrthonormalize(t *testing.T) {
	m := NewMatrix(Vector3{2, 0, 0}, Vector3{1, 3, 0}, Vector3{5, 5, 5})
	m.Orthonormalize()
	if !m.IsIdentity(Epsilon) {
		t.Fatalf("expected the identity, got %v", m)
	}

	skewed := NewMatrix(Vector3{1, 0.2, -0.1}, Vector3{0.3, 2, 0.4}, Vector3{0, 0, -7})
	right := skewed.Right.Normalized()
	skewed.Orthonormalize()
	if !skewed.IsOrthogonal(1e-5) {
		t.Fatalf("orthonormalized basis is not orthogonal: %v", skewed)
	}
	for _, v := range []Vector3{skewed.Right, skewed.Up, skewed.Forward} {
		if !Float32ApproxEq(v.Magnitude(), 1, 1e-5) {
			t.Errorf("basis vector %v is not unit length", v)
		}
	}
	if !skewed.Right.IsNear(right, 1e-6) {
		t.Fatalf("right should keep its direction, got %v want %v", skewed.Right, right)
	}
	// The skewed forward pointed down -z; it is rebuilt as right × up regardless.
	if d := skewed.Determinant(); !Float32ApproxEq(d, 1, 1e-5) {
		t.Fatalf("orthonormalized basis should be right-handed, determinant %v", d)
	}
}

func TestEulerRoundTrip(t *testing.T) {
	pitches := []float32{0, 0.3, -0.7, 1.2, -1.5}
	yaws := []float32{0, 1, -2.5, 3}
	rolls := []float32{0, 0.5, -1.8, 2.9}

	for _, p := range pitches {
		for _, y := range yaws {
			for _, r := range rolls {
				m := FromEulerAngles(p, y, r)
				if m.GimbalLocked() {
					t.Fatalf("pitch %v should not be gimbal locked", p)
				}
				got := m.EulerAngles()
				want := Vector3{p, y, r}
				for i := range got {
					if !Float32ApproxEq(got[i], want[i], 1e-4) {
						t.Errorf("EulerAngles(FromEulerAngles(%v)) = %v", want, got)
						break
					}
				}
				if FromEulerAnglesVec(want) != m {
					t.Errorf("FromEulerAnglesVec disagrees with FromEulerAngles for %v", want)
				}
			}
		}
	}
}

func TestEulerCompositionOrder(t *testing.T) {
	p, y, r := float32(0.4), float32(-1.1), float32(0.9)
	m := FromEulerAngles(p, y, r)
	for _, v := range sampleVectors {
		want := RotationY(y).Transform(RotationX(p).Transform(RotationZ(r).Transform(v)))
		if got := m.Transform(v); !got.IsNear(want, 1e-5) {
			t.Errorf("euler rotation of %v = %v, want roll then pitch then yaw = %v", v, got, want)
		}
	}
}

func TestEulerGimbalLock(t *testing.T) {
	for _, p := range []float32{math32.Pi / 2, -math32.Pi / 2} {
		m := FromEulerAngles(p, 0.8, 0.3)
		if !m.GimbalLocked() {
			t.Fatalf("pitch %v should be gimbal locked", p)
		}
		angles := m.EulerAngles()
		if angles[2] != 0 {
			t.Fatalf("roll at gimbal lock should be exactly 0, got %v", angles[2])
		}
		if !Float32ApproxEq(angles[0], p, 1e-3) {
			t.Fatalf("pitch at gimbal lock = %v, want %v", angles[0], p)
		}
		// Yaw absorbs the roll, so the decomposition still rebuilds the same orientation.
		if rebuilt := FromEulerAnglesVec(angles); !matrixNear(rebuilt, m, 1e-5) {
			t.Fatalf("rebuilt %v from %v, want %v", rebuilt, angles, m)
		}
	}
}

func TestEulerAnglesOutOfRange(t *testing.T) {
	// A scaled basis pushes forward.y past -1; pitch saturates instead of going NaN.
	m := NewMatrix(RightVector3(), ForwardVector3().Neg(), Vector3{0, -1.5, 0})
	angles := m.EulerAngles()
	if math32.IsNaN(angles[0]) || !Float32ApproxEq(angles[0], math32.Pi/2, 1e-6) {
		t.Fatalf("pitch = %v, want π/2", angles[0])
	}
}
