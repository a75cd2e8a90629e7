package omath

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 converts v to a mgl32.Vec2.
func (v Vector2) Vec2() mgl32.Vec2 {
	return mgl32.Vec2(v)
}

// Vector2FromVec2 converts a mgl32.Vec2 to a Vector2.
func Vector2FromVec2(v mgl32.Vec2) Vector2 {
	return Vector2(v)
}

// Vec3 converts v to a mgl32.Vec3.
func (v Vector3) Vec3() mgl32.Vec3 {
	return mgl32.Vec3(v)
}

// Vec64 converts v to a 64 bit mgl64.Vec3.
func (v Vector3) Vec64() mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Vector3FromVec3 converts a mgl32.Vec3 to a Vector3.
func Vector3FromVec3(v mgl32.Vec3) Vector3 {
	return Vector3(v)
}

// Vector3FromVec64 converts a mgl64.Vec3 to a Vector3, losing precision.
func Vector3FromVec64(v mgl64.Vec3) Vector3 {
	return Vector3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// Mat3 returns m as a column-major mgl32.Mat3. The columns are Right, Up and Forward in that order.
func (m Matrix) Mat3() mgl32.Mat3 {
	return mgl32.Mat3{
		m.Right[0], m.Right[1], m.Right[2],
		m.Up[0], m.Up[1], m.Up[2],
		m.Forward[0], m.Forward[1], m.Forward[2],
	}
}

// Mat4 returns m embedded in a homogeneous mgl32.Mat4 without translation.
func (m Matrix) Mat4() mgl32.Mat4 {
	return m.Mat3().Mat4()
}

// MatrixFromMat3 builds a Matrix from the columns of a mgl32.Mat3.
func MatrixFromMat3(m mgl32.Mat3) Matrix {
	return Matrix{
		Right:   Vector3(m.Col(0)),
		Up:      Vector3(m.Col(1)),
		Forward: Vector3(m.Col(2)),
	}
}
