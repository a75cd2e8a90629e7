package omath

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
)

// TransformBBox returns the smallest axis aligned box that contains b after every one of its
// corners has been transformed by m.
func (m Matrix) TransformBBox(b cube.BBox) cube.BBox {
	bbMin, bbMax := Vector3FromVec3(b.Min()), Vector3FromVec3(b.Max())
	columns := [3]Vector3{m.Right, m.Up, m.Forward}

	var newMin, newMax Vector3
	for row := 0; row < 3; row++ {
		for col, basis := range columns {
			lo, hi := basis[row]*bbMin[col], basis[row]*bbMax[col]
			newMin[row] += math32.Min(lo, hi)
			newMax[row] += math32.Max(lo, hi)
		}
	}
	return cube.Box(newMin[0], newMin[1], newMin[2], newMax[0], newMax[1], newMax[2])
}

// BBoxDistance calculates the distance between an AABB and a point. Points inside the box are at
// distance 0.
func BBoxDistance(b cube.BBox, v Vector3) float32 {
	bbMin, bbMax := b.Min(), b.Max()
	x := math32.Max(bbMin[0]-v[0], math32.Max(0, v[0]-bbMax[0]))
	y := math32.Max(bbMin[1]-v[1], math32.Max(0, v[1]-bbMax[1]))
	z := math32.Max(bbMin[2]-v[2], math32.Max(0, v[2]-bbMax[2]))

	return math32.Sqrt(x*x + y*y + z*z)
}
