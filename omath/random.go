package omath

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// Float32Source produces uniformly distributed float32 values in [0, 1). *rand.Rand satisfies it.
type Float32Source interface {
	Float32() float32
}

// NewSource returns a PCG generator seeded with seed. Equal seeds produce equal sequences.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0xda3e39cb94b95bdb))
}

// RandomUnitVector2 returns a unit vector with a direction drawn uniformly from [0, 2π).
func RandomUnitVector2(src Float32Source) Vector2 {
	return FromAngle(src.Float32()*2*math32.Pi, 1)
}

// RandomVector2 returns a vector with each component drawn uniformly between the matching
// components of min and max.
func RandomVector2(src Float32Source, min, max Vector2) Vector2 {
	return RandomVector2Range(src, min[0], max[0], min[1], max[1])
}

// RandomVector2Range returns a vector with x drawn from [minX, maxX) and y from [minY, maxY).
// x is always drawn before y.
func RandomVector2Range(src Float32Source, minX, maxX, minY, maxY float32) Vector2 {
	x := minX + src.Float32()*(maxX-minX)
	y := minY + src.Float32()*(maxY-minY)
	return Vector2{x, y}
}
