package omath

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// Fingerprint hashes the exact bit patterns of the components of v. Two vectors share a
// fingerprint only if they are bit-for-bit identical, which makes it useful for comparing
// results produced on different machines.
func (v Vector2) Fingerprint() uint64 {
	var buf [8]byte
	putFloats(buf[:], v[:]...)
	return xxh3.Hash(buf[:])
}

// Fingerprint hashes the exact bit patterns of the components of v.
func (v Vector3) Fingerprint() uint64 {
	var buf [12]byte
	putFloats(buf[:], v[:]...)
	return xxh3.Hash(buf[:])
}

// Fingerprint hashes the exact bit patterns of Right, Up and Forward, in that order.
func (m Matrix) Fingerprint() uint64 {
	var buf [36]byte
	putFloats(buf[0:12], m.Right[:]...)
	putFloats(buf[12:24], m.Up[:]...)
	putFloats(buf[24:36], m.Forward[:]...)
	return xxh3.Hash(buf[:])
}

func putFloats(dst []byte, fs ...float32) {
	for i, f := range fs {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(f))
	}
}
