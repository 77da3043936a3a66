// Package vmath is the 3-vector math kernel: dot product and the
// (deliberately non-standard) normalize used throughout the traversal
// core. Vectors are plain [3]float32 at every call site; mgl32.Vec3 is
// defined as [3]float32, so converting to it to borrow its Dot
// implementation is free.
package vmath

import "github.com/go-gl/mathgl/mgl32"

// Dot returns a . b.
func Dot(a, b [3]float32) float32 {
	return mgl32.Vec3(a).Dot(mgl32.Vec3(b))
}

// Normalize divides a by dot(a, a) — the squared length, not the
// length. This is not a mathematically correct unit-vector normalize:
// the result has length 1/|a|, not 1. It is preserved intentionally
// because the sole caller (edge-plane derivation in package bsp) only
// ever tests the *sign* of a dot product against the result, which is
// invariant under any positive rescaling. See the open question in the
// spec for why this is kept rather than "fixed".
func Normalize(a [3]float32) [3]float32 {
	lenSq := Dot(a, a)
	return [3]float32{a[0] / lenSq, a[1] / lenSq, a[2] / lenSq}
}
