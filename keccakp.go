// Package keccakp implements the Keccak-p[1600] permutation.
//
// Keccak-p[1600] is the permutation underlying SHA-3, SHAKE, and TurboSHAKE.
// This package exposes only the permutation primitive: the full 24-round
// Keccak-f[1600] and the reduced 12-round Keccak-p[1600,12] variant. Sponge
// constructions (absorbing, squeezing, padding, rate/capacity handling) are
// left to callers.
//
// On amd64 built with GOEXPERIMENT=simd, runtime CPU feature detection selects
// an AVX-512 or AVX2 implementation on first use; all other builds, and builds
// with the purego tag, use a portable generic implementation. Every
// implementation produces bit-identical output for identical input.
package keccakp

// A State is the 1600-bit Keccak permutation state: 25 64-bit lanes, with the
// lane at coordinates (x, y) stored at index x+5*y. The caller owns the state;
// the permutation mutates it in place and retains no reference to it.
type State [25]uint64

// Permute24 applies the full 24-round Keccak-f[1600] permutation to the state
// in place.
func Permute24(a *State) {
	binding().permute24(a)
}

// Permute12 applies the 12-round Keccak-p[1600,12] permutation to the state
// in place.
//
// The 12 rounds are the last 12 rounds of Keccak-f[1600], using round
// constants 12 through 23, not the first 12. Applying Permute12 twice is not
// equivalent to Permute24.
func Permute12(a *State) {
	binding().permute12(a)
}

// Implementation returns the name of the implementation bound for this
// process: "generic", "avx2", or "avx512". Calling it forces the binding.
func Implementation() string {
	return binding().name
}
