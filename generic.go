package keccakp

import "math/bits"

// rc is the Keccak-f[1600] round constant schedule. Permute24 uses all 24
// entries in order; Permute12 uses rc[12:].
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rho is the left-rotation amount applied to the lane at index x+5*y. All
// amounts are already in [0, 64); rotation amounts are reduced mod 64 before
// use regardless.
var rho = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// pi maps each lane index to the index its rotated value relocates to:
// (x, y) moves to (y, 2x+3y).
var pi = [25]int{
	0, 10, 20, 5, 15,
	16, 1, 11, 21, 6,
	7, 17, 2, 12, 22,
	23, 8, 18, 3, 13,
	14, 24, 9, 19, 4,
}

// f1600Generic applies one Keccak-p[1600] round per given round constant:
// theta, rho and pi, chi, iota. It is the portable implementation and the
// correctness oracle for the vector tiers.
func f1600Generic(a *State, rcs []uint64) {
	var t State
	var c, d [5]uint64

	for _, k := range rcs {
		// Theta: column parities, then mix adjacent columns into every lane.
		for x := range 5 {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := range 5 {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for i := range a {
			a[i] ^= d[i%5]
		}

		// Rho and pi, fused. Relocation reads a snapshot so that no lane is
		// overwritten before its rotated value has been read.
		t = *a
		for i, r := range rho {
			a[pi[i]] = bits.RotateLeft64(t[i], r&63)
		}

		// Chi, row by row.
		for y := 0; y < 25; y += 5 {
			a0, a1, a2, a3, a4 := a[y], a[y+1], a[y+2], a[y+3], a[y+4]
			a[y] = a0 ^ (^a1 & a2)
			a[y+1] = a1 ^ (^a2 & a3)
			a[y+2] = a2 ^ (^a3 & a4)
			a[y+3] = a3 ^ (^a4 & a0)
			a[y+4] = a4 ^ (^a0 & a1)
		}

		// Iota.
		a[0] ^= k
	}
}
