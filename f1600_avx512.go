//go:build amd64 && goexperiment.simd && !purego

package keccakp

import (
	"math/bits"

	"simd/archsimd"
)

// 512-bit tier: each round works on eight lanes per vector register.
//
// Theta rides all five lanes of a column in the low half of one vector and
// folds the parity horizontally, then applies the D values to lanes 0..15
// with two vector XORs; the nine tail lanes use identical scalar arithmetic.
// Rho and pi relocate scalar lanes from the theta snapshot. Chi runs each
// five-lane row and its two rotations through a single andnot/xor vector
// expression.

func permute24AVX512(a *State) { f1600AVX512(a, rc[:]) }

func permute12AVX512(a *State) { f1600AVX512(a, rc[12:]) }

// xorLanes8 folds the eight lanes of v into a single 64-bit parity.
func xorLanes8(v archsimd.Uint64x8) uint64 {
	return xorLanes4(v.GetLo().Xor(v.GetHi()))
}

func f1600AVX512(a *State, rcs []uint64) {
	var t State
	var c, d [5]uint64

	for _, k := range rcs {
		// Theta: one column per vector, upper three lanes zero.
		for x := range 5 {
			col := [8]uint64{a[x], a[x+5], a[x+10], a[x+15], a[x+20]}
			c[x] = xorLanes8(archsimd.LoadUint64x8Slice(col[:]))
		}
		for x := range 5 {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}

		// XOR D into lanes 0..15. Lane i takes d[i%5], so the pattern wraps
		// across the two vectors.
		dLo := [8]uint64{d[0], d[1], d[2], d[3], d[4], d[0], d[1], d[2]}
		dHi := [8]uint64{d[3], d[4], d[0], d[1], d[2], d[3], d[4], d[0]}

		s0 := archsimd.LoadUint64x8Slice(a[0:8]).Xor(archsimd.LoadUint64x8Slice(dLo[:]))
		s1 := archsimd.LoadUint64x8Slice(a[8:16]).Xor(archsimd.LoadUint64x8Slice(dHi[:]))

		// The theta output doubles as the rho/pi snapshot: relocation must
		// not overwrite a lane before its rotated value has been read.
		s0.StoreSlice(t[0:8])
		s1.StoreSlice(t[8:16])

		// Tail lanes 16..24, same arithmetic in scalar form.
		for i := 16; i < 25; i++ {
			t[i] = a[i] ^ d[i%5]
		}

		// Rho and pi, fused.
		for i, r := range rho {
			a[pi[i]] = bits.RotateLeft64(t[i], r&63)
		}

		// Chi: lane'[i] = lane[i] ^ (^lane[i+1] & lane[i+2]) within each row.
		for y := 0; y < 25; y += 5 {
			row := [8]uint64{a[y], a[y+1], a[y+2], a[y+3], a[y+4]}
			next := [8]uint64{a[y+1], a[y+2], a[y+3], a[y+4], a[y]}
			after := [8]uint64{a[y+2], a[y+3], a[y+4], a[y], a[y+1]}

			v := archsimd.LoadUint64x8Slice(row[:]).
				Xor(archsimd.LoadUint64x8Slice(after[:]).AndNot(archsimd.LoadUint64x8Slice(next[:])))
			v.StoreSlice(row[:])
			copy(a[y:y+5], row[:5])
		}

		// Iota.
		a[0] ^= k
	}
}
