//go:build amd64 && goexperiment.simd && !purego

package keccakp

import (
	"math/bits"

	"simd/archsimd"
)

// 256-bit tier: each round works on four lanes per vector register.
//
// Theta rides the y=1..4 lanes of each column in one vector and folds the
// parity horizontally, then applies the five D values to lanes 0..15 with
// four vector XORs. Lanes 16..24 are a partial vector width and are finished
// in scalar form with identical arithmetic. Rho and pi relocate scalar lanes
// from the theta snapshot; chi is branch-free scalar row logic, as in the
// portable implementation.

func permute24AVX2(a *State) { f1600AVX2(a, rc[:]) }

func permute12AVX2(a *State) { f1600AVX2(a, rc[12:]) }

// xorLanes4 folds the four lanes of v into a single 64-bit parity.
func xorLanes4(v archsimd.Uint64x4) uint64 {
	h := v.GetLo().Xor(v.GetHi())
	return h.GetElem(0) ^ h.GetElem(1)
}

func f1600AVX2(a *State, rcs []uint64) {
	var t State
	var c, d [5]uint64

	for _, k := range rcs {
		// Theta: per-column parity, rows 1..4 vectorized, row 0 scalar.
		for x := range 5 {
			col := [4]uint64{a[x+5], a[x+10], a[x+15], a[x+20]}
			c[x] = a[x] ^ xorLanes4(archsimd.LoadUint64x4Slice(col[:]))
		}
		for x := range 5 {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}

		// XOR D into lanes 0..15. The column index wraps mod 5, so the D
		// pattern shifts by one position per group of four lanes.
		d0 := [4]uint64{d[0], d[1], d[2], d[3]}
		d1 := [4]uint64{d[4], d[0], d[1], d[2]}
		d2 := [4]uint64{d[3], d[4], d[0], d[1]}
		d3 := [4]uint64{d[2], d[3], d[4], d[0]}

		s0 := archsimd.LoadUint64x4Slice(a[0:4]).Xor(archsimd.LoadUint64x4Slice(d0[:]))
		s1 := archsimd.LoadUint64x4Slice(a[4:8]).Xor(archsimd.LoadUint64x4Slice(d1[:]))
		s2 := archsimd.LoadUint64x4Slice(a[8:12]).Xor(archsimd.LoadUint64x4Slice(d2[:]))
		s3 := archsimd.LoadUint64x4Slice(a[12:16]).Xor(archsimd.LoadUint64x4Slice(d3[:]))

		// The theta output doubles as the rho/pi snapshot: relocation must
		// not overwrite a lane before its rotated value has been read.
		s0.StoreSlice(t[0:4])
		s1.StoreSlice(t[4:8])
		s2.StoreSlice(t[8:12])
		s3.StoreSlice(t[12:16])

		// Tail lanes 16..24, same arithmetic in scalar form.
		for i := 16; i < 25; i++ {
			t[i] = a[i] ^ d[i%5]
		}

		// Rho and pi, fused.
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
