//go:build amd64 && goexperiment.simd && !purego

package keccakp

import (
	"github.com/klauspost/cpuid/v2"
)

var avx2Impl = &impl{
	name:      "avx2",
	permute24: permute24AVX2,
	permute12: permute12AVX2,
}

var avx512Impl = &impl{
	name:      "avx512",
	permute24: permute24AVX512,
	permute12: permute12AVX512,
}

// probe selects the widest implementation the host CPU supports. The AVX-512
// tier requires all four of F, DQ, BW, and VL: the instructions it compiles
// to are only guaranteed when every one of them is present. Unsupported
// hardware degrades to AVX2 and then to the generic implementation; there is
// no error path.
func probe() *impl {
	if cpuid.CPU.Has(cpuid.AVX512F) && cpuid.CPU.Has(cpuid.AVX512DQ) &&
		cpuid.CPU.Has(cpuid.AVX512BW) && cpuid.CPU.Has(cpuid.AVX512VL) {
		return avx512Impl
	}
	if cpuid.CPU.Has(cpuid.AVX2) {
		return avx2Impl
	}
	return genericImpl
}
