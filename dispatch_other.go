//go:build !amd64 || !goexperiment.simd || purego

package keccakp

// probe binds the portable implementation when no vector tier was compiled
// in.
func probe() *impl {
	return genericImpl
}
