//go:build !amd64 || generic

package util

import (
	"encoding/binary"
)

// Xor performs dst ^= a eight bytes at a time, then the excess bytes one
// by one. Panic if a and dst do not have the same length.
func Xor(dst, a []byte) {
	if len(dst) != len(a) {
		panic(ErrByteLengthMissMatch)
	}

	n := len(dst) / 8 * 8
	for i := 0; i < n; i += 8 {
		binary.LittleEndian.PutUint64(dst[i:], binary.LittleEndian.Uint64(dst[i:])^binary.LittleEndian.Uint64(a[i:]))
	}

	for j := n; j < len(dst); j++ {
		dst[j] ^= a[j]
	}
}
