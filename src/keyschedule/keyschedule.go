// This package's Feistel construction has been adapted from the structure
// of wedkarz02/aes256go's src/key/expand.go: round material derived once,
// up front, from a master key, with no further per-block allocation.

// Package keyschedule derives Kuznyechik's 32 round constants and 10
// round keys from a 256-bit master key.
package keyschedule

import (
	"github.com/grasshopper-go/kuznyechik/src/block"
	"github.com/grasshopper-go/kuznyechik/src/consts"
	"github.com/grasshopper-go/kuznyechik/src/linear"
)

// RoundKeySet is the ordered sequence of 10 round keys produced by Expand.
type RoundKeySet [consts.ROUND_KEYS]block.Block

// RoundConstants returns the 32 round constants C_1..C_32, storing C_(i+1)
// at index i: C_i = L(block with byte value i at position 15, the least
// significant byte, and zero elsewhere), for i = 1..32.
func RoundConstants() [consts.CONSTANT_COUNT]block.Block {
	var constants [consts.CONSTANT_COUNT]block.Block
	for i := range constants {
		var seed block.Block
		seed[consts.BLOCK_SIZE-1] = byte(i + 1)
		constants[i] = linear.L(seed)
	}
	return constants
}

// feistelStep computes F((a, b), c) = (L(S(a XOR c)) XOR b, a).
func feistelStep(a, b, c block.Block) (block.Block, block.Block) {
	newA := linear.L(linear.S(a.Xor(c))).Xor(b)
	return newA, a
}

// Expand derives the 10 round keys from a 32-byte master key via the
// Feistel construction of four groups of eight rounds each. The key's
// length is fixed by its type, so this never fails.
func Expand(masterKey [consts.KEY_SIZE]byte) *RoundKeySet {
	var k1, k2 block.Block
	copy(k1[:], masterKey[:16])
	copy(k2[:], masterKey[16:])

	constants := RoundConstants()

	var rk RoundKeySet
	rk[0] = k1
	rk[1] = k2

	a, b := k1, k2
	for j := 0; j < consts.GROUPS; j++ {
		for s := 0; s < consts.FEISTEL_STEPS; s++ {
			a, b = feistelStep(a, b, constants[consts.FEISTEL_STEPS*j+s])
		}
		rk[2*j+2] = a
		rk[2*j+3] = b
	}

	return &rk
}
