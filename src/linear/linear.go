// Package linear implements Kuznyechik's nonlinear substitution (S) and
// linear (L) block transforms, and their inverses.
package linear

import (
	"github.com/grasshopper-go/kuznyechik/src/block"
	"github.com/grasshopper-go/kuznyechik/src/galois"
	"github.com/grasshopper-go/kuznyechik/src/sbox"
)

// mask is the 16-byte vector of GF(2^8) coefficients used by R. Blocks are
// stored most-significant byte first, so mask[k] weighs block byte 15-k.
var mask = [16]byte{
	1, 148, 32, 133, 16, 194, 192, 1,
	251, 1, 192, 194, 16, 133, 32, 148,
}

var piInv = sbox.Inverse()

// S applies the forward substitution table to every byte of the block.
func S(b block.Block) block.Block {
	var out block.Block
	for i, v := range b {
		out[i] = sbox.Pi[v]
	}
	return out
}

// SInv applies the inverse substitution table to every byte of the block.
func SInv(b block.Block) block.Block {
	var out block.Block
	for i, v := range b {
		out[i] = piInv[v]
	}
	return out
}

// R is the single linear-feedback step underlying L. It shifts the block
// one position toward the highest index, dropping byte 15, and writes at
// index 0 the GF(2^8) linear combination of all 16 input bytes, byte i
// weighted by mask[15-i]. Because byte 15's coefficient mask[0] is 1, this
// has a division-free inverse (RInv): input[15] is the new byte 0 XOR the
// contributions of the other fifteen bytes, which RInv already knows.
func R(b block.Block) block.Block {
	var out block.Block

	var l byte
	for i, v := range b {
		l ^= galois.Gmul(v, mask[15-i])
	}

	copy(out[1:], b[:15])
	out[0] = l

	return out
}

// RInv undoes R: given y = R(x), it reconstructs x.
func RInv(y block.Block) block.Block {
	var out block.Block

	copy(out[:15], y[1:])

	trail := y[0]
	for i := 0; i < 15; i++ {
		trail ^= galois.Gmul(out[i], mask[15-i])
	}
	out[15] = trail

	return out
}

// L applies R sixteen times.
func L(b block.Block) block.Block {
	for i := 0; i < 16; i++ {
		b = R(b)
	}
	return b
}

// LInv applies RInv sixteen times.
func LInv(b block.Block) block.Block {
	for i := 0; i < 16; i++ {
		b = RInv(b)
	}
	return b
}
