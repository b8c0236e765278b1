// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package galois implements GF(2^8) arithmetic for Kuznyechik, reduced by
// the polynomial x^8 + x^7 + x^6 + x + 1 (0x1C3).
package galois

// reductionLowByte is the low byte of Kuznyechik's GF(2^8) reduction
// polynomial 0x1C3. AES's galois package reduces by 0x1B instead, for its
// own polynomial (x^8 + x^4 + x^3 + x + 1); the multiplication loop is
// otherwise identical bit-at-a-time shift-and-add.
const reductionLowByte = 0xC3

// Gadd is GF(2^8) addition, which is a bytewise XOR.
func Gadd(a byte, b byte) byte {
	return a ^ b
}

// Gmul multiplies a and b as elements of GF(2^8).
func Gmul(a byte, b byte) byte {
	var p byte = 0

	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}

		hiBitSet := a&0x80 != 0
		a <<= 1

		if hiBitSet {
			a ^= reductionLowByte
		}

		b >>= 1
	}

	return p
}

// GxorBlocks XORs two equal-length byte slices.
func GxorBlocks(a []byte, b []byte) []byte {
	var result []byte

	for i, val := range a {
		result = append(result, Gadd(val, b[i]))
	}

	return result
}
