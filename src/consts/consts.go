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

// Package consts defines constant values used by the Kuznyechik implementation.
package consts

const (
	// Size of the Kuznyechik block.
	BLOCK_SIZE = 16

	// Size of the Kuznyechik master key.
	KEY_SIZE = 32

	// Number of SP-network rounds applied before the final round key XOR.
	ROUNDS = 9

	// Number of derived round keys.
	ROUND_KEYS = 10

	// Number of round constants generated for the key schedule.
	CONSTANT_COUNT = 32

	// Number of Feistel steps performed per outer key-schedule group.
	FEISTEL_STEPS = 8

	// Number of outer key-schedule groups (GROUPS * 2 == ROUND_KEYS - 2,
	// FEISTEL_STEPS * GROUPS == CONSTANT_COUNT).
	GROUPS = 4

	// Hex length of a 32-byte master key, two hex digits per byte.
	HEX_KEY_LEN = KEY_SIZE * 2
)
