package sbox

import "testing"

func TestInverse(t *testing.T) {
	inv := Inverse()

	for x := 0; x < 256; x++ {
		if got := inv[Pi[x]]; got != byte(x) {
			t.Fatalf("FAILED: piInv[pi[%d]] = %d, want %d", x, got, x)
		}
		if got := Pi[inv[x]]; got != byte(x) {
			t.Fatalf("FAILED: pi[piInv[%d]] = %d, want %d", x, got, x)
		}
	}
}

func TestPiIsPermutation(t *testing.T) {
	var seen [256]bool
	for _, v := range Pi {
		if seen[v] {
			t.Fatalf("FAILED: value %d appears more than once in pi", v)
		}
		seen[v] = true
	}
}
