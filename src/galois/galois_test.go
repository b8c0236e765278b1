package galois

import "testing"

func TestGmulIdentity(t *testing.T) {
	for a := 0; a < 256; a++ {
		if got := Gmul(byte(a), 1); got != byte(a) {
			t.Fatalf("FAILED: Gmul(%#x, 1) = %#x, want %#x", a, got, a)
		}
	}
}

func TestGmulZero(t *testing.T) {
	for a := 0; a < 256; a++ {
		if got := Gmul(byte(a), 0); got != 0 {
			t.Fatalf("FAILED: Gmul(%#x, 0) = %#x, want 0", a, got)
		}
	}
}

func TestGmulCommutative(t *testing.T) {
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 11 {
			if got, want := Gmul(byte(a), byte(b)), Gmul(byte(b), byte(a)); got != want {
				t.Fatalf("FAILED: Gmul(%#x, %#x) = %#x, want %#x", a, b, got, want)
			}
		}
	}
}

func TestGxorBlocks(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03}
	b := []byte{0x01, 0x01, 0x01}

	got := GxorBlocks(a, b)
	want := []byte{0x00, 0x03, 0x02}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("FAILED: byte %d: got %#x, want %#x", i, got[i], v)
		}
	}
}
