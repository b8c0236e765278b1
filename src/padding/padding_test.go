package padding

import "testing"

func TestSpacePaddingAligned(t *testing.T) {
	data := make([]byte, 32)
	got := SpacePadding(data)
	if len(got) != 32 {
		t.Fatalf("FAILED: got length %d, want 32 (no padding should be added)", len(got))
	}
}

func TestSpacePaddingUnaligned(t *testing.T) {
	got := SpacePadding([]byte("HELLO"))
	if len(got) != 16 {
		t.Fatalf("FAILED: got length %d, want 16", len(got))
	}
	want := "HELLO" + "           " // 5 + 11 spaces = 16
	if string(got) != want {
		t.Fatalf("FAILED: got %q, want %q", got, want)
	}
}

func TestSpaceUnpaddingIsIdentity(t *testing.T) {
	data := []byte("HELLO           ")
	if got := SpaceUnpadding(data); string(got) != string(data) {
		t.Fatalf("FAILED: SpaceUnpadding mutated its input")
	}
}

func TestPKCS7RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 31, 32} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}

		padded := PKCS7Padding(data)
		if len(padded)%16 != 0 {
			t.Fatalf("FAILED: n=%d: padded length %d not block-aligned", n, len(padded))
		}
		if len(padded) <= n {
			t.Fatalf("FAILED: n=%d: PKCS7 must always add at least one byte of padding", n)
		}

		unpadded := PKCS7Unpadding(padded)
		if len(unpadded) != n {
			t.Fatalf("FAILED: n=%d: got unpadded length %d", n, len(unpadded))
		}
		for i := range data {
			if unpadded[i] != data[i] {
				t.Fatalf("FAILED: n=%d: byte %d: got %#x, want %#x", n, i, unpadded[i], data[i])
			}
		}
	}
}

func TestISO7816RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 31, 32} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i + 1)
		}

		padded := ISO7816Padding(data)
		if len(padded)%16 != 0 {
			t.Fatalf("FAILED: n=%d: padded length %d not block-aligned", n, len(padded))
		}

		unpadded := ISO7816Unpadding(padded)
		if len(unpadded) != n {
			t.Fatalf("FAILED: n=%d: got unpadded length %d, want %d", n, len(unpadded), n)
		}
		for i := range data {
			if unpadded[i] != data[i] {
				t.Fatalf("FAILED: n=%d: byte %d: got %#x, want %#x", n, i, unpadded[i], data[i])
			}
		}
	}
}
