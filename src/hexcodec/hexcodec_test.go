package hexcodec

import "testing"

const e1HexKey = "8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef"

func TestDecodeKeyEncodeKeyRoundTrip(t *testing.T) {
	key, err := DecodeKey(e1HexKey)
	if err != nil {
		t.Fatalf("FAILED: %v", err)
	}
	if got := EncodeKey(key); got != e1HexKey {
		t.Fatalf("FAILED: got %q, want %q", got, e1HexKey)
	}
}

func TestDecodeKeyWrongLength(t *testing.T) {
	if _, err := DecodeKey(e1HexKey[:62]); err == nil {
		t.Fatalf("FAILED: expected an error for a short hex key")
	}
	if _, err := DecodeKey(e1HexKey + "ab"); err == nil {
		t.Fatalf("FAILED: expected an error for a long hex key")
	}
}

func TestDecodeKeyInvalidCharacters(t *testing.T) {
	bad := "zz" + e1HexKey[2:]
	if _, err := DecodeKey(bad); err == nil {
		t.Fatalf("FAILED: expected an error for non-hex characters, got none")
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	data := []byte{0x00, 0x11, 0x22, 0xff}
	encoded := Encode(data)

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("FAILED: %v", err)
	}
	for i := range data {
		if decoded[i] != data[i] {
			t.Fatalf("FAILED: byte %d: got %#x, want %#x", i, decoded[i], data[i])
		}
	}
}

func TestDecodeOddLength(t *testing.T) {
	if _, err := Decode("abc"); err == nil {
		t.Fatalf("FAILED: expected an error for odd-length hex")
	}
}
