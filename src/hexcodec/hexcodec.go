// Package hexcodec implements the strict hex encode/decode rules used for
// master keys and hex-mode payloads. Unlike original_source/kuznechik.cpp's
// key parser, which silently clamps out-of-range characters via
// std::lower_bound, every malformed input here is reported as an error.
package hexcodec

import (
	"encoding/hex"
	"fmt"

	"github.com/grasshopper-go/kuznyechik/src/consts"
	"github.com/grasshopper-go/kuznyechik/src/kerr"
)

// DecodeKey decodes a 64-character hex string into a 32-byte master key.
// It rejects any string of the wrong length or containing non-hex
// characters.
func DecodeKey(s string) ([consts.KEY_SIZE]byte, error) {
	var key [consts.KEY_SIZE]byte
	if len(s) != consts.HEX_KEY_LEN {
		return key, fmt.Errorf("hexcodec.DecodeKey: got %d characters, want %d: %w", len(s), consts.HEX_KEY_LEN, kerr.ErrWrongKey)
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return key, fmt.Errorf("hexcodec.DecodeKey: %v: %w", err, kerr.ErrWrongKey)
	}
	copy(key[:], decoded)
	return key, nil
}

// EncodeKey renders a 32-byte master key as lowercase hex.
func EncodeKey(key [consts.KEY_SIZE]byte) string {
	return hex.EncodeToString(key[:])
}

// Decode decodes an even-length hex string into raw bytes, for hex-mode
// payloads. It rejects an odd-length string or invalid hex characters
// instead of truncating or clamping them.
func Decode(s string) ([]byte, error) {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hexcodec.Decode: %v: %w", err, kerr.ErrWrongLength)
	}
	return decoded, nil
}

// Encode renders data as a lowercase hex string.
func Encode(data []byte) string {
	return hex.EncodeToString(data)
}
