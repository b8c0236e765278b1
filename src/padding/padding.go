// Package padding implements the block-alignment policies usable with the
// I/O adapter. The type names (Pad, UnPad) and the PKCS#7 implementation
// mirror src/padding/padding.go; SpacePadding mirrors the reference
// lossy policy of original_source/kuznechik.cpp's read_file_to_data_buffer,
// and ISO7816Padding is the standards-compliant alternative spec.md
// invites as an extension.
package padding

import "github.com/grasshopper-go/kuznyechik/src/consts"

// Pad pads data to a multiple of the block size.
type Pad func([]byte) []byte

// UnPad removes padding previously added by the matching Pad.
type UnPad func([]byte) []byte

// SpacePadding is the reference policy: if data is already block-aligned
// it is returned unchanged; otherwise it is right-padded with ASCII space
// (0x20) up to the next block boundary. It is lossy — SpaceUnpadding
// cannot distinguish padding spaces from trailing spaces that were part
// of the original payload.
func SpacePadding(data []byte) []byte {
	remainder := len(data) % consts.BLOCK_SIZE
	if remainder == 0 {
		out := make([]byte, len(data))
		copy(out, data)
		return out
	}

	padLength := consts.BLOCK_SIZE - remainder
	out := make([]byte, len(data), len(data)+padLength)
	copy(out, data)
	for i := 0; i < padLength; i++ {
		out = append(out, ' ')
	}
	return out
}

// SpaceUnpadding is the identity function: the reference policy does not
// remove its own padding (spec.md §6), so trailing spaces added by
// SpacePadding remain in the output.
func SpaceUnpadding(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// PKCS7Padding appends PKCS#7 padding: every byte of the padding equals
// the number of padding bytes added, and a full block of padding is
// appended even when data is already aligned, so the unpadding is always
// unambiguous.
func PKCS7Padding(data []byte) []byte {
	paddedData := make([]byte, len(data))
	copy(paddedData, data)

	remainder := len(paddedData) % consts.BLOCK_SIZE
	padLength := consts.BLOCK_SIZE - remainder

	for i := 0; i < padLength; i++ {
		paddedData = append(paddedData, byte(padLength))
	}

	return paddedData
}

// PKCS7Unpadding removes padding added by PKCS7Padding.
func PKCS7Unpadding(paddedData []byte) []byte {
	padLength := paddedData[len(paddedData)-1]

	data := make([]byte, len(paddedData)-int(padLength))
	copy(data, paddedData[:len(paddedData)-int(padLength)])

	return data
}

// ISO7816Padding appends a single 0x80 byte followed by zero bytes up to
// the next block boundary (ISO/IEC 7816-4), the alternative spec.md §9
// names as an acceptable standards-compliant replacement for the lossy
// space policy.
func ISO7816Padding(data []byte) []byte {
	remainder := len(data) % consts.BLOCK_SIZE
	padLength := consts.BLOCK_SIZE - remainder

	out := make([]byte, len(data), len(data)+padLength)
	copy(out, data)
	out = append(out, 0x80)
	for i := 1; i < padLength; i++ {
		out = append(out, 0x00)
	}
	return out
}

// ISO7816Unpadding removes padding added by ISO7816Padding by scanning
// back from the end for the 0x80 marker byte.
func ISO7816Unpadding(data []byte) []byte {
	i := len(data) - 1
	for i >= 0 && data[i] == 0x00 {
		i--
	}
	if i < 0 || data[i] != 0x80 {
		out := make([]byte, len(data))
		copy(out, data)
		return out
	}

	out := make([]byte, i)
	copy(out, data[:i])
	return out
}
