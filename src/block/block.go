// Package block implements the fixed-size 128-bit data unit that every
// Kuznyechik transformation operates on.
package block

import (
	"encoding/hex"
	"fmt"

	"github.com/grasshopper-go/kuznyechik/src/consts"
	"github.com/grasshopper-go/kuznyechik/src/kerr"
)

// Block is an ordered sequence of exactly 16 bytes. It is a value type:
// copying a Block copies its bytes, and the zero Block is the all-zero
// block.
type Block [consts.BLOCK_SIZE]byte

// New builds a Block from data, which must be exactly 16 bytes long.
func New(data []byte) (Block, error) {
	var b Block
	if len(data) != consts.BLOCK_SIZE {
		return b, fmt.Errorf("block.New: got %d bytes: %w", len(data), kerr.ErrWrongLength)
	}
	copy(b[:], data)
	return b, nil
}

// Xor returns the bytewise exclusive-or of b and other.
func (b Block) Xor(other Block) Block {
	var out Block
	for i := range b {
		out[i] = b[i] ^ other[i]
	}
	return out
}

// Bytes returns a freshly allocated copy of the block's 16 bytes.
func (b Block) Bytes() []byte {
	out := make([]byte, consts.BLOCK_SIZE)
	copy(out, b[:])
	return out
}

// Equal reports whether a and b hold the same 16 bytes.
func (b Block) Equal(other Block) bool {
	return b == other
}

// String renders the block as lowercase hex, for debugging and logging.
func (b Block) String() string {
	return hex.EncodeToString(b[:])
}

// Buffer is an ordered sequence of blocks, typically the padded contents
// of a file or in-memory payload.
type Buffer []Block

// Bytes concatenates every block in order into a single byte slice.
func (buf Buffer) Bytes() []byte {
	out := make([]byte, 0, len(buf)*consts.BLOCK_SIZE)
	for _, b := range buf {
		out = append(out, b[:]...)
	}
	return out
}

// FromBytes splits data, whose length must be a multiple of 16, into a
// Buffer of blocks in order.
func FromBytes(data []byte) (Buffer, error) {
	if len(data)%consts.BLOCK_SIZE != 0 {
		return nil, fmt.Errorf("block.FromBytes: length %d not a multiple of %d: %w", len(data), consts.BLOCK_SIZE, kerr.ErrWrongLength)
	}
	buf := make(Buffer, 0, len(data)/consts.BLOCK_SIZE)
	for i := 0; i < len(data); i += consts.BLOCK_SIZE {
		b, err := New(data[i : i+consts.BLOCK_SIZE])
		if err != nil {
			return nil, err
		}
		buf = append(buf, b)
	}
	return buf, nil
}
