// Package ioadapter is the I/O and framing boundary: it reads a byte
// stream into a padded block.Buffer and writes a block.Buffer back out as
// a byte stream. It is grounded on original_source/kuznechik.cpp's
// read_file_to_data_buffer and write_to_file, generalized from file paths
// to io.Reader/io.Writer so the core never depends on the filesystem
// directly.
package ioadapter

import (
	"fmt"
	"io"

	"github.com/grasshopper-go/kuznyechik/src/block"
	"github.com/grasshopper-go/kuznyechik/src/hexcodec"
	"github.com/grasshopper-go/kuznyechik/src/padding"
)

// ReadBuffer reads all of r, pads it to a multiple of the block size with
// pad, and segments it into a block.Buffer. An empty r yields an empty
// Buffer with no padding applied.
func ReadBuffer(r io.Reader, pad padding.Pad) (block.Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ioadapter.ReadBuffer: %w", err)
	}
	if len(data) == 0 {
		return block.Buffer{}, nil
	}
	return block.FromBytes(pad(data))
}

// ReadHexBuffer reads all of r as a hex-encoded payload, decodes it, pads
// it with pad, and segments it into a block.Buffer.
func ReadHexBuffer(r io.Reader, pad padding.Pad) (block.Buffer, error) {
	encoded, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ioadapter.ReadHexBuffer: %w", err)
	}
	decoded, err := hexcodec.Decode(string(encoded))
	if err != nil {
		return nil, fmt.Errorf("ioadapter.ReadHexBuffer: %w", err)
	}
	if len(decoded) == 0 {
		return block.Buffer{}, nil
	}
	return block.FromBytes(pad(decoded))
}

// WriteBuffer writes buf to w as the raw concatenation of its blocks.
func WriteBuffer(w io.Writer, buf block.Buffer) error {
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("ioadapter.WriteBuffer: %w", err)
	}
	return nil
}

// WriteHexBuffer writes buf to w as lowercase hex text.
func WriteHexBuffer(w io.Writer, buf block.Buffer) error {
	encoded := hexcodec.Encode(buf.Bytes())
	if _, err := io.WriteString(w, encoded); err != nil {
		return fmt.Errorf("ioadapter.WriteHexBuffer: %w", err)
	}
	return nil
}
