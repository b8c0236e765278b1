// Package kuznyechik implements the GOST R 34.12-2015 "Kuznyechik" block
// cipher: a 128-bit SP-network cipher with a 256-bit key, nine rounds of
// substitution-and-linear-transform followed by a final round-key XOR.
package kuznyechik

import (
	"fmt"
	"io"

	"github.com/grasshopper-go/kuznyechik/src/block"
	"github.com/grasshopper-go/kuznyechik/src/consts"
	"github.com/grasshopper-go/kuznyechik/src/hexcodec"
	"github.com/grasshopper-go/kuznyechik/src/ioadapter"
	"github.com/grasshopper-go/kuznyechik/src/kerr"
	"github.com/grasshopper-go/kuznyechik/src/keyschedule"
	"github.com/grasshopper-go/kuznyechik/src/linear"
	"github.com/grasshopper-go/kuznyechik/src/padding"
	"github.com/grasshopper-go/kuznyechik/src/parallel"
)

// state is the cipher's lifecycle stage. A Cipher starts Fresh, becomes
// Ready once its round keys are derived, and becomes Consumed after a
// bulk EncryptBuffer/DecryptBuffer call. Only Ready permits a transform.
type state int

const (
	stateFresh state = iota
	stateReady
	stateConsumed
)

// Cipher holds one master key's derived round key set. Round keys are
// computed once, in the constructor, and never recomputed.
type Cipher struct {
	roundKeys *keyschedule.RoundKeySet
	stage     state
}

// NewCipher builds a Cipher from a 32-byte master key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != consts.KEY_SIZE {
		return nil, fmt.Errorf("kuznyechik.NewCipher: got %d bytes: %w", len(key), kerr.ErrWrongKey)
	}
	var masterKey [consts.KEY_SIZE]byte
	copy(masterKey[:], key)
	return newCipherFromKey(masterKey), nil
}

// NewCipherKeyPair builds a Cipher from the two 16-byte halves of a
// master key, per the file-level encrypt_file(in, out, k1, k2) interface.
func NewCipherKeyPair(k1, k2 []byte) (*Cipher, error) {
	if len(k1) != consts.BLOCK_SIZE || len(k2) != consts.BLOCK_SIZE {
		return nil, fmt.Errorf("kuznyechik.NewCipherKeyPair: %w", kerr.ErrWrongKey)
	}
	var masterKey [consts.KEY_SIZE]byte
	copy(masterKey[:16], k1)
	copy(masterKey[16:], k2)
	return newCipherFromKey(masterKey), nil
}

// NewCipherHex builds a Cipher from a 64-character lowercase hex master
// key.
func NewCipherHex(hexKey string) (*Cipher, error) {
	masterKey, err := hexcodec.DecodeKey(hexKey)
	if err != nil {
		return nil, fmt.Errorf("kuznyechik.NewCipherHex: %w", err)
	}
	return newCipherFromKey(masterKey), nil
}

func newCipherFromKey(masterKey [consts.KEY_SIZE]byte) *Cipher {
	return &Cipher{
		roundKeys: keyschedule.Expand(masterKey),
		stage:     stateReady,
	}
}

// EncryptBlock runs the nine-round SP-network forward over a single
// block: XOR with rk[0], then eight rounds of S, L, XOR with rk[1..8],
// then a final S, L, XOR with rk[9].
func (c *Cipher) EncryptBlock(in block.Block) block.Block {
	x := in.Xor(c.roundKeys[0])
	for i := 1; i < consts.ROUND_KEYS; i++ {
		x = linear.L(linear.S(x)).Xor(c.roundKeys[i])
	}
	return x
}

// DecryptBlock inverts EncryptBlock: it walks the round keys in reverse,
// undoing the final XOR, then L and S in their inverse order for each
// round, ending with the XOR against rk[0].
func (c *Cipher) DecryptBlock(in block.Block) block.Block {
	x := in
	for i := consts.ROUND_KEYS - 1; i > 0; i-- {
		x = linear.SInv(linear.LInv(x.Xor(c.roundKeys[i])))
	}
	return x.Xor(c.roundKeys[0])
}

// EncryptBuffer transforms every block of buf in place under the
// block-parallel bulk driver, using workers goroutines (workers <= 0
// defaults to runtime.NumCPU()). It requires the Cipher be Ready and
// transitions it to Consumed: a Cipher is meant to encrypt or decrypt one
// buffer, not be reused as a running stream cipher.
func (c *Cipher) EncryptBuffer(buf block.Buffer, workers int) error {
	return c.transformBuffer(buf, parallel.Encrypt, workers)
}

// DecryptBuffer is the decrypting counterpart of EncryptBuffer.
func (c *Cipher) DecryptBuffer(buf block.Buffer, workers int) error {
	return c.transformBuffer(buf, parallel.Decrypt, workers)
}

func (c *Cipher) transformBuffer(buf block.Buffer, dir parallel.Direction, workers int) error {
	if c.stage != stateReady {
		return fmt.Errorf("kuznyechik: transformBuffer: %w", kerr.ErrNotReady)
	}
	parallel.TransformBuffer(buf, dir, c.EncryptBlock, c.DecryptBlock, workers)
	c.stage = stateConsumed
	return nil
}

// EncryptFileKeys reads in, encrypts it under the two 16-byte keys k1/k2
// using the reference space-padding policy, and writes the result to out.
func EncryptFileKeys(in io.Reader, w io.Writer, k1, k2 []byte) error {
	c, err := NewCipherKeyPair(k1, k2)
	if err != nil {
		return err
	}
	return runFileTransform(c, in, w, false, c.EncryptBuffer)
}

// EncryptFileHex is EncryptFileKeys parameterized by a 64-character hex
// master key instead of a key pair.
func EncryptFileHex(in io.Reader, w io.Writer, hexKey string) error {
	c, err := NewCipherHex(hexKey)
	if err != nil {
		return err
	}
	return runFileTransform(c, in, w, false, c.EncryptBuffer)
}

// DecryptFileKeys is the decrypting counterpart of EncryptFileKeys.
func DecryptFileKeys(in io.Reader, w io.Writer, k1, k2 []byte) error {
	c, err := NewCipherKeyPair(k1, k2)
	if err != nil {
		return err
	}
	return runFileTransform(c, in, w, true, c.DecryptBuffer)
}

// DecryptFileHex is the decrypting counterpart of EncryptFileHex.
func DecryptFileHex(in io.Reader, w io.Writer, hexKey string) error {
	c, err := NewCipherHex(hexKey)
	if err != nil {
		return err
	}
	return runFileTransform(c, in, w, true, c.DecryptBuffer)
}

func runFileTransform(c *Cipher, in io.Reader, w io.Writer, decrypting bool, transform func(block.Buffer, int) error) error {
	pad := padding.Pad(padding.SpacePadding)
	if decrypting {
		pad = func(data []byte) []byte { return data }
	}

	buf, err := ioadapter.ReadBuffer(in, pad)
	if err != nil {
		return fmt.Errorf("kuznyechik: runFileTransform: %w", err)
	}

	if err := transform(buf, 0); err != nil {
		return err
	}

	if err := ioadapter.WriteBuffer(w, buf); err != nil {
		return fmt.Errorf("kuznyechik: runFileTransform: %w", err)
	}
	return nil
}
