// Package kerr defines the sentinel error values propagated by the
// Kuznyechik core, per the error taxonomy in SPEC_FULL.md.
package kerr

import "errors"

var (
	// ErrWrongKey is returned when a master key has the wrong length or
	// contains invalid hex characters.
	ErrWrongKey = errors.New("kuznyechik: wrong key")

	// ErrWrongLength is returned when a block is constructed from a
	// payload that is not exactly 16 bytes long.
	ErrWrongLength = errors.New("kuznyechik: wrong block length")

	// ErrOutOfRange indicates a caller violated a precondition on a table
	// or round index. This is an assertion-class error: it signals an
	// implementation bug and is not meant to be recovered from.
	ErrOutOfRange = errors.New("kuznyechik: index out of range")

	// ErrNotReady is returned when an operation that requires the Ready
	// lifecycle state is attempted from Fresh or Consumed.
	ErrNotReady = errors.New("kuznyechik: cipher not ready")
)
