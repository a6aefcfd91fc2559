// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo errors.go (sentinel-error convention),
// generalized so each sentinel also carries a codecerr.Kind.

package crilayla

import "github.com/Illidanz/hacktools/internal/codecerr"

// Sentinel errors for CRILAYLA compression and decompression. Each wraps a
// codecerr.Kind so callers can classify failures with codecerr.Is.
var (
	// ErrInvalidSignature is returned when the input is shorter than the
	// container header or does not start with the "CRILAYLA" magic.
	ErrInvalidSignature = codecerr.New(codecerr.InvalidSignature, "crilayla", "missing CRILAYLA signature")
	// ErrInsufficientInput is returned when the bitstream runs out before
	// the declared uncompressed size is reached, or when Compress is given
	// fewer than 256 bytes (not enough history for the verbatim prefix).
	ErrInsufficientInput = codecerr.New(codecerr.InsufficientInput, "crilayla", "insufficient input")
	// ErrSizeMismatch is returned when a back-reference would produce more
	// bytes than the header declares (should not happen for well-formed
	// streams; kept for defense in depth).
	ErrSizeMismatch = codecerr.New(codecerr.InsufficientInput, "crilayla", "decoded size does not match header")
	// ErrOutOfBoundsReference is returned when a back-reference would read
	// outside the output buffer.
	ErrOutOfBoundsReference = codecerr.New(codecerr.OutOfBoundsReference, "crilayla", "back-reference out of bounds")
	// ErrBufferTooSmall is returned when the compressor's scratch buffer
	// (sized to len(src), matching the original encoder) cannot hold the
	// encoded bitstream for highly incompressible input.
	ErrBufferTooSmall = codecerr.New(codecerr.AllocationFailure, "crilayla", "scratch buffer too small for incompressible input")
)

// wrapOverflow normalizes any bitio accumulator overflow into ErrBufferTooSmall.
func wrapOverflow(_ error) error {
	return ErrBufferTooSmall
}
