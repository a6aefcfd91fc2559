// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo errors.go (sentinel-error convention)

package racjin

import "github.com/Illidanz/hacktools/internal/codecerr"

// Sentinel errors for RACJIN compression and decompression.
var (
	// ErrInsufficientInput is returned when the folded token stream runs out
	// of bytes before the declared decompressed length is reached.
	ErrInsufficientInput = codecerr.New(codecerr.InsufficientInput, "racjin", "insufficient input")
	// ErrOutOfBoundsReference is returned when a reference token's sequence
	// position falls outside the bytes produced so far.
	ErrOutOfBoundsReference = codecerr.New(codecerr.OutOfBoundsReference, "racjin", "sequence reference out of bounds")
)
