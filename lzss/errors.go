// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo errors.go (sentinel-error convention)

package lzss

import "github.com/Illidanz/hacktools/internal/codecerr"

// Sentinel errors for LZ10/LZ11 compression and decompression.
var (
	// ErrInsufficientInput is returned when the encoded stream runs out of
	// bytes before the declared decompressed length is reached.
	ErrInsufficientInput = codecerr.New(codecerr.InsufficientInput, "lzss", "insufficient input")
	// ErrOutOfBoundsReference is returned when a back-reference's distance
	// exceeds the amount of output already produced.
	ErrOutOfBoundsReference = codecerr.New(codecerr.OutOfBoundsReference, "lzss", "back-reference out of bounds")
)
