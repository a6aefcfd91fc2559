// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo errors.go (sentinel-error convention)

package rle

import "github.com/Illidanz/hacktools/internal/codecerr"

// ErrInsufficientInput is returned when the encoded stream runs out of
// bytes before the declared decompressed length is reached.
var ErrInsufficientInput = codecerr.New(codecerr.InsufficientInput, "rle", "insufficient input")
