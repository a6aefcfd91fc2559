// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo doc.go (package doc-comment convention)

/*
Package rle implements the single-mode-per-token byte run-length codec:
each token is a flag byte followed by either one repeated byte (high bit
set, run length flag&0x7f+3) or a literal run copied verbatim (high bit
clear, run length flag&0x7f+1).

Only decompression exists upstream; there is no corresponding encoder to
port.

	out, err := rle.Decompress(data, decompLength)
*/
package rle
