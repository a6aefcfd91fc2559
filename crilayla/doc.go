// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo doc.go (package doc-comment convention)

/*
Package crilayla implements the CRI Middleware CRILAYLA container format: a
reverse-order LZ77 variant with a tiered variable-length match-length code.

A CRILAYLA stream is a 16-byte header, a compressed bitstream read back to
front, and a 256-byte verbatim prefix of the original data:

	out, err := crilayla.Decompress(container)
	container, err := crilayla.Compress(original) // len(original) >= 256
*/
package crilayla
