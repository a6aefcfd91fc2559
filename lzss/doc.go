// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo doc.go (package doc-comment convention)

/*
Package lzss implements the Nintendo-style LZ10 and LZ11 LZSS variants:
8-flag-bit chunks of literals and back-references, MSB-first.

LZ10 uses a fixed 2-byte token (4-bit length, 12-bit displacement) and a
4096-byte ring window seeded with zeros during decompression. LZ11 extends
match length via tiered 1/2/3-byte token forms and reads back-references
directly from the produced output (no ring buffer).

	out, err := lzss.DecompressLZ10(data, decompLength, dispExtra)
	out, err := lzss.CompressLZ10(data, minDisp)

	out, err := lzss.DecompressLZ11(data, decompLength, dispExtra)
	out, err := lzss.CompressLZ11(data, minDisp)
*/
package lzss
