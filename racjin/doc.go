// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo doc.go (package doc-comment convention)

/*
Package racjin implements the RACJIN 9-bit token codec: a 1-bit literal
flag plus an 8-bit payload, folded 8 tokens to 9 bytes. Reference tokens
carry a 5-bit slot into a per-previous-byte table of up to 32 recently
seen sequence positions (each new position is recorded at the slot
frequencies[previous byte]) and are replayed for copies up to 8 bytes
long.

	out, err := racjin.Decompress(data, decompLength)
	out, err := racjin.Compress(data)
*/
package racjin
