// SPDX-License-Identifier: GPL-2.0-only
// Source: hacktools c_ext/cmp_cri.c (decompressCRILAYLA), via
// https://github.com/hcs64/vgm_ripping/blob/master/multi/utf_tab/cpk_uncompress.c

package crilayla

import "github.com/Illidanz/hacktools/internal/bitio"

// vleTierWidths are the successive field widths of the tiered
// variable-length length code: 2, 3, 5, then 8-bit overflow chunks.
var vleTierWidths = [4]int{2, 3, 5, 8}

// Decompress expands a CRILAYLA container back into its original bytes.
// It fails with ErrInvalidSignature if src does not start with the
// "CRILAYLA" magic (or is shorter than the 16-byte header), and with
// ErrInsufficientInput if the bitstream is exhausted before the declared
// uncompressed size is reached.
func Decompress(src []byte) ([]byte, error) {
	c, err := parseContainer(src)
	if err != nil {
		return nil, err
	}

	output := make([]byte, int(c.uncompressedSize)+verbatimPrefix)
	copy(output[:verbatimPrefix], c.uncompressedPrefix)

	inputEnd := len(src) - verbatimPrefix - 1
	reader := bitio.NewReverseReader(src, inputEnd)
	outputEnd := verbatimPrefix + int(c.uncompressedSize) - 1

	bytesOutput := 0
	for bytesOutput < int(c.uncompressedSize) {
		flag, err := reader.NextBits(1)
		if err != nil {
			return nil, ErrInsufficientInput
		}

		if flag == 0 {
			b, err := reader.NextBits(8)
			if err != nil {
				return nil, ErrInsufficientInput
			}
			output[outputEnd-bytesOutput] = byte(b)
			bytesOutput++
			continue
		}

		disp, err := reader.NextBits(13)
		if err != nil {
			return nil, ErrInsufficientInput
		}
		backrefOffset := outputEnd - bytesOutput + int(disp) + 3
		backrefLength := 3

		saturated := true
		for _, width := range vleTierWidths {
			level, err := reader.NextBits(width)
			if err != nil {
				return nil, ErrInsufficientInput
			}
			backrefLength += int(level)
			if int(level) != (1<<uint(width))-1 {
				saturated = false
				break
			}
		}
		if saturated {
			for {
				level, err := reader.NextBits(8)
				if err != nil {
					return nil, ErrInsufficientInput
				}
				backrefLength += int(level)
				if level != 255 {
					break
				}
			}
		}

		if backrefOffset < 0 || backrefOffset >= len(output) {
			return nil, ErrOutOfBoundsReference
		}

		for i := 0; i < backrefLength; i++ {
			if backrefOffset < 0 {
				return nil, ErrOutOfBoundsReference
			}
			if bytesOutput >= int(c.uncompressedSize) {
				return nil, ErrSizeMismatch
			}
			output[outputEnd-bytesOutput] = output[backrefOffset]
			backrefOffset--
			bytesOutput++
		}
	}

	return output, nil
}
