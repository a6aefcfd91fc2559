// SPDX-License-Identifier: GPL-2.0-only
// Source: hacktools c_ext/cmp_misc.c (decompressRLE)

package rle

// Decompress expands an RLE stream into exactly decompLength bytes. Each
// token starts with a flag byte: if bit 7 is set, the low 7 bits plus 3
// give a repeat count for the single byte that follows; otherwise the low
// 7 bits plus 1 give the length of a literal run copied verbatim.
func Decompress(data []byte, decompLength int) ([]byte, error) {
	out := make([]byte, decompLength)

	readBytes := 0
	writeBytes := 0

	readByte := func() (byte, error) {
		if readBytes >= len(data) {
			return 0, ErrInsufficientInput
		}
		b := data[readBytes]
		readBytes++
		return b, nil
	}

	for writeBytes < decompLength {
		flag, err := readByte()
		if err != nil {
			return nil, err
		}

		length := int(flag & 0x7f)
		if flag&0x80 > 0 {
			length += 3
			b, err := readByte()
			if err != nil {
				return nil, err
			}
			for i := 0; i < length && writeBytes < decompLength; i++ {
				out[writeBytes] = b
				writeBytes++
			}
		} else {
			length++
			for i := 0; i < length && writeBytes < decompLength; i++ {
				b, err := readByte()
				if err != nil {
					return nil, err
				}
				out[writeBytes] = b
				writeBytes++
			}
		}
	}

	return out, nil
}
