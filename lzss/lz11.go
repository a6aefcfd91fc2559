// SPDX-License-Identifier: GPL-2.0-only
// Source: hacktools c_ext/cmp_lzss.c (decompressLZ11, compressLZ11), based on
// Kuriimu's Kontract compression implementations.

package lzss

const (
	lz11MaxWindow   = 0x1000
	lz11MaxMatchLen = 0x10110
	lz11ShortMax    = 0x10  // length <= this uses the 1-byte token form
	lz11MediumMax   = 0x110 // length <= this uses the 2-byte token form
	lz11ShortBase   = 1
	lz11MediumBase  = 0x11
	lz11LongBase    = 0x111
)

// DecompressLZ11 decodes an LZ11 stream into decompLength bytes.
// The stored displacement field is the distance minus one; dispExtra is
// added on top of that. LZ11 has no ring
// buffer: back-references read directly from the produced output.
func DecompressLZ11(data []byte, decompLength, dispExtra int) ([]byte, error) {
	out := make([]byte, decompLength)
	readBytes := 0
	currentOutSize := 0

	readByte := func() (byte, error) {
		if readBytes >= len(data) {
			return 0, ErrInsufficientInput
		}
		b := data[readBytes]
		readBytes++
		return b, nil
	}

	for currentOutSize < decompLength {
		mask, err := readByte()
		if err != nil {
			return nil, err
		}

		for i := 0; i < 8; i++ {
			if mask&0x80 == 0 {
				b, err := readByte()
				if err != nil {
					return nil, err
				}
				out[currentOutSize] = b
				currentOutSize++
			} else {
				a, err := readByte()
				if err != nil {
					return nil, err
				}
				b, err := readByte()
				if err != nil {
					return nil, err
				}

				var length, disp int
				switch a >> 4 {
				case 0:
					c, err := readByte()
					if err != nil {
						return nil, err
					}
					length = int((uint16(a&0xf)<<4)|uint16(b>>4)) + lz11MediumBase
					disp = (int(b&0xf) << 8) | int(c)
				case 1:
					c, err := readByte()
					if err != nil {
						return nil, err
					}
					d, err := readByte()
					if err != nil {
						return nil, err
					}
					length = int((uint32(a&0xf)<<12)|(uint32(b)<<4)|uint32(c>>4)) + lz11LongBase
					disp = (int(c&0xf) << 8) | int(d)
				default:
					length = int(a>>4) + lz11ShortBase
					disp = (int(a&0xf) << 8) | int(b)
				}
				disp += dispExtra + 1

				if disp < 1 {
					return nil, ErrOutOfBoundsReference
				}

				for j := 0; j < length; j++ {
					if disp > currentOutSize {
						return nil, ErrOutOfBoundsReference
					}
					out[currentOutSize] = out[currentOutSize-disp]
					currentOutSize++
					if currentOutSize >= decompLength {
						break
					}
				}
			}

			if currentOutSize >= decompLength {
				break
			}
			mask <<= 1
		}
	}

	return out, nil
}

// CompressLZ11 encodes src as an LZ11 stream. mindisp restricts matches to
// a stored displacement field (distance minus one) of at least mindisp.
func CompressLZ11(src []byte, mindisp int) ([]byte, error) {
	out := make([]byte, 0, len(src))
	outBuffer := make([]byte, 0, 8*3+1)

	var flagByte byte
	bufferedBlocks := 0
	readBytes := 0

	for readBytes < len(src) {
		if bufferedBlocks == 8 {
			out = append(out, flagByte)
			out = append(out, outBuffer...)
			outBuffer = outBuffer[:0]
			flagByte = 0
			bufferedBlocks = 0
		}

		oldLen := readBytes
		if oldLen > lz11MaxWindow {
			oldLen = lz11MaxWindow
		}
		newLen := len(src) - readBytes
		if newLen > lz11MaxMatchLen {
			newLen = lz11MaxMatchLen
		}

		length, disp := findLongestMatch(src, readBytes, newLen, readBytes-oldLen, oldLen, mindisp)

		if length < 3 {
			outBuffer = append(outBuffer, src[readBytes])
			readBytes++
		} else {
			readBytes += length
			flagByte |= 1 << uint(7-bufferedBlocks)

			switch {
			case length > lz11MediumMax:
				v := length - lz11LongBase
				outBuffer = append(outBuffer,
					0x10|byte((v>>12)&0x0f),
					byte((v>>4)&0xff),
					byte((v<<4)&0xf0)|byte(((disp-1)>>8)&0x0f),
					byte((disp-1)&0xff),
				)
			case length > lz11ShortMax:
				v := length - lz11MediumBase
				outBuffer = append(outBuffer,
					byte((v>>4)&0x0f),
					byte((v<<4)&0xf0)|byte(((disp-1)>>8)&0x0f),
					byte((disp-1)&0xff),
				)
			default:
				outBuffer = append(outBuffer,
					byte(((length-1)<<4)&0xf0)|byte(((disp-1)>>8)&0x0f),
					byte((disp-1)&0xff),
				)
			}
		}
		bufferedBlocks++
	}

	if bufferedBlocks > 0 {
		out = append(out, flagByte)
		out = append(out, outBuffer...)
	}

	return out, nil
}
