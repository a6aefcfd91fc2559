// SPDX-License-Identifier: GPL-2.0-only
// Source: hacktools c_ext/cmp_racjin.c (compressRACJIN)

package racjin

import "github.com/Illidanz/hacktools/internal/bitio"

const maxScanLen = 8

// Compress encodes src into a RACJIN token stream.
func Compress(src []byte) ([]byte, error) {
	var frequencies [256]uint16
	var sequenceIndices [sequenceTableLen]uint32

	codes := make([]uint16, 0, len(src))
	index := 0
	var lastEncByte byte
	var bitShift uint

	for index < len(src) {
		// Mirrors a quirk in the reference encoder: frequencies is wide
		// enough here to actually reach 256, where the narrower decoder-side
		// table wraps via its own 0x1f mask instead.
		if frequencies[lastEncByte] == 256 {
			frequencies[lastEncByte] = 0
		}

		var positionsToCheck uint16
		if frequencies[lastEncByte] < 32 {
			positionsToCheck = frequencies[lastEncByte] & 0x1f
		} else {
			positionsToCheck = 32
		}

		seqIndex := index
		var bestFreq, bestMatch int

		maxLength := maxScanLen
		if rem := len(src) - index; rem < maxLength {
			maxLength = rem
		}

		for freq := 0; freq < int(positionsToCheck); freq++ {
			key := freq + int(lastEncByte)*maxFrequency
			srcIndex := int(sequenceIndices[key])

			matched := 0
			for offset := 0; offset < maxLength; offset++ {
				if src[srcIndex+offset] == src[index+offset] {
					matched++
				} else {
					break
				}
			}

			if matched > bestMatch {
				bestFreq = freq
				bestMatch = matched
			}
		}

		var code uint16
		if bestMatch > 0 {
			code = uint16(bestFreq<<3) | uint16(bestMatch-1)
			index += bestMatch
		} else {
			code = 0x100 | uint16(src[index])
			index++
		}

		code <<= bitShift
		codes = append(codes, code)

		bitShift++
		if bitShift == 8 {
			bitShift = 0
		}

		key := int(frequencies[lastEncByte]&0x1f) + int(lastEncByte)*maxFrequency
		sequenceIndices[key] = uint32(seqIndex)
		frequencies[lastEncByte]++
		lastEncByte = src[index-1]
	}

	return bitio.FoldTokens(codes), nil
}
