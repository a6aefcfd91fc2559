// SPDX-License-Identifier: GPL-2.0-only
// Source: hacktools c_ext/cmp_cri.c (header layout read by decompressCRILAYLA,
// written by compressCRILAYLA).

package crilayla

import "encoding/binary"

const (
	magicLen       = 8
	headerLen      = 0x10
	verbatimPrefix = 0x100
)

var magic = [magicLen]byte{'C', 'R', 'I', 'L', 'A', 'Y', 'L', 'A'}

// container is the parsed view of a CRILAYLA byte stream's 16-byte header.
type container struct {
	uncompressedSize   uint32
	headerOffset       uint32 // offset of the verbatim prefix, relative to byte 0x10
	payload            []byte // compressed bitstream, between the header and the prefix
	uncompressedPrefix []byte // 256-byte verbatim prefix of the original input
}

// parseContainer validates the magic and slices out the header fields.
// It returns ErrInsufficientInput when the 256-byte prefix located by
// headerOffset does not fit within src.
func parseContainer(src []byte) (*container, error) {
	if len(src) < headerLen {
		return nil, ErrInvalidSignature
	}
	for i := 0; i < magicLen; i++ {
		if src[i] != magic[i] {
			return nil, ErrInvalidSignature
		}
	}

	uncompressedSize := binary.LittleEndian.Uint32(src[0x08:0x0c])
	headerOffset := binary.LittleEndian.Uint32(src[0x0c:0x10])

	prefixStart := headerLen + int(headerOffset)
	prefixEnd := prefixStart + verbatimPrefix
	if prefixEnd > len(src) {
		return nil, ErrInsufficientInput
	}

	return &container{
		uncompressedSize:   uncompressedSize,
		headerOffset:       headerOffset,
		payload:            src[headerLen:prefixStart],
		uncompressedPrefix: src[prefixStart:prefixEnd],
	}, nil
}

// writeHeader serializes the 16-byte CRILAYLA header into dst[0:16].
// uncompressedSize and payloadSize follow the C encoder, which stores the
// magic as two little-endian 32-bit words rather than 8 raw bytes; we emit
// the 8 ASCII bytes directly (bit-for-bit identical) per the Design Notes.
func writeHeader(dst []byte, uncompressedSize, payloadSize uint32) {
	copy(dst[0:8], magic[:])
	binary.LittleEndian.PutUint32(dst[8:12], uncompressedSize)
	binary.LittleEndian.PutUint32(dst[12:16], payloadSize)
}
