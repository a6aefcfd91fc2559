// SPDX-License-Identifier: GPL-2.0-only
// Source: hacktools c_ext/cmp_lzss.c (decompressLZ10's zero-seeded buffer)

package lzss

const ringBufferSize = 0x1000

// ringBuffer is LZ10 decompression's fixed 4096-byte circular window, seeded
// with zeros. LZ10 displacements are measured relative to this window
// rather than to the output directly. DecompressLZ10 rejects a
// back-reference that reaches before the start of the produced output
// with ErrOutOfBoundsReference before the ring is read, so the zero seed
// is never returned for such a reference.
type ringBuffer struct {
	buf    [ringBufferSize]byte
	offset uint
}

// read returns the byte the ring currently holds at disp positions behind
// the write cursor.
func (r *ringBuffer) read(disp int) byte {
	idx := (r.offset + ringBufferSize - uint(disp)) % ringBufferSize
	return r.buf[idx]
}

// write stores b at the current cursor and advances it.
func (r *ringBuffer) write(b byte) {
	r.buf[r.offset] = b
	r.offset = (r.offset + 1) % ringBufferSize
}
