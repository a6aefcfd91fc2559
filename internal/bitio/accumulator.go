// SPDX-License-Identifier: GPL-2.0-only
// Source: hacktools c_ext/cmp_cri.c (compressCRILAYLA's inline d/T accumulator),
// translated into a reusable bit-accumulating writer.

package bitio

import "errors"

// ErrAccumulatorOverflow is returned when Drain or FlushFinal would write
// before the start of the destination buffer. The original C encoder sizes
// its scratch buffer equal to the input length and has no such guard;
// highly incompressible input can in principle need slightly more than
// that (literals cost 9 bits each). Rather than silently corrupt memory we
// surface it as a structured failure.
var ErrAccumulatorOverflow = errors.New("bitio: accumulator write before start of buffer")

// Accumulator collects variable-width fields MSB-first into a wide integer
// and drains whole bytes out of it on demand. CRILAYLA's compressor fills
// its output buffer from the high address downward, so Drain and FlushFinal
// take an explicit cursor that the caller decrements.
type Accumulator struct {
	d uint64
	t int
}

// Append shifts value (its low `bits` bits) into the accumulator.
func (a *Accumulator) Append(value uint32, bits int) {
	a.d = (a.d << uint(bits)) | uint64(value)
	a.t += bits
}

// Drain writes every whole byte currently held, into dst starting at
// *cursor and moving backward (dst[*cursor], dst[*cursor-1], ...).
func (a *Accumulator) Drain(dst []byte, cursor *int) error {
	for a.t >= 8 {
		if *cursor < 0 {
			return ErrAccumulatorOverflow
		}
		dst[*cursor] = byte((a.d >> uint(a.t-8)) & 0xff)
		*cursor--
		a.t -= 8
		a.d &= (1 << uint(a.t)) - 1
	}
	return nil
}

// FlushFinal emits the last partial byte (left-justified with zero padding)
// if any bits remain, then clears the accumulator.
func (a *Accumulator) FlushFinal(dst []byte, cursor *int) error {
	if a.t != 0 {
		if *cursor < 0 {
			return ErrAccumulatorOverflow
		}
		dst[*cursor] = byte(a.d << uint(8-a.t))
		*cursor--
	}
	a.d, a.t = 0, 0
	return nil
}
