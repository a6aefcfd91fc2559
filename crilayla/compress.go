// SPDX-License-Identifier: GPL-2.0-only
// Source: hacktools c_ext/cmp_cri.c (compressCRILAYLA), via
// https://github.com/ConnorKrammer/cpk-tools/blob/master/LibCRIComp/LibCRIComp.cpp

package crilayla

import "github.com/Illidanz/hacktools/internal/bitio"

const (
	matchThreshold  = 3
	searchWindow    = 0x2000
	historyBoundary = 0x100
)

// findBestMatch scans the forward window [n+3, min(n+3+searchWindow, srclen))
// for the longest run that matches src backward from n, bounded by the
// 256-byte history floor. It returns the match length p and its
// displacement q = i - n - 3 for the winning candidate.
func findBestMatch(src []byte, n int) (p, q int) {
	srclen := len(src)
	j := n + 3 + searchWindow
	if j > srclen {
		j = srclen
	}

	for i := n + 3; i < j; i++ {
		k := 0
		for ; k <= n-historyBoundary; k++ {
			if src[n-k] != src[i-k] {
				break
			}
		}
		if k > p {
			q = i - n - 3
			p = k
		}
	}

	return p, q
}

// Compress encodes src as a CRILAYLA container. src must be at least 256
// bytes long (the format reserves the first 256 bytes as a verbatim
// prefix); shorter input returns ErrInsufficientInput.
func Compress(src []byte) ([]byte, error) {
	srclen := len(src)
	if srclen < historyBoundary {
		return nil, ErrInsufficientInput
	}

	scratch := make([]byte, srclen)
	m := srclen - 1
	var acc bitio.Accumulator

	for n := srclen - 1; n >= historyBoundary; {
		p, q := findBestMatch(src, n)

		if p < matchThreshold {
			acc.Append(uint32(src[n]), 9) // flag bit 0 folded into the 9-bit literal field
			n--
		} else {
			acc.Append((1<<13)|uint32(q), 14) // flag bit 1, then 13-bit displacement
			n -= p

			switch {
			case p < 6:
				acc.Append(uint32(p-matchThreshold), 2)
			case p < 13:
				acc.Append(0x18|uint32(p-6), 5) // tier-0 sentinel (0b11) then tier-1 value
			case p < 44:
				acc.Append(0x3e0|uint32(p-13), 10) // tier-0/1 sentinels then tier-2 value
			default:
				acc.Append(0x3ff, 10) // tiers 0-2 all saturated
				p -= 44
				for {
					if err := acc.Drain(scratch, &m); err != nil {
						return nil, wrapOverflow(err)
					}
					if p < 255 {
						break
					}
					acc.Append(0xff, 8)
					p -= 0xff
				}
				acc.Append(uint32(p), 8)
			}
		}

		if err := acc.Drain(scratch, &m); err != nil {
			return nil, wrapOverflow(err)
		}
	}

	if err := acc.FlushFinal(scratch, &m); err != nil {
		return nil, wrapOverflow(err)
	}
	if m < 1 {
		return nil, wrapOverflow(nil)
	}
	scratch[m] = 0
	m--
	scratch[m] = 0

	for (srclen-m)&3 != 0 {
		m--
		if m < 0 {
			return nil, wrapOverflow(nil)
		}
		scratch[m] = 0
	}

	payload := scratch[m:]

	out := make([]byte, headerLen+len(payload)+verbatimPrefix)
	writeHeader(out, uint32(srclen-historyBoundary), uint32(len(payload)))
	copy(out[headerLen:], payload)
	copy(out[headerLen+len(payload):], src[:verbatimPrefix])

	return out, nil
}
