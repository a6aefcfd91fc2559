// SPDX-License-Identifier: GPL-2.0-only
// Source: hacktools c_ext/cmp_lzss.c (getOccurrenceLength), shared by both
// compressLZ10 and compressLZ11 in the original (identical search loop,
// differing only in the caller's max match length and output encoding).

package lzss

// findLongestMatch searches buf[oldStart:oldStart+oldLen] (the window of
// already-compressed bytes ending exactly at curStart) for the longest
// prefix of buf[curStart:curStart+newLen] that starts more than mindisp
// bytes back, scanning from the oldest candidate to the newest so ties keep
// the earliest-found (i.e. largest-disp) match. Because old and cur are
// adjacent in the same buffer, a candidate match is allowed to read past
// oldStart+oldLen into the data currently being compressed — this is the
// legal self-overlapping back-reference case.
func findLongestMatch(buf []byte, curStart, newLen, oldStart, oldLen, mindisp int) (length, disp int) {
	if newLen == 0 {
		return 0, 0
	}

	for i := 0; i < oldLen-mindisp; i++ {
		n := 0
		for n < newLen && buf[oldStart+i+n] == buf[curStart+n] {
			n++
		}

		if n > length {
			length = n
			disp = oldLen - i
			if length == newLen {
				break
			}
		}
	}

	return length, disp
}
