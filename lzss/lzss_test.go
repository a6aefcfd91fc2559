// SPDX-License-Identifier: GPL-2.0-only
package lzss_test

import (
	"bytes"
	"testing"

	"github.com/Illidanz/hacktools/internal/codecerr"
	"github.com/Illidanz/hacktools/lzss"
	"github.com/stretchr/testify/require"
)

func TestDecompressLZ10_TrivialLiteralChunk(t *testing.T) {
	// Flag byte 0x00 (all literals), followed by 4 literal bytes.
	data := []byte{0x00, 0x41, 0x42, 0x43, 0x44}
	out, err := lzss.DecompressLZ10(data, 4, 0)
	require.NoError(t, err)
	require.Equal(t, []byte("ABCD"), out)
}

func TestDecompressLZ10_SingleBackReference(t *testing.T) {
	// "AB" literal, then a back-reference of length 3 at disp 2 repeating "AB".
	// flag byte: bit7=0 (literal A), bit6=0 (literal B), bit5=1 (backref);
	// the stored displacement field is the distance minus one, so 0x001.
	data := []byte{0x20, 0x41, 0x42, 0x00, 0x01}
	out, err := lzss.DecompressLZ10(data, 5, 0)
	require.NoError(t, err)
	require.Equal(t, []byte("ABABA"), out)
}

func TestLZ10_RoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("A"),
		[]byte("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"),
		[]byte("The quick brown fox jumps over the lazy dog. The quick brown fox."),
		bytes.Repeat([]byte{0x00}, 5000),
		bytes.Repeat([]byte("abcabcabc"), 200),
	}
	for _, src := range cases {
		compressed, err := lzss.CompressLZ10(src, 1)
		require.NoError(t, err)
		out, err := lzss.DecompressLZ10(compressed, len(src), 0)
		require.NoError(t, err)
		require.Equal(t, src, out)
	}
}

func TestLZ11_RoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("A"),
		bytes.Repeat([]byte{0x7f}, 5000),
		bytes.Repeat([]byte("0123456789"), 5000),
		[]byte("The quick brown fox jumps over the lazy dog. The quick brown fox."),
	}
	for _, src := range cases {
		compressed, err := lzss.CompressLZ11(src, 1)
		require.NoError(t, err)
		out, err := lzss.DecompressLZ11(compressed, len(src), 0)
		require.NoError(t, err)
		require.Equal(t, src, out)
	}
}

func TestLZ11_LongMatchTokenForms(t *testing.T) {
	// A long repeating run forces the compressor through all three LZ11
	// token widths (short, medium, long) as the match length grows.
	src := bytes.Repeat([]byte{0xAB}, 0x10200)
	compressed, err := lzss.CompressLZ11(src, 1)
	require.NoError(t, err)
	out, err := lzss.DecompressLZ11(compressed, len(src), 0)
	require.NoError(t, err)
	require.Equal(t, src, out)
}

func TestDecompressLZ10_InsufficientInput(t *testing.T) {
	_, err := lzss.DecompressLZ10([]byte{0x80}, 2, 0)
	require.ErrorIs(t, err, lzss.ErrInsufficientInput)
}

func TestDecompressLZ10_OutOfBoundsReference(t *testing.T) {
	// Back-reference whose displacement exceeds the bytes produced so far.
	data := []byte{0x80, 0x00, 0x05}
	_, err := lzss.DecompressLZ10(data, 3, 0)
	require.ErrorIs(t, err, lzss.ErrOutOfBoundsReference)
	// A caller that only cares about the failure category, not the
	// specific package's sentinel, can classify it via codecerr.Is.
	require.True(t, codecerr.Is(err, codecerr.OutOfBoundsReference))
}

func TestDecompressLZ11_OutOfBoundsReference(t *testing.T) {
	// a=0x20 selects the default 2-byte token form (top nibble >= 2), so
	// only 3 total bytes are needed and the disp-bounds check is reached
	// instead of running out of input on a longer token form.
	data := []byte{0x80, 0x20, 0xff}
	_, err := lzss.DecompressLZ11(data, 3, 0)
	require.ErrorIs(t, err, lzss.ErrOutOfBoundsReference)
}

func FuzzLZ10_RoundTrip(f *testing.F) {
	f.Add([]byte("AAAAAAAAAAAAAAAAAAAA"))
	f.Add([]byte("hello world hello world"))
	f.Fuzz(func(t *testing.T, src []byte) {
		compressed, err := lzss.CompressLZ10(src, 1)
		require.NoError(t, err)
		out, err := lzss.DecompressLZ10(compressed, len(src), 0)
		require.NoError(t, err)
		require.Equal(t, src, out)
	})
}

func FuzzLZ11_RoundTrip(f *testing.F) {
	f.Add([]byte("AAAAAAAAAAAAAAAAAAAA"))
	f.Add([]byte("hello world hello world"))
	f.Fuzz(func(t *testing.T, src []byte) {
		compressed, err := lzss.CompressLZ11(src, 1)
		require.NoError(t, err)
		out, err := lzss.DecompressLZ11(compressed, len(src), 0)
		require.NoError(t, err)
		require.Equal(t, src, out)
	})
}
