// SPDX-License-Identifier: GPL-2.0-only
package crilayla

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func repeatingFixture(n int) []byte {
	pattern := []byte("the quick brown fox jumps over the lazy dog; ")
	out := make([]byte, n)
	for i := range out {
		out[i] = pattern[i%len(pattern)]
	}
	return out
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"exact-prefix", repeatingFixture(256)},
		{"small-tail", repeatingFixture(300)},
		{"several-matches", repeatingFixture(600)},
		{"mostly-literal", func() []byte {
			b := make([]byte, 300)
			for i := range b {
				b[i] = byte(i * 37)
			}
			return b
		}()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			container, err := Compress(tc.data)
			require.NoError(t, err)

			out, err := Decompress(container)
			require.NoError(t, err)
			require.True(t, bytes.Equal(out, tc.data), "round-trip mismatch: got %d bytes, want %d", len(out), len(tc.data))
		})
	}
}

func TestDecompress_InvalidSignature(t *testing.T) {
	cases := [][]byte{
		nil,
		{0x01, 0x02, 0x03},
		append([]byte("NOTCRILA"), make([]byte, 8)...),
	}

	for _, data := range cases {
		_, err := Decompress(data)
		require.ErrorIs(t, err, ErrInvalidSignature)
	}
}

func TestCompress_RejectsShortInput(t *testing.T) {
	_, err := Compress(make([]byte, 255))
	require.ErrorIs(t, err, ErrInsufficientInput)
}

func TestCompress_ExactMagicBytes(t *testing.T) {
	container, err := Compress(repeatingFixture(256))
	require.NoError(t, err)
	require.Equal(t, "CRILAYLA", string(container[:8]))
}
