package mdhash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareBits(t *testing.T) {
	t.Run("counts disagreements", func(t *testing.T) {
		r, err := CompareBits("1010", "1001")
		require.NoError(t, err)
		require.Equal(t, 4, r.Total())
		require.Equal(t, 2, r.Different)
		require.InDelta(t, 50.0, r.Percent(), 1e-9)
		require.Equal(t, "  ^^", r.Markers())
	})

	t.Run("shorter side is right-padded", func(t *testing.T) {
		r, err := CompareBits("1111", "11")
		require.NoError(t, err)
		require.Equal(t, 4, r.Total())
		require.Equal(t, 2, r.Different)
		require.Equal(t, "1100", r.Bits2)
	})

	t.Run("both empty", func(t *testing.T) {
		r, err := CompareBits("", "")
		require.NoError(t, err)
		require.Zero(t, r.Total())
		require.Zero(t, r.Percent())
	})

	t.Run("rejects malformed bit strings", func(t *testing.T) {
		_, err := CompareBits("10x0", "1010")
		require.ErrorIs(t, err, ErrInput)
		_, err = CompareBits("1010", "2")
		require.ErrorIs(t, err, ErrInput)
	})
}

func TestCompareBytes(t *testing.T) {
	r := Compare([]byte{0xff}, []byte{0x00})
	require.Equal(t, 8, r.Total())
	require.Equal(t, 8, r.Different)
	require.InDelta(t, 100.0, r.Percent(), 1e-9)

	identical := Compare([]byte("same"), []byte("same"))
	require.Zero(t, identical.Different)
}

func TestReportString(t *testing.T) {
	r, err := CompareBits("1010", "1001")
	require.NoError(t, err)
	require.Equal(t, "Total bits compared: 4\nDifferent bits: 2\nDiffusion percentage: 50.00%",
		r.String())
	require.True(t, strings.HasSuffix(r.String(), "50.00%"))
}

func TestLengthFieldFlipDiffuses(t *testing.T) {
	/* The classic demo: two runs from the same initial state that diverge only in the
	final length block. The flip must visibly propagate into the digest. */

	t.Run("bit-oriented", func(t *testing.T) {
		iv, err := ParseBits("01101010")
		require.NoError(t, err)
		e := mustEngine(t, Config{Width: 8, BlockWidth: 16, Mode: BitOriented}, nil, iv)

		msg, err := ParseBits("01111010011111110100101111111011")
		require.NoError(t, err)
		digest := e.Sum(msg)

		/* Re-run from the captured initial state, flipping the lowest bit of the
		length encoding in the final block. */
		clone := e.Clone()
		blocks := Blocks(msg, 16, BitLength)
		blocks[len(blocks)-1][15] ^= 1
		for _, block := range blocks {
			require.NoError(t, clone.Fold(block))
		}

		r, err := CompareBits(FormatBits(digest), FormatBits(clone.State()))
		require.NoError(t, err)
		require.NotZero(t, r.Different)
		require.Greater(t, r.Percent(), 10.0)
	})

	t.Run("byte-oriented", func(t *testing.T) {
		e := mustEngine(t, Config{Width: 1, BlockWidth: 2}, nil, FixedIV(1, ByteOriented))
		d1 := e.Sum([]byte("abc"))
		d2 := e.Sum([]byte("abb")) /* One bit apart. */

		r := Compare(d1, d2)
		require.NotZero(t, r.Different)
		require.Greater(t, r.Percent(), 10.0)
	})
}
