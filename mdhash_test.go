package mdhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustEngine(t *testing.T, cfg Config, mix Mixer, iv []byte) *Engine {
	t.Helper()
	e, err := New(cfg, mix, iv)
	require.NoError(t, err)
	return e
}

func TestNewValidation(t *testing.T) {
	iv := FixedIV(4, ByteOriented)

	t.Run("degenerate widths", func(t *testing.T) {
		_, err := New(Config{Width: 0, BlockWidth: 4}, nil, nil)
		require.ErrorIs(t, err, ErrConfig)
		_, err = New(Config{Width: 4, BlockWidth: -1}, nil, iv)
		require.ErrorIs(t, err, ErrConfig)
	})

	t.Run("negative rounds", func(t *testing.T) {
		_, err := New(Config{Width: 4, BlockWidth: 4, Rounds: -3}, nil, iv)
		require.ErrorIs(t, err, ErrConfig)
	})

	t.Run("IV width mismatch", func(t *testing.T) {
		_, err := New(Config{Width: 8, BlockWidth: 4}, nil, iv)
		require.ErrorIs(t, err, ErrConfig)
	})

	t.Run("defaults are applied", func(t *testing.T) {
		e := mustEngine(t, Config{Width: 4, BlockWidth: 4}, nil, iv)
		require.Equal(t, DefaultRounds, e.Config().Rounds)
		require.Equal(t, DefaultRotation, e.Config().Rotation)
	})
}

func TestKnownDigests(t *testing.T) {
	t.Run("bit-oriented blackboard example", func(t *testing.T) {
		iv, err := ParseBits("01101010")
		require.NoError(t, err)
		e := mustEngine(t, Config{Width: 8, BlockWidth: 16, Mode: BitOriented}, nil, iv)

		digest, err := e.SumBits("01111010011111110100101111111011")
		require.NoError(t, err)
		require.Equal(t, "11001110", digest)
	})

	t.Run("byte-oriented vectors", func(t *testing.T) {
		for _, v := range []struct {
			width, block int
			msg          string
			want         string
		}{
			{1, 2, "", "06"},
			{1, 2, "abc", "cd"},
			{4, 4, "hello world", "55087c89"},
			{20, 20, "The quick brown fox jumps over the lazy dog",
				"6357ed4847f39396ead4e4f9ea4d8f058c422080"},
		} {
			e := mustEngine(t, Config{Width: v.width, BlockWidth: v.block}, nil,
				FixedIV(v.width, ByteOriented))
			require.Equal(t, v.want, Hex(e.Sum([]byte(v.msg))), "msg %q", v.msg)
		}
	})
}

func TestDeterminism(t *testing.T) {
	iv, err := RandomIV(20, ByteOriented)
	require.NoError(t, err)
	e := mustEngine(t, Config{Width: 20, BlockWidth: 20}, nil, iv)
	msg := []byte("the same message, twice")

	first := e.Sum(msg)
	second := e.Sum(msg)
	require.Equal(t, first, second)

	/* A separate engine with the same IV agrees. */
	other := mustEngine(t, Config{Width: 20, BlockWidth: 20}, nil, iv)
	require.Equal(t, first, other.Sum(msg))
}

func TestFixedWidth(t *testing.T) {
	e := mustEngine(t, Config{Width: 5, BlockWidth: 11}, nil, FixedIV(5, ByteOriented))
	for size := 0; size < 64; size++ {
		digest := e.Sum(make([]byte, size))
		require.Len(t, digest, 5, "message size %d", size)
	}
}

func TestEmptyMessageMatchesZeroBlock(t *testing.T) {
	/* hash("") is exactly the engine folding the single all-zero length block. */
	e := mustEngine(t, Config{Width: 1, BlockWidth: 2}, nil, FixedIV(1, ByteOriented))
	summed := e.Sum(nil)

	manual := e.Clone()
	require.NoError(t, manual.Fold([]byte{0, 0}))
	require.Equal(t, summed, manual.State())
}

func TestCloneStartsFromInitialState(t *testing.T) {
	iv, err := RandomIV(8, ByteOriented)
	require.NoError(t, err)
	e := mustEngine(t, Config{Width: 8, BlockWidth: 8}, nil, iv)

	/* Mutate the original's state, then clone: the clone must start at the IV the
	engine captured, not at the live state. */
	require.NoError(t, e.Fold(make([]byte, 8)))
	c := e.Clone()
	require.Equal(t, iv, c.State())
	require.Equal(t, iv, c.IV())

	msg := []byte("diverge here")
	require.Equal(t, e.Sum(msg), c.Sum(msg))
}

func TestEngineCopiesIV(t *testing.T) {
	iv := FixedIV(4, ByteOriented)
	e := mustEngine(t, Config{Width: 4, BlockWidth: 4}, nil, iv)
	iv[0] ^= 0xff
	require.NotEqual(t, iv[0], e.IV()[0])
}

func TestFoldRejectsWrongWidth(t *testing.T) {
	e := mustEngine(t, Config{Width: 4, BlockWidth: 8}, nil, FixedIV(4, ByteOriented))
	require.ErrorIs(t, e.Fold(make([]byte, 7)), ErrInput)
	require.ErrorIs(t, e.Fold(nil), ErrInput)
}

func TestSumBitsRequiresBitMode(t *testing.T) {
	e := mustEngine(t, Config{Width: 4, BlockWidth: 4}, nil, FixedIV(4, ByteOriented))
	_, err := e.SumBits("0101")
	require.ErrorIs(t, err, ErrInput)

	bit := mustEngine(t, Config{Width: 4, BlockWidth: 4, Mode: BitOriented}, nil,
		FixedIV(4, BitOriented))
	_, err = bit.SumBits("01x1")
	require.ErrorIs(t, err, ErrInput)
}

func TestHexRendering(t *testing.T) {
	require.Equal(t, "0500", Hex([]byte{0x05, 0x00}))
	require.Equal(t, "", Hex(nil))
}

func TestIVSources(t *testing.T) {
	t.Run("fixed is stable", func(t *testing.T) {
		require.Equal(t, FixedIV(20, ByteOriented), FixedIV(20, ByteOriented))
		require.Len(t, FixedIV(3, ByteOriented), 3)
	})

	t.Run("bit mode yields 0/1 units", func(t *testing.T) {
		for _, u := range FixedIV(64, BitOriented) {
			require.LessOrEqual(t, u, byte(1))
		}
		iv, err := RandomIV(64, BitOriented)
		require.NoError(t, err)
		for _, u := range iv {
			require.LessOrEqual(t, u, byte(1))
		}
	})

	t.Run("seeded is deterministic and seed-sensitive", func(t *testing.T) {
		var a, b [32]byte
		b[0] = 1
		require.Equal(t, SeedIV(a, 20, ByteOriented), SeedIV(a, 20, ByteOriented))
		require.NotEqual(t, SeedIV(a, 20, ByteOriented), SeedIV(b, 20, ByteOriented))
	})
}
