package mdhash

import "math/bits"

// Copyright © 2026 pv8x. Licensed under the Apache-2.0 license.
/* This file holds the per-block mixing strategies. Both are deterministic, total
functions of (state, block): the engine picks one at construction and calls it a fixed
number of rounds per block. Neither is collision-resistant, nor meant to be. */

// A Mixer folds one block into the current state, producing the next state of the same
// width. Implementations must not retain or mutate their arguments.
type Mixer interface {
	Mix(state, block []byte) []byte
}

// XOR is the plain bit-oriented strategy: each block unit is XORed against the
// state unit at its position modulo the state width. The fold always reads the state as
// it was at step entry, so when the block is wider than the state the last write at a
// position wins.
type XOR struct{}

func (XOR) Mix(state, block []byte) []byte {
	next := make([]byte, len(state))
	copy(next, state)
	for i := range block {
		p := i % len(state)
		next[p] = state[p] ^ block[i]
	}
	return next
}

// ARX is the byte-oriented strategy: rotate, XOR, add. For each block byte the targeted
// state byte is rotated right, XORed with the block byte, then summed with the entry
// state byte under wrapping 8-bit addition. The rotation reads the working copy (which
// a wide block may already have touched), the addition reads the entry state.
type ARX struct {
	Rotation int
}

func (m ARX) Mix(state, block []byte) []byte {
	next := make([]byte, len(state))
	copy(next, state)
	for i := range block {
		p := i % len(state)
		mixed := bits.RotateLeft8(next[p], -m.Rotation) ^ block[i]
		next[p] = mixed + state[p] /* 8-bit wraparound add. */
	}
	return next
}
