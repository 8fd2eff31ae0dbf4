// Package mdhash is a teaching implementation of an iterated Merkle–Damgård hash: a
// message is cut into fixed-width blocks, a length-encoding tail is appended, and each
// block is folded into a running state by a small repeated mixing step. Nothing here is
// cryptographically secure; the construction exists to be read, configured, and
// measured, not to protect anything.
package mdhash

import (
	"encoding/hex"
	"github.com/pkg/errors"
)

// Copyright © 2026 pv8x. Licensed under the Apache-2.0 license.

// ErrConfig reports a degenerate configuration, rejected at engine construction.
var ErrConfig = errors.New("mdhash: invalid configuration")

// ErrInput reports malformed input handed to the codec or the engine.
var ErrInput = errors.New("mdhash: invalid input")

// Mode selects the unit the construction works in. ByteOriented treats the message as
// raw bytes; BitOriented treats it as individual bits (one codec unit per bit), the
// variant used for the small blackboard examples.
type Mode int

const (
	ByteOriented Mode = iota
	BitOriented
)

const (
	// DefaultRounds is the number of times the mixer is applied per block.
	DefaultRounds = 3
	// DefaultRotation is the right-rotation amount of the ARX mixer.
	DefaultRotation = 3
)

// Config carries the construction constants. Width and BlockWidth are measured in the
// units of Mode and are independent: blocks may be wider, narrower, or equal to the
// state. Zero Rounds/Rotation select the defaults.
type Config struct {
	Width      int
	BlockWidth int
	Rounds     int
	Rotation   int
	Mode       Mode
}

func (c *Config) setDefaults() {
	if c.Rounds == 0 {
		c.Rounds = DefaultRounds
	}
	if c.Rotation == 0 {
		c.Rotation = DefaultRotation
	}
}

func (c Config) validate() error {
	if c.Width < 1 {
		return errors.Wrapf(ErrConfig, "digest width %d", c.Width)
	}
	if c.BlockWidth < 1 {
		return errors.Wrapf(ErrConfig, "block width %d", c.BlockWidth)
	}
	if c.Rounds < 1 {
		return errors.Wrapf(ErrConfig, "round count %d", c.Rounds)
	}
	return nil
}

func (c Config) lengthFunc() LengthFunc {
	if c.Mode == BitOriented {
		return BitLength
	}
	return ByteLength
}

// Engine drives the iteration: state starts at the IV and each codec block is folded in
// by the mixer for Config.Rounds rounds. One engine owns exactly one state; concurrent
// runs need separate engines.
type Engine struct {
	cfg   Config
	mix   Mixer
	iv    []byte
	state []byte
}

// New validates cfg and builds an engine whose state starts at iv. The IV must be
// exactly cfg.Width units and is copied: the engine never aliases caller memory, and
// the captured copy is what Reset and Clone return to. A nil mix selects the mixer
// conventional for the mode: ARX for bytes, plain XOR for bits.
func New(cfg Config, mix Mixer, iv []byte) (*Engine, error) {
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(iv) != cfg.Width {
		return nil, errors.Wrapf(ErrConfig, "IV is %d units, want %d", len(iv), cfg.Width)
	}
	if mix == nil {
		if cfg.Mode == BitOriented {
			mix = XOR{}
		} else {
			mix = ARX{Rotation: cfg.Rotation}
		}
	}
	e := &Engine{cfg: cfg, mix: mix, iv: append([]byte(nil), iv...)}
	e.state = append([]byte(nil), e.iv...)
	return e, nil
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// IV returns a copy of the captured initial state.
func (e *Engine) IV() []byte { return append([]byte(nil), e.iv...) }

// State returns a copy of the current state; after the last block this is the digest.
func (e *Engine) State() []byte { return append([]byte(nil), e.state...) }

// Reset rewinds the state to the initial state captured at construction.
func (e *Engine) Reset() { copy(e.state, e.iv) }

// Clone returns a sibling engine starting over from the same initial state. Diffusion
// experiments use this to re-run a hash that diverges only in its final block.
func (e *Engine) Clone() *Engine {
	c, _ := New(e.cfg, e.mix, e.iv) /* cfg and iv were already validated. */
	return c
}

// Fold applies the mixer to one block, Config.Rounds times, re-feeding the same block
// against the progressively updated state. The block must be exactly BlockWidth units;
// callers streaming a file hand full chunks here and finish with the codec's Tail.
func (e *Engine) Fold(block []byte) error {
	if len(block) != e.cfg.BlockWidth {
		return errors.Wrapf(ErrInput, "block is %d units, want %d", len(block), e.cfg.BlockWidth)
	}
	for i := e.cfg.Rounds; i > 0; i-- {
		e.state = e.mix.Mix(e.state, block)
	}
	return nil
}

// Sum hashes msg from a fresh state and returns the digest. The same message against
// the same IV and configuration always yields the same digest.
func (e *Engine) Sum(msg []byte) []byte {
	e.Reset()
	for _, block := range Blocks(msg, e.cfg.BlockWidth, e.cfg.lengthFunc()) {
		e.Fold(block) /* Codec blocks are always exactly BlockWidth units. */
	}
	return e.State()
}

// SumBits hashes a bit string and renders the digest as a bit string. The engine must
// be bit-oriented.
func (e *Engine) SumBits(bitstring string) (string, error) {
	if e.cfg.Mode != BitOriented {
		return "", errors.Wrap(ErrInput, "SumBits on a byte-oriented engine")
	}
	msg, err := ParseBits(bitstring)
	if err != nil {
		return "", err
	}
	return FormatBits(e.Sum(msg)), nil
}

// Hex renders a byte-oriented digest as a lowercase, zero-padded hexadecimal string of
// length 2×Width.
func Hex(digest []byte) string { return hex.EncodeToString(digest) }
