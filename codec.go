package mdhash

import "github.com/pkg/errors"

// Copyright © 2026 pv8x. Licensed under the Apache-2.0 license.
/* This file implements the block codec: it turns a message into the ordered sequence of
fixed-width blocks consumed by the engine, closing the sequence with the length-append
padding that makes the construction unambiguous across message lengths. */

// A LengthFunc renders a message length as codec units. BitLength and ByteLength are the
// two encodings used by the bit- and byte-oriented modes respectively.
type LengthFunc func(n int) []byte

// BitLength returns the minimal binary representation of n as 0/1 units,
// most-significant digit first. BitLength(0) is the single digit 0.
func BitLength(n int) []byte {
	if n <= 0 {
		return []byte{0}
	}
	var digits []byte
	for v := n; v > 0; v >>= 1 {
		digits = append(digits, byte(v&1))
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// ByteLength returns the minimal big-endian byte representation of n.
// ByteLength(0) is a single zero byte.
func ByteLength(n int) []byte {
	if n <= 0 {
		return []byte{0}
	}
	var units []byte
	for v := n; v > 0; v >>= 8 {
		units = append(units, byte(v))
	}
	for i, j := 0, len(units)-1; i < j; i, j = i+1, j-1 {
		units[i], units[j] = units[j], units[i]
	}
	return units
}

// Blocks partitions msg into width-sized blocks and appends the length encoding per the
// padding policy implemented by Tail. msg is never mutated; every returned block is
// exactly width units long. An empty message still yields one block: the zero-valued
// length block.
func Blocks(msg []byte, width int, enc LengthFunc) [][]byte {
	total := len(msg)
	var blocks [][]byte
	for len(msg) >= width {
		blocks = append(blocks, append([]byte(nil), msg[:width]...))
		msg = msg[width:]
	}
	return append(blocks, Tail(msg, total, width, enc)...)
}

// Tail produces the closing block(s) for a run: chunk is the final partial chunk of the
// message (possibly empty, and strictly shorter than width unless the message was
// block-aligned, in which case it is empty) and total is the full message length in
// units. The length encoding is appended in the chunk's free space when it fits; a
// strictly longer encoding forces the chunk to be zero-padded out and a dedicated
// length block appended. Encodings wider than a whole block truncate to their
// low-order width units rather than failing.
func Tail(chunk []byte, total, width int, enc LengthFunc) [][]byte {
	encoding := enc(total)
	if len(encoding) > width {
		encoding = encoding[len(encoding)-width:]
	}

	if len(chunk) == 0 {
		/* Block-aligned message, or no message at all: the length gets its own block,
		zero-left-padded to width. */
		block := make([]byte, width)
		copy(block[width-len(encoding):], encoding)
		return [][]byte{block}
	}

	free := width - len(chunk)
	if len(encoding) > free {
		/* Strict >: an encoding that exactly fills the free space stays in the
		content block. */
		padded := make([]byte, width)
		copy(padded, chunk)
		block := make([]byte, width)
		copy(block[width-len(encoding):], encoding)
		return [][]byte{padded, block}
	}

	block := make([]byte, width)
	copy(block, chunk)
	copy(block[len(chunk):], encoding)
	return [][]byte{block}
}

// ParseBits converts a string over the alphabet {'0','1'} into codec units, one byte
// per bit. Any other rune is an ErrInput failure; nothing is silently coerced.
func ParseBits(s string) ([]byte, error) {
	units := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			units[i] = 0
		case '1':
			units[i] = 1
		default:
			return nil, errors.Wrapf(ErrInput, "bit string has %q at position %d", s[i], i)
		}
	}
	return units, nil
}

// FormatBits renders 0/1 units back into a bit string.
func FormatBits(units []byte) string {
	out := make([]byte, len(units))
	for i, u := range units {
		if u == 0 {
			out[i] = '0'
		} else {
			out[i] = '1'
		}
	}
	return string(out)
}

// BitsOf expands raw bytes into their 0/1 unit representation, eight units per byte,
// most-significant bit first.
func BitsOf(bytes []byte) []byte {
	units := make([]byte, 0, len(bytes)*8)
	for _, b := range bytes {
		for shift := 7; shift >= 0; shift-- {
			units = append(units, b>>shift&1)
		}
	}
	return units
}
