package mdhash

import (
	"crypto/rand"
	"github.com/aead/chacha20/chacha"
	"github.com/pkg/errors"
)

// Copyright © 2026 pv8x. Licensed under the Apache-2.0 license.
/* IV sourcing lives with the caller, not the engine: an engine is handed an explicit
initial state and never reaches for hidden process-wide randomness. These helpers cover
the three sources a run might want: a well-known constant for reproducible runs, a
fresh random value, and a seed-derived value that is random-looking yet replayable. */

/* The first eight bytes of phi scaled to 64 bits, the usual nothing-up-my-sleeve pick. */
var phi = [8]byte{0xe0, 0x8c, 0x1d, 0x66, 0x8b, 0x75, 0x6f, 0x82}

// FixedIV returns the well-known constant initial state at width w: the phi byte
// pattern cycled, or its bit expansion for bit-oriented engines. Runs that must be
// reproducible across processes start here.
func FixedIV(w int, mode Mode) []byte {
	iv := make([]byte, w)
	if mode == BitOriented {
		bits := BitsOf(phi[:])
		for i := range iv {
			iv[i] = bits[i%len(bits)]
		}
		return iv
	}
	for i := range iv {
		iv[i] = phi[i%len(phi)]
	}
	return iv
}

// RandomIV returns a fresh initial state of width w drawn from crypto/rand. The caller
// keeps the value; the engine only ever sees its copy.
func RandomIV(w int, mode Mode) ([]byte, error) {
	iv := make([]byte, w)
	if _, err := rand.Read(iv); err != nil {
		return nil, errors.Wrap(err, "mdhash: sourcing random IV")
	}
	if mode == BitOriented {
		for i := range iv {
			iv[i] &= 1
		}
	}
	return iv, nil
}

// SeedIV derives an initial state of width w from seed using the ChaCha keystream:
// deterministic given the seed, but with none of the structure of the fixed constant.
// Experiment sweeps use it to vary the IV reproducibly.
func SeedIV(seed [32]byte, w int, mode Mode) []byte {
	iv := make([]byte, w)
	nonce := make([]byte, chacha.XNonceSize)
	chacha.XORKeyStream(iv, iv, nonce, seed[:], 8)
	if mode == BitOriented {
		for i := range iv {
			iv[i] &= 1
		}
	}
	return iv
}
