package mdhash

import "fmt"

// Copyright © 2026 pv8x. Licensed under the Apache-2.0 license.
/* The diffusion analyzer quantifies how a small input change propagates into the
output: both sequences are rendered at bit level, the shorter is right-padded with zero
bits, and the disagreeing positions are counted. The padding is purely for comparison
alignment, not the codec's length padding, and it biases the percentage toward
similarity when lengths differ greatly. */

// Report is the result of comparing two sequences bit by bit. Bits1 and Bits2 are the
// aligned binary renderings, equal in length.
type Report struct {
	Bits1, Bits2 string
	Different    int
}

// Total is the number of bit positions compared.
func (r Report) Total() int { return len(r.Bits1) }

// Percent is the fraction of differing bits, in percent. Zero-length comparisons
// report zero rather than dividing by zero.
func (r Report) Percent() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Different) / float64(r.Total()) * 100
}

// Markers returns the aligned visual diff: one '^' per differing bit position.
func (r Report) Markers() string {
	marks := make([]byte, r.Total())
	for i := range marks {
		if r.Bits1[i] != r.Bits2[i] {
			marks[i] = '^'
		} else {
			marks[i] = ' '
		}
	}
	return string(marks)
}

// String renders the textual summary in the report format used by the tools.
func (r Report) String() string {
	return fmt.Sprintf("Total bits compared: %d\nDifferent bits: %d\nDiffusion percentage: %.2f%%",
		r.Total(), r.Different, r.Percent())
}

// Compare measures diffusion between two raw byte sequences, expanded to bits.
func Compare(a, b []byte) Report {
	return compare(FormatBits(BitsOf(a)), FormatBits(BitsOf(b)))
}

// CompareBits measures diffusion between two bit strings.
func CompareBits(a, b string) (Report, error) {
	/* Validate both inputs up front; comparison itself cannot fail. */
	if _, err := ParseBits(a); err != nil {
		return Report{}, err
	}
	if _, err := ParseBits(b); err != nil {
		return Report{}, err
	}
	return compare(a, b), nil
}

func compare(bin1, bin2 string) Report {
	max := len(bin1)
	if len(bin2) > max {
		max = len(bin2)
	}
	bin1, bin2 = padRight(bin1, max), padRight(bin2, max)

	different := 0
	for i := 0; i < max; i++ {
		if bin1[i] != bin2[i] {
			different++
		}
	}
	return Report{Bits1: bin1, Bits2: bin2, Different: different}
}

func padRight(bin string, length int) string {
	for len(bin) < length {
		bin += "0"
	}
	return bin
}
