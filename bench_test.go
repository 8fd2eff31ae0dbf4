package mdhash

import (
	"testing"

	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2026 pv8x. Licensed under the Apache-2.0 license.
/* Comparison benchmarks against real hash functions, to keep honest about what a
teaching construction costs. */

func BenchmarkSum(b *testing.B) {
	e, _ := New(Config{Width: 20, BlockWidth: 20}, nil, FixedIV(20, ByteOriented))
	msg := make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Sum(msg)
	}
}

func BenchmarkSumXOR(b *testing.B) {
	e, _ := New(Config{Width: 20, BlockWidth: 20}, XOR{}, FixedIV(20, ByteOriented))
	msg := make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Sum(msg)
	}
}

func BenchmarkBlake3(b *testing.B) {
	h, msg := blake3.New(), make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Write(msg)
		h.Sum(nil)
		h.Reset()
	}
}

func BenchmarkXXH3(b *testing.B) {
	h, msg := xxh3.New(), make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Write(msg)
		h.Sum(nil)
		h.Reset()
	}
}
