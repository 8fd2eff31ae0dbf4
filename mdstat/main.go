package main

import (
	"fmt"
	"github.com/dterei/gotsc"
	"github.com/minio/sha256-simd"
	"github.com/pv8x/mdhash"
	"github.com/spf13/pflag"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"math/rand"
	"runtime"
	"testing"
	"time"
)

// Copyright © 2026 pv8x. Licensed under the Apache-2.0 license.
/* mdstat measures the statistical quality and cost of the teaching construction: bit
bias, avalanche behavior, the final-length-block experiment, optional YAML-defined
configuration sweeps, and throughput against real hash functions. */

const ints = uint32(5e4)

var (
	size   int64
	rBytes []byte
	sizes  = []int64{64, 4 * 1000, 512 * 1000}
	engine *mdhash.Engine

	pSweep   = pflag.StringP("sweep", "f", "", "run the configuration sweep described by a YAML file")
	pSamples = pflag.IntP("samples", "n", 1000, "sample count for the avalanche test")
	pNoBench = pflag.Bool("no-bench", false, "skip the throughput benchmarks")

	fn = []func(b *testing.B){
		func(b *testing.B) {
			makeBytes(size)
			b.SetBytes(size)
			b.ResetTimer()
			for i := b.N; i > 0; i-- {
				engine.Sum(rBytes)
			}
		},
		func(b *testing.B) {
			makeBytes(size)
			b.SetBytes(size)
			b.ResetTimer()
			for i := b.N; i > 0; i-- {
				sha256.Sum256(rBytes)
			}
		},
		func(b *testing.B) {
			makeBytes(size)
			b.SetBytes(size)
			b.ResetTimer()
			for i := b.N; i > 0; i-- {
				blake3.Sum256(rBytes)
			}
		},
		func(b *testing.B) {
			makeBytes(size)
			b.SetBytes(size)
			b.ResetTimer()
			for i := b.N; i > 0; i-- {
				xxh3.Hash(rBytes)
			}
		},
	}
)

func makeBytes(size int64) {
	rBytes = make([]byte, size)
	_, err := rand.Read(rBytes)
	if err != nil {
		panic("failed to generate random data")
	}
}

func algBench(alg int) {
	switch alg {
	case 0:
		fmt.Println("mdhash-160   64B      4K    512K")
	case 1:
		fmt.Println("SHA-256      64B      4K    512K")
	case 2:
		fmt.Println("BLAKE3-256   64B      4K    512K")
	case 3:
		fmt.Println("XXH3-64      64B      4K    512K")
	}
	throughputs, speeds, usages := make([]float64, 3), make([]float64, 3), make([]float64, 3)
	for i := range sizes {
		size = sizes[i]
		var totalHz, polls uint64
		if runtime.GOARCH == "amd64" {
			go func() {
				calltime := gotsc.TSCOverhead()
				for throughputs[i] == 0 {
					tsc1 := gotsc.BenchStart()
					time.Sleep(time.Millisecond)
					tsc2 := gotsc.BenchEnd()
					totalHz += (tsc2 - tsc1 - calltime) * 1000
					polls++
					time.Sleep(time.Millisecond * 19)
				}
			}()
		}
		r := testing.Benchmark(fn[alg])
		throughputs[i] = float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
		speeds[i] = float64(totalHz) / float64(polls) / throughputs[i]
		usages[i] = float64(r.AllocedBytesPerOp())
	}

	fmt.Printf("Speed     %7.5g %7.5g %7.5g  MB/s\n",
		throughputs[0]/1e6, throughputs[1]/1e6, throughputs[2]/1e6)
	if speeds[0]+speeds[1]+speeds[2] > 0 {
		fmt.Printf("          %7.5g %7.5g %7.5g  cpb\n", speeds[0], speeds[1], speeds[2])
	}
	fmt.Printf("Usage     %7.5g %7.5g %7.5g  B/op\n\n",
		usages[0], usages[1], usages[2])
}

func main() {
	pflag.Parse()

	/* One fixed seed for the whole run: rerunning mdstat replays the same IVs. */
	var seed [32]byte
	copy(seed[:], "mdstat sweep seed")
	var err error
	engine, err = mdhash.New(mdhash.Config{Width: 20, BlockWidth: 20}, nil,
		mdhash.SeedIV(seed, 20, mdhash.ByteOriented))
	if err != nil {
		panic(err)
	}

	fmt.Printf("Running mdstat on %d CPUs!\n\n", runtime.NumCPU())
	t := time.Now()

	monobitTest(engine)
	avalancheTest(engine, *pSamples)
	lengthFlipDemo(engine)

	if *pSweep != "" {
		experiments, err := loadSweep(*pSweep)
		if err != nil {
			panic(err)
		}
		if err := runSweep(experiments, seed); err != nil {
			panic(err)
		}
	}

	if !*pNoBench {
		fmt.Println(" ============================================= ")
		algBench(0)
		algBench(1)
		algBench(2)
		algBench(3)
	}

	fmt.Printf("Finished in %s on %s/%s.\n", time.Since(t).String(), runtime.GOOS, runtime.GOARCH)
}
