package main

import (
	"encoding/base64"
	"encoding/hex"
	. "fmt"
	"github.com/multiformats/go-multibase"
	"github.com/p7r0x7/vainpath"
	"github.com/pv8x/mdhash"
	. "github.com/spf13/pflag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Copyright © 2026 pv8x. Licensed under the Apache-2.0 license.
/* This program is a command-line interface for mdhash: It handles various flags and an
unlimited number of arguments, hashing files, strings, and binary strings as required by
the command-line operator, and optionally reporting the diffusion between two digests. */

const n = "\n"
const success, failure, invalid = 0, 1, 2

var warnings = 0

func main() { os.Exit(program()) }

// help prints a usage menu and quietly exits if no non-flag arguments are given. To
// consistently correctly render this menu in most terminal windows, its content should
// be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "mdsum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "A configurable Merkle–Damgård construction for the classroom.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-bdtx] [-w|c|r <uint>] [-i <hex>] [--quiet|no-codes] -|PATH..."+n,
		spaces, "[-bdtx] [-w|c|r <uint>] [-i <hex>] [--quiet|no-codes] -s STRING..."+n,
		spaces, "[-dtx] [-w|c|r <uint>] [-i <bits>] [--quiet|no-codes] -g BITS..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+n+
		"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

func program() int {
	if pHelp || NArg() == 0 {
		help()
		return success
	}

	mode := mdhash.ByteOriented
	if pBinary {
		mode = mdhash.BitOriented
		/* The blackboard example's widths, unless the operator says otherwise. */
		if !CommandLine.Changed("width") {
			pWidth = 8
		}
		if !CommandLine.Changed("block") {
			pBlock = 16
		}
	}

	iv, err := sourceIV(mode)
	if err != nil {
		panic(err)
	}
	var mix mdhash.Mixer
	if pXOR {
		mix = mdhash.XOR{}
	}
	engine, err := mdhash.New(mdhash.Config{
		Width:      int(pWidth),
		BlockWidth: int(pBlock),
		Rounds:     int(pRounds),
		Rotation:   int(pRotation),
		Mode:       mode,
	}, mix, iv)
	if err != nil {
		panic(err)
	}
	if pRandomIV && !pQuiet {
		Print(purp, "IV", zero, "  ", render(iv), n)
	}

	if pDiff {
		return diffusion(engine)
	}

	for _, target := range Args() {
		start, delta := time.Now(), ""

		digest, err := digestOf(engine, target)
		if err != nil {
			warn(err)
			continue
		}
		if pTime {
			d := time.Since(start)
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}

		if pQuiet {
			Print(render(digest), n)
		} else if pString || pBinary {
			Print(yell, render(digest), zero, `  "`, target, `"`, delta, n)
		} else if pNoCodes {
			Print(render(digest), `  `, filepath.Clean(target), delta, n)
		} else {
			Print(yell, render(digest), zero, `  `, und, vainpath.Simplify(target), zero, delta, n)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is unreadable, malformed, or otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are unreadable, malformed, or otherwise inaccessible.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

// diffusion hashes exactly two targets from the same initial state and reports how far
// apart the digests land, bit by bit.
func diffusion(engine *mdhash.Engine) int {
	if NArg() != 2 {
		Fprint(os.Stderr, purp, "--diff takes exactly two targets.", zero, n)
		return invalid
	}
	one, err := digestOf(engine, Arg(0))
	if err != nil {
		warn(err)
		return failure
	}
	two, err := digestOf(engine, Arg(1))
	if err != nil {
		warn(err)
		return failure
	}

	if pString || pBinary {
		Print("Comparing input messages:"+n, inputReport(Arg(0), Arg(1)), n+n)
		Print("Comparing output digests:" + n)
	}
	report := mdhash.Compare(one, two)
	if pBinary {
		report, _ = mdhash.CompareBits(mdhash.FormatBits(one), mdhash.FormatBits(two))
	}
	Print("1: ", yell, report.Bits1, zero, n)
	Print("2: ", yell, report.Bits2, zero, n)
	Print("   ", report.Markers(), n)
	Print(report.String(), n)
	return success
}

func inputReport(one, two string) string {
	if pBinary {
		/* Both already survived digestOf, so they parse. */
		report, _ := mdhash.CompareBits(one, two)
		return report.String()
	}
	return mdhash.Compare([]byte(one), []byte(two)).String()
}

// sourceIV resolves the initial state per the flags: operator-supplied, freshly random,
// or the fixed well-known constant.
func sourceIV(mode mdhash.Mode) ([]byte, error) {
	switch {
	case pRandomIV:
		return mdhash.RandomIV(int(pWidth), mode)
	case pIV != "" && pBinary:
		return mdhash.ParseBits(pIV)
	case pIV != "":
		return hex.DecodeString(pIV)
	}
	return mdhash.FixedIV(int(pWidth), mode), nil
}

func digestOf(engine *mdhash.Engine, target string) ([]byte, error) {
	switch {
	case pBinary:
		units, err := mdhash.ParseBits(target)
		if err != nil {
			return nil, err
		}
		return engine.Sum(units), nil
	case pString:
		return engine.Sum([]byte(target)), nil
	case target == "-" || target == os.Stdin.Name():
		digest, err := hashStream(engine, os.Stdin)
		go os.Stdin.Close() /* STDIN should not be reused. */
		return digest, err
	}
	file, err := os.Open(target)
	if err != nil {
		return nil, err
	}
	digest, err := hashStream(engine, file)
	go file.Close()
	return digest, err
}

// hashStream folds the reader into the engine one block-width chunk at a time, then
// closes the run with the codec's length-append tail. Blocks are consumed strictly in
// order; the first read failure aborts the run.
func hashStream(engine *mdhash.Engine, r io.Reader) ([]byte, error) {
	engine.Reset()
	width := engine.Config().BlockWidth
	buf, total := make([]byte, width), 0
	for {
		read, err := io.ReadFull(r, buf)
		total += read
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			for _, block := range mdhash.Tail(buf[:read], total, width, mdhash.ByteLength) {
				if err := engine.Fold(block); err != nil {
					return nil, err
				}
			}
			return engine.State(), nil
		}
		if err != nil {
			return nil, err
		}
		if err := engine.Fold(buf); err != nil {
			return nil, err
		}
	}
}

func render(digest []byte) string {
	if pBinary {
		return mdhash.FormatBits(digest)
	}
	if pMultibase != "" {
		str, err := multibase.Encode(multibase.Encoding([]rune(pMultibase)[0]), digest)
		if err != nil {
			warn(err)
			return mdhash.Hex(digest)
		}
		return str
	}
	if pBase64 {
		return base64.StdEncoding.EncodeToString(digest)
	}
	return mdhash.Hex(digest)
}

func warn(err ...interface{}) {
	if pStrict {
		panic(err)
	}
	warnings++
}
