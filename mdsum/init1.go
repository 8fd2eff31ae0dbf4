package main

import (
	. "github.com/spf13/pflag"
	"os"
)

// Copyright © 2026 pv8x. Licensed under the Apache-2.0 license.

var pWidth, pBlock, pRounds, pRotation = uint(20), uint(20), uint(3), uint(3)
var pIV, pNoCodesDefault = "", false
var pHelp, pBase64, pBinary, pDiff, pNoCodes, pQuiet, pRandomIV, pStrict, pString, pTime, pXOR bool
var pMultibase string
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	BoolVarP(&pBase64, "base64", "b", false,
		purp+"render digests in base64"+zero+" (default hex)")

	BoolVarP(&pBinary, "binary", "g", false,
		purp+"process arguments as binary strings over 0/1 and run the"+zero+
			n+purp+"bit-oriented construction; widths are then read in bits"+zero)

	UintVarP(&pBlock, "block", "c", 20,
		purp+"set block width in bytes (bits with --binary)"+zero)

	BoolVarP(&pDiff, "diff", "d", false,
		purp+"hash exactly two targets and report the bitwise diffusion"+zero+
			n+purp+"between their digests"+zero)

	StringVarP(&pIV, "iv", "i", "",
		purp+"set the initialization vector from hex (a binary string"+zero+
			n+purp+"with --binary); default is the fixed well-known constant"+zero)

	StringVarP(&pMultibase, "multibase", "m", "",
		purp+"render digests in the given multibase encoding, e.g. b"+zero+
			n+purp+"for base32 or z for base58btc"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY digests"+zero+
			n+"(enables --no-codes)")

	BoolVar(&pRandomIV, "random-iv", false,
		purp+"draw a fresh random IV for this run and print it"+zero)

	UintVar(&pRotation, "rotation", 3,
		purp+"set the right-rotation amount of the mixing step"+zero)

	UintVarP(&pRounds, "rounds", "r", 3,
		purp+"set the mixing rounds applied per block"+zero)

	BoolVar(&pStrict, "strict", false,
		purp+"cause mdsum to panic on any error"+zero)

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as UTF-8 strings to be hashed"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read and hash each message"+zero)

	UintVarP(&pWidth, "width", "w", 20,
		purp+"set digest width in bytes (bits with --binary)"+zero)

	BoolVarP(&pXOR, "xor", "x", false,
		purp+"mix with the plain XOR step instead of rotate-XOR-add"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
}
