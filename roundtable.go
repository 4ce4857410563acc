// Copyright (c) 2026 OpenFPE Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package fast

import (
	"math"

	"golang.org/x/exp/constraints"
)

// roundRadices and roundLengths are the row/column keys of roundTable,
// transcribed verbatim from the reference implementation's
// k_round_radices / k_round_l_values.
var roundRadices = [...]uint32{
	4, 5, 6, 7, 8, 9, 10, 11, 12, 13,
	14, 15, 16, 100, 128, 256, 1000, 1024, 10000, 65536,
}

var roundLengths = [...]uint32{
	2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 16, 32, 50, 64, 100,
}

// roundTable holds the recommended rounds-per-symbol for every
// (radix, length) pair in roundRadices × roundLengths, transcribed
// verbatim from the reference implementation's k_round_table.
var roundTable = [len(roundRadices)][len(roundLengths)]uint16{
	{165, 135, 117, 105, 96, 89, 83, 78, 74, 68, 59, 52, 52, 53, 57},    // a = 4
	{131, 107, 93, 83, 76, 70, 66, 62, 59, 54, 48, 46, 47, 48, 53},      // a = 5
	{113, 92, 80, 72, 65, 61, 57, 54, 51, 46, 44, 43, 44, 46, 52},       // a = 6
	{102, 83, 72, 64, 59, 55, 51, 48, 46, 43, 41, 41, 43, 45, 50},       // a = 7
	{94, 76, 66, 59, 54, 50, 47, 44, 42, 41, 39, 39, 42, 44, 50},        // a = 8
	{88, 72, 62, 56, 51, 47, 44, 42, 40, 39, 38, 38, 41, 43, 49},        // a = 9
	{83, 68, 59, 53, 48, 45, 42, 39, 39, 38, 37, 37, 40, 43, 49},        // a = 10
	{79, 65, 56, 50, 46, 43, 40, 38, 38, 37, 36, 37, 40, 42, 48},        // a = 11
	{76, 62, 54, 48, 44, 41, 38, 37, 37, 36, 35, 36, 39, 42, 48},        // a = 12
	{73, 60, 52, 47, 43, 39, 37, 36, 36, 35, 34, 36, 39, 41, 48},        // a = 13
	{71, 58, 50, 45, 41, 38, 36, 36, 35, 34, 34, 35, 39, 41, 47},        // a = 14
	{69, 57, 49, 44, 40, 37, 36, 35, 34, 34, 33, 35, 38, 41, 47},        // a = 15
	{67, 55, 48, 43, 39, 36, 35, 34, 34, 33, 33, 35, 38, 41, 47},        // a = 16
	{40, 33, 28, 27, 26, 26, 25, 25, 25, 26, 26, 30, 34, 37, 44},        // a = 100
	{38, 31, 27, 26, 25, 25, 25, 25, 25, 25, 26, 30, 34, 37, 44},        // a = 128
	{33, 27, 25, 24, 23, 23, 23, 23, 23, 24, 25, 29, 33, 37, 44},        // a = 256
	{32, 22, 21, 21, 21, 21, 21, 21, 21, 22, 23, 28, 32, 36, 43},        // a = 1000
	{32, 22, 21, 21, 21, 21, 21, 21, 21, 22, 23, 28, 32, 36, 43},        // a = 1024
	{32, 22, 18, 18, 18, 18, 19, 19, 19, 20, 21, 27, 32, 35, 42},        // a = 10000
	{32, 22, 17, 17, 17, 17, 17, 18, 18, 19, 21, 26, 31, 35, 42},        // a = 65536
}

// interpolate linearly interpolates y at x between (x0, y0) and
// (x1, y1), clamping to y0/y1 outside [x0, x1].
func interpolate[T constraints.Float](x, x0, x1, y0, y1 T) T {
	if x1 == x0 {
		return y0
	}
	t := (x - x0) / (x1 - x0)
	switch {
	case t <= 0:
		return y0
	case t >= 1:
		return y1
	default:
		return y0 + t*(y1-y0)
	}
}

// roundsForRow returns the interpolated/extrapolated rounds-per-symbol
// for one row of roundTable at word length ell, following the
// reference implementation's rounds_for_row exactly: clamp below the
// smallest tabulated length, linear-interpolate between tabulated
// lengths, and extrapolate above the largest tabulated length by
// last * sqrt(ell/last_length), never regressing below last.
func roundsForRow(rowIndex int, ell float64) float64 {
	row := roundTable[rowIndex]
	lastIdx := len(roundLengths) - 1

	if ell <= float64(roundLengths[0]) {
		return float64(row[0])
	}
	if ell >= float64(roundLengths[lastIdx]) {
		last := float64(row[lastIdx])
		ratio := math.Sqrt(ell / float64(roundLengths[lastIdx]))
		projected := last * ratio
		if projected < last {
			return last
		}
		return projected
	}

	for i := 1; i < len(roundLengths); i++ {
		lPrev := float64(roundLengths[i-1])
		lCurr := float64(roundLengths[i])
		if ell <= lCurr {
			return interpolate(ell, lPrev, lCurr, float64(row[i-1]), float64(row[i]))
		}
	}

	return float64(row[lastIdx])
}

// recommendedRounds returns the recommended rounds-per-symbol for a
// given radix and word length, bilinearly interpolating: linearly in
// length within a row (roundsForRow), linearly in log(radix) between
// rows, clamping to the nearest row outside the tabulated radix range.
func recommendedRounds(radix uint32, ell float64) float64 {
	lastIdx := len(roundRadices) - 1

	if radix <= roundRadices[0] {
		return roundsForRow(0, ell)
	}
	if radix >= roundRadices[lastIdx] {
		return roundsForRow(lastIdx, ell)
	}

	for i := 1; i < len(roundRadices); i++ {
		rPrev := roundRadices[i-1]
		rCurr := roundRadices[i]
		if radix <= rCurr {
			roundsPrev := roundsForRow(i-1, ell)
			roundsCurr := roundsForRow(i, ell)
			logPrev := math.Log(float64(rPrev))
			logCurr := math.Log(float64(rCurr))
			logRadix := math.Log(float64(radix))
			return interpolate(logRadix, logPrev, logCurr, roundsPrev, roundsCurr)
		}
	}

	return roundsForRow(lastIdx, ell)
}
