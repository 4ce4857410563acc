// Copyright (c) 2026 OpenFPE Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package fast

import "github.com/openfpe/fast/x/crypto/ctrprng"

// buildSequence derives a length-n sequence of pool indices in [0, m),
// seeding prng once and drawing each entry in order. Implements
// spec.md §4.4 (the nonce used here must already have its last two
// bytes zeroed by the caller — see derive.go's deriveSequence — to
// domain-separate this stream from the pool's).
func buildSequence(prng *ctrprng.Generator, n, m uint32) []uint32 {
	seq := make([]uint32, n)
	for i := range seq {
		seq[i] = prng.Uniform(m)
	}
	return seq
}
