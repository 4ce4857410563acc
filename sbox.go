// Copyright (c) 2026 OpenFPE Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package fast

import "github.com/openfpe/fast/x/crypto/ctrprng"

// sbox is a permutation of {0, ..., radix-1} together with its inverse,
// both precomputed at construction time so that apply/applyInverse are
// O(1) table lookups (spec.md §9: the later revision precomputes the
// inverse rather than linear-scanning perm on every lookup).
type sbox struct {
	perm []byte
	inv  []byte
}

// newSBox builds one S-box of the given radix by Fisher-Yates shuffling
// the identity permutation from the high end down, drawing each swap
// index from prng. This mirrors original_source/sbox.c's generate_sbox
// exactly: for k = radix-1 down to 1, draw j = Uniform(k+1) and swap
// perm[k] with perm[j].
func newSBox(radix uint32, prng *ctrprng.Generator) sbox {
	perm := make([]byte, radix)
	for i := range perm {
		perm[i] = byte(i)
	}

	for k := int(radix) - 1; k > 0; k-- {
		j := prng.Uniform(uint32(k + 1))
		perm[k], perm[j] = perm[j], perm[k]
	}

	inv := make([]byte, radix)
	for i, v := range perm {
		inv[v] = byte(i)
	}

	return sbox{perm: perm, inv: inv}
}

// apply returns S(v). v must be < len(s.perm).
func (s sbox) apply(v byte) byte {
	return s.perm[v]
}

// applyInverse returns S⁻¹(v). v must be < len(s.inv).
func (s sbox) applyInverse(v byte) byte {
	return s.inv[v]
}

// pool is an ordered set of independently-derived S-boxes, all of the
// same radix.
type pool struct {
	boxes []sbox
	radix uint32
}

// buildPool derives a pool of count S-boxes of the given radix, seeding
// prng once and drawing each S-box's shuffle from the resulting stream
// in order. Implements spec.md §4.3.
func buildPool(prng *ctrprng.Generator, count, radix uint32) pool {
	boxes := make([]sbox, count)
	for i := range boxes {
		boxes[i] = newSBox(radix, prng)
	}
	return pool{boxes: boxes, radix: radix}
}

// at returns the S-box at the given pool index.
func (p pool) at(index uint32) sbox {
	return p.boxes[index]
}
