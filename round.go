// Copyright (c) 2026 OpenFPE Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package fast

// addMod and subMod perform addition/subtraction modulo radix on
// symbols in [0, radix). radix is at most MaxRadix (256), so the
// intermediate sum fits comfortably in int.
func addMod(a, b byte, radix uint32) byte {
	return byte((uint32(a) + uint32(b)) % radix)
}

func subMod(a, b byte, radix uint32) byte {
	return byte((uint32(a) + radix - uint32(b)) % radix)
}

// esRound applies one forward SPN layer to word in place, using box for
// the S-box substitutions and (w, wp, radix) from p. Implements
// spec.md §4.5's ES: rewrite the tail via two S-box applications with
// an additive mix, then left-rotate.
//
// ES(x) = (x[1], ..., x[ℓ-1], y) where
//
//	t1 = S(x[0] ⊕ x[ℓ-w'])
//	y  = S(t1 ⊖ x[w])      if w > 0
//	y  = S(t1)             if w = 0 (x[w] = x[0] is already consumed by t1),
//	                       i.e. y = S(S(x[0] ⊕ x[ℓ-w']))
func esRound(word []byte, box sbox, w, wp, radix uint32) {
	ell := uint32(len(word))

	x0 := word[0]
	xEllMinusWp := word[ell-wp]

	t1 := box.apply(addMod(x0, xEllMinusWp, radix))

	var y byte
	if w > 0 {
		xw := word[w]
		y = box.apply(subMod(t1, xw, radix))
	} else {
		y = box.apply(t1)
	}

	copy(word, word[1:])
	word[ell-1] = y
}

// dsRound applies one inverse SPN layer to word in place: the exact
// inverse of esRound. Implements spec.md §4.5's DS.
//
// DS(x') = (v ⊖ x'[ℓ-w'-1], x'[0], ..., x'[ℓ-2]) where
//
//	u = S⁻¹(x'[ℓ-1])
//	v = S⁻¹(u ⊕ x'[w-1])   if w > 0
//	v = S⁻¹(S⁻¹(x'[ℓ-1]))  if w = 0
func dsRound(word []byte, box sbox, w, wp, radix uint32) {
	ell := uint32(len(word))

	u := box.applyInverse(word[ell-1])

	var v byte
	if w > 0 {
		xwMinus1 := word[w-1]
		v = box.applyInverse(addMod(u, xwMinus1, radix))
	} else {
		v = box.applyInverse(u)
	}

	newFirst := subMod(v, word[ell-wp-1], radix)

	copy(word[1:], word[:ell-1])
	word[0] = newFirst
}
