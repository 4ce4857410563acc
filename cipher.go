// Copyright (c) 2026 OpenFPE Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package fast

// cEnc applies the n-fold forward composition of esRound to a copy of
// input, selecting the S-box for layer i from pool via seq[i].
// Implements spec.md §4.6's CEnc.
func cEnc(p Params, pl pool, seq []uint32, input []byte) []byte {
	output := make([]byte, len(input))
	copy(output, input)

	for i := uint32(0); i < p.Layers; i++ {
		box := pl.at(seq[i])
		esRound(output, box, p.Branch1, p.Branch2, p.Radix)
	}

	return output
}

// cDec applies the n-fold inverse composition of dsRound to a copy of
// input, running layers in reverse order with the same per-layer S-box
// assignment CEnc used. Implements spec.md §4.6's CDec.
func cDec(p Params, pl pool, seq []uint32, input []byte) []byte {
	output := make([]byte, len(input))
	copy(output, input)

	for i := int(p.Layers) - 1; i >= 0; i-- {
		box := pl.at(seq[i])
		dsRound(output, box, p.Branch1, p.Branch2, p.Radix)
	}

	return output
}
