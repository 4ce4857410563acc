// Copyright (c) 2026 OpenFPE Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package fast

import (
	"fmt"
	"math"
)

// MaxRadix is the largest symbol alphabet size this cipher supports.
// Symbols are bytes internally, so the S-box pool can represent a
// permutation of at most 256 values.
const MaxRadix = 256

// DefaultPoolSize is the default number of S-boxes derived per context
// (m in the data model).
const DefaultPoolSize = 256

// DefaultSecurityLevel is the security level assumed by the
// parameter-recommendation round table.
const DefaultSecurityLevel = 128

// Params holds the public, non-secret parameters of a FAST cipher
// instance: radix, word length, pool size, round count, and the two
// branch distances used by the SPN round function. Params values are
// immutable once handed to New.
type Params struct {
	// Radix is the symbol alphabet size a. Symbols are integers in
	// [0, Radix). Must satisfy 4 <= Radix <= MaxRadix.
	Radix uint32

	// Length is the word length ℓ: the number of symbols in every
	// plaintext/ciphertext. Must be at least 2.
	Length uint32

	// Pool is the S-box pool size m (default DefaultPoolSize).
	Pool uint32

	// Layers is the round count n. Must be a positive multiple of
	// Length.
	Layers uint32

	// Branch1 is the first branch distance w. Must satisfy
	// 0 <= Branch1 <= Length-2.
	Branch1 uint32

	// Branch2 is the second branch distance w'. Must satisfy
	// 1 <= Branch2 <= Length-1 and Branch1+Branch2 <= Length-1.
	Branch2 uint32

	// Security is the nominal security level in bits. The round table
	// in this package targets 128-bit security; the field is otherwise
	// inert and carried only for API parity with the reference
	// implementation (see SPEC_FULL.md §11).
	Security uint32
}

// Validate checks p against the invariants in the data model, returning
// ErrInvalidParams (wrapped with detail) on the first violation found.
func (p Params) Validate() error {
	if p.Radix < 4 || p.Radix > MaxRadix {
		return fmt.Errorf("%w: radix %d must be in [4, %d]", ErrInvalidParams, p.Radix, MaxRadix)
	}
	if p.Length < 2 {
		return fmt.Errorf("%w: length %d must be >= 2", ErrInvalidParams, p.Length)
	}
	if p.Pool == 0 {
		return fmt.Errorf("%w: pool size must be > 0", ErrInvalidParams)
	}
	if p.Layers == 0 || p.Layers%p.Length != 0 {
		return fmt.Errorf("%w: layers %d must be a positive multiple of length %d", ErrInvalidParams, p.Layers, p.Length)
	}
	if p.Branch1 > p.Length-2 {
		return fmt.Errorf("%w: branch1 %d must be <= length-2 (%d)", ErrInvalidParams, p.Branch1, p.Length-2)
	}
	if p.Branch2 == 0 || p.Branch2 > p.Length-1 {
		return fmt.Errorf("%w: branch2 %d must be in [1, length-1 (%d)]", ErrInvalidParams, p.Branch2, p.Length-1)
	}
	if p.Branch1+p.Branch2 > p.Length-1 {
		return fmt.Errorf("%w: branch1+branch2 (%d) must be <= length-1 (%d)", ErrInvalidParams, p.Branch1+p.Branch2, p.Length-1)
	}
	return nil
}

// Recommend computes a Params value for the given radix and word length
// using the round table in roundtable.go, following spec.md §4.7:
//
//	w  = min(ceil(sqrt(length)), length-2), clamped to 0 when length <= 2
//	w' = max(1, w-1), reduced to length-1-w when w+w' would exceed length-1
//	n  = ceil(rounds(radix, length)) * length
//	m  = DefaultPoolSize, s = DefaultSecurityLevel
func Recommend(radix, length uint32) (Params, error) {
	if radix < 4 || length < 2 {
		return Params{}, fmt.Errorf("%w: radix %d must be >= 4 and length %d must be >= 2", ErrInvalidParams, radix, length)
	}

	var branch1 uint32
	if length > 2 {
		candidate := ceilSqrt(length)
		upper := length - 2
		if candidate < upper {
			branch1 = candidate
		} else {
			branch1 = upper
		}
	}

	branch2 := uint32(1)
	if branch1 > 1 {
		branch2 = branch1 - 1
	}
	if branch1+branch2 > length-1 {
		branch2 = length - 1 - branch1
	}

	rounds := recommendedRounds(radix, float64(length))
	if rounds < 1.0 {
		rounds = 1.0
	}

	roundsPerSymbol := uint32(math.Ceil(rounds))

	p := Params{
		Radix:    radix,
		Length:   length,
		Pool:     DefaultPoolSize,
		Layers:   roundsPerSymbol * length,
		Branch1:  branch1,
		Branch2:  branch2,
		Security: DefaultSecurityLevel,
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// ceilSqrt returns ceil(sqrt(n)) for n >= 0 using float64 arithmetic; n
// stays well within float64's exact integer range for any realistic
// word length.
func ceilSqrt(n uint32) uint32 {
	return uint32(math.Ceil(math.Sqrt(float64(n))))
}
