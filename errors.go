// Copyright (c) 2026 OpenFPE Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package fast

import "errors"

// Sentinel errors returned by this package. Wrap with fmt.Errorf("%w: ...")
// at call sites that need to attach context; callers should match with
// errors.Is against these values rather than string comparison.
var (
	// ErrInvalidParams is returned by New and Recommend when a Params
	// value violates one of the invariants in the data model: radix out
	// of range, word length too short, round count not a multiple of
	// word length, branch distances out of range, or empty pool.
	ErrInvalidParams = errors.New("fast: invalid parameters")

	// ErrInvalidLength is returned by Encrypt/Decrypt when the supplied
	// word does not have exactly Params.Length symbols.
	ErrInvalidLength = errors.New("fast: invalid word length")

	// ErrInvalidSymbol is returned by Encrypt/Decrypt when a symbol in
	// the input word is not less than Params.Radix.
	ErrInvalidSymbol = errors.New("fast: symbol out of range")

	// ErrDerivationFailure is returned when an underlying cryptographic
	// primitive (AES, CMAC) fails. In practice this is unreachable on a
	// well-formed key, since the only failure modes are malformed key
	// sizes already rejected by New.
	ErrDerivationFailure = errors.New("fast: key derivation failed")

	// ErrAllocFailure is returned by derivePool/deriveSequence (and so,
	// transitively, by New/Encrypt/Decrypt) when allocating the S-box
	// pool or round sequence panics because Params.Pool or Params.Layers
	// requested a backing buffer larger than the runtime can allocate.
	// Params.Validate does not cap either field, so this is reachable
	// from caller-supplied Params, not just reserved for parity.
	ErrAllocFailure = errors.New("fast: allocation failed")
)
