// Copyright (c) 2026 OpenFPE Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package fast implements the core of a FAST-family format-preserving
// encryption (FPE) cipher: a tweakable, length-preserving, radix-a
// block cipher over sequences of symbols drawn from {0, ..., a-1}.
//
// Given a 16-byte master key, a tweak, and a plaintext word of length ℓ,
// Encrypt produces a ciphertext word of the same length and alphabet;
// Decrypt with the same key and tweak recovers the plaintext exactly.
// The transformation is entirely deterministic in (key, tweak,
// plaintext) — there is no IV or nonce for the caller to manage, and
// encrypting the same word under the same tweak twice yields the same
// ciphertext both times.
//
// A Cipher derives its S-box pool once, at construction, from the
// master key and the chosen Params. Each call to Encrypt or Decrypt
// derives (or reuses, if the tweak is unchanged from the previous call)
// a per-tweak sequence of pool indices that selects which S-box each of
// the n SPN rounds uses. Use Recommend to compute a reasonable Params
// for a given radix and word length, or construct one directly and
// validate it with Params.Validate.
package fast
