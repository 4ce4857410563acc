// Copyright (c) 2026 OpenFPE Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package fast

import (
	"bytes"
	"errors"
	"fmt"
)

// masterKeySize is the AES-128 master key size in bytes.
const masterKeySize = 16

// Cipher is a live FAST context: a master key bound to a set of
// Params, an S-box pool derived once at construction, and a single-slot
// cache holding the most recently used tweak's round sequence.
//
// A Cipher is not safe for concurrent use: Encrypt and Decrypt mutate
// the tweak cache. Distinct Cipher values are independent and may be
// used from separate goroutines concurrently. Callers that need to
// serve concurrent callers with one key and parameter set should either
// serialize access externally or construct one Cipher per goroutine.
type Cipher struct {
	params    Params
	masterKey [masterKeySize]byte
	pool      pool

	seq          []uint32
	cachedTweak  []byte
	hasCachedSeq bool

	closed bool
}

// New validates p and key, derives the S-box pool, and returns a ready
// Cipher. key must be exactly 16 bytes (AES-128). If p.Security is 0 it
// defaults to DefaultSecurityLevel. Implements spec.md §4.8's init.
func New(p Params, key []byte) (*Cipher, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(key) != masterKeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidParams, masterKeySize, len(key))
	}

	if p.Security == 0 {
		p.Security = DefaultSecurityLevel
	}

	c := &Cipher{params: p}
	copy(c.masterKey[:], key)

	pl, err := derivePool(c.masterKey[:], p)
	if err != nil {
		c.Close()
		if errors.Is(err, ErrAllocFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDerivationFailure, err)
	}
	c.pool = pl

	return c, nil
}

// Params returns a copy of the Params this Cipher was constructed with.
func (c *Cipher) Params() Params {
	return c.params
}

// ensureSequence makes sure c.seq holds the round sequence for tweak,
// reusing the cached sequence when tweak matches the last one used
// byte-for-byte, and otherwise deriving a fresh one and replacing the
// single cache slot. Implements spec.md §4.8's ensure_sequence.
func (c *Cipher) ensureSequence(tweak []byte) error {
	if c.hasCachedSeq && bytes.Equal(c.cachedTweak, tweak) {
		return nil
	}

	seq, err := deriveSequence(c.masterKey[:], c.params, tweak)
	if err != nil {
		if errors.Is(err, ErrAllocFailure) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrDerivationFailure, err)
	}

	c.seq = seq
	c.cachedTweak = append(c.cachedTweak[:0], tweak...)
	c.hasCachedSeq = true

	return nil
}

// validateLength checks that word has exactly c.params.Length symbols.
func (c *Cipher) validateLength(word []uint16) error {
	if uint32(len(word)) != c.params.Length {
		return fmt.Errorf("%w: expected %d symbols, got %d", ErrInvalidLength, c.params.Length, len(word))
	}
	return nil
}

// validateSymbols checks that every symbol in word is less than
// c.params.Radix.
func (c *Cipher) validateSymbols(word []uint16) error {
	for _, sym := range word {
		if uint32(sym) >= c.params.Radix {
			return fmt.Errorf("%w: symbol %d is not less than radix %d", ErrInvalidSymbol, sym, c.params.Radix)
		}
	}
	return nil
}

// toBytes narrows a validated symbol word to bytes for the internal
// round function, which only ever sees values below Radix <= MaxRadix.
func toBytes(word []uint16) []byte {
	out := make([]byte, len(word))
	for i, sym := range word {
		out[i] = byte(sym)
	}
	return out
}

func toSymbols(word []byte) []uint16 {
	out := make([]uint16, len(word))
	for i, b := range word {
		out[i] = uint16(b)
	}
	return out
}

// Encrypt encrypts plaintext under tweak, reusing the cached round
// sequence if tweak matches the previous call's and deriving a fresh
// one otherwise. plaintext must have exactly Params().Length symbols,
// each less than Params().Radix. Implements spec.md §4.8's encrypt.
func (c *Cipher) Encrypt(tweak []byte, plaintext []uint16) ([]uint16, error) {
	if c.closed {
		return nil, fmt.Errorf("%w: cipher is closed", ErrInvalidParams)
	}
	if err := c.validateLength(plaintext); err != nil {
		return nil, err
	}
	if err := c.ensureSequence(tweak); err != nil {
		return nil, err
	}
	if err := c.validateSymbols(plaintext); err != nil {
		return nil, err
	}

	ciphertext := cEnc(c.params, c.pool, c.seq, toBytes(plaintext))
	return toSymbols(ciphertext), nil
}

// Decrypt decrypts ciphertext under tweak, symmetric to Encrypt.
// Implements spec.md §4.8's decrypt.
func (c *Cipher) Decrypt(tweak []byte, ciphertext []uint16) ([]uint16, error) {
	if c.closed {
		return nil, fmt.Errorf("%w: cipher is closed", ErrInvalidParams)
	}
	if err := c.validateLength(ciphertext); err != nil {
		return nil, err
	}
	if err := c.ensureSequence(tweak); err != nil {
		return nil, err
	}
	if err := c.validateSymbols(ciphertext); err != nil {
		return nil, err
	}

	plaintext := cDec(c.params, c.pool, c.seq, toBytes(ciphertext))
	return toSymbols(plaintext), nil
}

// Close zeroizes the master key and parameters and releases the pool,
// sequence buffer, and cached tweak. Implements spec.md §4.8's cleanup.
// Close is idempotent.
func (c *Cipher) Close() error {
	zero(c.masterKey[:])
	c.params = Params{}
	c.pool = pool{}
	c.seq = nil
	zero(c.cachedTweak)
	c.cachedTweak = nil
	c.hasCachedSeq = false
	c.closed = true
	return nil
}
