// Copyright (c) 2026 OpenFPE Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package fast

import (
	"encoding/binary"
	"fmt"

	"github.com/openfpe/fast/x/crypto/ctrprng"
	"github.com/openfpe/fast/x/crypto/kdf"
)

// Domain labels for the PRF input encoding. Each includes a trailing
// NUL byte, matching the C reference's `static const uint8_t LABEL[] =
// "...";` string-literal arrays, whose sizeof (used as the label's
// length throughout fast.c) includes the terminator. See SPEC_FULL.md
// §11 for the rationale; a conforming implementation MUST document
// this choice to stay bit-exact with other FAST implementations.
var (
	labelInstance1 = []byte("instance1\x00")
	labelInstance2 = []byte("instance2\x00")
	labelFPEPool   = []byte("FPE Pool\x00")
	labelFPESeq    = []byte("FPE SEQ\x00")
	labelTweak     = []byte("tweak\x00")
)

// derivedKeySize is the number of bytes of PRF output consumed to seed
// one PRNG instance: a 16-byte AES key plus a 16-byte nonce.
const derivedKeySize = ctrprng.KeySize + ctrprng.BlockSize

// encodeParts implements the canonical length-prefixed encoding from
// spec.md §4.2: a big-endian 32-bit part count, then for each part a
// big-endian 32-bit length followed by the part's bytes. This is the
// exact framing of the C reference's encode_parts.
func encodeParts(parts ...[]byte) []byte {
	total := 4
	for _, part := range parts {
		total += 4 + len(part)
	}

	buf := make([]byte, total)
	binary.BigEndian.PutUint32(buf, uint32(len(parts)))

	offset := 4
	for _, part := range parts {
		binary.BigEndian.PutUint32(buf[offset:], uint32(len(part)))
		offset += 4
		copy(buf[offset:], part)
		offset += len(part)
	}

	return buf
}

func be32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// buildSetup1Input builds the PRF input for the pool-derivation key
// (SETUP-1 in spec.md §4.2): instance1, radix, pool size, "FPE Pool".
func buildSetup1Input(p Params) []byte {
	return encodeParts(
		labelInstance1,
		be32(p.Radix),
		be32(p.Pool),
		labelFPEPool,
	)
}

// buildSetup2Input builds the PRF input for the per-tweak
// sequence-derivation key (SETUP-2 in spec.md §4.2): instance1, radix,
// pool size, instance2, length, layers, branch1, branch2, "FPE SEQ",
// "tweak", tweak bytes.
func buildSetup2Input(p Params, tweak []byte) []byte {
	return encodeParts(
		labelInstance1,
		be32(p.Radix),
		be32(p.Pool),
		labelInstance2,
		be32(p.Length),
		be32(p.Layers),
		be32(p.Branch1),
		be32(p.Branch2),
		labelFPESeq,
		labelTweak,
		tweak,
	)
}

// recoverAlloc is deferred by derivePool and deriveSequence to convert a
// panic from their backing-buffer allocation into ErrAllocFailure rather
// than letting it crash the caller. Params.Pool and Params.Layers are
// caller-controlled and unbounded by Params.Validate, so a large enough
// value can drive buildPool/buildSequence's allocation past what the
// runtime will grant.
func recoverAlloc(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrAllocFailure, r)
	}
}

// derivePool derives SETUP-1 key material from masterKey and p, then
// builds the S-box pool from it. Implements spec.md §4.3 end to end.
func derivePool(masterKey []byte, p Params) (pl pool, err error) {
	defer recoverAlloc(&err)

	material, derr := kdf.Derive(masterKey, buildSetup1Input(p), derivedKeySize)
	if derr != nil {
		return pool{}, derr
	}
	defer zero(material)

	var prng ctrprng.Generator
	if ierr := prng.Init(material[:ctrprng.KeySize], material[ctrprng.KeySize:]); ierr != nil {
		return pool{}, ierr
	}
	defer prng.Zero()

	return buildPool(&prng, p.Pool, p.Radix), nil
}

// deriveSequence derives SETUP-2 key material from masterKey, p, and
// tweak, zeroing the nonce's last two bytes before seeding the PRNG
// (domain-separating this stream from the pool's, per spec.md §4.4),
// then builds the round sequence from it. See recoverAlloc for why this
// can return ErrAllocFailure.
func deriveSequence(masterKey []byte, p Params, tweak []byte) (seq []uint32, err error) {
	defer recoverAlloc(&err)

	material, derr := kdf.Derive(masterKey, buildSetup2Input(p, tweak), derivedKeySize)
	if derr != nil {
		return nil, derr
	}
	defer zero(material)

	nonce := make([]byte, ctrprng.BlockSize)
	copy(nonce, material[ctrprng.KeySize:])
	nonce[ctrprng.BlockSize-1] = 0
	nonce[ctrprng.BlockSize-2] = 0
	defer zero(nonce)

	var prng ctrprng.Generator
	if ierr := prng.Init(material[:ctrprng.KeySize], nonce); ierr != nil {
		return nil, ierr
	}
	defer prng.Zero()

	return buildSequence(&prng, p.Layers, p.Pool), nil
}

// zero overwrites b with zero bytes. Used on every buffer that ever
// held key material before it goes out of scope.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
