// Copyright (c) 2026 OpenFPE Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package kdf implements an arbitrary-length PRF/KDF on top of AES-CMAC.
//
// Output is produced by iterating AES-CMAC over a 32-bit big-endian
// counter concatenated with the caller's input, concatenating successive
// 16-byte tags until enough bytes have been produced. This is the same
// counter-mode expansion idiom as NIST SP 800-108's counter-mode KDF,
// just without SP 800-108's label/context/length framing — callers that
// want domain separation encode it into input themselves.
package kdf

import (
	"crypto/aes"
	"encoding/binary"
	"fmt"

	"github.com/aead/cmac"
)

// blockSize is the AES-CMAC tag size in bytes.
const blockSize = 16

// Derive fills a buffer of outLen bytes derived from masterKey (a 16-byte
// AES-128 key) and input. For counter c starting at 0, each 16-byte block
// is AES-CMAC(masterKey, be32(c) || input); the final block is truncated
// to fit.
func Derive(masterKey, input []byte, outLen int) ([]byte, error) {
	if outLen <= 0 {
		return nil, fmt.Errorf("kdf: outLen must be positive, got %d", outLen)
	}

	block, err := aes.NewCipher(masterKey)
	if err != nil {
		return nil, fmt.Errorf("kdf: %w", err)
	}

	mac, err := cmac.New(block)
	if err != nil {
		return nil, fmt.Errorf("kdf: %w", err)
	}

	out := make([]byte, 0, outLen)
	counterInput := make([]byte, 4+len(input))
	copy(counterInput[4:], input)

	for counter := uint32(0); len(out) < outLen; counter++ {
		binary.BigEndian.PutUint32(counterInput[:4], counter)

		mac.Reset()
		if _, err := mac.Write(counterInput); err != nil {
			return nil, fmt.Errorf("kdf: %w", err)
		}
		tag := mac.Sum(nil)

		remaining := outLen - len(out)
		if remaining < blockSize {
			tag = tag[:remaining]
		}
		out = append(out, tag...)
	}

	return out, nil
}
