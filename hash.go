// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/ripemd160"
)

// chainedHash applies h once, then chains rounds-1 more applications of h
// into themselves, and finally applies f once to the result. This is the Go
// realization of spec.md's generic ChainedHash<R, H, F>: rather than a
// generic type parameterized over digest constructors (Go's type system
// does not make that pleasant for crypto/sha256-shaped APIs), it is a plain
// function over hash.Hash factories, which is how the teacher's sibling
// ecckd package composes SHA-256 and RIPEMD-160 in practice.
func chainedHash(rounds int, h, f func() hash.Hash) func([]byte) []byte {
	return func(data []byte) []byte {
		hasher := h()
		hasher.Write(data)
		result := hasher.Sum(nil)
		for i := 1; i < rounds; i++ {
			hasher.Reset()
			hasher.Write(result)
			result = hasher.Sum(nil)
		}
		finalizer := f()
		finalizer.Write(result)
		return finalizer.Sum(nil)
	}
}

var (
	hash256Fn = chainedHash(1, sha256.New, sha256.New)
	hash160Fn = chainedHash(1, sha256.New, func() hash.Hash { return ripemd160.New() })
)

// Hash256 returns SHA-256(SHA-256(data)), the double hash used throughout
// the Bitcoin serialization formats (Base58Check's checksum, transaction
// and block hashing).
func Hash256(data []byte) []byte {
	return hash256Fn(data)
}

// Hash160 returns RIPEMD-160(SHA-256(data)), the digest used to derive
// Bitcoin P2PKH addresses from a public key's SEC encoding.
func Hash160(data []byte) []byte {
	return hash160Fn(data)
}
