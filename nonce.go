// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
)

// deterministicK derives the per-signature nonce k for a given private
// scalar and message hash z, following the RFC6979-flavored recipe in
// spec.md section 4.F.
//
// This deliberately does not implement strict RFC6979. Two points of
// departure are called out in spec.md and preserved bit-for-bit so this
// engine produces identical signatures to the reference it was built
// against:
//
//  1. z is reduced by subtracting n at most once when z >= n, rather than
//     via bits2int followed by a full modular reduction. This is only
//     equivalent to strict bits2int+mod when z < 2n, which always holds for
//     a SHA-256 digest reduced against the secp256k1 order, but would
//     diverge for a curve whose order is much smaller than a SHA-256
//     output.
//  2. The HMAC update in step 5 repeats the full "secret || z" suffix with
//     a 0x01 marker byte, where strict RFC6979 updates with V || 0x01 alone
//     (the suffix is only used once, during the initial K/V seeding).
//
// See DESIGN.md for why reference-compatibility was chosen over strict
// conformance.
func deterministicK(curve *CurveSpec, secret, z *big.Int) *big.Int {
	n := curve.N
	rolen := curve.ByteLen

	zz := new(big.Int).Set(z)
	if zz.Cmp(n) >= 0 {
		zz.Sub(zz, n)
	}

	secretBytes := make([]byte, rolen)
	secret.FillBytes(secretBytes)
	zBytes := make([]byte, rolen)
	zz.FillBytes(zBytes)

	v := make([]byte, rolen)
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, rolen)

	hmacSum := func(key, msg []byte) []byte {
		mac := hmac.New(sha256.New, key)
		mac.Write(msg)
		return mac.Sum(nil)
	}

	k = hmacSum(k, concat(v, []byte{0x00}, secretBytes, zBytes))
	v = hmacSum(k, v)
	k = hmacSum(k, concat(v, []byte{0x01}, secretBytes, zBytes))
	v = hmacSum(k, v)

	one := big.NewInt(1)
	for {
		v = hmacSum(k, v)
		t := truncateToLen(v, rolen)
		candidate := new(big.Int).SetBytes(t)
		if candidate.Cmp(one) >= 0 && candidate.Cmp(n) < 0 {
			return candidate
		}
		k = hmacSum(k, concat(v, []byte{0x00}))
		v = hmacSum(k, v)
	}
}

// concat joins byte slices without mutating any of them.
func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// truncateToLen returns v as exactly length bytes: a longer v keeps its
// leftmost (most significant) length bytes, and a shorter v is zero-padded
// on the left.
func truncateToLen(v []byte, length int) []byte {
	if len(v) == length {
		return v
	}
	if len(v) > length {
		return v[:length]
	}
	out := make([]byte, length)
	copy(out[length-len(v):], v)
	return out
}
