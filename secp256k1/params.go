// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package secp256k1 instantiates the generic ecc engine with the concrete
// parameters of the secp256k1 curve used by Bitcoin and Decred.
//
// References:
//
//	[SECG]: Recommended Elliptic Curve Domain Parameters
//	  https://www.secg.org/sec2-v2.pdf
package secp256k1

import (
	"math/big"
	"sync"

	"github.com/ModChain/ecc"
)

// ByteLen is the serialized width, in bytes, of field elements, scalars,
// and SEC coordinates for secp256k1 (256 bits).
const ByteLen = 32

// fromHex converts a hex string into a big.Int and panics on malformed
// input. It is only ever called with hard-coded constants below, so a
// panic here can only mean a mistake in this source file.
func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: invalid hex constant: " + s)
	}
	return v
}

var (
	fieldPrime = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	curveA     = big.NewInt(0)
	curveB     = big.NewInt(7)
	genX       = fromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	genY       = fromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
	groupOrder = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
)

var (
	curveOnce sync.Once
	curve     *ecc.CurveSpec
)

// S256 returns the secp256k1 CurveSpec, building it on first use. The
// build, including validating the base point against the curve equation,
// happens at most once and is safe for concurrent use, matching the
// process-wide lazy curve constants described by the engine's design notes.
func S256() *ecc.CurveSpec {
	curveOnce.Do(func() {
		field := ecc.NewFieldParams(fieldPrime, ByteLen)
		curve = ecc.NewCurveSpec(field, curveA, curveB, genX, genY, groupOrder, ByteLen)
		curve.G() // force validation of G on first use
	})
	return curve
}
