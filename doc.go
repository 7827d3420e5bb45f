// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecc implements a parametric prime-field and elliptic-curve
engine in pure Go.

The package is generic over a curve descriptor rather than hard-coded
to a single curve: a FieldParams bundles a prime modulus, and a
CurveSpec bundles a FieldParams together with the short Weierstrass
coefficients, base point, and group order. The secp256k1 subpackage
supplies the concrete parameters used by Bitcoin; any other short
Weierstrass curve over a prime field can be described the same way by
constructing its own CurveSpec.

An overview of the features provided by this package are as follows:

  - Modular arithmetic over an arbitrary prime field (FieldElement)
  - Modular square roots via Tonelli-Shanks, with fast paths for
    primes congruent to 3 mod 4 and 5 mod 8
  - Affine elliptic curve point arithmetic: addition, doubling, and
    scalar multiplication reduced modulo the group order
  - SEC point encoding and parsing, both compressed and uncompressed
  - ECDSA signature generation with deterministic nonces (RFC 6979)
    and verification
  - DER signature encoding
  - Bitcoin-style Base58Check address and WIF private key encoding

Sub packages are provided for a concrete instantiation of the engine
for the secp256k1 curve (package secp256k1) and for BIP0032
hierarchical deterministic key derivation built on top of it (package
ecckd).

This package does not implement any side-channel hardening. All
arithmetic is expressed with math/big, which is not constant time, and
scalar multiplication is a plain double-and-add. A hardened variant
would use Montgomery or Barrett reduction and a constant-time ladder.
*/
package ecc
