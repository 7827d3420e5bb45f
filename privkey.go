// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"fmt"
	"math/big"
)

// PrivateKey owns a scalar secret in [1, n-1] and the public point it
// derives, computed once at construction. The scalar is exposed only via
// explicit serialization (WIF) and the Secret accessor; everything else in
// this package operates on the cached public Point.
type PrivateKey struct {
	curve  *CurveSpec
	secret *big.Int
	point  *Point
}

// NewPrivateKey constructs a private key from a scalar, rejecting any value
// outside [1, n-1].
func (c *CurveSpec) NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	if secret.Sign() <= 0 || secret.Cmp(c.N) >= 0 {
		return nil, makeError(ErrInvalidPrivateKey,
			fmt.Sprintf("private key scalar %s is outside [1, n-1]", secret.Text(16)))
	}
	return &PrivateKey{
		curve:  c,
		secret: new(big.Int).Set(secret),
		point:  c.G().Mul(secret),
	}, nil
}

// Point returns the public point secret*G associated with this key.
func (p *PrivateKey) Point() *Point {
	return p.point
}

// Secret returns a copy of the private scalar. Callers should treat this
// value as sensitive; it exists for interop with other ECDSA-shaped APIs,
// not for casual use.
func (p *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(p.secret)
}

// Sign produces a deterministic ECDSA signature over message hash z,
// following spec.md section 4.F:
//  1. k = deterministic_k(z) via RFC6979 (see nonce.go)
//  2. r = (k*G).x mod n
//  3. k_inv = k^(n-2) mod n
//  4. s = (z + r*secret) * k_inv mod n
//  5. low-s normalization: if s > n/2, replace s with n - s
//
// The reference does not retry when r happens to be zero (astronomically
// unlikely for a cryptographically-sized curve); callers who need that
// guarantee should re-sign with a perturbed z.
func (p *PrivateKey) Sign(z *big.Int) *Signature {
	n := p.curve.N

	k := deterministicK(p.curve, p.secret, z)
	kG := p.curve.G().Mul(k)
	r := new(big.Int).Mod(kG.X().Num(), n)

	kInv := new(big.Int).Exp(k, new(big.Int).Sub(n, big.NewInt(2)), n)

	s := new(big.Int).Mul(r, p.secret)
	s.Add(s, z)
	s.Mul(s, kInv)
	s.Mod(s, n)

	half := new(big.Int).Rsh(n, 1)
	if s.Cmp(half) > 0 {
		s.Sub(n, s)
	}

	return &Signature{R: r, S: s}
}

// Hash160 returns the hash160 of this key's public point, per its SEC
// encoding at the requested compression.
func (p *PrivateKey) Hash160(compressed bool) []byte {
	return p.point.Hash160(compressed)
}

// Address returns the Base58Check P2PKH address for this key's public
// point.
func (p *PrivateKey) Address(compressed, testnet bool) string {
	return p.point.Address(compressed, testnet)
}

// WIF returns the Wallet Import Format encoding of this private key:
// Base58Check(version || secret_be(ByteLen) || (0x01 if compressed)),
// version 0x80 for mainnet or 0xef for testnet.
func (p *PrivateKey) WIF(compressed, testnet bool) string {
	version := byte(0x80)
	if testnet {
		version = 0xef
	}
	secretBytes := make([]byte, p.curve.ByteLen)
	p.secret.FillBytes(secretBytes)

	payload := make([]byte, 0, 1+len(secretBytes)+1)
	payload = append(payload, version)
	payload = append(payload, secretBytes...)
	if compressed {
		payload = append(payload, 0x01)
	}
	return Base58CheckEncode(payload)
}
