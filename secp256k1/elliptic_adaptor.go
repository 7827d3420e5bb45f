// Copyright 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/elliptic"
	"math/big"

	"github.com/ModChain/ecc"
)

// ellipticCurve adapts the secp256k1 CurveSpec to the standard library's
// crypto/elliptic.Curve interface, so this package interoperates with other
// standard library consumers such as crypto/ecdsa and crypto/tls. It is
// purely an ambient compatibility shim over the affine Point/CurveSpec
// primitives; it is not used internally by Sign/Verify, which call the
// ecc package directly.
type ellipticCurve struct {
	params *elliptic.CurveParams
}

var ellipticAdaptor = &ellipticCurve{
	params: &elliptic.CurveParams{
		P:       fieldPrime,
		N:       groupOrder,
		B:       curveB,
		Gx:      genX,
		Gy:      genY,
		BitSize: ByteLen * 8,
		Name:    "secp256k1",
	},
}

// EllipticCurve returns a crypto/elliptic.Curve implementation of
// secp256k1, suitable for use with crypto/ecdsa.GenerateKey and similar
// standard library APIs.
func EllipticCurve() elliptic.Curve {
	return ellipticAdaptor
}

func (c *ellipticCurve) Params() *elliptic.CurveParams {
	return c.params
}

// IsOnCurve reports whether (x, y) satisfies y^2 = x^3 + 7 (mod p). This
// differs from the generic crypto/elliptic algorithm since secp256k1 has
// a = 0, not -3.
func (c *ellipticCurve) IsOnCurve(x, y *big.Int) bool {
	_, err := S256().PointFromValues(x, y)
	return err == nil
}

func (c *ellipticCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p1 := mustAffinePoint(x1, y1)
	p2 := mustAffinePoint(x2, y2)
	return pointToBigAffine(p1.Add(p2))
}

func (c *ellipticCurve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	p := mustAffinePoint(x1, y1)
	return pointToBigAffine(p.Add(p))
}

func (c *ellipticCurve) ScalarMult(x1, y1 *big.Int, k []byte) (*big.Int, *big.Int) {
	p := mustAffinePoint(x1, y1)
	scalar := new(big.Int).SetBytes(k)
	return pointToBigAffine(p.Mul(scalar))
}

func (c *ellipticCurve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	scalar := new(big.Int).SetBytes(k)
	return pointToBigAffine(S256().G().Mul(scalar))
}

// mustAffinePoint constructs a point from (x, y), treating (0, 0) as the
// point at infinity per the crypto/elliptic.Curve convention. It panics on
// an off-curve pair, which should never happen for coordinates that
// originated from this same curve.
func mustAffinePoint(x, y *big.Int) *ecc.Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return S256().Infinity()
	}
	p, err := S256().PointFromValues(x, y)
	if err != nil {
		panic("secp256k1: elliptic adaptor received an off-curve point: " + err.Error())
	}
	return p
}

func pointToBigAffine(p *ecc.Point) (*big.Int, *big.Int) {
	if p.IsInfinity() {
		return new(big.Int), new(big.Int)
	}
	return p.X().Num(), p.Y().Num()
}
