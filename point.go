// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"fmt"
	"math/big"
	"sync"
)

// CurveSpec bundles the parameters of a short Weierstrass curve
// y^2 = x^3 + Ax + B over the prime field described by Field: the
// coefficients, the base point G, and the prime group order N. One
// CurveSpec is constructed per curve and is immutable thereafter; G is
// computed lazily (it is validated to lie on the curve at that point) and
// at most once, matching the process-wide lazy curve constants described in
// spec.md section 5.
type CurveSpec struct {
	Field   *FieldParams
	A, B    *FieldElement
	N       *big.Int // prime order of G
	ByteLen int       // serialized width for points, signatures, and scalars

	gx, gy *big.Int
	gOnce  sync.Once
	g      *Point
}

// NewCurveSpec constructs a curve descriptor. gx, gy are the affine
// coordinates of the base point; they are not validated until G() is first
// called.
func NewCurveSpec(field *FieldParams, a, b *big.Int, gx, gy, n *big.Int, byteLen int) *CurveSpec {
	return &CurveSpec{
		Field:   field,
		A:       field.Element(a),
		B:       field.Element(b),
		N:       new(big.Int).Set(n),
		ByteLen: byteLen,
		gx:      new(big.Int).Set(gx),
		gy:      new(big.Int).Set(gy),
	}
}

// G returns the curve's base point, computing and validating it on first
// use. The computation is thread-safe and performed at most once.
func (c *CurveSpec) G() *Point {
	c.gOnce.Do(func() {
		p, err := c.PointFromValues(c.gx, c.gy)
		if err != nil {
			panic(fmt.Sprintf("ecc: curve base point is off curve: %v", err))
		}
		c.g = p
	})
	return c.g
}

// Infinity returns the point at infinity (the group identity) for this
// curve.
func (c *CurveSpec) Infinity() *Point {
	return &Point{curve: c}
}

// NewPoint constructs a point from an optional pair of field elements. Both
// x and y must be nil (yielding the point at infinity) or both non-nil
// (yielding a finite point, which is rejected with ErrOffCurve if it does
// not satisfy the curve equation). Passing exactly one of x, y non-nil is
// rejected with ErrMixedInfinity.
func (c *CurveSpec) NewPoint(x, y *FieldElement) (*Point, error) {
	if x == nil && y == nil {
		return c.Infinity(), nil
	}
	if x == nil || y == nil {
		return nil, makeError(ErrMixedInfinity,
			"point must have both coordinates present or both absent")
	}
	if !c.satisfies(x, y) {
		return nil, makeError(ErrOffCurve,
			fmt.Sprintf("point (%s, %s) is not on the curve", x, y))
	}
	return &Point{curve: c, x: x, y: y}, nil
}

// PointFromValues wraps a pair of big.Int coordinates into field elements
// and constructs the corresponding point, per the same rules as NewPoint.
func (c *CurveSpec) PointFromValues(x, y *big.Int) (*Point, error) {
	return c.NewPoint(c.Field.Element(x), c.Field.Element(y))
}

// satisfies reports whether y^2 == x^3 + Ax + B (mod p).
func (c *CurveSpec) satisfies(x, y *FieldElement) bool {
	lhs := y.Mul(y)
	rhs := x.Mul(x).Mul(x).Add(c.A.Mul(x)).Add(c.B)
	return lhs.Equal(rhs)
}

// Point is an affine point on a CurveSpec: either the point at infinity
// (x == nil && y == nil) or a finite pair of coordinates known to satisfy
// the curve equation. Points are value types and are freely copied.
type Point struct {
	curve *CurveSpec
	x, y  *FieldElement
}

// Curve returns the curve this point belongs to.
func (p *Point) Curve() *CurveSpec {
	return p.curve
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.x == nil || p.y == nil
}

// X returns the point's x coordinate. It returns nil for the point at
// infinity; callers should check IsInfinity first.
func (p *Point) X() *FieldElement {
	return p.x
}

// Y returns the point's y coordinate. It returns nil for the point at
// infinity; callers should check IsInfinity first.
func (p *Point) Y() *FieldElement {
	return p.y
}

// Equal reports whether p and other represent the same point on the same
// curve.
func (p *Point) Equal(other *Point) bool {
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() == other.IsInfinity()
	}
	return p.x.Equal(other.x) && p.y.Equal(other.y)
}

// Add computes the group law sum of p and q on their shared curve, following
// the four cases in spec.md section 4.D:
//  1. either operand is the identity: return the other
//  2. same x, different y: the points are inverses, return infinity
//  3. distinct points: the ordinary chord slope formula
//  4. doubling: the tangent slope formula, or infinity when y == 0
func (p *Point) Add(q *Point) *Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	if p.x.Equal(q.x) {
		if !p.y.Equal(q.y) {
			return p.curve.Infinity()
		}
		// p == q: doubling.
		if p.y.IsZero() {
			return p.curve.Infinity()
		}
		field := p.curve.Field
		three := field.Element(big.NewInt(3))
		two := field.Element(big.NewInt(2))
		num := three.Mul(p.x).Mul(p.x).Add(p.curve.A)
		den := two.Mul(p.y)
		s := num.Div(den)
		x3 := s.Mul(s).Sub(p.x).Sub(p.x)
		y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
		return &Point{curve: p.curve, x: x3, y: y3}
	}

	// p != q, distinct x coordinates: the ordinary chord.
	s := q.y.Sub(p.y).Div(q.x.Sub(p.x))
	x3 := s.Mul(s).Sub(p.x).Sub(q.x)
	y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
	return &Point{curve: p.curve, x: x3, y: y3}
}

// Mul computes scalar*p using double-and-add, iterating the bits of
// (scalar mod n) from least to most significant. Reducing modulo n first is
// mandatory: n*G is the identity and callers may legitimately pass scalars
// greater than or equal to n (e.g. during ECDSA verification). A scalar of
// zero returns the point at infinity.
func (p *Point) Mul(scalar *big.Int) *Point {
	k := new(big.Int).Mod(scalar, p.curve.N)
	result := p.curve.Infinity()
	current := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = result.Add(current)
		}
		current = current.Add(current)
	}
	return result
}

// SEC encodes the point in SEC1 format: the uncompressed form is
// 0x04 || X || Y, the compressed form is (0x02 or 0x03, by parity of Y)
// || X, both using the curve's declared byte width per coordinate.
func (p *Point) SEC(compressed bool) []byte {
	if p.IsInfinity() {
		// The point at infinity has no standard SEC encoding; callers should
		// never attempt to serialize it. Returning a single zero byte makes
		// the failure visible rather than silently truncating.
		return []byte{0x00}
	}
	xBytes := p.x.Bytes()
	if compressed {
		prefix := byte(0x02)
		if p.y.IsOdd() {
			prefix = 0x03
		}
		out := make([]byte, 0, 1+len(xBytes))
		out = append(out, prefix)
		out = append(out, xBytes...)
		return out
	}
	yBytes := p.y.Bytes()
	out := make([]byte, 0, 1+len(xBytes)+len(yBytes))
	out = append(out, 0x04)
	out = append(out, xBytes...)
	out = append(out, yBytes...)
	return out
}

// ParseSEC parses a SEC1-encoded public key, rejecting any prefix byte
// other than 0x02, 0x03, or 0x04 and any length mismatch for that prefix.
// For a compressed key, the two candidate square roots of x^3+Ax+B are
// disambiguated by parity against the prefix.
func (c *CurveSpec) ParseSEC(bin []byte) (*Point, error) {
	if len(bin) == 0 {
		return nil, makeError(ErrInvalidSec, "empty SEC-encoded point")
	}
	coordLen := c.ByteLen
	switch bin[0] {
	case 0x04:
		if len(bin) != 1+2*coordLen {
			return nil, makeError(ErrInvalidSec,
				fmt.Sprintf("uncompressed SEC point must be %d bytes, got %d",
					1+2*coordLen, len(bin)))
		}
		x := new(big.Int).SetBytes(bin[1 : 1+coordLen])
		y := new(big.Int).SetBytes(bin[1+coordLen : 1+2*coordLen])
		return c.PointFromValues(x, y)
	case 0x02, 0x03:
		if len(bin) != 1+coordLen {
			return nil, makeError(ErrInvalidSec,
				fmt.Sprintf("compressed SEC point must be %d bytes, got %d",
					1+coordLen, len(bin)))
		}
		xInt := new(big.Int).SetBytes(bin[1:])
		x := c.Field.Element(xInt)
		rhs := x.Mul(x).Mul(x).Add(c.A.Mul(x)).Add(c.B)
		beta := rhs.Sqrt()

		var evenBeta, oddBeta *FieldElement
		if beta.IsOdd() {
			oddBeta = beta
			evenBeta = c.Field.Element(new(big.Int).Sub(c.Field.P, beta.Num()))
		} else {
			evenBeta = beta
			oddBeta = c.Field.Element(new(big.Int).Sub(c.Field.P, beta.Num()))
		}

		y := evenBeta
		if bin[0] == 0x03 {
			y = oddBeta
		}
		return c.NewPoint(x, y)
	default:
		return nil, makeError(ErrInvalidSec,
			fmt.Sprintf("unsupported SEC prefix byte 0x%02x", bin[0]))
	}
}

// Verify checks an ECDSA signature (r, s) against the message hash z, using
// p as the signer's public key, per spec.md section 4.D:
//
//	s_inv = s^(n-2) mod n
//	u = z*s_inv mod n, v = r*s_inv mod n
//	R = u*G + v*P
//	accept iff R is not infinity and R.x mod n == r
func (p *Point) Verify(z *big.Int, sig *Signature) bool {
	n := p.curve.N
	sInv := new(big.Int).Exp(sig.S, new(big.Int).Sub(n, big.NewInt(2)), n)

	u := new(big.Int).Mul(z, sInv)
	u.Mod(u, n)
	v := new(big.Int).Mul(sig.R, sInv)
	v.Mod(v, n)

	uG := p.curve.G().Mul(u)
	vP := p.Mul(v)
	r := uG.Add(vP)
	if r.IsInfinity() {
		return false
	}

	rx := new(big.Int).Mod(r.x.Num(), n)
	return rx.Cmp(sig.R) == 0
}

// Hash160 returns RIPEMD-160(SHA-256(SEC(p, compressed))), the same digest
// Bitcoin uses to build P2PKH addresses.
func (p *Point) Hash160(compressed bool) []byte {
	return Hash160(p.SEC(compressed))
}

// Address returns the Base58Check-encoded P2PKH address for this point,
// using version byte 0x00 for mainnet or 0x6f for testnet.
func (p *Point) Address(compressed, testnet bool) string {
	version := byte(0x00)
	if testnet {
		version = 0x6f
	}
	payload := append([]byte{version}, p.Hash160(compressed)...)
	return Base58CheckEncode(payload)
}
