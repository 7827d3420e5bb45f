// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"
	"testing"
)

// newSmallCurve builds y^2 = x^3 + 7 over F_223, the example curve used
// throughout spec.md section 8's small-prime tests. N is set larger than
// any scalar exercised here, so Mod-by-N in Mul is a no-op and results can
// be checked directly against repeated Add.
func newSmallCurve() *CurveSpec {
	field := NewFieldParams(big.NewInt(223), 1)
	return NewCurveSpec(field, big.NewInt(0), big.NewInt(7), big.NewInt(192), big.NewInt(105), big.NewInt(10007), 1)
}

// pointOrder computes the order of g by repeated addition until the point
// at infinity is reached. It is only ever called with the tiny test curve's
// generator, where this is cheap.
func pointOrder(g *Point) *big.Int {
	cur := g
	order := int64(1)
	for !cur.Add(g).IsInfinity() {
		cur = cur.Add(g)
		order++
	}
	return big.NewInt(order + 1)
}

// newSmallCurveForSigning builds the same curve equation as newSmallCurve but
// with generator (15, 86) and N set to that generator's actual order (7).
// ECDSA's modular-inverse arithmetic needs N to be a prime order; the order
// of newSmallCurve's generator (192, 105) is 42, which is not prime.
func newSmallCurveForSigning() *CurveSpec {
	field := NewFieldParams(big.NewInt(223), 1)
	probe := NewCurveSpec(field, big.NewInt(0), big.NewInt(7), big.NewInt(15), big.NewInt(86), big.NewInt(10007), 1)
	n := pointOrder(probe.G())
	return NewCurveSpec(field, big.NewInt(0), big.NewInt(7), big.NewInt(15), big.NewInt(86), n, 1)
}

func TestPointOffCurveRejected(t *testing.T) {
	c := newSmallCurve()
	if _, err := c.PointFromValues(big.NewInt(200), big.NewInt(119)); err == nil {
		t.Fatalf("expected off-curve point to be rejected")
	}
}

func TestPointIdentityLaw(t *testing.T) {
	c := newSmallCurve()
	g := c.G()
	inf := c.Infinity()

	if !g.Add(inf).Equal(g) {
		t.Errorf("P + infinity != P")
	}
	if !inf.Add(g).Equal(g) {
		t.Errorf("infinity + P != P")
	}
	if !inf.Add(inf).IsInfinity() {
		t.Errorf("infinity + infinity should be infinity")
	}
}

func TestPointDoublingMatchesAddingSelf(t *testing.T) {
	c := newSmallCurve()
	g := c.G()
	doubled := g.Add(g)
	viaMul := g.Mul(big.NewInt(2))
	if !doubled.Equal(viaMul) {
		t.Errorf("G+G != 2*G: (%s,%s) vs (%s,%s)", doubled.X(), doubled.Y(), viaMul.X(), viaMul.Y())
	}
}

func TestPointAdditionCommutesAndAssociates(t *testing.T) {
	c := newSmallCurve()
	g := c.G()
	p := g.Mul(big.NewInt(2))
	q := g.Mul(big.NewInt(3))
	r := g.Mul(big.NewInt(5))

	if !p.Add(q).Equal(q.Add(p)) {
		t.Errorf("P+Q != Q+P")
	}
	lhs := p.Add(q).Add(r)
	rhs := p.Add(q.Add(r))
	if !lhs.Equal(rhs) {
		t.Errorf("(P+Q)+R != P+(Q+R)")
	}
}

func TestPointScalarMultMatchesRepeatedAdd(t *testing.T) {
	c := newSmallCurve()
	g := c.G()
	sum := c.Infinity()
	for i := 0; i < 7; i++ {
		sum = sum.Add(g)
	}
	if !sum.Equal(g.Mul(big.NewInt(7))) {
		t.Errorf("7*G via Mul does not match 7 repeated additions")
	}
}

func TestPointSECRoundTrip(t *testing.T) {
	c := newSmallCurve()
	g := c.G()

	for _, compressed := range []bool{true, false} {
		sec := g.SEC(compressed)
		parsed, err := c.ParseSEC(sec)
		if err != nil {
			t.Fatalf("ParseSEC(compressed=%v): %v", compressed, err)
		}
		if !parsed.Equal(g) {
			t.Errorf("ParseSEC(SEC(G, compressed=%v)) != G", compressed)
		}
	}
}

func TestPointVerifyRejectsMutatedSignature(t *testing.T) {
	c := newSmallCurveForSigning()
	priv, err := c.NewPrivateKey(big.NewInt(5))
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	z := big.NewInt(42)
	sig := priv.Sign(z)
	if !priv.Point().Verify(z, sig) {
		t.Fatalf("Verify rejected a freshly produced signature")
	}

	mutated := NewSignature(new(big.Int).Add(sig.R, big.NewInt(1)), sig.S)
	if priv.Point().Verify(z, mutated) {
		t.Errorf("Verify accepted a signature with a mutated R")
	}
}
