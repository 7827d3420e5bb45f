// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"
	"testing"
)

// smallField is the spec.md example curve's field, p = 223, used to
// exercise the generic engine against a prime small enough to brute-force
// check by hand.
var smallField = NewFieldParams(big.NewInt(223), 1)

func TestFieldArithmeticProperties(t *testing.T) {
	p := smallField.P
	for a := int64(0); a < 20; a++ {
		for b := int64(0); b < 20; b++ {
			fa := smallField.Element(big.NewInt(a))
			fb := smallField.Element(big.NewInt(b))

			if got, want := fa.Add(fb).Num(), new(big.Int).Mod(new(big.Int).Add(big.NewInt(a), big.NewInt(b)), p); got.Cmp(want) != 0 {
				t.Fatalf("Add(%d,%d) = %s, want %s", a, b, got, want)
			}
			if !fa.Add(fb).Equal(fb.Add(fa)) {
				t.Fatalf("Add(%d,%d) is not commutative", a, b)
			}
			if got, want := fa.Mul(fb).Num(), new(big.Int).Mod(new(big.Int).Mul(big.NewInt(a), big.NewInt(b)), p); got.Cmp(want) != 0 {
				t.Fatalf("Mul(%d,%d) = %s, want %s", a, b, got, want)
			}
			if !fa.Mul(fb).Equal(fb.Mul(fa)) {
				t.Fatalf("Mul(%d,%d) is not commutative", a, b)
			}
		}
	}
}

func TestFieldDistributivity(t *testing.T) {
	p := smallField
	for a := int64(0); a < 15; a++ {
		for b := int64(0); b < 15; b++ {
			for c := int64(0); c < 15; c++ {
				fa := p.Element(big.NewInt(a))
				fb := p.Element(big.NewInt(b))
				fc := p.Element(big.NewInt(c))

				lhs := fa.Mul(fb.Add(fc))
				rhs := fa.Mul(fb).Add(fa.Mul(fc))
				if !lhs.Equal(rhs) {
					t.Fatalf("a*(b+c) != a*b+a*c for a=%d b=%d c=%d", a, b, c)
				}
			}
		}
	}
}

func TestFieldDivIsMulInverse(t *testing.T) {
	for a := int64(1); a < 223; a++ {
		fa := smallField.Element(big.NewInt(a))
		one := smallField.One()
		if !fa.Div(fa).Equal(one) {
			t.Fatalf("a/a != 1 for a=%d", a)
		}
	}
}

func TestFieldDivByZeroIsZero(t *testing.T) {
	a := smallField.Element(big.NewInt(5))
	zero := smallField.Zero()
	if !a.Div(zero).Equal(zero) {
		t.Errorf("division by zero should return zero per the documented reference behavior")
	}
}

func TestFieldPowNegativeExponent(t *testing.T) {
	a := smallField.Element(big.NewInt(7))
	inv := a.Pow(big.NewInt(1), true)
	if !a.Mul(inv).Equal(smallField.One()) {
		t.Errorf("a * a^-1 != 1")
	}
}

func TestFieldBytesRoundTrip(t *testing.T) {
	secpField := NewFieldParams(bigFromHexForTest("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"), 32)
	e := secpField.Element(big.NewInt(123456789))
	b := e.Bytes()
	if len(b) != 32 {
		t.Fatalf("Bytes() length = %d, want 32", len(b))
	}
	got := secpField.Element(new(big.Int).SetBytes(b))
	if !got.Equal(e) {
		t.Errorf("round trip through Bytes() changed the value")
	}
}

func bigFromHexForTest(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("bad hex constant: " + s)
	}
	return v
}
