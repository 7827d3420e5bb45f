// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import "math/big"

// sqrt3Mod4 computes self^((p+1)/4) mod p, which is a square root of self
// whenever p is congruent to 3 mod 4 (the case used by secp256k1). This is
// the cheapest of the three strategies since it requires a single modular
// exponentiation.
func (f *FieldElement) sqrt3Mod4() *FieldElement {
	exp := new(big.Int).Add(f.params.P, big.NewInt(1))
	exp.Rsh(exp, 2)
	res := new(big.Int).Exp(f.num, exp, f.params.P)
	return &FieldElement{params: f.params, num: res}
}

// sqrt5Mod8 computes a square root of self when p is congruent to 5 mod 8,
// using self^((p+3)/8) with the standard correction step: if squaring the
// candidate does not reproduce self, multiply by a known square root of -1
// (2^((p-1)/4)) to obtain the correct root.
func (f *FieldElement) sqrt5Mod8() *FieldElement {
	p := f.params.P
	exp := new(big.Int).Add(p, big.NewInt(3))
	exp.Rsh(exp, 3)
	candidate := new(big.Int).Exp(f.num, exp, p)

	check := new(big.Int).Mul(candidate, candidate)
	check.Mod(check, p)
	if check.Cmp(f.num) == 0 {
		return &FieldElement{params: f.params, num: candidate}
	}

	sqrtMinus1Exp := new(big.Int).Sub(p, big.NewInt(1))
	sqrtMinus1Exp.Rsh(sqrtMinus1Exp, 2)
	sqrtMinus1 := new(big.Int).Exp(big.NewInt(2), sqrtMinus1Exp, p)

	res := new(big.Int).Mul(candidate, sqrtMinus1)
	res.Mod(res, p)
	return &FieldElement{params: f.params, num: res}
}

// sqrtTonelliShanks implements the general Tonelli-Shanks algorithm,
// following the recipe in spec.md section 4.C:
//
//	p - 1 = q * 2^s, q odd, z a fixed quadratic non-residue
//	m = s, c = z^q, t = x^q, r = x^((q+1)/2)
//	while t != 1:
//	  find smallest i > 0 with t^(2^i) == 1
//	  b = c^(2^(m-i-1)); r = r*b; c = b^2; t = t*c; m = i
//	return r
func (f *FieldElement) sqrtTonelliShanks() *FieldElement {
	p := f.params.P
	q := f.params.tsQ
	m := f.params.tsS
	c := new(big.Int).Exp(f.params.tsZ, q, p)

	t := new(big.Int).Exp(f.num, q, p)

	rExp := new(big.Int).Add(q, big.NewInt(1))
	rExp.Rsh(rExp, 1)
	r := new(big.Int).Exp(f.num, rExp, p)

	one := big.NewInt(1)
	for t.Cmp(one) != 0 {
		// Find the smallest i > 0 with t^(2^i) == 1 (mod p). No such i < m
		// exists when f is zero or not a quadratic residue; r is then
		// returned as is (0 for f == 0, a value that does not square back
		// to f otherwise).
		i := 0
		tt := new(big.Int).Set(t)
		for tt.Cmp(one) != 0 && i < m {
			tt.Mul(tt, tt)
			tt.Mod(tt, p)
			i++
		}
		if i == m {
			break
		}

		// b = c^(2^(m-i-1)) mod p
		bExp := new(big.Int).Lsh(one, uint(m-i-1))
		b := new(big.Int).Exp(c, bExp, p)

		r.Mul(r, b)
		r.Mod(r, p)
		c.Mul(b, b)
		c.Mod(c, p)
		t.Mul(t, c)
		t.Mod(t, p)
		m = i
	}

	return &FieldElement{params: f.params, num: new(big.Int).Set(r)}
}
