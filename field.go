// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import "math/big"

// sqrtKind identifies which closed-form square root strategy a given prime
// supports. It is computed once when a FieldParams is constructed and cached
// so Sqrt never has to re-derive it.
type sqrtKind int

const (
	sqrtTonelliShanks sqrtKind = iota
	sqrt3Mod4
	sqrt5Mod8
)

// FieldParams is the modulus descriptor M from which field elements are
// minted. It is immutable after construction: the prime P, its bit width in
// bytes (ByteLen, i.e. N*8 for an N-limb BigUint<N>), and the precomputed
// data needed for Sqrt and Pow. One FieldParams is constructed per curve and
// lives for the life of the process.
type FieldParams struct {
	P       *big.Int
	ByteLen int

	pMinus1 *big.Int // P - 1, used by Pow's negative-exponent transform
	pMinus2 *big.Int // P - 2, the Fermat inverse exponent

	sqrtKind sqrtKind
	// Tonelli-Shanks precomputation, valid only when sqrtKind ==
	// sqrtTonelliShanks.
	tsQ *big.Int // odd part of P-1
	tsS int      // P-1 = tsQ * 2^tsS
	tsZ *big.Int // a fixed quadratic non-residue mod P
}

// NewFieldParams builds the modulus descriptor for a prime p and a declared
// byte width. byteLen must be large enough to hold p (it is the serialized
// width used by Bytes/FromBytes and ultimately by SEC/DER encoding); it is
// not derived from p.BitLen() because callers may want to match a curve's
// conventional width (e.g. 32 bytes for secp256k1) rather than the minimum
// number of bytes that holds p.
func NewFieldParams(p *big.Int, byteLen int) *FieldParams {
	fp := &FieldParams{
		P:       new(big.Int).Set(p),
		ByteLen: byteLen,
		pMinus1: new(big.Int).Sub(p, big.NewInt(1)),
		pMinus2: new(big.Int).Sub(p, big.NewInt(2)),
	}

	mod4 := new(big.Int).Mod(p, big.NewInt(4))
	mod8 := new(big.Int).Mod(p, big.NewInt(8))
	switch {
	case mod4.Cmp(big.NewInt(3)) == 0:
		fp.sqrtKind = sqrt3Mod4
	case mod8.Cmp(big.NewInt(5)) == 0:
		fp.sqrtKind = sqrt5Mod8
	default:
		fp.sqrtKind = sqrtTonelliShanks
		fp.precomputeTonelliShanks()
	}
	return fp
}

// precomputeTonelliShanks factors P-1 = Q * 2^S with Q odd, and finds a
// quadratic non-residue Z by incrementing from 2, exactly as described in
// spec.md's Tonelli-Shanks recipe.
func (fp *FieldParams) precomputeTonelliShanks() {
	q := new(big.Int).Set(fp.pMinus1)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}
	fp.tsQ = q
	fp.tsS = s

	half := new(big.Int).Rsh(fp.pMinus1, 1)
	z := big.NewInt(2)
	one := big.NewInt(1)
	for {
		if new(big.Int).Exp(z, half, fp.P).Cmp(fp.pMinus1) == 0 {
			break
		}
		z = new(big.Int).Add(z, one)
	}
	fp.tsZ = z
}

// Element reduces x modulo P and returns the resulting field element.
func (fp *FieldParams) Element(x *big.Int) *FieldElement {
	num := new(big.Int).Mod(x, fp.P)
	return &FieldElement{params: fp, num: num}
}

// Zero returns the additive identity of the field.
func (fp *FieldParams) Zero() *FieldElement {
	return &FieldElement{params: fp, num: big.NewInt(0)}
}

// One returns the multiplicative identity of the field.
func (fp *FieldParams) One() *FieldElement {
	return &FieldElement{params: fp, num: big.NewInt(1)}
}

// FieldElement is a value in [0, P) for the prime P of a FieldParams. It is
// immutable after construction: every operation below returns a new
// FieldElement rather than mutating the receiver, and num < P holds as an
// invariant across every operation.
type FieldElement struct {
	params *FieldParams
	num    *big.Int
}

// Params returns the modulus descriptor this element belongs to.
func (f *FieldElement) Params() *FieldParams {
	return f.params
}

// Num returns a copy of the element's integer value in [0, P).
func (f *FieldElement) Num() *big.Int {
	return new(big.Int).Set(f.num)
}

// Equal reports whether f and other represent the same value under the same
// modulus.
func (f *FieldElement) Equal(other *FieldElement) bool {
	if f.params.P.Cmp(other.params.P) != 0 {
		return false
	}
	return f.num.Cmp(other.num) == 0
}

// IsZero reports whether f is the additive identity.
func (f *FieldElement) IsZero() bool {
	return f.num.Sign() == 0
}

// IsOdd reports whether the element's integer representative is odd.
func (f *FieldElement) IsOdd() bool {
	return f.num.Bit(0) == 1
}

// Add returns f + other mod P.
func (f *FieldElement) Add(other *FieldElement) *FieldElement {
	sum := new(big.Int).Add(f.num, other.num)
	sum.Mod(sum, f.params.P)
	return &FieldElement{params: f.params, num: sum}
}

// Sub returns f - other mod P. Underflow is handled by reducing into [0, P)
// rather than leaving a negative representative.
func (f *FieldElement) Sub(other *FieldElement) *FieldElement {
	diff := new(big.Int).Sub(f.num, other.num)
	diff.Mod(diff, f.params.P)
	return &FieldElement{params: f.params, num: diff}
}

// Mul returns f * other mod P.
func (f *FieldElement) Mul(other *FieldElement) *FieldElement {
	prod := new(big.Int).Mul(f.num, other.num)
	prod.Mod(prod, f.params.P)
	return &FieldElement{params: f.params, num: prod}
}

// Pow returns f^exp mod P via square-and-multiply. If isNegative is true,
// exp is first transformed to (P-1) - (exp mod (P-1)), which computes
// f^(-exp) via Fermat's little theorem (f^(P-1) = 1 for f != 0) without a
// separate modular-inverse algorithm.
func (f *FieldElement) Pow(exp *big.Int, isNegative bool) *FieldElement {
	e := new(big.Int).Set(exp)
	if isNegative {
		e.Mod(e, f.params.pMinus1)
		e.Sub(f.params.pMinus1, e)
	}
	res := new(big.Int).Exp(f.num, e, f.params.P)
	return &FieldElement{params: f.params, num: res}
}

// Div returns f * other^(P-2) mod P, i.e. f / other computed via Fermat's
// little theorem. If other is zero this silently returns zero (0^(P-2) mod P
// = 0) rather than reporting an error; callers must not divide by zero. This
// mirrors the documented reference behavior in spec.md section 9's Open
// Question on division by zero.
func (f *FieldElement) Div(other *FieldElement) *FieldElement {
	inv := other.Pow(f.params.pMinus2, false)
	return f.Mul(inv)
}

// Sqrt returns one of the two square roots of f, choosing the most
// efficient applicable formula for the field's prime. The caller is
// responsible for disambiguating parity between the two roots (p - root is
// the other one). Sqrt does not check that f is actually a quadratic
// residue; callers that need that guarantee should verify the result by
// squaring it back and comparing to f.
func (f *FieldElement) Sqrt() *FieldElement {
	switch f.params.sqrtKind {
	case sqrt3Mod4:
		return f.sqrt3Mod4()
	case sqrt5Mod8:
		return f.sqrt5Mod8()
	default:
		return f.sqrtTonelliShanks()
	}
}

// Bytes returns the element's big-endian representation, zero-padded to the
// field's declared ByteLen. It panics if the value does not fit in ByteLen
// bytes, which can only happen when ByteLen is too small to hold P.
func (f *FieldElement) Bytes() []byte {
	buf := make([]byte, f.params.ByteLen)
	f.num.FillBytes(buf)
	return buf
}

// String returns the element's value as a hex string, useful for debugging
// and test failure messages.
func (f *FieldElement) String() string {
	return f.num.Text(16)
}
