// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"fmt"
	"math/big"
)

const (
	asn1IntegerID = 0x02

	// minSigLen is the minimum length of a DER-encoded (r, s) pair: both R
	// and S are 1 content byte each, each under its own 2-byte INTEGER
	// header.
	minSigLen = 6

	// maxSigLen is the maximum length of a DER-encoded (r, s) pair for a
	// 32-byte-scalar curve: both R and S are 33 content bytes each (an
	// extra leading zero byte is needed whenever the high bit of the
	// value is set, to keep the ASN.1 INTEGER positive), each under its
	// own 2-byte header.
	maxSigLen = 70
)

// Signature is an ECDSA (r, s) pair. The type itself does not enforce that r
// and s lie in [1, n-1]; Sign produces values in that range with s
// normalized to the low-s form (s <= n/2), but a Signature built directly
// from arbitrary big.Ints carries no such guarantee.
type Signature struct {
	R, S *big.Int
}

// NewSignature wraps an (r, s) pair into a Signature, copying both values.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{R: new(big.Int).Set(r), S: new(big.Int).Set(s)}
}

// DER encodes the signature per spec.md section 4.E: each of r, s is
// serialized as a DER INTEGER (minimum-length big-endian bytes, with a
// leading 0x00 prepended whenever the high bit of the first byte would
// otherwise be set), and the two INTEGERs are concatenated with no
// surrounding wrapper. The outer 0x30 || total_len SEQUENCE header required
// by strict DER is not produced here; spec.md is explicit that wrapping the
// two INTEGERs into a SEQUENCE is the caller's concern, not this library's.
func (sig *Signature) DER() []byte {
	rBytes := asn1IntegerBytes(sig.R)
	sBytes := asn1IntegerBytes(sig.S)

	out := make([]byte, 0, 4+len(rBytes)+len(sBytes))
	out = append(out, asn1IntegerID, byte(len(rBytes)))
	out = append(out, rBytes...)
	out = append(out, asn1IntegerID, byte(len(sBytes)))
	out = append(out, sBytes...)
	return out
}

// asn1IntegerBytes renders v as the minimal-length DER INTEGER content: its
// big-endian bytes with leading zero bytes stripped, except that a single
// 0x00 byte is kept (or reintroduced) whenever the first remaining byte has
// its high bit set, to keep the value unambiguously positive.
func asn1IntegerBytes(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 {
		return []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		padded := make([]byte, len(b)+1)
		copy(padded[1:], b)
		return padded
	}
	return b
}

// ParseDERSignature parses the two-INTEGER (r, s) encoding produced by DER,
// per the same rules spec.md section 4.E describes, returning a granular
// ErrorKind for each way the encoding can be malformed. It does not expect
// or accept an outer SEQUENCE wrapper; a caller holding a strict DER blob
// (0x30 || total_len || ...) must strip that header before calling this.
func ParseDERSignature(data []byte) (*Signature, error) {
	sigLen := len(data)
	if sigLen < minSigLen {
		return nil, makeError(ErrSigTooShort,
			fmt.Sprintf("malformed signature: too short: %d < %d", sigLen, minSigLen))
	}
	if sigLen > maxSigLen {
		return nil, makeError(ErrSigTooLong,
			fmt.Sprintf("malformed signature: too long: %d > %d", sigLen, maxSigLen))
	}

	r, offset, err := parseDERInteger(data, 0, ErrSigInvalidRIntID, ErrSigZeroRLen, ErrSigTooMuchRPadding)
	if err != nil {
		return nil, err
	}
	s, offset, err := parseDERInteger(data, offset, ErrSigInvalidSIntID, ErrSigZeroSLen, ErrSigTooMuchSPadding)
	if err != nil {
		return nil, err
	}
	if offset != sigLen {
		return nil, makeError(ErrSigInvalidLen,
			fmt.Sprintf("malformed signature: extra data after S: %d bytes remain", sigLen-offset))
	}

	return &Signature{R: r, S: s}, nil
}

// parseDERInteger parses a single DER INTEGER field starting at offset,
// returning its value and the offset just past it.
func parseDERInteger(data []byte, offset int, typeErr, zeroLenErr, paddingErr ErrorKind) (*big.Int, int, error) {
	if offset+2 > len(data) {
		return nil, offset, makeError(typeErr, "malformed signature: truncated integer header")
	}
	if data[offset] != asn1IntegerID {
		return nil, offset, makeError(typeErr,
			fmt.Sprintf("malformed signature: integer marker is wrong type: %#x", data[offset]))
	}
	offset++
	length := int(data[offset])
	offset++
	if length == 0 {
		return nil, offset, makeError(zeroLenErr, "malformed signature: integer length is zero")
	}
	if offset+length > len(data) {
		return nil, offset, makeError(typeErr, "malformed signature: integer value truncated")
	}
	val := data[offset : offset+length]
	if val[0]&0x80 != 0 {
		return nil, offset, makeError(paddingErr,
			"malformed signature: integer is negative")
	}
	if len(val) > 1 && val[0] == 0x00 && val[1]&0x80 == 0 {
		return nil, offset, makeError(paddingErr,
			"malformed signature: integer has excessive padding")
	}
	offset += length
	return new(big.Int).SetBytes(val), offset, nil
}
