// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import "github.com/ModChain/base58"

// Base58Encode encodes data using the standard Bitcoin Base58 alphabet
// ("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"), delegating
// to the same base58.Bitcoin codec the teacher's ecckd subpackage uses for
// extended key serialization.
func Base58Encode(data []byte) string {
	return base58.Bitcoin.Encode(data)
}

// Base58Decode decodes a Base58 string encoded with the standard Bitcoin
// alphabet.
func Base58Decode(s string) ([]byte, error) {
	return base58.Bitcoin.Decode(s)
}

// Base58CheckEncode encodes data with a trailing 4-byte checksum
// (the first four bytes of Hash256(data)) before Base58-encoding the whole
// payload, per spec.md section 4.G.
func Base58CheckEncode(data []byte) string {
	checksum := Hash256(data)
	payload := make([]byte, 0, len(data)+4)
	payload = append(payload, data...)
	payload = append(payload, checksum[:4]...)
	return Base58Encode(payload)
}

// Base58CheckDecode reverses Base58CheckEncode, verifying the trailing
// 4-byte checksum and returning the payload with the checksum stripped.
func Base58CheckDecode(s string) ([]byte, error) {
	raw, err := Base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) < 4 {
		return nil, makeError(ErrInvalidLength, "base58check payload shorter than checksum")
	}
	payload, checksum := raw[:len(raw)-4], raw[len(raw)-4:]
	want := Hash256(payload)
	for i := 0; i < 4; i++ {
		if checksum[i] != want[i] {
			return nil, makeError(ErrInvalidLength, "base58check checksum mismatch")
		}
	}
	return payload, nil
}
