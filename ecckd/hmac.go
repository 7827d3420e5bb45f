// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecckd

import (
	"crypto/hmac"
	"crypto/sha512"
	"math/big"

	"github.com/ModChain/ecc/secp256k1"
)

// hmacCKD returns the 32-byte key material (IL) and 32-byte chain code (IR)
// for a given seed and salt, per BIP32's child key derivation function:
//
//	https://github.com/bitcoin/bips/blob/master/bip-0032.mediawiki
//
// It reports ErrShaKeyInvalid when parse256(IL) >= n or IL == 0, in which
// case the caller must retry with an adjusted seed (probability under
// 1 in 2^127, per BIP32).
func hmacCKD(seed, salt []byte) (key, chainCode []byte, err error) {
	mac := hmac.New(sha512.New, salt)
	mac.Write(seed)
	i := mac.Sum(nil)

	key = i[:32]
	chainCode = i[32:]

	keyI := new(big.Int).SetBytes(key)
	if keyI.Cmp(secp256k1.S256().N) >= 0 || keyI.Sign() == 0 {
		err = ErrShaKeyInvalid
	}
	return
}
