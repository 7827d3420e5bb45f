// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"
	"testing"
)

func TestS256IsSingleton(t *testing.T) {
	if S256() != S256() {
		t.Errorf("S256() should return the same CurveSpec on every call")
	}
}

func TestGeneratorSignVerify(t *testing.T) {
	curve := S256()
	priv, err := curve.NewPrivateKey(big.NewInt(12345))
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	z := big.NewInt(999)
	sig := priv.Sign(z)
	if !priv.Point().Verify(z, sig) {
		t.Errorf("Verify rejected a valid signature against the real secp256k1 curve")
	}
}
