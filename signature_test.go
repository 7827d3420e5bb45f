// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"
	"testing"
)

func TestSignatureDERRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		r, s *big.Int
	}{
		{"small values", big.NewInt(1), big.NewInt(1)},
		{"high bit set on r", new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(42)},
		{"high bit set on both", new(big.Int).Lsh(big.NewInt(1), 255), new(big.Int).Lsh(big.NewInt(1), 255)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sig := NewSignature(test.r, test.s)
			der := sig.DER()
			parsed, err := ParseDERSignature(der)
			if err != nil {
				t.Fatalf("ParseDERSignature: %v", err)
			}
			if parsed.R.Cmp(sig.R) != 0 || parsed.S.Cmp(sig.S) != 0 {
				t.Errorf("round trip mismatch: got (%s,%s), want (%s,%s)",
					parsed.R.Text(16), parsed.S.Text(16), sig.R.Text(16), sig.S.Text(16))
			}
		})
	}
}

// TestDEROmitsSequenceWrapper checks that DER emits exactly the two
// concatenated INTEGER TLVs with no outer SEQUENCE header, per spec.md
// section 4.E: wrapping in a SEQUENCE is the caller's concern.
func TestDEROmitsSequenceWrapper(t *testing.T) {
	sig := NewSignature(big.NewInt(1), big.NewInt(2))
	der := sig.DER()
	want := []byte{0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	if len(der) != len(want) {
		t.Fatalf("DER() = % x, want % x", der, want)
	}
	for i := range want {
		if der[i] != want[i] {
			t.Fatalf("DER() = % x, want % x", der, want)
		}
	}
}

func TestParseDERSignatureRejectsMalformed(t *testing.T) {
	valid := NewSignature(big.NewInt(1), big.NewInt(2)).DER()

	tests := []struct {
		name string
		data []byte
	}{
		{"too short", valid[:3]},
		{"wrong integer marker for r", func() []byte { b := append([]byte{}, valid...); b[0] = 0x31; return b }()},
		{"trailing garbage", append(append([]byte{}, valid...), 0xff)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseDERSignature(test.data); err == nil {
				t.Errorf("expected malformed signature to be rejected")
			}
		})
	}
}
