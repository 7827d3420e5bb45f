// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecckd

import (
	"encoding/binary"
	"math/big"
	"strconv"
	"strings"

	"github.com/ModChain/ecc"
	"github.com/ModChain/ecc/secp256k1"
)

// HardenedBit is ORed into a child index to request hardened derivation.
const HardenedBit uint32 = 0x80000000

// serializedKeyLen is the length, in bytes, of a serialized extended key
// before Base58Check encoding:
// version(4) || depth(1) || fingerprint(4) || childNumber(4) || chainCode(32) || keyData(33).
const serializedKeyLen = 4 + 1 + 4 + 4 + 32 + 33

// ExtendedKey is a BIP32 extended key: either a private key plus the chain
// code needed to derive children, or (after Neuter) the public point alone.
// It carries the bookkeeping BIP32 needs to serialize and re-derive: the
// version, depth, parent fingerprint, and child index.
type ExtendedKey struct {
	version     KeyVersion
	key         *big.Int // private scalar; nil for a public-only key
	pub         *ecc.Point
	chainCode   []byte
	depth       byte
	childNumber uint32
	fingerprint [4]byte
	curve       *ecc.CurveSpec
}

// FromSeed derives the BIP32 master extended key from a seed, using the
// standard "Bitcoin seed" HMAC-SHA512 key.
func FromSeed(seed []byte) (*ExtendedKey, error) {
	return fromSeed(seed, []byte("Bitcoin seed"), BitcoinMainnetPrivate)
}

// FromTestnetSeed is FromSeed using the testnet version bytes.
func FromTestnetSeed(seed []byte) (*ExtendedKey, error) {
	return fromSeed(seed, []byte("Bitcoin seed"), BitcoinTestnetPrivate)
}

func fromSeed(seed, salt []byte, version KeyVersion) (*ExtendedKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrInvalidSeed
	}
	curve := secp256k1.S256()
	key, chainCode, err := hmacCKD(seed, salt)
	if err != nil {
		return nil, err
	}
	secret := new(big.Int).SetBytes(key)
	priv, err := curve.NewPrivateKey(secret)
	if err != nil {
		return nil, ErrInvalidMasterKey
	}
	return &ExtendedKey{
		version:   version,
		key:       priv.Secret(),
		pub:       priv.Point(),
		chainCode: chainCode,
		depth:     0,
		curve:     curve,
	}, nil
}

// IsPrivate reports whether this key holds a private scalar.
func (k *ExtendedKey) IsPrivate() bool {
	return k.key != nil
}

// PrivateKey returns the underlying ecc.PrivateKey. It returns an error if
// this is a public-only key.
func (k *ExtendedKey) PrivateKey() (*ecc.PrivateKey, error) {
	if k.key == nil {
		return nil, ErrDerivingHardenedFromPublic
	}
	return k.curve.NewPrivateKey(k.key)
}

// Point returns the public point of this key.
func (k *ExtendedKey) Point() *ecc.Point {
	return k.pub
}

// pubKeyBytes returns the compressed SEC encoding of this key's public point.
func (k *ExtendedKey) pubKeyBytes() []byte {
	return k.pub.SEC(true)
}

// Child derives the child key at the given index. Indices with the
// HardenedBit set request hardened derivation, which is only possible from
// a private key; deriving a hardened child from a public-only key returns
// ErrDerivingHardenedFromPublic.
func (k *ExtendedKey) Child(index uint32) (*ExtendedKey, error) {
	if k.depth == 255 {
		return nil, ErrMaxDepthExceeded
	}
	hardened := index&HardenedBit != 0
	if hardened && k.key == nil {
		return nil, ErrDerivingHardenedFromPublic
	}

	var data []byte
	if hardened {
		data = make([]byte, 0, 37)
		data = append(data, 0x00)
		secretBytes := make([]byte, secp256k1.ByteLen)
		k.key.FillBytes(secretBytes)
		data = append(data, secretBytes...)
	} else {
		data = append([]byte{}, k.pubKeyBytes()...)
	}
	var idxBytes [4]byte
	binary.BigEndian.PutUint32(idxBytes[:], index)
	data = append(data, idxBytes[:]...)

	il, ir, err := hmacCKD(data, k.chainCode)
	if err != nil {
		return nil, err
	}
	ilNum := new(big.Int).SetBytes(il)

	child := &ExtendedKey{
		version:     k.version,
		chainCode:   ir,
		depth:       k.depth + 1,
		childNumber: index,
		curve:       k.curve,
	}
	copy(child.fingerprint[:], ecc.Hash160(k.pubKeyBytes())[:4])

	if k.key != nil {
		childSecret := new(big.Int).Add(k.key, ilNum)
		childSecret.Mod(childSecret, k.curve.N)
		if childSecret.Sign() == 0 {
			return nil, ErrShaKeyInvalid
		}
		priv, err := k.curve.NewPrivateKey(childSecret)
		if err != nil {
			return nil, err
		}
		child.key = priv.Secret()
		child.pub = priv.Point()
	} else {
		ilPoint := k.curve.G().Mul(ilNum)
		childPub := ilPoint.Add(k.pub)
		if childPub.IsInfinity() {
			return nil, ErrShaKeyInvalid
		}
		child.pub = childPub
	}
	return child, nil
}

// Derive walks a slash-separated BIP32 path such as "m/44'/0'/0'/0/0"
// starting from k, applying ' or h as the hardened marker for each segment.
func (k *ExtendedKey) Derive(path string) (*ExtendedKey, error) {
	segments := strings.Split(path, "/")
	cur := k
	for i, seg := range segments {
		if i == 0 && (seg == "m" || seg == "M" || seg == "") {
			continue
		}
		hardened := false
		if strings.HasSuffix(seg, "'") || strings.HasSuffix(seg, "h") || strings.HasSuffix(seg, "H") {
			hardened = true
			seg = seg[:len(seg)-1]
		}
		idx, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			return nil, err
		}
		index := uint32(idx)
		if hardened {
			index |= HardenedBit
		}
		cur, err = cur.Child(index)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// Neuter returns the public-only counterpart of k, dropping its private
// scalar and flipping the serialization version to the public form.
func (k *ExtendedKey) Neuter() *ExtendedKey {
	return &ExtendedKey{
		version:     k.version.ToPublic(),
		pub:         k.pub,
		chainCode:   k.chainCode,
		depth:       k.depth,
		childNumber: k.childNumber,
		fingerprint: k.fingerprint,
		curve:       k.curve,
	}
}

// MarshalBinary serializes k into the 78-byte BIP32 extended key layout:
// version || depth || fingerprint || childNumber || chainCode || keyData.
// keyData is 0x00 || secret for a private key, or the compressed SEC point
// for a public-only key.
func (k *ExtendedKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, serializedKeyLen)
	out = append(out, k.version[:]...)
	out = append(out, k.depth)
	out = append(out, k.fingerprint[:]...)
	var idxBytes [4]byte
	binary.BigEndian.PutUint32(idxBytes[:], k.childNumber)
	out = append(out, idxBytes[:]...)
	out = append(out, k.chainCode...)
	if k.key != nil {
		out = append(out, 0x00)
		secretBytes := make([]byte, secp256k1.ByteLen)
		k.key.FillBytes(secretBytes)
		out = append(out, secretBytes...)
	} else {
		out = append(out, k.pubKeyBytes()...)
	}
	return out, nil
}

// String renders k as a Base58Check-encoded extended key.
func (k *ExtendedKey) String() string {
	bin, err := k.MarshalBinary()
	if err != nil {
		return ""
	}
	return ecc.Base58CheckEncode(bin)
}

// ParseExtendedKey parses a Base58Check-encoded extended key, validating its
// length, checksum, and the consistency of its private flag against its
// version byte.
func ParseExtendedKey(s string) (*ExtendedKey, error) {
	bin, err := ecc.Base58CheckDecode(s)
	if err != nil {
		return nil, ErrBadChecksum
	}
	return UnmarshalExtendedKey(bin)
}

// UnmarshalExtendedKey parses the raw (already checksum-verified) BIP32
// extended key layout produced by MarshalBinary.
func UnmarshalExtendedKey(bin []byte) (*ExtendedKey, error) {
	if len(bin) != serializedKeyLen {
		return nil, ErrInvalidKeyLen
	}
	curve := secp256k1.S256()

	k := &ExtendedKey{curve: curve}
	copy(k.version[:], bin[0:4])
	k.depth = bin[4]
	copy(k.fingerprint[:], bin[5:9])
	k.childNumber = binary.BigEndian.Uint32(bin[9:13])
	k.chainCode = append([]byte{}, bin[13:45]...)

	keyData := bin[45:78]
	isPrivate := keyData[0] == 0x00
	if isPrivate != k.version.IsPrivate() {
		return nil, ErrInvalidPrivateFlag
	}

	if isPrivate {
		secret := new(big.Int).SetBytes(keyData[1:])
		priv, err := curve.NewPrivateKey(secret)
		if err != nil {
			return nil, ErrInvalidMasterKey
		}
		k.key = priv.Secret()
		k.pub = priv.Point()
	} else {
		pub, err := curve.ParseSEC(keyData)
		if err != nil {
			return nil, err
		}
		k.pub = pub
	}
	return k, nil
}
