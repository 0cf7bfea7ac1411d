// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - addresses of vaults, mints, token accounts and signers
//
// an address is a 32 byte value, either an ed25519 public key or a
// program derived address; its text form is Base58, hex (64
// characters, optional 0x prefix) is accepted on input
package account

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokenvault/fault"
)

// AddressLength - number of bytes in an address
const AddressLength = 32

// Address - the identity of any ledger entity
type Address [AddressLength]byte

// Zero - the unset address
var Zero = Address{}

// ParseAddress - decode Base58 or hex text
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") {
		return fromHex(s[2:])
	}
	if 2*AddressLength == len(s) {
		if a, err := fromHex(s); nil == err {
			return a, nil
		}
	}

	b, err := base58.Decode(s)
	if nil != err || "" == s {
		return Zero, fault.ErrInvalidAddress
	}
	return AddressFromBytes(b)
}

// MustParseAddress - for fixed program identities only
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if nil != err {
		panic(err)
	}
	return a
}

// AddressFromBytes - copy exactly AddressLength bytes
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if AddressLength != len(b) {
		return a, fault.ErrInvalidAddress
	}
	copy(a[:], b)
	return a, nil
}

func fromHex(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return Zero, fault.ErrInvalidAddress
	}
	return AddressFromBytes(b)
}

// Generate - a fresh address from a random ed25519 key
//
// the private key is discarded, the result is only suitable for
// accounts whose operations are authorised by their owner field
func Generate() (Address, error) {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return Zero, err
	}
	return AddressFromBytes(publicKey)
}

// IsZero - true if the address was never set
func (a Address) IsZero() bool {
	return Zero == a
}

// Bytes - a copy of the raw bytes
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

// String - Base58 form
func (a Address) String() string {
	return base58.Encode(a[:])
}

// Hex - for debug output and database keys
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// MarshalText - Base58 in JSON
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - accept any ParseAddress form
func (a *Address) UnmarshalText(s []byte) error {
	r, err := ParseAddress(string(s))
	if nil != err {
		return err
	}
	*a = r
	return nil
}
