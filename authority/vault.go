// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"github.com/bitmark-inc/tokenvault/account"
)

// Prefix - first seed of every vault program address
const Prefix = "vault"

// Derived - an address together with the bump that produced it
type Derived struct {
	Address account.Address `json:"address"`
	Bump    uint8           `json:"bump"`
}

// Derive - the vault authority for a vault
//
// this is the mint and freeze authority of the fraction mint and the
// owner of both treasuries and of every safety deposit store
func Derive(programId account.Address, vault account.Address) (Derived, error) {
	if programId.IsZero() || vault.IsZero() {
		return Derived{}, ErrInvalidSeeds
	}
	a, bump, err := FindProgramAddress(
		[][]byte{[]byte(Prefix), programId[:], vault[:]},
		programId,
	)
	if nil != err {
		return Derived{}, err
	}
	return Derived{Address: a, Bump: bump}, nil
}

// SafetyDepositBox - the address of the box holding tokenMint in vault
func SafetyDepositBox(programId account.Address, vault account.Address, tokenMint account.Address) (Derived, error) {
	if programId.IsZero() || vault.IsZero() || tokenMint.IsZero() {
		return Derived{}, ErrInvalidSeeds
	}
	a, bump, err := FindProgramAddress(
		[][]byte{[]byte(Prefix), vault[:], tokenMint[:]},
		programId,
	)
	if nil != err {
		return Derived{}, err
	}
	return Derived{Address: a, Bump: bump}, nil
}
