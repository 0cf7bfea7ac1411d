// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/authority"
	"github.com/bitmark-inc/tokenvault/fault"
	"github.com/bitmark-inc/tokenvault/util"
)

// Mint - a fungible token type
type Mint struct {
	Supply          uint64          `json:"supply"`
	Decimals        uint8           `json:"decimals"`
	MintAuthority   account.Address `json:"mintAuthority"`
	FreezeAuthority account.Address `json:"freezeAuthority"`
}

// Account - a balance of one mint held by an owner
//
// a zero Delegate means no approval is outstanding
type Account struct {
	Mint            account.Address `json:"mint"`
	Owner           account.Address `json:"owner"`
	Amount          uint64          `json:"amount"`
	Delegate        account.Address `json:"delegate"`
	DelegatedAmount uint64          `json:"delegatedAmount"`
}

// HasDelegate - true if an approval is outstanding
func (a *Account) HasDelegate() bool {
	return !a.Delegate.IsZero()
}

// Authorises - check that by may move amount out of the account
//
// the owner always may, a delegate only within its approval and only
// if it is not a program address
func (a *Account) Authorises(by account.Address, amount uint64) error {
	if a.Owner == by {
		return nil
	}
	if authority.IsProgramAddress(by) {
		return fault.ErrInvalidTransferAuthority
	}
	if a.HasDelegate() && a.Delegate == by && a.DelegatedAmount >= amount {
		return nil
	}
	return fault.ErrInvalidTransferAuthority
}

func (m *Mint) pack() []byte {
	buffer := util.AppendVarint64(nil, uint64(m.Decimals))
	buffer = util.AppendVarint64(buffer, m.Supply)
	buffer = append(buffer, m.MintAuthority[:]...)
	return append(buffer, m.FreezeAuthority[:]...)
}

func (a *Account) pack() []byte {
	buffer := append([]byte{}, a.Mint[:]...)
	buffer = append(buffer, a.Owner[:]...)
	buffer = util.AppendVarint64(buffer, a.Amount)
	buffer = append(buffer, a.Delegate[:]...)
	return util.AppendVarint64(buffer, a.DelegatedAmount)
}

func unpackMint(buffer []byte) (*Mint, error) {
	decimals, n := util.FromVarint64(buffer)
	if 0 == n || decimals > 255 {
		return nil, fault.ErrRecordTruncated
	}
	supply, count := util.FromVarint64(buffer[n:])
	if 0 == count {
		return nil, fault.ErrRecordTruncated
	}
	n += count
	if len(buffer)-n != 2*account.AddressLength {
		return nil, fault.ErrRecordTruncated
	}
	m := &Mint{
		Supply:   supply,
		Decimals: uint8(decimals),
	}
	n += copy(m.MintAuthority[:], buffer[n:])
	copy(m.FreezeAuthority[:], buffer[n:])
	return m, nil
}

func unpackAccount(buffer []byte) (*Account, error) {
	a := &Account{}
	if len(buffer) < 2*account.AddressLength {
		return nil, fault.ErrRecordTruncated
	}
	n := copy(a.Mint[:], buffer)
	n += copy(a.Owner[:], buffer[n:])

	amount, count := util.FromVarint64(buffer[n:])
	if 0 == count {
		return nil, fault.ErrRecordTruncated
	}
	n += count
	a.Amount = amount

	if len(buffer)-n < account.AddressLength {
		return nil, fault.ErrRecordTruncated
	}
	n += copy(a.Delegate[:], buffer[n:])

	delegated, count := util.FromVarint64(buffer[n:])
	if 0 == count {
		return nil, fault.ErrRecordTruncated
	}
	if n+count != len(buffer) {
		return nil, fault.ErrRecordTrailingData
	}
	a.DelegatedAmount = delegated
	return a, nil
}
