// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - a fungible token ledger of mints and token accounts
//
// every mutation is made inside a caller supplied storage.Transaction
// so it commits or aborts together with the caller's own writes
package token

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/authority"
	"github.com/bitmark-inc/tokenvault/fault"
	"github.com/bitmark-inc/tokenvault/storage"
)

// Ledger - the token operations used by the vault
type Ledger interface {
	CreateMint(storage.Transaction, uint8, account.Address, account.Address) (account.Address, error)
	CreateAccount(storage.Transaction, account.Address, account.Address) (account.Address, error)
	Mint(storage.Transaction, account.Address, account.Address, account.Address, uint64) error
	Transfer(storage.Transaction, account.Address, account.Address, uint64, account.Address) error
	Approve(storage.Transaction, account.Address, account.Address, account.Address, uint64) error
	Burn(storage.Transaction, account.Address, account.Address, account.Address, uint64) error
	GetMint(storage.Reader, account.Address) (*Mint, error)
	GetAccount(storage.Reader, account.Address) (*Account, error)
}

type ledger struct {
	log      *logger.L
	mints    *storage.PoolHandle
	accounts *storage.PoolHandle
}

// New - ledger over the mint and token account pools of a store
func New(store *storage.Store) Ledger {
	return &ledger{
		log:      logger.New("token"),
		mints:    store.Pool.Mints,
		accounts: store.Pool.TokenAccounts,
	}
}

// CreateMint - new mint with zero supply
func (l *ledger) CreateMint(trx storage.Transaction, decimals uint8, mintAuthority account.Address, freezeAuthority account.Address) (account.Address, error) {
	if mintAuthority.IsZero() {
		return account.Zero, fault.ErrInvalidMintAuthority
	}
	address, err := l.newAddress(trx)
	if nil != err {
		return account.Zero, err
	}
	m := &Mint{
		Decimals:        decimals,
		MintAuthority:   mintAuthority,
		FreezeAuthority: freezeAuthority,
	}
	trx.Put(l.mints, address[:], m.pack())
	l.log.Debugf("create mint: %s  authority: %s", address, mintAuthority)
	return address, nil
}

// CreateAccount - new empty account of mint held by owner
func (l *ledger) CreateAccount(trx storage.Transaction, mint account.Address, owner account.Address) (account.Address, error) {
	if owner.IsZero() {
		return account.Zero, fault.ErrInvalidAccountOwner
	}
	if _, err := l.GetMint(trx, mint); nil != err {
		return account.Zero, err
	}
	address, err := l.newAddress(trx)
	if nil != err {
		return account.Zero, err
	}
	a := &Account{
		Mint:  mint,
		Owner: owner,
	}
	trx.Put(l.accounts, address[:], a.pack())
	l.log.Debugf("create account: %s  mint: %s  owner: %s", address, mint, owner)
	return address, nil
}

// Mint - increase supply by crediting destination, signed by the mint authority
func (l *ledger) Mint(trx storage.Transaction, mint account.Address, destination account.Address, authority account.Address, amount uint64) error {
	m, err := l.GetMint(trx, mint)
	if nil != err {
		return err
	}
	if m.MintAuthority != authority {
		return fault.ErrInvalidMintAuthority
	}
	d, err := l.GetAccount(trx, destination)
	if nil != err {
		return err
	}
	if d.Mint != mint {
		return fault.ErrMintMismatch
	}
	if m.Supply+amount < m.Supply || d.Amount+amount < d.Amount {
		return fault.ErrArithmeticOverflow
	}

	m.Supply += amount
	d.Amount += amount
	trx.Put(l.mints, mint[:], m.pack())
	trx.Put(l.accounts, destination[:], d.pack())
	l.log.Debugf("mint: %d of: %s  to: %s", amount, mint, destination)
	return nil
}

// Transfer - move amount between two accounts of the same mint
//
// authorisedBy is either the source owner or its delegate, a delegate's
// approval is reduced by the amount moved
func (l *ledger) Transfer(trx storage.Transaction, source account.Address, destination account.Address, amount uint64, authorisedBy account.Address) error {
	if source == destination {
		return fault.ErrSameAccount
	}
	s, err := l.GetAccount(trx, source)
	if nil != err {
		return err
	}
	d, err := l.GetAccount(trx, destination)
	if nil != err {
		return err
	}
	if s.Mint != d.Mint {
		return fault.ErrMintMismatch
	}
	if err := s.Authorises(authorisedBy, amount); nil != err {
		return err
	}
	if s.Amount < amount {
		return fault.ErrInsufficientFunds
	}
	if d.Amount+amount < d.Amount {
		return fault.ErrArithmeticOverflow
	}

	consume(s, authorisedBy, amount)
	s.Amount -= amount
	d.Amount += amount
	trx.Put(l.accounts, source[:], s.pack())
	trx.Put(l.accounts, destination[:], d.pack())
	l.log.Debugf("transfer: %d from: %s  to: %s", amount, source, destination)
	return nil
}

// Approve - allow delegate to move up to amount, replaces any earlier approval
func (l *ledger) Approve(trx storage.Transaction, address account.Address, owner account.Address, delegate account.Address, amount uint64) error {
	a, err := l.GetAccount(trx, address)
	if nil != err {
		return err
	}
	if a.Owner != owner {
		return fault.ErrInvalidAccountOwner
	}
	if authority.IsProgramAddress(owner) || authority.IsProgramAddress(delegate) {
		return fault.ErrInvalidTransferAuthority
	}
	a.Delegate = delegate
	a.DelegatedAmount = amount
	if delegate.IsZero() {
		a.DelegatedAmount = 0
	}
	trx.Put(l.accounts, address[:], a.pack())
	l.log.Debugf("approve: %s  delegate: %s  amount: %d", address, delegate, amount)
	return nil
}

// Burn - remove amount from an account and from the mint supply
func (l *ledger) Burn(trx storage.Transaction, mint account.Address, address account.Address, authorisedBy account.Address, amount uint64) error {
	m, err := l.GetMint(trx, mint)
	if nil != err {
		return err
	}
	a, err := l.GetAccount(trx, address)
	if nil != err {
		return err
	}
	if a.Mint != mint {
		return fault.ErrMintMismatch
	}
	if err := a.Authorises(authorisedBy, amount); nil != err {
		return err
	}
	if a.Amount < amount {
		return fault.ErrInsufficientFunds
	}
	if m.Supply < amount {
		fault.Criticalf("mint: %s  supply: %d  less than account: %s  amount: %d", mint, m.Supply, address, a.Amount)
		return fault.ErrInsufficientFunds
	}

	consume(a, authorisedBy, amount)
	a.Amount -= amount
	m.Supply -= amount
	trx.Put(l.mints, mint[:], m.pack())
	trx.Put(l.accounts, address[:], a.pack())
	l.log.Debugf("burn: %d of: %s  from: %s", amount, mint, address)
	return nil
}

// GetMint - read a mint record
func (l *ledger) GetMint(r storage.Reader, mint account.Address) (*Mint, error) {
	buffer := r.Get(l.mints, mint[:])
	if nil == buffer {
		return nil, fault.ErrNotFoundMint
	}
	return unpackMint(buffer)
}

// GetAccount - read a token account record
func (l *ledger) GetAccount(r storage.Reader, address account.Address) (*Account, error) {
	buffer := r.Get(l.accounts, address[:])
	if nil == buffer {
		return nil, fault.ErrNotFoundAccount
	}
	return unpackAccount(buffer)
}

// fresh address not used by any mint or account
func (l *ledger) newAddress(trx storage.Transaction) (account.Address, error) {
	address, err := account.Generate()
	if nil != err {
		return account.Zero, err
	}
	if trx.Has(l.mints, address[:]) || trx.Has(l.accounts, address[:]) {
		return account.Zero, fault.ErrAccountAlreadyExists
	}
	return address, nil
}

func consume(a *Account, authorisedBy account.Address, amount uint64) {
	if a.Owner == authorisedBy {
		return
	}
	a.DelegatedAmount -= amount
	if 0 == a.DelegatedAmount {
		a.Delegate = account.Zero
	}
}
