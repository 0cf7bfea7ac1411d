// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/authority"
	"github.com/bitmark-inc/tokenvault/fault"
	"github.com/bitmark-inc/tokenvault/storage"
	"github.com/bitmark-inc/tokenvault/token"
)

func TestMintAndTransfer(t *testing.T) {
	f := setup(t)
	mintAuthority := newKey(t)
	alice := newKey(t)
	bob := newKey(t)

	var mint, aliceAccount, bobAccount account.Address
	f.commit(t, func(trx storage.Transaction) {
		var err error
		mint, err = f.ledger.CreateMint(trx, 0, mintAuthority, mintAuthority)
		require.NoError(t, err)
		aliceAccount, err = f.ledger.CreateAccount(trx, mint, alice)
		require.NoError(t, err)
		bobAccount, err = f.ledger.CreateAccount(trx, mint, bob)
		require.NoError(t, err)

		require.NoError(t, f.ledger.Mint(trx, mint, aliceAccount, mintAuthority, 500))
		require.NoError(t, f.ledger.Transfer(trx, aliceAccount, bobAccount, 200, alice))
	})

	r := f.store.Committed()
	m, err := f.ledger.GetMint(r, mint)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), m.Supply)
	assert.Equal(t, uint8(0), m.Decimals)
	assert.Equal(t, mintAuthority, m.MintAuthority)
	assert.Equal(t, mintAuthority, m.FreezeAuthority)

	a, err := f.ledger.GetAccount(r, aliceAccount)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), a.Amount)
	assert.Equal(t, alice, a.Owner)
	assert.Equal(t, mint, a.Mint)

	b, err := f.ledger.GetAccount(r, bobAccount)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), b.Amount)
}

func TestMintRejections(t *testing.T) {
	f := setup(t)
	mintAuthority := newKey(t)
	trx, err := f.store.Begin()
	require.NoError(t, err)
	defer trx.Abort()

	mint, err := f.ledger.CreateMint(trx, 0, mintAuthority, mintAuthority)
	require.NoError(t, err)
	other, err := f.ledger.CreateMint(trx, 6, mintAuthority, account.Zero)
	require.NoError(t, err)
	holder, err := f.ledger.CreateAccount(trx, mint, newKey(t))
	require.NoError(t, err)

	assert.Equal(t, fault.ErrInvalidMintAuthority, f.ledger.Mint(trx, mint, holder, newKey(t), 1))
	assert.Equal(t, fault.ErrMintMismatch, f.ledger.Mint(trx, other, holder, mintAuthority, 1))
	assert.Equal(t, fault.ErrNotFoundAccount, f.ledger.Mint(trx, mint, newKey(t), mintAuthority, 1))
	assert.Equal(t, fault.ErrNotFoundMint, f.ledger.Mint(trx, newKey(t), holder, mintAuthority, 1))

	require.NoError(t, f.ledger.Mint(trx, mint, holder, mintAuthority, math.MaxUint64))
	assert.Equal(t, fault.ErrArithmeticOverflow, f.ledger.Mint(trx, mint, holder, mintAuthority, 1))

	_, err = f.ledger.CreateMint(trx, 0, account.Zero, account.Zero)
	assert.Equal(t, fault.ErrInvalidMintAuthority, err)
	_, err = f.ledger.CreateAccount(trx, newKey(t), newKey(t))
	assert.Equal(t, fault.ErrNotFoundMint, err)
	_, err = f.ledger.CreateAccount(trx, mint, account.Zero)
	assert.Equal(t, fault.ErrInvalidAccountOwner, err)
}

func TestDelegatedTransferConsumesApproval(t *testing.T) {
	f := setup(t)
	mintAuthority := newKey(t)
	owner := newKey(t)
	delegate := newKey(t)

	trx, err := f.store.Begin()
	require.NoError(t, err)
	defer trx.Abort()

	mint, err := f.ledger.CreateMint(trx, 0, mintAuthority, mintAuthority)
	require.NoError(t, err)
	source, err := f.ledger.CreateAccount(trx, mint, owner)
	require.NoError(t, err)
	destination, err := f.ledger.CreateAccount(trx, mint, newKey(t))
	require.NoError(t, err)
	require.NoError(t, f.ledger.Mint(trx, mint, source, mintAuthority, 100))

	assert.Equal(t, fault.ErrInvalidAccountOwner, f.ledger.Approve(trx, source, delegate, delegate, 60))
	require.NoError(t, f.ledger.Approve(trx, source, owner, delegate, 60))

	assert.Equal(t, fault.ErrInvalidTransferAuthority, f.ledger.Transfer(trx, source, destination, 61, delegate))
	assert.Equal(t, fault.ErrInvalidTransferAuthority, f.ledger.Transfer(trx, source, destination, 1, newKey(t)))

	require.NoError(t, f.ledger.Transfer(trx, source, destination, 40, delegate))
	s, err := f.ledger.GetAccount(trx, source)
	require.NoError(t, err)
	assert.Equal(t, delegate, s.Delegate)
	assert.Equal(t, uint64(20), s.DelegatedAmount)

	require.NoError(t, f.ledger.Transfer(trx, source, destination, 20, delegate))
	s, err = f.ledger.GetAccount(trx, source)
	require.NoError(t, err)
	assert.False(t, s.HasDelegate())
	assert.Equal(t, uint64(0), s.DelegatedAmount)
	assert.Equal(t, uint64(40), s.Amount)

	assert.Equal(t, fault.ErrInvalidTransferAuthority, f.ledger.Transfer(trx, source, destination, 1, delegate))
	assert.Equal(t, fault.ErrInsufficientFunds, f.ledger.Transfer(trx, source, destination, 41, owner))
	assert.Equal(t, fault.ErrSameAccount, f.ledger.Transfer(trx, source, source, 1, owner))
}

func TestZeroApprovalCoversZeroTransfer(t *testing.T) {
	f := setup(t)
	mintAuthority := newKey(t)
	owner := newKey(t)
	delegate := newKey(t)

	trx, err := f.store.Begin()
	require.NoError(t, err)
	defer trx.Abort()

	mint, err := f.ledger.CreateMint(trx, 0, mintAuthority, mintAuthority)
	require.NoError(t, err)
	source, err := f.ledger.CreateAccount(trx, mint, owner)
	require.NoError(t, err)
	destination, err := f.ledger.CreateAccount(trx, mint, owner)
	require.NoError(t, err)

	require.NoError(t, f.ledger.Approve(trx, source, owner, delegate, 0))
	require.NoError(t, f.ledger.Transfer(trx, source, destination, 0, delegate))
}

func TestProgramAddressCannotApprove(t *testing.T) {
	f := setup(t)
	mintAuthority := newKey(t)
	owner := newKey(t)
	derived, err := authority.Derive(newKey(t), newKey(t))
	require.NoError(t, err)
	program := derived.Address

	trx, err := f.store.Begin()
	require.NoError(t, err)
	defer trx.Abort()

	mint, err := f.ledger.CreateMint(trx, 0, mintAuthority, mintAuthority)
	require.NoError(t, err)
	held, err := f.ledger.CreateAccount(trx, mint, program)
	require.NoError(t, err)
	other, err := f.ledger.CreateAccount(trx, mint, owner)
	require.NoError(t, err)
	require.NoError(t, f.ledger.Mint(trx, mint, held, mintAuthority, 50))

	assert.Equal(t, fault.ErrInvalidTransferAuthority, f.ledger.Approve(trx, held, program, owner, 50), "program owner")
	assert.Equal(t, fault.ErrInvalidTransferAuthority, f.ledger.Approve(trx, other, owner, program, 50), "program delegate")

	// acting as owner is still allowed
	require.NoError(t, f.ledger.Transfer(trx, held, other, 10, program))

	a := &token.Account{Owner: owner, Delegate: program, DelegatedAmount: 5}
	assert.Equal(t, fault.ErrInvalidTransferAuthority, a.Authorises(program, 1), "program delegate")
	assert.NoError(t, a.Authorises(owner, 1), "owner")
}

func TestBurn(t *testing.T) {
	f := setup(t)
	mintAuthority := newKey(t)
	owner := newKey(t)

	trx, err := f.store.Begin()
	require.NoError(t, err)
	defer trx.Abort()

	mint, err := f.ledger.CreateMint(trx, 0, mintAuthority, mintAuthority)
	require.NoError(t, err)
	other, err := f.ledger.CreateMint(trx, 0, mintAuthority, mintAuthority)
	require.NoError(t, err)
	holder, err := f.ledger.CreateAccount(trx, mint, owner)
	require.NoError(t, err)
	require.NoError(t, f.ledger.Mint(trx, mint, holder, mintAuthority, 10))

	assert.Equal(t, fault.ErrMintMismatch, f.ledger.Burn(trx, other, holder, owner, 1))
	assert.Equal(t, fault.ErrInvalidTransferAuthority, f.ledger.Burn(trx, mint, holder, mintAuthority, 1))
	assert.Equal(t, fault.ErrInsufficientFunds, f.ledger.Burn(trx, mint, holder, owner, 11))

	require.NoError(t, f.ledger.Burn(trx, mint, holder, owner, 4))

	m, err := f.ledger.GetMint(trx, mint)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), m.Supply)
	a, err := f.ledger.GetAccount(trx, holder)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), a.Amount)
}

func TestAbortLeavesLedgerUntouched(t *testing.T) {
	f := setup(t)
	mintAuthority := newKey(t)

	var mint, holder account.Address
	f.commit(t, func(trx storage.Transaction) {
		var err error
		mint, err = f.ledger.CreateMint(trx, 0, mintAuthority, mintAuthority)
		require.NoError(t, err)
		holder, err = f.ledger.CreateAccount(trx, mint, mintAuthority)
		require.NoError(t, err)
	})

	trx, err := f.store.Begin()
	require.NoError(t, err)
	require.NoError(t, f.ledger.Mint(trx, mint, holder, mintAuthority, 99))
	trx.Abort()

	m, err := f.ledger.GetMint(f.store.Committed(), mint)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), m.Supply)
}
