// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/fault"
	pricingmocks "github.com/bitmark-inc/tokenvault/pricing/mocks"
	tokenmocks "github.com/bitmark-inc/tokenvault/token/mocks"
	"github.com/bitmark-inc/tokenvault/vault"
	"github.com/bitmark-inc/tokenvault/vaultrecord"
)

func TestBuyout(t *testing.T) {
	tests := []struct {
		supply      uint64
		treasury    uint64
		outstanding uint64
		price       uint64
		expected    vault.BuyoutCalculation
	}{
		{1000, 300, 100, 2, vault.BuyoutCalculation{
			TotalMarketCap:       2000,
			StoredMarketCap:      600,
			CirculatingMarketCap: 1400,
			YourShareValue:       200,
			WhatYouOwe:           1200,
		}},
		{0, 0, 0, 2, vault.BuyoutCalculation{}},
		{1000, 1000, 0, 7, vault.BuyoutCalculation{
			TotalMarketCap:  7000,
			StoredMarketCap: 7000,
		}},
		{1000, 0, 1000, 3, vault.BuyoutCalculation{
			TotalMarketCap:       3000,
			CirculatingMarketCap: 3000,
			YourShareValue:       3000,
		}},
		{500, 100, 50, 0, vault.BuyoutCalculation{}},
	}

	for i, test := range tests {
		c, err := vault.Buyout(test.supply, test.treasury, test.outstanding, test.price)
		require.NoError(t, err, "%d", i)
		assert.Equal(t, test.expected, *c, "%d", i)
	}
}

func TestBuyoutFailures(t *testing.T) {
	_, err := vault.Buyout(1000, 300, 701, 2)
	assert.Equal(t, fault.ErrNegativeOwed, err, "more outstanding than circulating")

	_, err = vault.Buyout(100, 101, 0, 1)
	assert.Equal(t, fault.ErrNegativeOwed, err, "treasury above supply")

	_, err = vault.Buyout(math.MaxUint64, 0, 0, 2)
	assert.Equal(t, fault.ErrArithmeticOverflow, err)

	_, err = vault.Buyout(1<<32, 0, 0, 1<<32)
	assert.Equal(t, fault.ErrArithmeticOverflow, err)
}

// an active vault: supply 1000, treasury 300, caller holds 100 shares,
// third parties hold 600, price 2
type combination struct {
	request           *vault.InitialiseRequest
	holder            account.Address
	outstanding       account.Address
	payment           account.Address
	transferAuthority account.Address
}

func (f *fixture) newCombination(t *testing.T, payment uint64) *combination {
	request := f.newVault(t, false)
	_, err := f.deposit(t, request.Vault, f.newDepositor(t, 1, 1), 1)
	require.NoError(t, err)
	f.activate(t, request.Vault, 1000)

	vaultAuthority := f.vaultAuthority(t, request.Vault)
	c := &combination{
		request:           request,
		holder:            newKey(t),
		transferAuthority: newKey(t),
	}
	c.outstanding = f.newAccount(t, request.FractionMint, c.holder, 0)
	others := f.newAccount(t, request.FractionMint, newKey(t), 0)
	f.transfer(t, request.FractionTreasury, c.outstanding, 100, vaultAuthority)
	f.transfer(t, request.FractionTreasury, others, 600, vaultAuthority)

	c.payment = f.newAccount(t, f.priceMint, c.holder, payment)
	f.approve(t, c.payment, c.holder, c.transferAuthority, payment)
	f.approve(t, c.outstanding, c.holder, c.transferAuthority, 100)
	return c
}

func (c *combination) combineRequest(authority account.Address, newAuthority account.Address) vault.CombineRequest {
	return vault.CombineRequest{
		Vault:             c.request.Vault,
		Authority:         authority,
		NewAuthority:      newAuthority,
		OutstandingShares: c.outstanding,
		Payment:           c.payment,
		TransferAuthority: c.transferAuthority,
	}
}

func TestCombine(t *testing.T) {
	f := setup(t)
	c := f.newCombination(t, 1500)
	newOwner := newKey(t)

	calculation, err := f.engine.Combine(c.combineRequest(f.owner, newOwner))
	require.NoError(t, err)
	assert.Equal(t, vault.BuyoutCalculation{
		TotalMarketCap:       2000,
		StoredMarketCap:      600,
		CirculatingMarketCap: 1400,
		YourShareValue:       200,
		WhatYouOwe:           1200,
	}, *calculation)

	v := f.vault(t, c.request.Vault)
	assert.Equal(t, vaultrecord.Combined, v.State)
	assert.Equal(t, newOwner, v.Authority)
	assert.Equal(t, uint64(2), v.LockedPricePerShare)
	assert.Equal(t, uint64(1), v.TokenTypeCount)

	assert.Equal(t, uint64(300), f.account(t, c.payment).Amount)
	assert.Equal(t, uint64(1200), f.account(t, c.request.RedeemTreasury).Amount)
	assert.Equal(t, uint64(0), f.account(t, c.outstanding).Amount)
	assert.Equal(t, uint64(0), f.account(t, c.request.FractionTreasury).Amount)
	assert.Equal(t, uint64(600), f.mint(t, c.request.FractionMint).Supply)

	// price changes do not move the locked price
	f.setPrice(t, 9, true)
	assert.Equal(t, uint64(2), f.vault(t, c.request.Vault).LockedPricePerShare)

	// terminal for every mutation
	_, err = f.engine.Combine(c.combineRequest(newOwner, account.Zero))
	assert.Equal(t, fault.ErrInvalidState, err)
	err = f.engine.MintShares(vault.MintSharesRequest{Vault: c.request.Vault, Authority: newOwner, NumberOfShares: 1})
	assert.Equal(t, fault.ErrInvalidState, err)
	err = f.engine.Activate(vault.ActivateRequest{Vault: c.request.Vault, Authority: newOwner})
	assert.Equal(t, fault.ErrInvalidState, err)
	d := f.newDepositor(t, 1, 1)
	_, err = f.engine.DepositToken(vault.DepositRequest{
		Vault:             c.request.Vault,
		Authority:         newOwner,
		Source:            d.source,
		TransferAuthority: d.transferAuthority,
		Amount:            1,
	})
	assert.Equal(t, fault.ErrInvalidState, err)

	v = f.vault(t, c.request.Vault)
	assert.Equal(t, vaultrecord.Combined, v.State)
	assert.Equal(t, uint64(2), v.LockedPricePerShare)
}

func TestCombineKeepsAuthority(t *testing.T) {
	f := setup(t)
	c := f.newCombination(t, 1200)

	_, err := f.engine.Combine(c.combineRequest(f.owner, account.Zero))
	require.NoError(t, err)
	assert.Equal(t, f.owner, f.vault(t, c.request.Vault).Authority)
	assert.Equal(t, uint64(0), f.account(t, c.payment).Amount)
}

func TestCombineWithNoShares(t *testing.T) {
	f := setup(t)
	request := f.newVault(t, false)
	f.activate(t, request.Vault, 0)

	holder := newKey(t)
	transferAuthority := newKey(t)
	outstanding := f.newAccount(t, request.FractionMint, holder, 0)
	payment := f.newAccount(t, f.priceMint, holder, 0)
	f.approve(t, outstanding, holder, transferAuthority, 0)
	f.approve(t, payment, holder, transferAuthority, 0)

	calculation, err := f.engine.Combine(vault.CombineRequest{
		Vault:             request.Vault,
		Authority:         f.owner,
		OutstandingShares: outstanding,
		Payment:           payment,
		TransferAuthority: transferAuthority,
	})
	require.NoError(t, err)
	assert.Equal(t, vault.BuyoutCalculation{}, *calculation)

	v := f.vault(t, request.Vault)
	assert.Equal(t, vaultrecord.Combined, v.State)
	assert.Equal(t, uint64(2), v.LockedPricePerShare)
	assert.Equal(t, uint64(0), f.mint(t, request.FractionMint).Supply)
}

// snapshot of everything a failed combine must leave alone
type balances struct {
	vault       vaultrecord.Vault
	payment     uint64
	outstanding uint64
	treasury    uint64
	redeem      uint64
	supply      uint64
}

func (f *fixture) balances(t *testing.T, c *combination) balances {
	return balances{
		vault:       *f.vault(t, c.request.Vault),
		payment:     f.account(t, c.payment).Amount,
		outstanding: f.account(t, c.outstanding).Amount,
		treasury:    f.account(t, c.request.FractionTreasury).Amount,
		redeem:      f.account(t, c.request.RedeemTreasury).Amount,
		supply:      f.mint(t, c.request.FractionMint).Supply,
	}
}

func TestCombineInsufficientPayment(t *testing.T) {
	f := setup(t)
	c := f.newCombination(t, 1199)
	before := f.balances(t, c)

	_, err := f.engine.Combine(c.combineRequest(f.owner, newKey(t)))
	assert.Equal(t, fault.ErrInsufficientPayment, err)

	after := f.balances(t, c)
	assert.Equal(t, before, after)
	assert.Equal(t, vaultrecord.Active, after.vault.State)
	assert.Equal(t, uint64(0), after.vault.LockedPricePerShare)
}

func TestCombineRejections(t *testing.T) {
	f := setup(t)
	c := f.newCombination(t, 1200)
	before := f.balances(t, c)

	_, err := f.engine.Combine(c.combineRequest(newKey(t), account.Zero))
	assert.Equal(t, fault.ErrInvalidAuthority, err)

	f.setPrice(t, 2, false)
	_, err = f.engine.Combine(c.combineRequest(f.owner, account.Zero))
	assert.Equal(t, fault.ErrCombinationDisallowed, err)
	f.setPrice(t, 2, true)

	wrongPayment := c.combineRequest(f.owner, account.Zero)
	wrongPayment.Payment = f.newAccount(t, f.newMint(t), c.holder, 5000)
	_, err = f.engine.Combine(wrongPayment)
	assert.Equal(t, fault.ErrMintMismatch, err, "payment mint")

	wrongShares := c.combineRequest(f.owner, account.Zero)
	wrongShares.OutstandingShares = c.payment
	_, err = f.engine.Combine(wrongShares)
	assert.Equal(t, fault.ErrMintMismatch, err, "outstanding mint")

	treasury := c.combineRequest(f.owner, account.Zero)
	treasury.OutstandingShares = c.request.FractionTreasury
	_, err = f.engine.Combine(treasury)
	assert.Equal(t, fault.ErrSameAccount, err)

	stranger := c.combineRequest(f.owner, account.Zero)
	stranger.TransferAuthority = newKey(t)
	_, err = f.engine.Combine(stranger)
	assert.Equal(t, fault.ErrInvalidTransferAuthority, err)

	// approval covers the payment but not the outstanding shares
	f.approve(t, c.outstanding, c.holder, c.transferAuthority, 99)
	_, err = f.engine.Combine(c.combineRequest(f.owner, account.Zero))
	assert.Equal(t, fault.ErrInvalidTransferAuthority, err)

	assert.Equal(t, before, f.balances(t, c))
}

func TestCombineRejectsProgramSigners(t *testing.T) {
	f := setup(t)

	// b is combined first, leaving its settlement in the redeem treasury
	b := f.newCombination(t, 1200)
	_, err := f.engine.Combine(b.combineRequest(f.owner, account.Zero))
	require.NoError(t, err)
	require.Equal(t, uint64(1200), f.account(t, b.request.RedeemTreasury).Amount)

	a := f.newCombination(t, 0)
	before := f.balances(t, a)

	spend := a.combineRequest(f.owner, account.Zero)
	spend.Payment = b.request.RedeemTreasury
	spend.TransferAuthority = f.vaultAuthority(t, b.request.Vault)
	_, err = f.engine.Combine(spend)
	assert.Equal(t, fault.ErrInvalidTransferAuthority, err, "other vault authority")

	own := a.combineRequest(f.owner, account.Zero)
	own.Payment = b.request.RedeemTreasury
	own.TransferAuthority = f.vaultAuthority(t, a.request.Vault)
	_, err = f.engine.Combine(own)
	assert.Equal(t, fault.ErrInvalidTransferAuthority, err, "own vault authority")

	_, err = f.engine.Combine(a.combineRequest(f.owner, f.vaultAuthority(t, b.request.Vault)))
	assert.Equal(t, fault.ErrInvalidAuthority, err, "new authority")

	_, err = f.engine.Combine(a.combineRequest(f.vaultAuthority(t, a.request.Vault), account.Zero))
	assert.Equal(t, fault.ErrInvalidAuthority, err, "signer")

	assert.Equal(t, before, f.balances(t, a))
	assert.Equal(t, uint64(1200), f.account(t, b.request.RedeemTreasury).Amount)
	assert.Equal(t, vaultrecord.Active, f.vault(t, a.request.Vault).State)
}

func TestCombineAtZeroPrice(t *testing.T) {
	f := setup(t)
	f.setPrice(t, 0, true)
	c := f.newCombination(t, 0)

	calculation, err := f.engine.Combine(c.combineRequest(f.owner, account.Zero))
	require.NoError(t, err)
	assert.Equal(t, vault.BuyoutCalculation{}, *calculation)

	// the locked price is zero, only the state shows it was set
	v := f.vault(t, c.request.Vault)
	assert.Equal(t, vaultrecord.Combined, v.State)
	assert.Equal(t, uint64(0), v.LockedPricePerShare)
	assert.Equal(t, uint64(600), f.mint(t, c.request.FractionMint).Supply)
}

func TestCombineAbortsWhenSettlementFails(t *testing.T) {
	f := setup(t)
	c := f.newCombination(t, 1200)
	before := f.balances(t, c)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// the payment transfer succeeds in the transaction, the first burn fails
	ledger := tokenmocks.NewMockLedger(ctl)
	ledger.EXPECT().GetAccount(gomock.Any(), gomock.Any()).DoAndReturn(f.ledger.GetAccount).AnyTimes()
	ledger.EXPECT().GetMint(gomock.Any(), gomock.Any()).DoAndReturn(f.ledger.GetMint).AnyTimes()
	ledger.EXPECT().Transfer(gomock.Any(), c.payment, c.request.RedeemTreasury, uint64(1200), c.transferAuthority).DoAndReturn(f.ledger.Transfer).Times(1)
	ledger.EXPECT().Burn(gomock.Any(), c.request.FractionMint, c.outstanding, c.transferAuthority, uint64(100)).Return(fault.ErrInsufficientFunds).Times(1)

	engine, err := vault.New(programId, f.store, ledger, f.prices)
	require.NoError(t, err)

	_, err = engine.Combine(c.combineRequest(f.owner, newKey(t)))
	assert.Equal(t, fault.ErrInsufficientFunds, err)

	assert.Equal(t, before, f.balances(t, c))
}

func TestCombineMissingPrice(t *testing.T) {
	f := setup(t)
	c := f.newCombination(t, 1200)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	prices := pricingmocks.NewMockLookup(ctl)
	prices.EXPECT().Get(gomock.Any(), f.priceAccount).Return(nil, fault.ErrNotFoundPrice).Times(1)

	engine, err := vault.New(programId, f.store, f.ledger, prices)
	require.NoError(t, err)

	_, err = engine.Combine(c.combineRequest(f.owner, account.Zero))
	assert.Equal(t, fault.ErrNotFoundPrice, err)
	assert.Equal(t, vaultrecord.Active, f.vault(t, c.request.Vault).State)
}
