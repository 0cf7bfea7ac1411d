// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/authority"
	"github.com/bitmark-inc/tokenvault/fault"
	"github.com/bitmark-inc/tokenvault/storage"
	"github.com/bitmark-inc/tokenvault/vaultrecord"
)

// Create - allocate an uninitialised vault record
func (e *Engine) Create() (account.Address, error) {
	trx, err := e.store.Begin()
	if nil != err {
		return account.Zero, err
	}
	defer trx.Abort()

	vault, err := e.create(trx)
	if nil != err {
		return account.Zero, err
	}
	if err := trx.Commit(); nil != err {
		return account.Zero, err
	}
	e.log.Infof("created vault: %s", vault)
	return vault, nil
}

func (e *Engine) create(trx storage.Transaction) (account.Address, error) {
	vault, err := account.Generate()
	if nil != err {
		return account.Zero, err
	}
	if trx.Has(e.store.Pool.Vaults, vault[:]) {
		return account.Zero, fault.ErrVaultAlreadyExists
	}
	e.write(trx, vault, &vaultrecord.Vault{})
	return vault, nil
}

// Setup - create the vault record, fraction mint and both treasuries
//
// the result is ready to pass to Initialise
func (e *Engine) Setup(request SetupRequest) (*InitialiseRequest, error) {
	if request.Authority.IsZero() || authority.IsProgramAddress(request.Authority) {
		return nil, fault.ErrInvalidAuthority
	}

	trx, err := e.store.Begin()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()

	price, err := e.prices.Get(trx, request.PricingLookupAddress)
	if nil != err {
		return nil, err
	}

	vault, err := e.create(trx)
	if nil != err {
		return nil, err
	}
	derived, err := e.Authority(vault)
	if nil != err {
		return nil, err
	}
	vaultAuthority := derived.Address

	fractionMint, err := e.ledger.CreateMint(trx, 0, vaultAuthority, vaultAuthority)
	if nil != err {
		return nil, err
	}
	fractionTreasury, err := e.ledger.CreateAccount(trx, fractionMint, vaultAuthority)
	if nil != err {
		return nil, err
	}
	redeemTreasury, err := e.ledger.CreateAccount(trx, price.PriceMint, vaultAuthority)
	if nil != err {
		return nil, err
	}

	if err := trx.Commit(); nil != err {
		return nil, err
	}

	e.log.Infof("setup vault: %s  fraction mint: %s  authority: %s", vault, fractionMint, vaultAuthority)

	return &InitialiseRequest{
		Vault:                     vault,
		Authority:                 request.Authority,
		FractionMint:              fractionMint,
		FractionTreasury:          fractionTreasury,
		RedeemTreasury:            redeemTreasury,
		PricingLookupAddress:      request.PricingLookupAddress,
		AllowFurtherShareCreation: request.AllowFurtherShareCreation,
	}, nil
}

// Initialise - populate a freshly created vault record, entering Inactive
func (e *Engine) Initialise(request InitialiseRequest) error {
	trx, err := e.store.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	v, err := e.read(trx, request.Vault)
	if nil != err {
		return err
	}
	if vaultrecord.Uninitialised != v.Key {
		e.log.Warnf("initialise: vault: %s  already initialised", request.Vault)
		return fault.ErrAlreadyInitialised
	}
	if request.Authority.IsZero() || authority.IsProgramAddress(request.Authority) {
		return fault.ErrInvalidAuthority
	}

	derived, err := e.Authority(request.Vault)
	if nil != err {
		return err
	}
	vaultAuthority := derived.Address

	mint, err := e.ledger.GetMint(trx, request.FractionMint)
	if nil != err {
		return err
	}
	if 0 != mint.Supply {
		return fault.ErrSupplyNotZero
	}
	if mint.MintAuthority != vaultAuthority || mint.FreezeAuthority != vaultAuthority {
		return fault.ErrInvalidMintAuthority
	}

	price, err := e.prices.Get(trx, request.PricingLookupAddress)
	if nil != err {
		return err
	}

	if err := e.checkTreasury(trx, request.FractionTreasury, vaultAuthority, request.FractionMint); nil != err {
		return err
	}
	if err := e.checkTreasury(trx, request.RedeemTreasury, vaultAuthority, price.PriceMint); nil != err {
		return err
	}

	v = &vaultrecord.Vault{
		Key:                       vaultrecord.VaultV1,
		State:                     vaultrecord.Inactive,
		Authority:                 request.Authority,
		FractionMint:              request.FractionMint,
		FractionTreasury:          request.FractionTreasury,
		RedeemTreasury:            request.RedeemTreasury,
		PricingLookupAddress:      request.PricingLookupAddress,
		AllowFurtherShareCreation: request.AllowFurtherShareCreation,
	}
	e.write(trx, request.Vault, v)
	if err := trx.Commit(); nil != err {
		return err
	}

	e.log.Infof("initialised vault: %s  authority: %s  further shares: %v", request.Vault, request.Authority, request.AllowFurtherShareCreation)
	return nil
}

// Activate - freeze deposits and mint the initial shares
//
// the number of shares may be zero
func (e *Engine) Activate(request ActivateRequest) error {
	return e.update("activate", request.Vault, request.Authority, func(op *operation) error {
		v := op.record
		if vaultrecord.Inactive != v.State {
			return fault.ErrInvalidState
		}
		err := e.ledger.Mint(op.trx, v.FractionMint, v.FractionTreasury, op.authority, request.NumberOfShares)
		if nil != err {
			return err
		}
		v.State = vaultrecord.Active
		return nil
	})
}
