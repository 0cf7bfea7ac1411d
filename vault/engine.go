// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/authority"
	"github.com/bitmark-inc/tokenvault/fault"
	"github.com/bitmark-inc/tokenvault/pricing"
	"github.com/bitmark-inc/tokenvault/storage"
	"github.com/bitmark-inc/tokenvault/token"
	"github.com/bitmark-inc/tokenvault/vaultrecord"
)

// Engine - runs vault operations against one store
type Engine struct {
	log       *logger.L
	programId account.Address
	store     *storage.Store
	ledger    token.Ledger
	prices    pricing.Lookup
}

// New - engine for vaults owned by programId
func New(programId account.Address, store *storage.Store, ledger token.Ledger, prices pricing.Lookup) (*Engine, error) {
	if programId.IsZero() {
		return nil, fault.ErrMissingProgramId
	}
	if nil == store || nil == ledger || nil == prices {
		return nil, fault.ErrNotInitialised
	}
	e := &Engine{
		log:       logger.New("vault"),
		programId: programId,
		store:     store,
		ledger:    ledger,
		prices:    prices,
	}
	e.log.Infof("program id: %s", programId)
	return e, nil
}

// ProgramId - the program that owns every vault authority
func (e *Engine) ProgramId() account.Address {
	return e.programId
}

// Authority - the derived signing authority of a vault
func (e *Engine) Authority(vault account.Address) (authority.Derived, error) {
	return authority.Derive(e.programId, vault)
}

// Get - committed vault record
func (e *Engine) Get(vault account.Address) (*vaultrecord.Vault, error) {
	return e.read(e.store.Committed(), vault)
}

func (e *Engine) read(r storage.Reader, vault account.Address) (*vaultrecord.Vault, error) {
	buffer := r.Get(e.store.Pool.Vaults, vault[:])
	if nil == buffer {
		return nil, fault.ErrNotFoundVault
	}
	return vaultrecord.Packed(buffer).UnpackVault()
}

func (e *Engine) write(trx storage.Transaction, vault account.Address, v *vaultrecord.Vault) {
	trx.Put(e.store.Pool.Vaults, vault[:], v.Pack())
}

// state passed to the body of every vault mutation
type operation struct {
	trx       storage.Transaction
	vault     account.Address
	record    *vaultrecord.Vault
	authority account.Address
}

// run one mutation of an initialised vault as a single transaction
//
// fn sees a freshly read record, validates everything before it makes
// any change and mutates op.record in place; the record is written and
// committed only if fn succeeds
func (e *Engine) update(name string, vault account.Address, signer account.Address, fn func(op *operation) error) error {
	if authority.IsProgramAddress(signer) {
		e.log.Warnf("%s: vault: %s  signer: %s  is a program address", name, vault, signer)
		return fault.ErrInvalidAuthority
	}

	trx, err := e.store.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	v, err := e.read(trx, vault)
	if nil != err {
		return err
	}
	if !v.IsInitialised() {
		e.log.Warnf("%s: vault: %s  not initialised", name, vault)
		return fault.ErrNotInitialised
	}
	if v.Authority != signer {
		e.log.Warnf("%s: vault: %s  signer: %s  is not authority", name, vault, signer)
		return fault.ErrInvalidAuthority
	}

	derived, err := e.Authority(vault)
	if nil != err {
		return err
	}

	op := &operation{
		trx:       trx,
		vault:     vault,
		record:    v,
		authority: derived.Address,
	}
	if err := fn(op); nil != err {
		e.log.Warnf("%s: vault: %s  state: %s  error: %s", name, vault, v.State, err)
		return err
	}

	e.write(trx, vault, op.record)
	if err := trx.Commit(); nil != err {
		e.log.Errorf("%s: vault: %s  commit error: %s", name, vault, err)
		return err
	}
	e.log.Infof("%s: vault: %s  state: %s", name, vault, op.record.State)
	return nil
}

// an empty treasury owned by the vault authority holding mint
func (e *Engine) checkTreasury(r storage.Reader, address account.Address, vaultAuthority account.Address, mint account.Address) error {
	a, err := e.ledger.GetAccount(r, address)
	if nil != err {
		return err
	}
	if a.Owner != vaultAuthority {
		return fault.ErrInvalidTreasuryOwner
	}
	if a.Mint != mint {
		return fault.ErrMintMismatch
	}
	if 0 != a.Amount {
		return fault.ErrTreasuryNotEmpty
	}
	if a.HasDelegate() {
		return fault.ErrTreasuryHasDelegate
	}
	return nil
}

// a transfer authority named in a request must be able to sign
func checkTransferAuthority(transferAuthority account.Address) error {
	if authority.IsProgramAddress(transferAuthority) {
		return fault.ErrInvalidTransferAuthority
	}
	return nil
}

// delegate approval that matches amount exactly
//
// an owner approving itself would never have the approval consumed
func checkAllowance(a *token.Account, transferAuthority account.Address, amount uint64) error {
	if !a.HasDelegate() || a.Delegate == a.Owner || a.Delegate != transferAuthority || a.DelegatedAmount != amount {
		return fault.ErrAllowanceMismatch
	}
	if a.Amount < amount {
		return fault.ErrInsufficientFunds
	}
	return nil
}
