// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"encoding/binary"

	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/authority"
	"github.com/bitmark-inc/tokenvault/fault"
	"github.com/bitmark-inc/tokenvault/vaultrecord"
)

// DepositToken - lock one token type into a new safety deposit box
//
// only while Inactive, and only once per token mint
func (e *Engine) DepositToken(request DepositRequest) (*vaultrecord.SafetyDepositBox, error) {
	var box *vaultrecord.SafetyDepositBox

	err := e.update("deposit", request.Vault, request.Authority, func(op *operation) error {
		v := op.record
		if vaultrecord.Inactive != v.State {
			return fault.ErrInvalidState
		}
		if 0 == request.Amount {
			return fault.ErrZeroAmount
		}
		if err := checkTransferAuthority(request.TransferAuthority); nil != err {
			return err
		}

		source, err := e.ledger.GetAccount(op.trx, request.Source)
		if nil != err {
			return err
		}
		if err := checkAllowance(source, request.TransferAuthority, request.Amount); nil != err {
			return err
		}

		derived, err := authority.SafetyDepositBox(e.programId, op.vault, source.Mint)
		if nil != err {
			return err
		}
		if op.trx.Has(e.store.Pool.DepositsByMint, derived.Address[:]) {
			return fault.ErrDuplicateDeposit
		}

		store, err := e.ledger.CreateAccount(op.trx, source.Mint, op.authority)
		if nil != err {
			return err
		}
		err = e.ledger.Transfer(op.trx, request.Source, store, request.Amount, request.TransferAuthority)
		if nil != err {
			return err
		}

		box = &vaultrecord.SafetyDepositBox{
			Key:       vaultrecord.SafetyDepositBoxV1,
			Vault:     op.vault,
			TokenMint: source.Mint,
			Store:     store,
			Amount:    request.Amount,
			Order:     v.TokenTypeCount,
		}
		op.trx.Put(e.store.Pool.SafetyDeposits, boxKey(op.vault, box.Order), box.Pack())
		op.trx.PutN(e.store.Pool.DepositsByMint, derived.Address[:], box.Order)

		v.TokenTypeCount += 1
		return nil
	})
	if nil != err {
		return nil, err
	}
	return box, nil
}

// Box - the safety deposit box at orderIndex
func (e *Engine) Box(vault account.Address, order uint64) (*vaultrecord.SafetyDepositBox, error) {
	buffer := e.store.Pool.SafetyDeposits.Get(boxKey(vault, order))
	if nil == buffer {
		return nil, fault.ErrNotFoundSafetyDepositBox
	}
	return vaultrecord.Packed(buffer).UnpackSafetyDepositBox()
}

// BoxForMint - the safety deposit box holding tokenMint
func (e *Engine) BoxForMint(vault account.Address, tokenMint account.Address) (*vaultrecord.SafetyDepositBox, error) {
	derived, err := authority.SafetyDepositBox(e.programId, vault, tokenMint)
	if nil != err {
		return nil, err
	}
	order, found := e.store.Pool.DepositsByMint.GetN(derived.Address[:])
	if !found {
		return nil, fault.ErrNotFoundSafetyDepositBox
	}
	return e.Box(vault, order)
}

// Boxes - all safety deposit boxes of a vault in orderIndex order
func (e *Engine) Boxes(vault account.Address) ([]*vaultrecord.SafetyDepositBox, error) {
	boxes := make([]*vaultrecord.SafetyDepositBox, 0)
	cursor := e.store.Pool.SafetyDeposits.NewPrefixCursor(vault[:])
	err := cursor.Map(func(key []byte, value []byte) error {
		box, err := vaultrecord.Packed(value).UnpackSafetyDepositBox()
		if nil != err {
			return err
		}
		boxes = append(boxes, box)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return boxes, nil
}

// vault ++ big endian order so a prefix scan is in order
func boxKey(vault account.Address, order uint64) []byte {
	key := make([]byte, account.AddressLength+8)
	copy(key, vault[:])
	binary.BigEndian.PutUint64(key[account.AddressLength:], order)
	return key
}
