// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/tokenvault/fault"
	"github.com/bitmark-inc/tokenvault/vaultrecord"
)

// MintShares - mint further shares into the fraction treasury
func (e *Engine) MintShares(request MintSharesRequest) error {
	return e.update("mint shares", request.Vault, request.Authority, func(op *operation) error {
		v := op.record
		if vaultrecord.Active != v.State {
			return fault.ErrInvalidState
		}
		if !v.AllowFurtherShareCreation {
			return fault.ErrShareCreationDisallowed
		}
		return e.ledger.Mint(op.trx, v.FractionMint, v.FractionTreasury, op.authority, request.NumberOfShares)
	})
}

// AddSharesToTreasury - move existing shares back into the fraction treasury
//
// supply is unchanged
func (e *Engine) AddSharesToTreasury(request AddSharesRequest) error {
	return e.update("add shares", request.Vault, request.Authority, func(op *operation) error {
		v := op.record
		if vaultrecord.Active != v.State {
			return fault.ErrInvalidState
		}

		source, err := e.ledger.GetAccount(op.trx, request.Source)
		if nil != err {
			return err
		}
		if source.Mint != v.FractionMint {
			return fault.ErrMintMismatch
		}
		if err := checkTransferAuthority(request.TransferAuthority); nil != err {
			return err
		}
		if err := checkAllowance(source, request.TransferAuthority, request.NumberOfShares); nil != err {
			return err
		}
		return e.ledger.Transfer(op.trx, request.Source, v.FractionTreasury, request.NumberOfShares, request.TransferAuthority)
	})
}
