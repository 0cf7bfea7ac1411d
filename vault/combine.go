// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"math/bits"

	"github.com/bitmark-inc/tokenvault/authority"
	"github.com/bitmark-inc/tokenvault/fault"
	"github.com/bitmark-inc/tokenvault/vaultrecord"
)

// BuyoutCalculation - the market cap figures behind a combination
type BuyoutCalculation struct {
	TotalMarketCap       uint64 `json:"totalMarketCap"`
	StoredMarketCap      uint64 `json:"storedMarketCap"`
	CirculatingMarketCap uint64 `json:"circulatingMarketCap"`
	YourShareValue       uint64 `json:"yourShareValue"`
	WhatYouOwe           uint64 `json:"whatYouOwe"`
}

// Buyout - amount owed to take the vault when holding outstanding shares
//
//   total       = supply * price
//   stored      = treasury * price
//   circulating = total - stored
//   yours       = outstanding * price
//   owed        = circulating - yours
//
// a negative circulating or owed value is rejected, nothing is refunded
func Buyout(supply uint64, treasury uint64, outstanding uint64, pricePerShare uint64) (*BuyoutCalculation, error) {
	total, err := multiply(supply, pricePerShare)
	if nil != err {
		return nil, err
	}
	stored, err := multiply(treasury, pricePerShare)
	if nil != err {
		return nil, err
	}
	yours, err := multiply(outstanding, pricePerShare)
	if nil != err {
		return nil, err
	}
	if stored > total {
		return nil, fault.ErrNegativeOwed
	}
	circulating := total - stored
	if yours > circulating {
		return nil, fault.ErrNegativeOwed
	}
	return &BuyoutCalculation{
		TotalMarketCap:       total,
		StoredMarketCap:      stored,
		CirculatingMarketCap: circulating,
		YourShareValue:       yours,
		WhatYouOwe:           circulating - yours,
	}, nil
}

func multiply(a uint64, b uint64) (uint64, error) {
	high, low := bits.Mul64(a, b)
	if 0 != high {
		return 0, fault.ErrArithmeticOverflow
	}
	return low, nil
}

// Combine - pay out the circulating shares and take the vault
//
// the payment moves to the redeem treasury, the caller's outstanding
// shares and the whole fraction treasury are burned, and the vault is
// left Combined at the current price
func (e *Engine) Combine(request CombineRequest) (*BuyoutCalculation, error) {
	var calculation *BuyoutCalculation

	err := e.update("combine", request.Vault, request.Authority, func(op *operation) error {
		v := op.record
		if vaultrecord.Active != v.State {
			return fault.ErrInvalidState
		}
		if authority.IsProgramAddress(request.NewAuthority) {
			return fault.ErrInvalidAuthority
		}

		price, err := e.prices.Get(op.trx, v.PricingLookupAddress)
		if nil != err {
			return err
		}
		if !price.AllowedToCombine {
			return fault.ErrCombinationDisallowed
		}

		redeem, err := e.ledger.GetAccount(op.trx, v.RedeemTreasury)
		if nil != err {
			return err
		}
		outstanding, err := e.ledger.GetAccount(op.trx, request.OutstandingShares)
		if nil != err {
			return err
		}
		payment, err := e.ledger.GetAccount(op.trx, request.Payment)
		if nil != err {
			return err
		}
		if redeem.Mint != price.PriceMint || outstanding.Mint != v.FractionMint || payment.Mint != price.PriceMint {
			return fault.ErrMintMismatch
		}
		if request.OutstandingShares == v.FractionTreasury {
			return fault.ErrSameAccount
		}

		mint, err := e.ledger.GetMint(op.trx, v.FractionMint)
		if nil != err {
			return err
		}
		treasury, err := e.ledger.GetAccount(op.trx, v.FractionTreasury)
		if nil != err {
			return err
		}

		calculation, err = Buyout(mint.Supply, treasury.Amount, outstanding.Amount, price.PricePerShare)
		if nil != err {
			return err
		}
		e.log.Debugf("combine: vault: %s  calculation: %+v", op.vault, *calculation)

		if payment.Amount < calculation.WhatYouOwe {
			return fault.ErrInsufficientPayment
		}
		if err := checkTransferAuthority(request.TransferAuthority); nil != err {
			return err
		}
		if err := payment.Authorises(request.TransferAuthority, calculation.WhatYouOwe); nil != err {
			return err
		}
		if err := outstanding.Authorises(request.TransferAuthority, outstanding.Amount); nil != err {
			return err
		}

		err = e.ledger.Transfer(op.trx, request.Payment, v.RedeemTreasury, calculation.WhatYouOwe, request.TransferAuthority)
		if nil != err {
			return err
		}
		err = e.ledger.Burn(op.trx, v.FractionMint, request.OutstandingShares, request.TransferAuthority, outstanding.Amount)
		if nil != err {
			return err
		}
		err = e.ledger.Burn(op.trx, v.FractionMint, v.FractionTreasury, op.authority, treasury.Amount)
		if nil != err {
			return err
		}

		if !request.NewAuthority.IsZero() {
			v.Authority = request.NewAuthority
		}
		v.LockedPricePerShare = price.PricePerShare
		v.State = vaultrecord.Combined
		return nil
	})
	if nil != err {
		return nil, err
	}
	return calculation, nil
}
