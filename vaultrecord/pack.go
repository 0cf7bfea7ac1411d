// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vaultrecord

import (
	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/util"
)

// Pack - vault record, the key is written as is so an uninitialised
// record packs to its zero form
func (v *Vault) Pack() Packed {
	message := appendUint64(nil, uint64(v.Key))
	message = appendUint64(message, uint64(v.State))
	message = appendAddress(message, v.Authority)
	message = appendAddress(message, v.FractionMint)
	message = appendAddress(message, v.FractionTreasury)
	message = appendAddress(message, v.RedeemTreasury)
	message = appendAddress(message, v.PricingLookupAddress)
	message = appendBool(message, v.AllowFurtherShareCreation)
	message = appendUint64(message, v.TokenTypeCount)
	return appendUint64(message, v.LockedPricePerShare)
}

// Pack - safety deposit box record
func (b *SafetyDepositBox) Pack() Packed {
	message := appendUint64(nil, uint64(SafetyDepositBoxV1))
	message = appendAddress(message, b.Vault)
	message = appendAddress(message, b.TokenMint)
	message = appendAddress(message, b.Store)
	message = appendUint64(message, b.Amount)
	return appendUint64(message, b.Order)
}

// Pack - external price record
func (p *ExternalPrice) Pack() Packed {
	message := appendUint64(nil, uint64(ExternalPriceAccountV1))
	message = appendUint64(message, p.PricePerShare)
	message = appendAddress(message, p.PriceMint)
	return appendBool(message, p.AllowedToCombine)
}

func appendAddress(buffer Packed, address account.Address) Packed {
	return append(buffer, address[:]...)
}

func appendBool(buffer Packed, flag bool) Packed {
	if flag {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

func appendUint64(buffer Packed, value uint64) Packed {
	return util.AppendVarint64(buffer, value)
}
