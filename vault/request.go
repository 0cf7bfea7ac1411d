// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/tokenvault/account"
)

// SetupRequest - accounts to create before a vault can be initialised
type SetupRequest struct {
	Authority                 account.Address `json:"authority"`
	PricingLookupAddress      account.Address `json:"pricingLookupAddress"`
	AllowFurtherShareCreation bool            `json:"allowFurtherShareCreation"`
}

// InitialiseRequest - a complete set of accounts for Initialise
type InitialiseRequest struct {
	Vault                     account.Address `json:"vault"`
	Authority                 account.Address `json:"authority"`
	FractionMint              account.Address `json:"fractionMint"`
	FractionTreasury          account.Address `json:"fractionTreasury"`
	RedeemTreasury            account.Address `json:"redeemTreasury"`
	PricingLookupAddress      account.Address `json:"pricingLookupAddress"`
	AllowFurtherShareCreation bool            `json:"allowFurtherShareCreation"`
}

// DepositRequest - move one token type into a new safety deposit box
//
// the token mint is the mint of Source, TransferAuthority must be the
// delegate approved on Source for exactly Amount
type DepositRequest struct {
	Vault             account.Address
	Authority         account.Address
	Source            account.Address
	TransferAuthority account.Address
	Amount            uint64
}

// ActivateRequest - close deposits and mint the initial shares
type ActivateRequest struct {
	Vault          account.Address
	Authority      account.Address
	NumberOfShares uint64
}

// MintSharesRequest - further shares into the fraction treasury
type MintSharesRequest struct {
	Vault          account.Address
	Authority      account.Address
	NumberOfShares uint64
}

// AddSharesRequest - return existing shares to the fraction treasury
type AddSharesRequest struct {
	Vault             account.Address
	Authority         account.Address
	Source            account.Address
	TransferAuthority account.Address
	NumberOfShares    uint64
}

// CombineRequest - buy out every other holder and take the vault
//
// a zero NewAuthority keeps the current authority, TransferAuthority
// must be allowed to move the payment and the outstanding shares
type CombineRequest struct {
	Vault             account.Address
	Authority         account.Address
	NewAuthority      account.Address
	OutstandingShares account.Address
	Payment           account.Address
	TransferAuthority account.Address
}
