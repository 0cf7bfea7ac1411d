// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vaultrecord - binary records held in the vault pools
//
// every record starts with a Varint64 key that identifies its layout,
// addresses are stored as raw 32 byte values and all integers as
// Varint64
package vaultrecord

import (
	"github.com/bitmark-inc/tokenvault/account"
)

// Packed - packed records are just a byte slice
type Packed []byte

// Key - record discriminator
type Key uint64

// record keys
const (
	Uninitialised          Key = 0
	SafetyDepositBoxV1     Key = 1
	ExternalPriceAccountV1 Key = 2
	VaultV1                Key = 3
)

func (k Key) String() string {
	switch k {
	case Uninitialised:
		return "Uninitialised"
	case SafetyDepositBoxV1:
		return "SafetyDepositBoxV1"
	case ExternalPriceAccountV1:
		return "ExternalPriceAccountV1"
	case VaultV1:
		return "VaultV1"
	default:
		return "Unknown"
	}
}

// MarshalText - key as its name
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Record - generic record interface
type Record interface {
	Pack() Packed
	RecordKey() Key
}

// Vault - the root record
//
// a freshly created vault is all zero with key Uninitialised
type Vault struct {
	Key                       Key             `json:"key"`
	State                     State           `json:"state"`
	Authority                 account.Address `json:"authority"`
	FractionMint              account.Address `json:"fractionMint"`
	FractionTreasury          account.Address `json:"fractionTreasury"`
	RedeemTreasury            account.Address `json:"redeemTreasury"`
	PricingLookupAddress      account.Address `json:"pricingLookupAddress"`
	AllowFurtherShareCreation bool            `json:"allowFurtherShareCreation"`
	TokenTypeCount            uint64          `json:"tokenTypeCount"`
	// price fixed by Combine, zero is also a valid locked price so
	// only State == Combined says whether it has been set
	LockedPricePerShare       uint64          `json:"lockedPricePerShare"`
}

// SafetyDepositBox - one deposited token type
type SafetyDepositBox struct {
	Key       Key             `json:"key"`
	Vault     account.Address `json:"vault"`
	TokenMint account.Address `json:"tokenMint"`
	Store     account.Address `json:"store"`
	Amount    uint64          `json:"amount"`
	Order     uint64          `json:"order"`
}

// ExternalPrice - snapshot read from a pricing lookup account
type ExternalPrice struct {
	Key              Key             `json:"key"`
	PricePerShare    uint64          `json:"pricePerShare"`
	PriceMint        account.Address `json:"priceMint"`
	AllowedToCombine bool            `json:"allowedToCombine"`
}

// RecordKey - the discriminator of each record
func (v *Vault) RecordKey() Key            { return v.Key }
func (b *SafetyDepositBox) RecordKey() Key { return b.Key }
func (p *ExternalPrice) RecordKey() Key    { return p.Key }

// IsInitialised - true once the vault has been initialised
func (v *Vault) IsInitialised() bool {
	return VaultV1 == v.Key
}
