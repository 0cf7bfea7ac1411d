// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pricing - external price accounts consumed by vault combination
//
// the vault only reads a price, Put exists to provision price accounts
// from tooling and tests
package pricing

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/fault"
	"github.com/bitmark-inc/tokenvault/storage"
	"github.com/bitmark-inc/tokenvault/vaultrecord"
)

// Lookup - read contract of a pricing lookup account
type Lookup interface {
	Get(storage.Reader, account.Address) (*vaultrecord.ExternalPrice, error)
}

// Writer - provisioning side of a pricing lookup
type Writer interface {
	Lookup
	Put(storage.Transaction, account.Address, *vaultrecord.ExternalPrice) error
}

type pool struct {
	log    *logger.L
	prices *storage.PoolHandle
}

// New - price accounts held in the store's external pricing pool
func New(store *storage.Store) Writer {
	return &pool{
		log:    logger.New("pricing"),
		prices: store.Pool.ExternalPricing,
	}
}

// Get - current snapshot of a price account
func (p *pool) Get(r storage.Reader, address account.Address) (*vaultrecord.ExternalPrice, error) {
	buffer := r.Get(p.prices, address[:])
	if nil == buffer {
		return nil, fault.ErrNotFoundPrice
	}
	return vaultrecord.Packed(buffer).UnpackExternalPrice()
}

// Put - create or replace a price account
func (p *pool) Put(trx storage.Transaction, address account.Address, price *vaultrecord.ExternalPrice) error {
	if address.IsZero() {
		return fault.ErrInvalidAddress
	}
	price.Key = vaultrecord.ExternalPriceAccountV1
	trx.Put(p.prices, address[:], price.Pack())
	p.log.Infof("price: %s  per share: %d  mint: %s  allowed to combine: %v", address, price.PricePerShare, price.PriceMint, price.AllowedToCombine)
	return nil
}
