// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vaultrecord

import (
	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/fault"
	"github.com/bitmark-inc/tokenvault/util"
)

// Key - read the discriminator without decoding the rest
func (record Packed) Key() (Key, error) {
	k, n := util.FromVarint64(record)
	if 0 == n {
		return 0, fault.ErrRecordTruncated
	}
	return Key(k), nil
}

// Unpack - turn a byte slice into a record
//
// returns the record and the number of bytes consumed, must cast
// result to correct type
//
// e.g.
//   switch r := result.(type) {
//   case *vaultrecord.Vault:
func (record Packed) Unpack() (Record, int, error) {
	r := &reader{buffer: record}

	k := Key(r.uint64())

	var result Record
	switch k {

	case Uninitialised, VaultV1:
		v := &Vault{
			Key: k,
		}
		v.State = State(r.uint64())
		v.Authority = r.address()
		v.FractionMint = r.address()
		v.FractionTreasury = r.address()
		v.RedeemTreasury = r.address()
		v.PricingLookupAddress = r.address()
		v.AllowFurtherShareCreation = r.bool()
		v.TokenTypeCount = r.uint64()
		v.LockedPricePerShare = r.uint64()
		result = v

	case SafetyDepositBoxV1:
		b := &SafetyDepositBox{
			Key: k,
		}
		b.Vault = r.address()
		b.TokenMint = r.address()
		b.Store = r.address()
		b.Amount = r.uint64()
		b.Order = r.uint64()
		result = b

	case ExternalPriceAccountV1:
		p := &ExternalPrice{
			Key: k,
		}
		p.PricePerShare = r.uint64()
		p.PriceMint = r.address()
		p.AllowedToCombine = r.bool()
		result = p

	default:
		if nil == r.err {
			r.err = fault.ErrInvalidKey
		}
	}

	if nil != r.err {
		return nil, 0, r.err
	}
	return result, r.n, nil
}

// UnpackVault - a complete vault record with no trailing data
func (record Packed) UnpackVault() (*Vault, error) {
	r, err := record.unpackExactly()
	if nil != err {
		return nil, err
	}
	v, ok := r.(*Vault)
	if !ok {
		return nil, fault.ErrInvalidKey
	}
	return v, nil
}

// UnpackSafetyDepositBox - a complete box record with no trailing data
func (record Packed) UnpackSafetyDepositBox() (*SafetyDepositBox, error) {
	r, err := record.unpackExactly()
	if nil != err {
		return nil, err
	}
	b, ok := r.(*SafetyDepositBox)
	if !ok {
		return nil, fault.ErrInvalidKey
	}
	return b, nil
}

// UnpackExternalPrice - a complete price record with no trailing data
func (record Packed) UnpackExternalPrice() (*ExternalPrice, error) {
	r, err := record.unpackExactly()
	if nil != err {
		return nil, err
	}
	p, ok := r.(*ExternalPrice)
	if !ok {
		return nil, fault.ErrInvalidKey
	}
	return p, nil
}

func (record Packed) unpackExactly() (Record, error) {
	r, n, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	if n != len(record) {
		return nil, fault.ErrRecordTrailingData
	}
	return r, nil
}

// sequential field reader, the first failure sticks
type reader struct {
	buffer []byte
	n      int
	err    error
}

func (r *reader) uint64() uint64 {
	if nil != r.err {
		return 0
	}
	value, count := util.FromVarint64(r.buffer[r.n:])
	if 0 == count {
		r.err = fault.ErrRecordTruncated
		return 0
	}
	r.n += count
	return value
}

func (r *reader) address() account.Address {
	a := account.Address{}
	if nil != r.err {
		return a
	}
	if len(r.buffer)-r.n < account.AddressLength {
		r.err = fault.ErrRecordTruncated
		return a
	}
	copy(a[:], r.buffer[r.n:])
	r.n += account.AddressLength
	return a
}

func (r *reader) bool() bool {
	if nil != r.err {
		return false
	}
	if r.n >= len(r.buffer) {
		r.err = fault.ErrRecordTruncated
		return false
	}
	flag := r.buffer[r.n]
	r.n += 1
	switch flag {
	case 0:
		return false
	case 1:
		return true
	default:
		r.err = fault.ErrInvalidFlag
		return false
	}
}
