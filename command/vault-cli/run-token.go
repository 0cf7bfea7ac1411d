// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/storage"
	"github.com/bitmark-inc/tokenvault/vaultrecord"
)

type addressReply struct {
	Address account.Address `json:"address"`
}

func runCreateMint(c *cli.Context) error {
	m := getMetadata(c)

	authority, err := addressFlag(c, "authority")
	if nil != err {
		return err
	}
	freezeAuthority, err := optionalAddressFlag(c, "freeze-authority")
	if nil != err {
		return err
	}
	decimals := c.Uint("decimals")
	if decimals > 255 {
		return fmt.Errorf("decimals: %d is out of range", decimals)
	}

	var mint account.Address
	err = m.inTransaction(func(trx storage.Transaction) error {
		mint, err = m.ledger.CreateMint(trx, uint8(decimals), authority, freezeAuthority)
		return err
	})
	if nil != err {
		return err
	}
	return printJson(m.w, addressReply{Address: mint})
}

func runCreateAccount(c *cli.Context) error {
	m := getMetadata(c)

	mint, err := addressFlag(c, "mint")
	if nil != err {
		return err
	}
	owner, err := addressFlag(c, "owner")
	if nil != err {
		return err
	}

	var address account.Address
	err = m.inTransaction(func(trx storage.Transaction) error {
		address, err = m.ledger.CreateAccount(trx, mint, owner)
		return err
	})
	if nil != err {
		return err
	}
	return printJson(m.w, addressReply{Address: address})
}

func runMint(c *cli.Context) error {
	m := getMetadata(c)

	mint, err := addressFlag(c, "mint")
	if nil != err {
		return err
	}
	destination, err := addressFlag(c, "account")
	if nil != err {
		return err
	}
	authority, err := signerFlag(c, "authority")
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")

	err = m.inTransaction(func(trx storage.Transaction) error {
		return m.ledger.Mint(trx, mint, destination, authority, amount)
	})
	if nil != err {
		return err
	}
	return showAccount(m, destination)
}

func runApprove(c *cli.Context) error {
	m := getMetadata(c)

	address, err := addressFlag(c, "account")
	if nil != err {
		return err
	}
	owner, err := signerFlag(c, "owner")
	if nil != err {
		return err
	}
	delegate, err := addressFlag(c, "delegate")
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")

	err = m.inTransaction(func(trx storage.Transaction) error {
		return m.ledger.Approve(trx, address, owner, delegate, amount)
	})
	if nil != err {
		return err
	}
	return showAccount(m, address)
}

func runBalance(c *cli.Context) error {
	m := getMetadata(c)

	if "" != c.String("mint") {
		mint, err := addressFlag(c, "mint")
		if nil != err {
			return err
		}
		record, err := m.ledger.GetMint(m.store.Committed(), mint)
		if nil != err {
			return err
		}
		return printJson(m.w, record)
	}

	address, err := addressFlag(c, "account")
	if nil != err {
		return err
	}
	return showAccount(m, address)
}

func runPrice(c *cli.Context) error {
	m := getMetadata(c)

	address, err := optionalAddressFlag(c, "address")
	if nil != err {
		return err
	}
	if address.IsZero() {
		address, err = account.Generate()
		if nil != err {
			return err
		}
	}
	mint, err := addressFlag(c, "mint")
	if nil != err {
		return err
	}

	price := &vaultrecord.ExternalPrice{
		PricePerShare:    c.Uint64("price"),
		PriceMint:        mint,
		AllowedToCombine: c.Bool("allow-combine"),
	}

	err = m.inTransaction(func(trx storage.Transaction) error {
		if _, err := m.ledger.GetMint(trx, mint); nil != err {
			return err
		}
		return m.prices.Put(trx, address, price)
	})
	if nil != err {
		return err
	}

	reply := struct {
		Address account.Address            `json:"address"`
		Price   *vaultrecord.ExternalPrice `json:"price"`
	}{
		Address: address,
		Price:   price,
	}
	return printJson(m.w, reply)
}

func showAccount(m *metadata, address account.Address) error {
	a, err := m.ledger.GetAccount(m.store.Committed(), address)
	if nil != err {
		return err
	}
	reply := struct {
		Address account.Address `json:"address"`
		Account interface{}     `json:"account"`
	}{
		Address: address,
		Account: a,
	}
	return printJson(m.w, reply)
}
