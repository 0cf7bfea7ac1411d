// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/authority"
	"github.com/bitmark-inc/tokenvault/vault"
	"github.com/bitmark-inc/tokenvault/vaultrecord"
)

func runVault(c *cli.Context) error {
	m := getMetadata(c)

	address, err := addressFlag(c, "vault")
	if nil != err {
		return err
	}
	return showVault(m, address)
}

func runBoxes(c *cli.Context) error {
	m := getMetadata(c)

	address, err := addressFlag(c, "vault")
	if nil != err {
		return err
	}
	mint, err := optionalAddressFlag(c, "mint")
	if nil != err {
		return err
	}

	if !mint.IsZero() {
		box, err := m.engine.BoxForMint(address, mint)
		if nil != err {
			return err
		}
		return printJson(m.w, box)
	}

	boxes, err := m.engine.Boxes(address)
	if nil != err {
		return err
	}
	return printJson(m.w, boxes)
}

func runAuthority(c *cli.Context) error {
	m := getMetadata(c)

	address, err := addressFlag(c, "vault")
	if nil != err {
		return err
	}
	derived, err := m.engine.Authority(address)
	if nil != err {
		return err
	}
	return printJson(m.w, derived)
}

func runBuyout(c *cli.Context) error {
	m := getMetadata(c)

	calculation, err := vault.Buyout(
		c.Uint64("supply"),
		c.Uint64("treasury"),
		c.Uint64("outstanding"),
		c.Uint64("price"),
	)
	if nil != err {
		return err
	}
	return printJson(m.w, calculation)
}

func showVault(m *metadata, address account.Address) error {
	v, err := m.engine.Get(address)
	if nil != err {
		return err
	}
	derived, err := m.engine.Authority(address)
	if nil != err {
		return err
	}

	reply := struct {
		Address   account.Address    `json:"address"`
		Authority authority.Derived  `json:"vaultAuthority"`
		Vault     *vaultrecord.Vault `json:"vault"`
	}{
		Address:   address,
		Authority: derived,
		Vault:     v,
	}
	return printJson(m.w, reply)
}
