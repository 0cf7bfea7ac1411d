// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenvault/vault"
)

func runSetup(c *cli.Context) error {
	m := getMetadata(c)

	authority, err := addressFlag(c, "authority")
	if nil != err {
		return err
	}
	pricing, err := addressFlag(c, "pricing")
	if nil != err {
		return err
	}

	request, err := m.engine.Setup(vault.SetupRequest{
		Authority:                 authority,
		PricingLookupAddress:      pricing,
		AllowFurtherShareCreation: c.Bool("allow-further-shares"),
	})
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "vault: %s  setup complete\n", request.Vault)
	}

	if err := m.engine.Initialise(*request); nil != err {
		return err
	}
	return printJson(m.w, request)
}

func runDeposit(c *cli.Context) error {
	m := getMetadata(c)

	request := vault.DepositRequest{
		Amount: c.Uint64("amount"),
	}
	var err error
	if request.Vault, err = addressFlag(c, "vault"); nil != err {
		return err
	}
	if request.Authority, err = addressFlag(c, "authority"); nil != err {
		return err
	}
	if request.Source, err = addressFlag(c, "source"); nil != err {
		return err
	}
	if request.TransferAuthority, err = addressFlag(c, "transfer-authority"); nil != err {
		return err
	}

	box, err := m.engine.DepositToken(request)
	if nil != err {
		return err
	}
	return printJson(m.w, box)
}

func runActivate(c *cli.Context) error {
	m := getMetadata(c)

	request := vault.ActivateRequest{
		NumberOfShares: c.Uint64("shares"),
	}
	var err error
	if request.Vault, err = addressFlag(c, "vault"); nil != err {
		return err
	}
	if request.Authority, err = addressFlag(c, "authority"); nil != err {
		return err
	}

	if err := m.engine.Activate(request); nil != err {
		return err
	}
	return showVault(m, request.Vault)
}

func runMintShares(c *cli.Context) error {
	m := getMetadata(c)

	request := vault.MintSharesRequest{
		NumberOfShares: c.Uint64("shares"),
	}
	var err error
	if request.Vault, err = addressFlag(c, "vault"); nil != err {
		return err
	}
	if request.Authority, err = addressFlag(c, "authority"); nil != err {
		return err
	}

	if err := m.engine.MintShares(request); nil != err {
		return err
	}
	return showVault(m, request.Vault)
}

func runAddShares(c *cli.Context) error {
	m := getMetadata(c)

	request := vault.AddSharesRequest{
		NumberOfShares: c.Uint64("shares"),
	}
	var err error
	if request.Vault, err = addressFlag(c, "vault"); nil != err {
		return err
	}
	if request.Authority, err = addressFlag(c, "authority"); nil != err {
		return err
	}
	if request.Source, err = addressFlag(c, "source"); nil != err {
		return err
	}
	if request.TransferAuthority, err = addressFlag(c, "transfer-authority"); nil != err {
		return err
	}

	if err := m.engine.AddSharesToTreasury(request); nil != err {
		return err
	}
	return showVault(m, request.Vault)
}

func runCombine(c *cli.Context) error {
	m := getMetadata(c)

	request := vault.CombineRequest{}
	var err error
	if request.Vault, err = addressFlag(c, "vault"); nil != err {
		return err
	}
	if request.Authority, err = addressFlag(c, "authority"); nil != err {
		return err
	}
	if request.NewAuthority, err = optionalAddressFlag(c, "new-authority"); nil != err {
		return err
	}
	if request.OutstandingShares, err = addressFlag(c, "outstanding"); nil != err {
		return err
	}
	if request.Payment, err = addressFlag(c, "payment"); nil != err {
		return err
	}
	if request.TransferAuthority, err = addressFlag(c, "transfer-authority"); nil != err {
		return err
	}

	calculation, err := m.engine.Combine(request)
	if nil != err {
		return err
	}
	return printJson(m.w, calculation)
}
