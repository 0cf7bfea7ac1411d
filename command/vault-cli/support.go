// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/authority"
	"github.com/bitmark-inc/tokenvault/storage"
)

// required address flag
func addressFlag(c *cli.Context, name string) (account.Address, error) {
	s := c.String(name)
	if "" == s {
		return account.Zero, fmt.Errorf("--%s: %s", name, ErrMissingFlag)
	}
	a, err := account.ParseAddress(s)
	if nil != err {
		return account.Zero, fmt.Errorf("--%s: %q error: %s", name, s, err)
	}
	return a, nil
}

// optional address flag, zero if not given
func optionalAddressFlag(c *cli.Context, name string) (account.Address, error) {
	if "" == c.String(name) {
		return account.Zero, nil
	}
	return addressFlag(c, name)
}

// required address of a signer, program addresses cannot sign
func signerFlag(c *cli.Context, name string) (account.Address, error) {
	a, err := addressFlag(c, name)
	if nil != err {
		return account.Zero, err
	}
	if authority.IsProgramAddress(a) {
		return account.Zero, fmt.Errorf("--%s: %s error: %s", name, a, ErrProgramAddressSigner)
	}
	return a, nil
}

// run fn as one committed transaction
func (m *metadata) inTransaction(fn func(trx storage.Transaction) error) error {
	trx, err := m.store.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if err := fn(trx); nil != err {
		return err
	}
	return trx.Commit()
}

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

// indented JSON on one writer
func printJson(w io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
