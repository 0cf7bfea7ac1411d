// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func addressFlagDef(name string, usage string) cli.Flag {
	return cli.StringFlag{
		Name:  name,
		Value: "",
		Usage: usage,
	}
}

func amountFlagDef(name string, usage string) cli.Flag {
	return cli.Uint64Flag{
		Name:  name,
		Value: 0,
		Usage: usage,
	}
}

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "create-mint",
			Usage:     "create a token mint with zero supply",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("authority, a", "*mint authority `ADDRESS`"),
				addressFlagDef("freeze-authority, f", " freeze authority `ADDRESS` [none]"),
				cli.UintFlag{
					Name:  "decimals, d",
					Value: 0,
					Usage: " decimal places `N`",
				},
			},
			Action: runCreateMint,
		},
		{
			Name:      "create-account",
			Usage:     "create an empty token account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("mint, m", "*token mint `ADDRESS`"),
				addressFlagDef("owner, o", "*account owner `ADDRESS`"),
			},
			Action: runCreateAccount,
		},
		{
			Name:      "mint",
			Usage:     "mint tokens into an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("mint, m", "*token mint `ADDRESS`"),
				addressFlagDef("account, t", "*destination token account `ADDRESS`"),
				addressFlagDef("authority, a", "*mint authority `ADDRESS`"),
				amountFlagDef("amount, n", "*amount to mint `N`"),
			},
			Action: runMint,
		},
		{
			Name:      "approve",
			Usage:     "approve a delegate to move tokens from an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("account, t", "*token account `ADDRESS`"),
				addressFlagDef("owner, o", "*account owner `ADDRESS`"),
				addressFlagDef("delegate, d", "*delegate `ADDRESS`"),
				amountFlagDef("amount, n", " amount approved `N`"),
			},
			Action: runApprove,
		},
		{
			Name:      "balance",
			Usage:     "display a token account or mint",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				addressFlagDef("account, t", "+token account `ADDRESS`"),
				addressFlagDef("mint, m", "+token mint `ADDRESS`"),
			},
			Action: runBalance,
		},
		{
			Name:      "price",
			Usage:     "create or update an external price account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("address, p", " price account `ADDRESS` [new]"),
				addressFlagDef("mint, m", "*price mint `ADDRESS`"),
				amountFlagDef("price, n", " price per share `N`"),
				cli.BoolFlag{
					Name:  "allow-combine, x",
					Usage: " allow vaults to combine at this price",
				},
			},
			Action: runPrice,
		},
		{
			Name:      "setup",
			Usage:     "create and initialise a new vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("authority, a", "*vault authority `ADDRESS`"),
				addressFlagDef("pricing, p", "*external price account `ADDRESS`"),
				cli.BoolFlag{
					Name:  "allow-further-shares, s",
					Usage: " allow minting shares after activation",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "deposit",
			Usage:     "deposit tokens into an inactive vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("vault, V", "*vault `ADDRESS`"),
				addressFlagDef("authority, a", "*vault authority `ADDRESS`"),
				addressFlagDef("source, f", "*source token account `ADDRESS`"),
				addressFlagDef("transfer-authority, d", "*delegate approved on source `ADDRESS`"),
				amountFlagDef("amount, n", "*amount to deposit `N`"),
			},
			Action: runDeposit,
		},
		{
			Name:      "activate",
			Usage:     "activate a vault minting its initial shares",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("vault, V", "*vault `ADDRESS`"),
				addressFlagDef("authority, a", "*vault authority `ADDRESS`"),
				amountFlagDef("shares, n", " number of shares `N`"),
			},
			Action: runActivate,
		},
		{
			Name:      "mint-shares",
			Usage:     "mint further shares into the fraction treasury",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("vault, V", "*vault `ADDRESS`"),
				addressFlagDef("authority, a", "*vault authority `ADDRESS`"),
				amountFlagDef("shares, n", " number of shares `N`"),
			},
			Action: runMintShares,
		},
		{
			Name:      "add-shares",
			Usage:     "return shares to the fraction treasury",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("vault, V", "*vault `ADDRESS`"),
				addressFlagDef("authority, a", "*vault authority `ADDRESS`"),
				addressFlagDef("source, f", "*source share account `ADDRESS`"),
				addressFlagDef("transfer-authority, d", "*delegate approved on source `ADDRESS`"),
				amountFlagDef("shares, n", "*number of shares `N`"),
			},
			Action: runAddShares,
		},
		{
			Name:      "combine",
			Usage:     "buy out the circulating shares and combine the vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("vault, V", "*vault `ADDRESS`"),
				addressFlagDef("authority, a", "*vault authority `ADDRESS`"),
				addressFlagDef("new-authority, r", " new vault authority `ADDRESS` [unchanged]"),
				addressFlagDef("outstanding, o", "*your share account `ADDRESS`"),
				addressFlagDef("payment, f", "*your payment account `ADDRESS`"),
				addressFlagDef("transfer-authority, d", "*delegate approved on both accounts `ADDRESS`"),
			},
			Action: runCombine,
		},
		{
			Name:      "vault",
			Usage:     "display a vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("vault, V", "*vault `ADDRESS`"),
			},
			Action: runVault,
		},
		{
			Name:      "boxes",
			Usage:     "list the safety deposit boxes of a vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("vault, V", "*vault `ADDRESS`"),
				addressFlagDef("mint, m", " only the box for token mint `ADDRESS`"),
			},
			Action: runBoxes,
		},
		{
			Name:      "authority",
			Usage:     "derive the program authority of a vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlagDef("vault, V", "*vault `ADDRESS`"),
			},
			Action: runAuthority,
		},
		{
			Name:      "buyout",
			Usage:     "calculate the amount owed to combine",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				amountFlagDef("supply, s", "*fraction mint supply `N`"),
				amountFlagDef("treasury, t", "*fraction treasury amount `N`"),
				amountFlagDef("outstanding, o", "*your share amount `N`"),
				amountFlagDef("price, p", "*price per share `N`"),
			},
			Action: runBuyout,
		},
		{
			Name:  "version",
			Usage: "display vault-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}
