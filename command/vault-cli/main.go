// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/fault"
	"github.com/bitmark-inc/tokenvault/pricing"
	"github.com/bitmark-inc/tokenvault/storage"
	"github.com/bitmark-inc/tokenvault/token"
	"github.com/bitmark-inc/tokenvault/vault"
)

type metadata struct {
	file    string
	config  *Configuration
	log     *logger.L
	store   *storage.Store
	ledger  token.Ledger
	prices  pricing.Writer
	engine  *vault.Engine
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that do not need the database
var noDatabase = map[string]bool{
	"":        true,
	"buyout":  true,
	"help":    true,
	"h":       true,
	"version": true,
}

func main() {

	app := cli.NewApp()
	app.Name = "vault-cli"
	app.Usage = "operate fractionalised token vaults held in a local database"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
		cli.StringSliceFlag{
			Name:  "define, D",
			Usage: " set a Lua global `NAME=VALUE` before reading the configuration",
		},
	}
	app.Commands = commands()

	// read the configuration and open the database
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if noDatabase[command] {
			c.App.Metadata["config"] = &metadata{
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		file := c.GlobalString("config-file")
		if "" == file {
			return ErrMissingConfigurationFile
		}
		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		variables := make(map[string]string)
		for _, d := range c.GlobalStringSlice("define") {
			s := strings.SplitN(d, "=", 2)
			if 2 != len(s) || "" == s[0] {
				return fmt.Errorf("define: %q is not NAME=VALUE", d)
			}
			variables[s[0]] = s[1]
		}

		config, err := getConfiguration(file, variables)
		if nil != err {
			return err
		}

		programId, err := account.ParseAddress(config.ProgramId)
		if nil != err {
			return fmt.Errorf("program_id: %q error: %s", config.ProgramId, err)
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}

		m := &metadata{
			file:    file,
			config:  config,
			log:     logger.New("main"),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		m.log.Infof("version: %s  config: %q", version, file)

		m.store, err = storage.Open(config.Database.Name, storage.ReadWrite)
		if nil != err {
			m.log.Criticalf("open database: %q  error: %s", config.Database.Name, err)
			return err
		}
		m.ledger = token.New(m.store)
		m.prices = pricing.New(m.store)
		m.engine, err = vault.New(programId, m.store, m.ledger, m.prices)
		return err
	}

	// release the database
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.log {
			return nil
		}
		if nil != m.store {
			m.store.Close()
		}
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
