// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/storage"
	"github.com/bitmark-inc/tokenvault/token"
)

func TestMain(m *testing.M) {
	curPath := os.Getenv("PWD")
	var logConfig = logger.Configuration{
		Directory: curPath,
		File:      "token.log",
		Size:      1048576,
		Count:     20,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := logger.Initialise(logConfig); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	rc := m.Run()
	logger.Finalise()
	os.Remove(filepath.Join(curPath, "token.log"))
	os.Exit(rc)
}

type fixture struct {
	store  *storage.Store
	ledger token.Ledger
}

func setup(t *testing.T) *fixture {
	s, err := storage.Open(filepath.Join(t.TempDir(), "token.leveldb"), storage.ReadWrite)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return &fixture{
		store:  s,
		ledger: token.New(s),
	}
}

// run f in a transaction that must commit
func (f *fixture) commit(t *testing.T, fn func(trx storage.Transaction)) {
	trx, err := f.store.Begin()
	require.NoError(t, err)
	fn(trx)
	require.NoError(t, trx.Commit())
}

func newKey(t *testing.T) account.Address {
	a, err := account.Generate()
	require.NoError(t, err)
	return a
}
