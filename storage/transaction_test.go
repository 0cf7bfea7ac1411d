// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenvault/fault"
	"github.com/bitmark-inc/tokenvault/storage"
)

func TestTransactionReadsOwnWrites(t *testing.T) {
	s, _ := setup(t)
	p := s.Pool.TestData

	put(t, s, p, "key-one", "data-one")

	trx, err := s.Begin()
	require.NoError(t, err)

	trx.Put(p, []byte("key-two"), []byte("data-two"))
	trx.Delete(p, []byte("key-one"))
	trx.PutN(p, []byte("key-n"), 1234)

	assert.Equal(t, []byte("data-two"), trx.Get(p, []byte("key-two")))
	assert.Nil(t, trx.Get(p, []byte("key-one")), "pending delete must hide value")
	assert.False(t, trx.Has(p, []byte("key-one")))
	assert.True(t, trx.Has(p, []byte("key-two")))

	n, ok := trx.GetN(p, []byte("key-n"))
	assert.True(t, ok)
	assert.Equal(t, uint64(1234), n)

	// committed view is untouched until commit
	assert.Equal(t, []byte("data-one"), p.Get([]byte("key-one")))
	assert.False(t, p.Has([]byte("key-two")))

	require.NoError(t, trx.Commit())

	assert.Nil(t, p.Get([]byte("key-one")))
	assert.Equal(t, []byte("data-two"), p.Get([]byte("key-two")))
	n, ok = p.GetN([]byte("key-n"))
	assert.True(t, ok)
	assert.Equal(t, uint64(1234), n)
}

func TestAbortDiscardsEverything(t *testing.T) {
	s, _ := setup(t)
	p := s.Pool.TestData

	put(t, s, p, "key-one", "data-one")

	trx, err := s.Begin()
	require.NoError(t, err)
	trx.Put(p, []byte("key-one"), []byte("changed"))
	trx.Put(p, []byte("key-two"), []byte("data-two"))
	trx.Abort()

	assert.Equal(t, []byte("data-one"), p.Get([]byte("key-one")))
	assert.False(t, p.Has([]byte("key-two")))

	// next transaction starts clean
	trx, err = s.Begin()
	require.NoError(t, err)
	defer trx.Abort()
	assert.Equal(t, []byte("data-one"), trx.Get(p, []byte("key-one")))
	assert.Nil(t, trx.Get(p, []byte("key-two")))
}

func TestAbortAfterCommitIsHarmless(t *testing.T) {
	s, _ := setup(t)
	p := s.Pool.TestData

	trx, err := s.Begin()
	require.NoError(t, err)
	trx.Put(p, []byte("k"), []byte("v"))
	require.NoError(t, trx.Commit())
	trx.Abort()

	assert.Equal(t, fault.ErrTransactionNotInUse, trx.Commit())

	// a later transaction must not be released by the stale handle
	next, err := s.Begin()
	require.NoError(t, err)
	trx.Abort()
	next.Put(p, []byte("k2"), []byte("v2"))
	require.NoError(t, next.Commit())
	assert.Equal(t, []byte("v2"), p.Get([]byte("k2")))
}

func TestSecondWriterWaits(t *testing.T) {
	s, _ := setup(t)
	p := s.Pool.TestData

	first, err := s.Begin()
	require.NoError(t, err)

	started := make(chan struct{})
	finished := make(chan []byte)
	go func() {
		close(started)
		second, err := s.Begin()
		if nil != err {
			finished <- nil
			return
		}
		defer second.Abort()
		finished <- second.Get(p, []byte("key"))
	}()

	<-started
	select {
	case <-finished:
		t.Fatal("second transaction began while first was open")
	case <-time.After(50 * time.Millisecond):
	}

	first.Put(p, []byte("key"), []byte("from-first"))
	require.NoError(t, first.Commit())

	select {
	case value := <-finished:
		assert.Equal(t, []byte("from-first"), value)
	case <-time.After(5 * time.Second):
		t.Fatal("second transaction never began")
	}
}

func TestReopenKeepsData(t *testing.T) {
	s, name := setup(t)
	put(t, s, s.Pool.Vaults, "vault", "record")
	s.Close()

	r, err := storage.Open(name, storage.ReadOnly)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, []byte("record"), r.Pool.Vaults.Get([]byte("vault")))

	_, err = r.Begin()
	assert.Equal(t, fault.ErrReadOnlyDatabase, err)
}

func TestReadsAfterClose(t *testing.T) {
	s, _ := setup(t)
	put(t, s, s.Pool.Vaults, "vault", "record")
	s.Close()

	assert.Nil(t, s.Committed().Get(s.Pool.Vaults, []byte("vault")), "get")
	assert.False(t, s.Committed().Has(s.Pool.Vaults, []byte("vault")), "has")
	_, found := s.Pool.Vaults.GetN([]byte("vault"))
	assert.False(t, found, "getN")

	data, err := s.Pool.Vaults.NewFetchCursor().Fetch(10)
	assert.NoError(t, err, "fetch")
	assert.Empty(t, data, "fetch")

	_, err = s.Begin()
	assert.Error(t, err, "begin")

	s.Close()
}

func TestPoolsAreSeparate(t *testing.T) {
	s, _ := setup(t)

	put(t, s, s.Pool.Mints, "same-key", "mint")
	put(t, s, s.Pool.TokenAccounts, "same-key", "account")

	assert.Equal(t, []byte("mint"), s.Pool.Mints.Get([]byte("same-key")))
	assert.Equal(t, []byte("account"), s.Pool.TokenAccounts.Get([]byte("same-key")))
	assert.Nil(t, s.Pool.ExternalPricing.Get([]byte("same-key")))
}

func TestCommittedReaderIgnoresPending(t *testing.T) {
	s, _ := setup(t)
	p := s.Pool.TestData
	put(t, s, p, "key", "old")

	trx, err := s.Begin()
	require.NoError(t, err)
	defer trx.Abort()
	trx.Put(p, []byte("key"), []byte("new"))

	r := s.Committed()
	assert.Equal(t, []byte("old"), r.Get(p, []byte("key")))
	assert.True(t, r.Has(p, []byte("key")))
	assert.Equal(t, []byte("new"), trx.Get(p, []byte("key")))
}
