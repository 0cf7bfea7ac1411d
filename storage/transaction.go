// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/tokenvault/fault"
)

// Reader - read access to pools
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

// Transaction - the single writer
//
// reads see the writes already made in this transaction; nothing is
// visible to other readers until Commit
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
}

type committed struct{}

// Committed - a Reader of data already written, does not take the writer
func (s *Store) Committed() Reader {
	return committed{}
}

func (committed) Get(p *PoolHandle, key []byte) []byte          { return p.Get(key) }
func (committed) GetN(p *PoolHandle, key []byte) (uint64, bool) { return p.GetN(key) }
func (committed) Has(p *PoolHandle, key []byte) bool            { return p.Has(key) }

type transaction struct {
	store *Store
	batch *leveldb.Batch
	cache Cache
	done  bool
}

// Begin - obtain the transaction, blocking while another is open
func (s *Store) Begin() (Transaction, error) {
	if s.readOnly {
		return nil, fault.ErrReadOnlyDatabase
	}
	s.writer.Lock()
	if nil == s.db {
		s.writer.Unlock()
		return nil, fault.ErrNotInitialised
	}
	t := &transaction{
		store: s,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
	return t, nil
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.mustBeInUse()
	k := p.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)
	t.batch.Put(k, v)
	t.cache.Set(dbPut, string(k), v)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, encodeN(value))
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	t.mustBeInUse()
	k := p.prefixKey(key)
	t.batch.Delete(k)
	t.cache.Set(dbDelete, string(k), nil)
}

func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	t.mustBeInUse()
	value, found, present := t.cache.Get(string(p.prefixKey(key)))
	if present {
		if !found {
			return nil
		}
		return value
	}
	return p.Get(key)
}

func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	t.mustBeInUse()
	_, found, present := t.cache.Get(string(p.prefixKey(key)))
	if present {
		return found
	}
	return p.Has(key)
}

// Commit - write all pending data as one batch and release the writer
func (t *transaction) Commit() error {
	if t.done {
		return fault.ErrTransactionNotInUse
	}
	defer t.release()

	if 0 == t.batch.Len() {
		return nil
	}
	return t.store.db.Write(t.batch, &ldb_opt.WriteOptions{Sync: true})
}

// Abort - discard all pending data and release the writer
//
// safe to call after Commit
func (t *transaction) Abort() {
	if t.done {
		return
	}
	t.release()
}

func (t *transaction) release() {
	t.batch.Reset()
	t.cache.Clear()
	t.done = true
	t.store.writer.Unlock()
}

func (t *transaction) mustBeInUse() {
	if t.done {
		fault.PanicWithError("storage transaction", fault.ErrTransactionNotInUse)
	}
}
