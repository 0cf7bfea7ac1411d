// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/tokenvault/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Vaults          *PoolHandle `prefix:"V"`
	SafetyDeposits  *PoolHandle `prefix:"S"`
	DepositsByMint  *PoolHandle `prefix:"X"`
	Mints           *PoolHandle `prefix:"M"`
	TokenAccounts   *PoolHandle `prefix:"K"`
	ExternalPricing *PoolHandle `prefix:"P"`
	TestData        *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open database
type Store struct {
	Pool Pools

	log      *logger.L
	db       *leveldb.DB
	readOnly bool

	// held for the lifetime of a transaction
	writer sync.Mutex
}

// Open - open up the database
//
// an empty database is tagged with the current version, a database
// written by a newer version is rejected
func Open(database string, readOnly bool) (*Store, error) {
	log := logger.New("storage")

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersionDowngrade
	}
	if 0 == version && !readOnly {
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	s := &Store{
		log:      log,
		db:       db,
		readOnly: readOnly,
	}
	if err := s.setupPools(); nil != err {
		return nil, err
	}

	log.Infof("opened: %q  version: %d  read only: %v", database, version, readOnly)
	ok = true // prevent db close
	return s, nil
}

// scan the Pools struct and assign a handle to each field
func (s *Store) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	seen := make(map[byte]string)

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}
		prefix := prefixTag[0]
		if name, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s has same prefix: %q as: %s", fieldInfo.Name, prefixTag, name)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			name:   fieldInfo.Name,
			prefix: prefix,
			limit:  limit,
			db:     s.db,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
//
// waits for any running transaction to finish
func (s *Store) Close() {
	s.writer.Lock()
	defer s.writer.Unlock()
	if nil != s.db {
		s.db.Close()
		s.db = nil
		s.releasePools()
		s.log.Info("closed")
	}
}

// detach every handle so reads after Close see an empty pool
func (s *Store) releasePools() {
	poolValue := reflect.ValueOf(&s.Pool).Elem()
	for i := 0; i < poolValue.NumField(); i += 1 {
		if p, ok := poolValue.Field(i).Interface().(*PoolHandle); ok && nil != p {
			p.db = nil
		}
	}
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fault.ErrDatabaseVersionIncomplete
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
