// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++          = concatenation of byte data
// 3. address     = 32 byte account.Address
// 4. order index = big endian uint64 (8 bytes)
// 5. packed      = vaultrecord / token packed record, Varint64(key) first
//
// Vaults:
//
//   V ++ vault address             - vault record
//                                    data: packed vault
//   S ++ vault address ++ order    - safety deposit boxes in deposit order
//                                    data: packed safety deposit box
//   X ++ vault address ++ mint     - safety deposit box per mint
//                                    data: order index
//
// Token ledger:
//
//   M ++ mint address              - token mint
//                                    data: packed mint
//   K ++ account address           - token account
//                                    data: packed token account
//
// Pricing:
//
//   P ++ price address             - external price lookup
//                                    data: packed external price
//
// Testing:
//   Z ++ key                       - testing data
//
// Writes are only possible through a Transaction obtained from
// Store.Begin; only one transaction exists at a time and its writes
// are applied as a single LevelDB batch on Commit.
package storage
