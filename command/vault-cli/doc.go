// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// vault-cli - operate fractionalised token vaults
//
// every command runs against the local database named in the Lua
// configuration file, e.g.
//
//   local M = {}
//   M.data_directory = "."
//   M.program_id = "vau1zxA2LbssAUEF7Gpw91zMM1LvXrvpzJtmZ58rPsn"
//   M.database = { directory = "data", name = "vault.leveldb" }
//   M.logging = { size = 1048576, count = 10, levels = { DEFAULT = "info" } }
//   return M
//
// signer flags such as --authority are taken as already authorised,
// key management belongs to the caller
package main
