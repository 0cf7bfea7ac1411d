// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - program derived addresses
//
// The vault authority is the only signer permitted to mint, freeze,
// burn or move funds out of a vault treasury. It is not a key pair:
// it is recomputed from the program identity and the vault address
// every time it is needed and is never stored.
//
//   vault authority     = PDA("vault" ++ program id ++ vault address)
//   safety deposit box  = PDA("vault" ++ vault address ++ token mint)
//
// where PDA(seeds) = SHA-256(seeds ++ bump ++ program id ++ "ProgramDerivedAddress")
// for the largest bump in 255..0 that gives a value which is not a
// valid edwards25519 point.
package authority
