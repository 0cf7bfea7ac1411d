// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - fractionalised custody vaults
//
// a vault moves through three states:
//
//   Inactive  accepts safety deposit boxes, one per token mint
//   Active    deposits are frozen, shares of the fraction mint may be
//             minted into the fraction treasury if allowed
//   Combined  terminal, a single holder has paid out every other
//             holder of circulating shares
//
// the fraction mint and both treasuries are controlled by the vault
// authority, a program derived address computed from the vault address
// on every use and never stored
//
// every operation that changes a vault runs inside one storage
// transaction: the vault is read afresh, all preconditions are checked
// and the writes commit as one batch, any error leaves nothing behind
package vault
