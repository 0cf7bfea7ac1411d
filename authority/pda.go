// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"crypto/sha256"

	"filippo.io/edwards25519"

	"github.com/bitmark-inc/tokenvault/account"
	"github.com/bitmark-inc/tokenvault/fault"
)

// limits on seeds
const (
	MaximumSeeds      = 16
	MaximumSeedLength = 32
)

// appended to every hash
var pdaMarker = []byte("ProgramDerivedAddress")

// errors specific to derivation
const (
	ErrInvalidSeeds    = fault.InvalidError("invalid seeds")
	ErrNoViableAddress = fault.ProcessError("no viable program address found")
	ErrOnCurve         = fault.InvalidError("derived address is on-curve")
)

// FindProgramAddress - search for the highest bump that yields an off-curve address
func FindProgramAddress(seeds [][]byte, programId account.Address) (account.Address, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := 255; bump >= 0; bump -= 1 {
		withBump[len(seeds)] = []byte{byte(bump)}
		pda, err := CreateProgramAddress(withBump, programId)
		if nil == err {
			return pda, uint8(bump), nil
		}
		if ErrOnCurve != err {
			return account.Zero, 0, err
		}
	}
	return account.Zero, 0, ErrNoViableAddress
}

// CreateProgramAddress - hash the seeds, reject results that are valid public keys
func CreateProgramAddress(seeds [][]byte, programId account.Address) (account.Address, error) {
	if len(seeds) > MaximumSeeds {
		return account.Zero, ErrInvalidSeeds
	}

	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaximumSeedLength {
			return account.Zero, ErrInvalidSeeds
		}
		h.Write(seed)
	}
	h.Write(programId[:])
	h.Write(pdaMarker)

	var out account.Address
	copy(out[:], h.Sum(nil))
	if isOnCurve(out) {
		return account.Zero, ErrOnCurve
	}
	return out, nil
}

// IsProgramAddress - true for an off-curve address
//
// no private key exists for such an address so it can never sign a
// request, only the program may act for it
func IsProgramAddress(a account.Address) bool {
	return !isOnCurve(a)
}

// an edwards25519 decompression check
func isOnCurve(a account.Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return nil == err
}
