// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vaultrecord

// State - vault lifecycle state
type State uint64

// lifecycle states, each only ever moves to a later one
const (
	Inactive State = 0
	Active   State = 1
	Combined State = 2
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "Inactive"
	case Active:
		return "Active"
	case Combined:
		return "Combined"
	default:
		return "Unknown"
	}
}

// MarshalText - state as its name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
