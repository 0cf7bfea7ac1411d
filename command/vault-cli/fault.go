// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/tokenvault/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingConfigurationFile = fault.InvalidError("configuration file is required")
	ErrMissingFlag              = fault.InvalidError("required flag is missing")
	ErrProgramAddressSigner     = fault.InvalidError("program address cannot sign")
)
