// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// errors are grouped into classes so that callers can decide on a
// corrective action without knowing every individual error:
//
//   StateError    - operation attempted in the wrong lifecycle state
//   ExistsError   - record already present
//   InvalidError  - request does not match the ledger
//   FundsError    - balance too small for the operation
//   RecordError   - stored data is inconsistent
//   NotFoundError - record missing
//   LengthError   - encoded data has a bad length
//   ProcessError  - internal processing failed
package fault
