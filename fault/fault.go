// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type FundsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyExists      = ExistsError("account already exists")
	ErrAllowanceMismatch         = InvalidError("approved delegate amount does not match")
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrArithmeticOverflow        = ProcessError("arithmetic overflow")
	ErrCombinationDisallowed     = StateError("external price does not allow combination")
	ErrDatabaseAlreadyOpen       = ExistsError("database is already open")
	ErrDatabaseVersionDowngrade  = RecordError("database version is newer than this program")
	ErrDatabaseVersionIncomplete = LengthError("database version record has invalid length")
	ErrDuplicateDeposit          = ExistsError("token mint already has a safety deposit box")
	ErrInsufficientFunds         = FundsError("insufficient funds")
	ErrInsufficientPayment       = FundsError("payment account cannot cover amount owed")
	ErrInvalidAccountOwner       = InvalidError("invalid account owner")
	ErrInvalidAddress            = InvalidError("invalid address")
	ErrInvalidAuthority          = InvalidError("signer is not the vault authority")
	ErrInvalidConfiguration      = InvalidError("configuration file must return a table")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidCursor             = InvalidError("invalid cursor")
	ErrInvalidFlag               = RecordError("invalid boolean flag in record")
	ErrInvalidKey                = RecordError("invalid record key")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidMintAuthority      = InvalidError("invalid mint authority")
	ErrInvalidState              = StateError("invalid vault state")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidTransferAuthority  = InvalidError("transfer authority is neither owner nor approved delegate")
	ErrInvalidTreasuryOwner      = InvalidError("treasury is not owned by the vault authority")
	ErrMintMismatch              = InvalidError("token mint does not match")
	ErrMissingProgramId          = InvalidError("program id is required")
	ErrNegativeOwed              = RecordError("amount owed would be negative")
	ErrNotFoundAccount           = NotFoundError("token account not found")
	ErrNotFoundMint              = NotFoundError("token mint not found")
	ErrNotFoundPrice             = NotFoundError("external price account not found")
	ErrNotFoundSafetyDepositBox  = NotFoundError("safety deposit box not found")
	ErrNotFoundVault             = NotFoundError("vault not found")
	ErrNotInitialised            = StateError("not initialised")
	ErrReadOnlyDatabase          = InvalidError("database is read only")
	ErrRecordTrailingData        = LengthError("record has trailing data")
	ErrRecordTruncated           = LengthError("record is truncated")
	ErrSameAccount               = InvalidError("source and destination are the same account")
	ErrShareCreationDisallowed   = StateError("vault does not allow further share creation")
	ErrSupplyNotZero             = InvalidError("fraction mint supply must be zero")
	ErrTransactionNotInUse       = ProcessError("transaction not in use")
	ErrTreasuryHasDelegate       = InvalidError("treasury must not have a delegate")
	ErrTreasuryNotEmpty          = InvalidError("treasury must be empty")
	ErrVaultAlreadyExists        = ExistsError("vault record already exists")
	ErrZeroAmount                = InvalidError("amount must be greater than zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e FundsError) Error() string    { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }
func (e StateError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrFunds(e error) bool    { _, ok := e.(FundsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
func IsErrState(e error) bool    { _, ok := e.(StateError); return ok }
