// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// delay before the final panic so the log file can be written
const panicFlushDelay = 100 * time.Millisecond

// the channel used for the last message before a panic
var log *logger.L

// Initialise - open the PANIC log channel
//
// must be called after logger.Initialise
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and release the PANIC channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a critical message prefixed by the caller location
func Criticalf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		format = fmt.Sprintf("(%q:%d) ", file, line) + format
	}
	critical(format, arguments...)
}

// PanicWithError - record the failing operation and abort
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	critical("%s", s)
	time.Sleep(panicFlushDelay)
	panic(s)
}

// PanicIfError - abort only if err is set
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// log even when no channel was opened, e.g. from tests
func critical(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
