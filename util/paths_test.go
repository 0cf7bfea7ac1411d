// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenvault/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log"), "absolute")
	assert.Equal(t, "/data/x", util.EnsureAbsolute("/data", "log/../x"), "cleaned")
}

func TestEnsureDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, util.EnsureDirectory(dir), "directory")

	file := filepath.Join(dir, "file")
	require.NoError(t, ioutil.WriteFile(file, []byte("x"), 0600))
	assert.Error(t, util.EnsureDirectory(file), "file")

	assert.Error(t, util.EnsureDirectory(filepath.Join(dir, "missing")), "missing")
}
