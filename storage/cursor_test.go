// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenvault/fault"
	"github.com/bitmark-inc/tokenvault/storage"
)

func keys(elements []storage.Element) []string {
	result := make([]string, 0, len(elements))
	for _, e := range elements {
		result = append(result, string(e.Key))
	}
	return result
}

func TestFetchInPages(t *testing.T) {
	s, _ := setup(t)
	p := s.Pool.TestData

	put(t, s, p,
		"key-one", "1",
		"key-two", "2",
		"key-three", "3",
		"key-four", "4",
		"key-five", "5",
	)
	// other pools must not appear
	put(t, s, s.Pool.Vaults, "key-zzz", "x")

	cursor := p.NewFetchCursor()

	first, err := cursor.Fetch(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"key-five", "key-four"}, keys(first))

	second, err := cursor.Fetch(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"key-one", "key-three"}, keys(second))

	third, err := cursor.Fetch(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"key-two"}, keys(third))
	assert.Equal(t, []byte("2"), third[0].Value)

	empty, err := cursor.Fetch(2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPrefixCursor(t *testing.T) {
	s, _ := setup(t)
	p := s.Pool.SafetyDeposits

	put(t, s, p,
		"vault-a/1", "a1",
		"vault-a/0", "a0",
		"vault-b/0", "b0",
		"vault-ab/0", "ab0",
	)

	values := []string{}
	err := p.NewPrefixCursor([]byte("vault-a/")).Map(func(key []byte, value []byte) error {
		values = append(values, string(value))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a0", "a1"}, values)
}

func TestMapStopsOnError(t *testing.T) {
	s, _ := setup(t)
	p := s.Pool.TestData
	put(t, s, p, "a", "1", "b", "2", "c", "3")

	count := 0
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		if "b" == string(key) {
			return fault.ErrInvalidKey
		}
		return nil
	})
	assert.Equal(t, fault.ErrInvalidKey, err)
	assert.Equal(t, 2, count)
}

func TestFetchInvalidCount(t *testing.T) {
	s, _ := setup(t)
	_, err := s.Pool.TestData.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err)
}
