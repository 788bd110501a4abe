// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package wsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmarti/go-messaging/encoding/wsp"
	"github.com/pmarti/go-messaging/internal/cursor"
)

func TestEncodeDecodeHeaderNameWellKnown(t *testing.T) {
	b, err := wsp.EncodeHeaderName("Transaction-Id")
	require.NoError(t, err)
	name, wellKnown, err := wsp.DecodeHeaderName(cursor.New(b))
	require.NoError(t, err)
	assert.True(t, wellKnown)
	assert.Equal(t, "Transaction-Id", name)
}

func TestEncodeDecodeHeaderNameApplication(t *testing.T) {
	b, err := wsp.EncodeHeaderName("X-Custom-Header")
	require.NoError(t, err)
	name, wellKnown, err := wsp.DecodeHeaderName(cursor.New(b))
	require.NoError(t, err)
	assert.False(t, wellKnown)
	assert.Equal(t, "X-Custom-Header", name)
}

func TestDecodeHeaderNameUnknownWellKnownCode(t *testing.T) {
	// A short-integer code with the high bit set but absent from
	// HeaderFieldNames.
	_, _, err := wsp.DecodeHeaderName(cursor.New([]byte{0xff}))
	assert.Error(t, err)
}

func TestEncodeDecodeApplicationHeaderValue(t *testing.T) {
	b := wsp.EncodeApplicationHeaderValue("<0000>")
	s, err := wsp.DecodeApplicationHeaderValue(cursor.New(b))
	require.NoError(t, err)
	assert.Equal(t, "<0000>", s)
}
