// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package tpdu_test

import (
	"testing"
	"time"

	"github.com/pmarti/go-messaging/encoding/tpdu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampRoundTrip(t *testing.T) {
	loc := time.FixedZone("SCTS", 2*60*60)
	ts := tpdu.Timestamp{Time: time.Date(2024, time.March, 5, 13, 45, 30, 0, loc)}
	b, err := ts.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, b, 7)

	var out tpdu.Timestamp
	require.NoError(t, out.UnmarshalBinary(b))
	assert.True(t, ts.Time.Equal(out.Time))
}

func TestTimestampUnderflow(t *testing.T) {
	var out tpdu.Timestamp
	err := out.UnmarshalBinary([]byte{0x40, 0x30})
	assert.Error(t, err)
}
