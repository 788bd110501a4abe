// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package tpdu_test

import (
	"testing"

	"github.com/pmarti/go-messaging/encoding/tpdu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliverMarshalUnmarshalRoundTrip(t *testing.T) {
	d := tpdu.NewDeliver()
	d.SetOA(tpdu.Address{TOA: 0x91, Addr: "447911123456"})
	d.SetPID(0)
	dcs, err := tpdu.DCS(0).WithAlphabet(tpdu.Alpha7Bit)
	require.NoError(t, err)
	d.SetDCS(dcs)
	d.SetUD([]byte{'h' & 0x7f, 'i' & 0x7f})

	b, err := d.MarshalBinary()
	require.NoError(t, err)

	out := tpdu.NewDeliver()
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, d.OA(), out.OA())
	assert.Equal(t, d.UD(), out.UD())
	assert.Equal(t, tpdu.MtDeliver, out.MTI())
}

func TestDeliverUDHRoundTrip(t *testing.T) {
	d := tpdu.NewDeliver()
	d.SetOA(tpdu.Address{TOA: 0x91, Addr: "1"})
	d.SetUDH(tpdu.UserDataHeader{tpdu.NewConcatIE8(7, 1, 2)})
	d.SetUD([]byte{'h' & 0x7f, 'i' & 0x7f})

	b, err := d.MarshalBinary()
	require.NoError(t, err)

	out := tpdu.NewDeliver()
	require.NoError(t, out.UnmarshalBinary(b))
	assert.True(t, out.UDHI())
	ci, ok := out.UDH().Concat()
	require.True(t, ok)
	assert.Equal(t, uint16(7), ci.Ref)
	assert.Equal(t, out.UD(), d.UD())
}
