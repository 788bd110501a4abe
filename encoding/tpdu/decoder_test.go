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

func newFullDecoder(t *testing.T) *tpdu.Decoder {
	t.Helper()
	d, err := tpdu.NewDecoder()
	require.NoError(t, err)
	require.NoError(t, tpdu.RegisterDeliverDecoder(d))
	require.NoError(t, tpdu.RegisterReservedDecoder(d))
	require.NoError(t, tpdu.RegisterSubmitDecoder(d))
	require.NoError(t, tpdu.RegisterStatusReportDecoder(d))
	require.NoError(t, tpdu.RegisterSubmitReportDecoder(d))
	require.NoError(t, tpdu.RegisterDeliverReportDecoder(d))
	require.NoError(t, tpdu.RegisterCommandDecoder(d))
	require.NoError(t, tpdu.RegisterReservedMODecoder(d))
	return d
}

func TestDecoderDispatchesOnMTIAndDirection(t *testing.T) {
	d := newFullDecoder(t)

	sub := tpdu.NewSubmit()
	sub.SetDA(tpdu.Address{TOA: 0x91, Addr: "1"})
	b, err := sub.MarshalBinary()
	require.NoError(t, err)

	out, err := d.Decode(b, tpdu.MO)
	require.NoError(t, err)
	_, ok := out.(*tpdu.Submit)
	assert.True(t, ok)
}

func TestDecoderRejectsUnsupportedMTIDirection(t *testing.T) {
	d := newFullDecoder(t)
	// MtSubmit in the MT direction is SMS-SUBMIT-REPORT, unsupported.
	_, err := d.Decode([]byte{byte(tpdu.MtSubmit)}, tpdu.MT)
	assert.Error(t, err)
}

func TestDecoderRegisterDecoderTwiceFails(t *testing.T) {
	d, err := tpdu.NewDecoder()
	require.NoError(t, err)
	require.NoError(t, tpdu.RegisterSubmitDecoder(d))
	err = tpdu.RegisterSubmitDecoder(d)
	assert.Error(t, err)
}

func TestDecoderUnderflow(t *testing.T) {
	d := newFullDecoder(t)
	_, err := d.Decode(nil, tpdu.MT)
	assert.Error(t, err)
}
