// SPDX-License-Identifier: MIT
//
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

package sar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmarti/go-messaging/encoding/tpdu"
	"github.com/pmarti/go-messaging/sms/sar"
)

func TestEncodeText7Bit(t *testing.T) {
	ud, alpha, err := sar.EncodeText("hola")
	require.NoError(t, err)
	assert.Equal(t, tpdu.Alpha7Bit, alpha)
	assert.Len(t, ud, 4)
}

func TestEncodeTextUCS2(t *testing.T) {
	ud, alpha, err := sar.EncodeText("中兴")
	require.NoError(t, err)
	assert.Equal(t, tpdu.AlphaUCS2, alpha)
	assert.Len(t, ud, 4)
}

func TestCounter(t *testing.T) {
	c := sar.NewCounter()
	assert.Equal(t, 0, c.Read())
	assert.Equal(t, 1, c.Count())
	assert.Equal(t, 2, c.Count())
	assert.Equal(t, 2, c.Read())
}

func TestEncoderEncodeSubmitSingleSegment(t *testing.T) {
	e := sar.NewEncoder()
	pdus, err := e.EncodeSubmit("+447700900123", "hola")
	require.NoError(t, err)
	require.Len(t, pdus, 1)
	assert.EqualValues(t, 1, pdus[0].MR())
	assert.Equal(t, "447700900123", pdus[0].DA().Addr)
}

func TestEncoderEncodeSubmitAssignsIncreasingMR(t *testing.T) {
	e := sar.NewEncoder()
	p1, err := e.EncodeSubmit("+447700900123", "one")
	require.NoError(t, err)
	p2, err := e.EncodeSubmit("+447700900123", "two")
	require.NoError(t, err)
	assert.EqualValues(t, 1, p1[0].MR())
	assert.EqualValues(t, 2, p2[0].MR())
}

func TestEncoderEncodeSubmitWithRequestStatus(t *testing.T) {
	e := sar.NewEncoder()
	pdus, err := e.EncodeSubmit("+447700900123", "hola", sar.WithRequestStatus())
	require.NoError(t, err)
	require.Len(t, pdus, 1)
	assert.True(t, pdus[0].SRR())
}

func TestEncoderEncodeSubmitWithClass(t *testing.T) {
	e := sar.NewEncoder()
	pdus, err := e.EncodeSubmit("+447700900123", "hola", sar.WithClass(tpdu.MClass1))
	require.NoError(t, err)
	require.Len(t, pdus, 1)
	class, err := pdus[0].DCS().Class()
	require.NoError(t, err)
	assert.Equal(t, tpdu.MClass1, class)
}

func TestEncoderEncodeSubmitWithMR(t *testing.T) {
	mr := sar.NewCounter()
	mr.Count()
	mr.Count()
	e := sar.NewEncoder()
	pdus, err := e.EncodeSubmit("+447700900123", "hola", sar.WithMR(mr))
	require.NoError(t, err)
	require.Len(t, pdus, 1)
	assert.EqualValues(t, 3, pdus[0].MR())
}

func TestEncoderEncodeSubmitUnknownNumberFormat(t *testing.T) {
	e := sar.NewEncoder()
	pdus, err := e.EncodeSubmit("447700900123", "hola")
	require.NoError(t, err)
	require.Len(t, pdus, 1)
	da := pdus[0].DA()
	assert.Equal(t, tpdu.TonUnknown, da.TypeOfNumber())
}
