// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

package main

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmarti/go-messaging/encoding/tpdu"
)

const submitHex = "11010B914316565811F90000AA04E8373B0C"

func TestDecodeInvalidHex(t *testing.T) {
	_, _, err := decode("bad hex", false, false)
	assert.Equal(t, hex.InvalidByteError(' '), err)
}

func TestDecodeSubmitNoSMSC(t *testing.T) {
	tp, smsc, err := decode(submitHex, false, true)
	require.NoError(t, err)
	assert.Nil(t, smsc)
	s, ok := tp.(*tpdu.Submit)
	require.True(t, ok)
	assert.EqualValues(t, 1, s.MR())
	assert.Equal(t, "34616585119", s.DA().Addr)
}

func TestDecodeSubmitWithSMSC(t *testing.T) {
	tp, smsc, err := decode("00"+submitHex, true, true)
	require.NoError(t, err)
	require.NotNil(t, smsc)
	assert.Equal(t, "", smsc.Addr)
	s, ok := tp.(*tpdu.Submit)
	require.True(t, ok)
	assert.EqualValues(t, 1, s.MR())
}

func TestDecodeTruncatedSubmitFails(t *testing.T) {
	truncated := submitHex[:len(submitHex)-2]
	_, _, err := decode(truncated, false, true)
	assert.Error(t, err)
}

func TestDecodeWrongDirectionFails(t *testing.T) {
	// submitHex is a Submit TPDU (MO-bound); decoding it as MT fails since
	// in the MT direction its MTI selects the SMS-SUBMIT-REPORT decoder,
	// a stub that reports the MTI as unsupported.
	_, _, err := decode(submitHex, false, false)
	assert.Error(t, err)
}
