// SPDX-License-Identifier: MIT
//
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

package pdumode_test

import (
	"encoding/hex"
	"testing"

	"github.com/pmarti/go-messaging/encoding/pdumode"
	"github.com/pmarti/go-messaging/encoding/tpdu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDUUnmarshalBinary(t *testing.T) {
	b, err := hex.DecodeString("0791361907002039010203040506070809")
	require.NoError(t, err)
	pdu, err := pdumode.UnmarshalBinary(b)
	require.NoError(t, err)
	assert.Equal(t, "639170000293", pdu.SMSC.Addr)
	assert.Equal(t, byte(0x91), pdu.SMSC.TOA)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}, pdu.TPDU)
}

func TestPDUUnmarshalBinaryEmpty(t *testing.T) {
	_, err := pdumode.UnmarshalBinary(nil)
	assert.Error(t, err)
}

func TestPDUUnmarshalHexString(t *testing.T) {
	pdu, err := pdumode.UnmarshalHexString("0791361907002039010203040506070809")
	require.NoError(t, err)
	assert.Equal(t, "639170000293", pdu.SMSC.Addr)
}

func TestPDUUnmarshalHexStringBadHex(t *testing.T) {
	_, err := pdumode.UnmarshalHexString("nothex")
	assert.Error(t, err)
}

func TestPDUMarshalBinaryNoSMSC(t *testing.T) {
	pdu := pdumode.PDU{TPDU: []byte{0x01, 0x02}}
	b, err := pdu.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, "000102", hex.EncodeToString(b))
}

func TestPDUMarshalBinaryRoundTrip(t *testing.T) {
	pdu := pdumode.PDU{
		SMSC: pdumode.SMSCAddress{Address: tpdu.Address{Addr: "639170000293", TOA: 0x91}},
		TPDU: []byte{0x01, 0x02, 0x03},
	}
	b, err := pdu.MarshalBinary()
	require.NoError(t, err)

	out, err := pdumode.UnmarshalBinary(b)
	require.NoError(t, err)
	assert.Equal(t, pdu.SMSC, out.SMSC)
	assert.Equal(t, pdu.TPDU, out.TPDU)
}

func TestPDUMarshalHexString(t *testing.T) {
	pdu := pdumode.PDU{TPDU: []byte{0xab}}
	s, err := pdu.MarshalHexString()
	require.NoError(t, err)
	assert.Equal(t, "00ab", s)
}

func TestPDUDecoderEncoderRoundTrip(t *testing.T) {
	smsc := pdumode.SMSCAddress{Address: tpdu.Address{Addr: "44790000000", TOA: 0x91}}
	b, err := (pdumode.Encoder{}).Encode(smsc, []byte{0x11, 0x22})
	require.NoError(t, err)

	outSMSC, outTPDU, err := (pdumode.Decoder{}).Decode(b)
	require.NoError(t, err)
	assert.Equal(t, smsc, *outSMSC)
	assert.Equal(t, []byte{0x11, 0x22}, outTPDU)
}
