// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package messaging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmarti/go-messaging"
	"github.com/pmarti/go-messaging/encoding/tpdu"
)

func TestDecodeSMSDeliver7Bit(t *testing.T) {
	pdu, err := messaging.DecodeSMS(
		"07911326040000F0040B911346610089F60000208062917314080CC8F71D14969741F977FD07",
		true,
	)
	require.NoError(t, err)
	d, ok := pdu.(*tpdu.Deliver)
	require.True(t, ok)
	assert.Equal(t, "+31641600986", d.OA().Number())
	alpha, err := d.Alphabet()
	require.NoError(t, err)
	assert.Equal(t, tpdu.Alpha7Bit, alpha)
}

func TestDecodeSMSDeliverUCS2(t *testing.T) {
	pdu, err := messaging.DecodeSMS(
		"07914306073011F0040B914316709807F2000880604290224080084E2D5174901A8BAF",
		true,
	)
	require.NoError(t, err)
	d, ok := pdu.(*tpdu.Deliver)
	require.True(t, ok)
	alpha, err := d.Alphabet()
	require.NoError(t, err)
	assert.Equal(t, tpdu.AlphaUCS2, alpha)
}

func TestDecodeSMSStatusReport(t *testing.T) {
	pdu, err := messaging.DecodeSMS(
		"07914306073011F006270B913426565711F7012081111345400120811174054043",
		true,
	)
	require.NoError(t, err)
	sr, ok := pdu.(*tpdu.StatusReport)
	require.True(t, ok)
	assert.Equal(t, "+43626575117", sr.RA().Number())
	assert.EqualValues(t, 0x01, sr.ST())
}

func TestDecodeSMSOddLengthHex(t *testing.T) {
	// A strict decoder rejects odd-length hex outright.
	_, err := messaging.DecodeSMS("079", true)
	assert.Error(t, err)
	// A non-strict decoder drops the trailing nibble and keeps going, so
	// the error (if any) comes from decoding "07" as too short a PDU, not
	// from the hex parse itself.
	_, err = messaging.DecodeSMS("079", false)
	assert.Error(t, err)
}

func TestEncodeSMSSubmit7BitNoSMSC(t *testing.T) {
	pdus, err := messaging.EncodeSMSSubmit("+34616585119", "hola")
	require.NoError(t, err)
	require.Len(t, pdus, 1)
	b, err := pdus[0].MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, "00 0B 91 43 16 56 58 11 F9 00 00 AA 04 E8 37 3B 0C",
		hexSpaced(b[1:])) // skip the first octet at b[0]
}

func hexSpaced(b []byte) string {
	out := make([]byte, 0, len(b)*3)
	for i, v := range b {
		if i > 0 {
			out = append(out, ' ')
		}
		const hexDigits = "0123456789ABCDEF"
		out = append(out, hexDigits[v>>4], hexDigits[v&0xf])
	}
	return string(out)
}

func TestIsGSMText(t *testing.T) {
	assert.True(t, messaging.IsGSMText("How are you?"))
	assert.False(t, messaging.IsGSMText("中兴通讯"))
}

func TestExtractWAPPushNotification(t *testing.T) {
	pdu1 := "0791447758100650400E80885810000000810004016082415464408C0C08049F8E020105040B8423F00106226170706C69636174696F6E2F766E642E7761702E6D6D732D6D65737361676500AF848C82984E4F4B3543694B636F544D595347344D4253774141734B7631344655484141414141414141008D908919802B3434373738353334323734392F545950453D504C4D4E008A808E0274008805810301194083687474703A2F"
	pdu2 := "0791447758100650440E8088581000000081000401608241547440440C08049F8E020205040B8423F02F70726F6D6D732F736572766C6574732F4E4F4B3543694B636F544D595347344D4253774141734B763134465548414141414141414100"

	d1, err := messaging.DecodeSMS(pdu1, true)
	require.NoError(t, err)
	d2, err := messaging.DecodeSMS(pdu2, true)
	require.NoError(t, err)

	ud := append(append([]byte(nil), []byte(d1.(*tpdu.Deliver).UD())...), []byte(d2.(*tpdu.Deliver).UD())...)
	require.True(t, messaging.IsWAPPush(ud))

	m, _, err := messaging.ExtractWAPPush(ud)
	require.NoError(t, err)
	assert.Equal(t, "NOK5CiKcoTMYSG4MBSwAAsKv14FUHAAAAAAAA", m.TransactionID)
	require.NotNil(t, m.From)
	assert.Equal(t, "+447785342749/TYPE=PLMN", m.From.Text)
	assert.Equal(t, "Personal", m.MessageClass)
	assert.EqualValues(t, 29696, m.MessageSize)
	require.NotNil(t, m.Expiry)
	assert.EqualValues(t, 72000, m.Expiry.Delta)
	assert.Equal(t, "http://promms/servlets/NOK5CiKcoTMYSG4MBSwAAsKv14FUHAAAAAAAA", m.ContentLocation)
}
