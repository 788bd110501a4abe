// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

// Package messaging is the top-level programmatic surface of the module:
// encoding/decoding SMS-SUBMIT, SMS-DELIVER and SMS-STATUS-REPORT PDUs, and
// encoding/decoding MMS notifications and messages, without needing to
// reach into encoding/tpdu, encoding/pdumode or encoding/mms directly.
package messaging

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/pmarti/go-messaging/encoding/gsm7"
	"github.com/pmarti/go-messaging/encoding/mms"
	"github.com/pmarti/go-messaging/encoding/pdumode"
	"github.com/pmarti/go-messaging/encoding/tpdu"
	"github.com/pmarti/go-messaging/sms/sar"
)

// decoder is the shared tpdu.Decoder, registered for every MT-direction
// TPDU this package understands: SMS-DELIVER and SMS-STATUS-REPORT.
// SMS-SUBMIT-REPORT and SMS-COMMAND are registered with stub decoders so
// Decode reports ErrUnsupportedMTI rather than panicking on an unregistered
// message type.
var decoder = func() *tpdu.Decoder {
	d, err := tpdu.NewDecoder()
	if err != nil {
		panic(err)
	}
	for _, reg := range []func(*tpdu.Decoder) error{
		tpdu.RegisterDeliverDecoder,
		tpdu.RegisterReservedDecoder,
		tpdu.RegisterStatusReportDecoder,
		tpdu.RegisterSubmitReportDecoder,
		tpdu.RegisterCommandDecoder,
	} {
		if err := reg(d); err != nil {
			panic(err)
		}
	}
	return d
}()

// defaultEncoder is the package-level Encoder used by EncodeSMSSubmit.
var defaultEncoder = sar.NewEncoder()

// EncodeSMSSubmit builds the SMS-SUBMIT TPDUs required to carry text to
// number, applying any supplied options (request-status, message class,
// validity period, a shared message-reference Counter).
func EncodeSMSSubmit(number, text string, opts ...sar.EncodeOption) ([]tpdu.Submit, error) {
	return defaultEncoder.EncodeSubmit(number, text, opts...)
}

// DecodeSMS decodes pduHex, a TPDU in PDU-mode hex (SMSC prefix included),
// into the concrete TPDU it represents: *tpdu.Deliver or
// *tpdu.StatusReport.
//
// A strict decoder rejects an odd-length hex string outright; a non-strict
// decoder drops the final nibble and decodes what remains, matching modems
// that pad an odd-length PDU hex dump.
func DecodeSMS(pduHex string, strict bool) (interface{}, error) {
	if len(pduHex)%2 != 0 {
		if strict {
			return nil, errors.New("messaging: odd length hex string")
		}
		pduHex = pduHex[:len(pduHex)-1]
	}
	raw, err := hex.DecodeString(pduHex)
	if err != nil {
		return nil, errors.Wrap(err, "messaging: invalid hex")
	}
	_, tpduBytes, err := (pdumode.Decoder{}).Decode(raw)
	if err != nil {
		return nil, errors.Wrap(err, "messaging: pdu mode")
	}
	pdu, err := decoder.Decode(tpduBytes, tpdu.MT)
	if err != nil {
		return nil, err
	}
	return pdu, nil
}

// IsGSMText reports whether s can be losslessly represented using the GSM
// 03.38 default alphabet plus its extension table.
func IsGSMText(s string) bool {
	return gsm7.IsGSMText(s)
}

// EncodeMMS encodes m as a binary MMS PDU.
func EncodeMMS(m *mms.Message) ([]byte, error) {
	return mms.Marshal(m)
}

// DecodeMMS decodes b as a binary MMS PDU.
func DecodeMMS(b []byte) (*mms.Message, error) {
	return mms.Unmarshal(b)
}

// wapPushMarker is the WSP "Push" PDU type octet, at offset 1 of an SMS
// user-data payload that carries a WAP Push notification.
const wapPushMarker = 0x06

// IsWAPPush reports whether b, an SMS-DELIVER's decoded user-data octets,
// begins with a WSP Push PDU envelope: a transaction id octet, then the
// Push PDU type octet (0x06).
func IsWAPPush(b []byte) bool {
	return len(b) >= 2 && b[1] == wapPushMarker
}

// ExtractWAPPush decodes the MMS notification carried in a WAP Push
// envelope at the front of b, returning the decoded message and the push
// transaction id.
//
// The envelope is: transaction-id octet, push-PDU-type octet (0x06),
// single-octet header-section length, then that many header octets (the
// WSP headers that would accompany a Push PDU delivered over a bearer that
// carries headers out of band — on SMS these are not meaningful and are
// skipped), followed directly by the MMS PDU body.
func ExtractWAPPush(b []byte) (*mms.Message, string, error) {
	if !IsWAPPush(b) {
		return nil, "", errors.New("messaging: not a WAP push notification")
	}
	if len(b) < 3 {
		return nil, "", errors.New("messaging: wap push envelope truncated")
	}
	transactionID := b[0]
	headersLen := int(b[2])
	offset := 3 + headersLen
	if len(b) < offset {
		return nil, "", errors.New("messaging: wap push envelope truncated")
	}
	m, err := mms.Unmarshal(b[offset:])
	if err != nil {
		return nil, "", err
	}
	return m, hex.EncodeToString([]byte{transactionID}), nil
}
