// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package mms

import (
	"time"

	"github.com/pmarti/go-messaging/encoding/wsp"
	"github.com/pmarti/go-messaging/internal/cursor"
)

// decodeEncodedStringValue decodes an encoded-string-value: either a bare
// text-string, or value-length charset text-string. Either way the raw
// text is preserved; callers that need the charset read it from the
// returned EncodedString.Charset.
func decodeEncodedStringValue(c *cursor.Cursor) (EncodedString, error) {
	b, err := c.Preview()
	if err != nil {
		return EncodedString{}, DecodeError("encodedString", c.Pos(), err)
	}
	c.ResetPreview()
	if b > 30 && b != 0x1f {
		s, err := wsp.DecodeTextString(c)
		if err != nil {
			return EncodedString{}, DecodeError("encodedString", c.Pos(), err)
		}
		return EncodedString{Text: s}, nil
	}
	length, err := wsp.DecodeValueLength(c)
	if err != nil {
		return EncodedString{}, DecodeError("encodedString.length", c.Pos(), err)
	}
	body, err := c.Take(int(length))
	if err != nil {
		return EncodedString{}, DecodeError("encodedString", c.Pos(), err)
	}
	bc := cursor.New(body)
	charset, err := wsp.DecodeWellKnownCharset(bc)
	if err != nil {
		return EncodedString{}, DecodeError("encodedString.charset", c.Pos()-int(length), err)
	}
	s, err := wsp.DecodeTextString(bc)
	if err != nil {
		return EncodedString{}, DecodeError("encodedString.text", c.Pos()-int(length), err)
	}
	return EncodedString{Charset: charset, Text: s}, nil
}

// encodeEncodedStringValue encodes v, using the bare text-string form when
// no charset was set.
func encodeEncodedStringValue(v EncodedString) ([]byte, error) {
	if v.Charset == 0 {
		return wsp.EncodeTextString(v.Text), nil
	}
	cs, err := wsp.EncodeWellKnownCharset(v.Charset)
	if err != nil {
		return nil, EncodeError("encodedString.charset", err)
	}
	body := append(cs, wsp.EncodeTextString(v.Text)...)
	return append(wsp.EncodeValueLength(uint64(len(body))), body...), nil
}

func decodeBooleanValue(c *cursor.Cursor) (bool, error) {
	b, err := c.Next()
	if err != nil {
		return false, DecodeError("boolean", c.Pos(), err)
	}
	if b != 0x80 && b != 0x81 {
		return false, DecodeError("boolean", c.Pos()-1, ErrInvalid)
	}
	return b == 0x80, nil
}

func encodeBooleanValue(v bool) []byte {
	if v {
		return []byte{0x80}
	}
	return []byte{0x81}
}

// decodeDateOrDeltaValue decodes the common "value-length (absolute-token
// date-value | relative-token delta-seconds)" grammar shared by Expiry and
// Delivery-Time.
func decodeDateOrDeltaValue(c *cursor.Cursor) (DateOrDelta, error) {
	length, err := wsp.DecodeValueLength(c)
	if err != nil {
		return DateOrDelta{}, DecodeError("length", c.Pos(), err)
	}
	body, err := c.Take(int(length))
	if err != nil {
		return DateOrDelta{}, DecodeError("body", c.Pos(), err)
	}
	bc := cursor.New(body)
	token, err := bc.Next()
	if err != nil {
		return DateOrDelta{}, DecodeError("token", c.Pos()-int(length), err)
	}
	switch token {
	case 0x80:
		t, err := wsp.DecodeDateValue(bc)
		if err != nil {
			return DateOrDelta{}, DecodeError("date", c.Pos()-int(length)+1, err)
		}
		return DateOrDelta{Absolute: true, Time: t}, nil
	case 0x81:
		d, err := wsp.DecodeDeltaSeconds(bc)
		if err != nil {
			return DateOrDelta{}, DecodeError("delta", c.Pos()-int(length)+1, err)
		}
		return DateOrDelta{Delta: d}, nil
	default:
		return DateOrDelta{}, DecodeError("token", c.Pos()-int(length), ErrInvalid)
	}
}

func encodeDateOrDeltaValue(v DateOrDelta) []byte {
	var body []byte
	if v.Absolute {
		date, _ := wsp.EncodeDateValue(v.Time)
		body = append([]byte{0x80}, date...)
	} else {
		body = append([]byte{0x81}, wsp.EncodeDeltaSeconds(v.Delta)...)
	}
	return append(wsp.EncodeValueLength(uint64(len(body))), body...)
}

func decodeFromValue(c *cursor.Cursor) (Address, error) {
	length, err := wsp.DecodeValueLength(c)
	if err != nil {
		return Address{}, DecodeError("length", c.Pos(), err)
	}
	body, err := c.Take(int(length))
	if err != nil {
		return Address{}, DecodeError("body", c.Pos(), err)
	}
	bc := cursor.New(body)
	token, err := bc.Next()
	if err != nil {
		return Address{}, DecodeError("token", c.Pos()-int(length), err)
	}
	if token == 0x81 {
		return Address{Insert: true}, nil
	}
	if token != 0x80 {
		return Address{}, DecodeError("token", c.Pos()-int(length), ErrInvalid)
	}
	es, err := decodeEncodedStringValue(bc)
	if err != nil {
		return Address{}, DecodeError("address", c.Pos()-int(length)+1, err)
	}
	return Address{EncodedString: es}, nil
}

func encodeFromValue(v Address) ([]byte, error) {
	if v.Insert {
		return append(wsp.EncodeValueLength(1), 0x81), nil
	}
	addr, err := encodeEncodedStringValue(v.EncodedString)
	if err != nil {
		return nil, EncodeError("from", err)
	}
	body := append([]byte{0x80}, addr...)
	return append(wsp.EncodeValueLength(uint64(len(body))), body...), nil
}

var messageClassTokens = map[byte]string{
	0x80: "Personal",
	0x81: "Advertisement",
	0x82: "Informational",
	0x83: "Auto",
}

var messageClassCodes = func() map[string]byte {
	m := make(map[string]byte, len(messageClassTokens))
	for b, s := range messageClassTokens {
		m[s] = b
	}
	return m
}()

func decodeMessageClassValue(c *cursor.Cursor) (string, error) {
	b, err := c.Preview()
	if err != nil {
		return "", DecodeError("messageClass", c.Pos(), err)
	}
	if s, ok := messageClassTokens[b]; ok {
		c.Commit()
		return s, nil
	}
	c.ResetPreview()
	s, err := wsp.DecodeTokenText(c)
	if err != nil {
		return "", DecodeError("messageClass", c.Pos(), err)
	}
	return s, nil
}

func encodeMessageClassValue(v string) []byte {
	if b, ok := messageClassCodes[v]; ok {
		return []byte{b}
	}
	b, _ := wsp.EncodeTokenText(v)
	return b
}

func decodeMessageTypeValue(c *cursor.Cursor) (MessageType, error) {
	b, err := c.Preview()
	if err != nil {
		return TypeUnknown, DecodeError("messageType", c.Pos(), err)
	}
	c.Commit()
	if t, ok := messageTypeFromCode[b]; ok {
		return t, nil
	}
	return TypeUnknown, nil
}

func encodeMessageTypeValue(v MessageType) []byte {
	b, ok := messageTypeCode[v]
	if !ok {
		b = messageTypeCode[TypeSendReq]
	}
	return []byte{b}
}

func decodePriorityValue(c *cursor.Cursor) (Priority, error) {
	b, err := c.Next()
	if err != nil {
		return PriorityUnspecified, DecodeError("priority", c.Pos(), err)
	}
	switch b {
	case 128, 129, 130:
		return Priority(b), nil
	}
	return PriorityUnspecified, DecodeError("priority", c.Pos()-1, ErrInvalid)
}

func encodePriorityValue(v Priority) []byte {
	if v == PriorityUnspecified {
		v = PriorityNormal
	}
	return []byte{byte(v)}
}

func decodeSenderVisibilityValue(c *cursor.Cursor) (bool, error) {
	b, err := c.Next()
	if err != nil {
		return false, DecodeError("senderVisibility", c.Pos(), err)
	}
	if b != 0x80 && b != 0x81 {
		return false, DecodeError("senderVisibility", c.Pos()-1, ErrInvalid)
	}
	return b == 0x81, nil
}

func encodeSenderVisibilityValue(show bool) []byte {
	if show {
		return []byte{0x81}
	}
	return []byte{0x80}
}

var responseStatusCodes = map[byte]ResponseStatus{
	0x80: ResponseOK,
	0x81: ResponseErrorUnspecified,
	0x82: ResponseErrorServiceDenied,
	0x83: ResponseErrorMessageFormatCorrupt,
	0x84: ResponseErrorSendingAddressUnresolved,
	0x85: ResponseErrorMessageNotFound,
	0x86: ResponseErrorNetworkProblem,
	0x87: ResponseErrorContentNotAccepted,
	0x88: ResponseErrorUnsupportedMessage,
}

func decodeResponseStatusValue(c *cursor.Cursor) (ResponseStatus, error) {
	b, err := c.Next()
	if err != nil {
		return ResponseUnspecified, DecodeError("responseStatus", c.Pos(), err)
	}
	if rs, ok := responseStatusCodes[b]; ok {
		return rs, nil
	}
	return ResponseErrorUnspecified, nil
}

func encodeResponseStatusValue(v ResponseStatus) []byte {
	if v == ResponseUnspecified {
		v = ResponseErrorUnspecified
	}
	return []byte{byte(v)}
}

var statusCodes = map[byte]Status{
	0x80: StatusExpired,
	0x81: StatusRetrieved,
	0x82: StatusRejected,
	0x83: StatusDeferred,
	0x84: StatusUnrecognised,
}

func decodeStatusValue(c *cursor.Cursor) (Status, error) {
	b, err := c.Next()
	if err != nil {
		return StatusUnspecified, DecodeError("status", c.Pos(), err)
	}
	if s, ok := statusCodes[b]; ok {
		return s, nil
	}
	return StatusUnrecognised, nil
}

func encodeStatusValue(v Status) []byte {
	if v == StatusUnspecified {
		v = StatusUnrecognised
	}
	return []byte{byte(v)}
}

func decodeDateValue(c *cursor.Cursor) (time.Time, error) {
	t, err := wsp.DecodeDateValue(c)
	if err != nil {
		return time.Time{}, DecodeError("date", c.Pos(), err)
	}
	return t, nil
}
