// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

// Header name encoding: the WSP header grammar is "well-known-header
// (short integer index into header-field-names) plus a wap-value whose
// decoding is keyed by the header name, or application-header (token-text
// name, text-string value)". Because the wap-value grammar differs per
// header name, only the name is decoded here; the caller (encoding/mms,
// which knows which header it is decoding) reads the value from the same
// cursor with the primitive appropriate to that header.
package wsp

import (
	"github.com/pmarti/go-messaging/internal/cursor"
)

// EncodeHeaderName encodes name as a well-known header code if name is in
// the header-field-names table, else as an application-header token-text
// name.
func EncodeHeaderName(name string) ([]byte, error) {
	if code, ok := HeaderFieldCode(name); ok {
		return EncodeShortInteger(byte(code))
	}
	return EncodeTokenText(name)
}

// DecodeHeaderName decodes one header name, reporting whether it resolved
// to a well-known header-field-names entry (true) or an application
// header token (false, in which case name is the literal token text).
func DecodeHeaderName(c *cursor.Cursor) (name string, wellKnown bool, err error) {
	b, err := c.Preview()
	if err != nil {
		return "", false, DecodeError("header.name", c.Pos(), err)
	}
	c.ResetPreview()
	if IsShortInteger(b) {
		code, err := DecodeShortInteger(c)
		if err != nil {
			return "", false, DecodeError("header.name", c.Pos(), err)
		}
		n, ok := HeaderFieldNames[int(code)]
		if !ok {
			return "", false, DecodeError("header.name", c.Pos(), ErrInvalid)
		}
		return n, true, nil
	}
	n, err := DecodeTokenText(c)
	if err != nil {
		return "", false, DecodeError("header.name", c.Pos(), err)
	}
	return n, false, nil
}

// EncodeApplicationHeaderValue encodes the value of an application header
// as a text-string.
func EncodeApplicationHeaderValue(s string) []byte {
	return EncodeTextString(s)
}

// DecodeApplicationHeaderValue decodes the value of an application header.
func DecodeApplicationHeaderValue(c *cursor.Cursor) (string, error) {
	s, err := DecodeTextString(c)
	if err != nil {
		return "", DecodeError("header.value", c.Pos(), err)
	}
	return s, nil
}
