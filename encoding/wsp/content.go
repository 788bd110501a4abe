// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package wsp

import (
	"github.com/pmarti/go-messaging/internal/cursor"
)

// ContentType is a decoded content-type-value: a media type, optionally
// with parameters (charset, boundary, name, ...).
type ContentType struct {
	Media  string
	Params []Parameter
}

// EncodeContentTypeValue encodes ct as constrained-media (a single
// well-known integer code) when ct has no parameters and its media type is
// in the content-type table, else as the content-general-form:
// value-length media-type *parameter.
func EncodeContentTypeValue(ct ContentType) ([]byte, error) {
	if len(ct.Params) == 0 {
		if code, ok := ContentTypeCode(ct.Media); ok {
			return EncodeIntegerValue(uint64(code)), nil
		}
	}
	media, err := EncodeExtensionMedia(ct.Media)
	if err != nil {
		return nil, EncodeError("contentType.media", err)
	}
	body := append([]byte(nil), media...)
	for _, p := range ct.Params {
		pb, err := EncodeParameter(p)
		if err != nil {
			return nil, EncodeError("contentType.param", err)
		}
		body = append(body, pb...)
	}
	return append(EncodeValueLength(uint64(len(body))), body...), nil
}

// DecodeContentTypeValue decodes a content-type-value. The leading octet
// distinguishes the three forms: MSB set selects constrained-media as a
// well-known integer code; a value < 0x20 (a value-length lead byte; media
// type text always starts >= 0x20 per extension-media) selects the
// general form, whose parameters are parsed from exactly the declared
// number of bytes.
func DecodeContentTypeValue(c *cursor.Cursor) (ContentType, error) {
	b, err := c.Preview()
	if err != nil {
		return ContentType{}, DecodeError("contentType", c.Pos(), err)
	}
	c.ResetPreview()
	if IsShortInteger(b) {
		v, err := DecodeIntegerValue(c)
		if err != nil {
			return ContentType{}, DecodeError("contentType", c.Pos(), err)
		}
		media, ok := ContentTypes[int(v)]
		if !ok {
			return ContentType{}, DecodeError("contentType", c.Pos(), ErrInvalid)
		}
		return ContentType{Media: media}, nil
	}
	if b >= 0x20 && b != quote {
		// Constrained-media given directly as a media-type string, rather
		// than indexed through the content-type table.
		media, err := DecodeExtensionMedia(c)
		if err != nil {
			return ContentType{}, DecodeError("contentType", c.Pos(), err)
		}
		return ContentType{Media: media}, nil
	}
	length, err := DecodeValueLength(c)
	if err != nil {
		return ContentType{}, DecodeError("contentType.length", c.Pos(), err)
	}
	body, err := c.Take(int(length))
	if err != nil {
		return ContentType{}, DecodeError("contentType", c.Pos(), err)
	}
	bc := cursor.New(body)
	media, err := DecodeExtensionMedia(bc)
	if err != nil {
		return ContentType{}, DecodeError("contentType.media", c.Pos()-int(length), err)
	}
	ct := ContentType{Media: media}
	for bc.Remaining() > 0 {
		p, err := DecodeParameter(bc)
		if err != nil {
			return ContentType{}, DecodeError("contentType.param", c.Pos()-bc.Remaining(), err)
		}
		ct.Params = append(ct.Params, p)
	}
	return ct, nil
}
