// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package wsp

import (
	"github.com/pmarti/go-messaging/internal/cursor"
)

// Parameter is one parameter of a content-type-value: either a well-known
// typed parameter (Code set, value type dictated by the parameter table)
// or an untyped application parameter (Code zero, Name set, value type
// taken from the leading octet of the encoded value).
type Parameter struct {
	Code      int
	Name      string
	IsInteger bool
	IntValue  uint64
	TextValue string
}

func paramCodeForName(name string) (int, bool) {
	for code, p := range paramTable {
		if p.name == name {
			return code, true
		}
	}
	return 0, false
}

// EncodeParameter encodes p as a typed parameter if p.Code, or a well-known
// name in p.Name, identifies an entry in the parameter table, else as an
// untyped token-text name paired with an integer- or text-value.
func EncodeParameter(p Parameter) ([]byte, error) {
	code := p.Code
	if code == 0 && p.Name != "" {
		if c, ok := paramCodeForName(p.Name); ok {
			code = c
		}
	}
	if info, ok := paramTable[code]; ok {
		b, err := EncodeShortInteger(byte(code))
		if err != nil {
			return nil, EncodeError("parameter.code", err)
		}
		if info.isInteger {
			return append(b, EncodeIntegerValue(p.IntValue)...), nil
		}
		return append(b, EncodeTextString(p.TextValue)...), nil
	}
	name, err := EncodeTokenText(p.Name)
	if err != nil {
		return nil, EncodeError("parameter.name", err)
	}
	if p.IsInteger {
		return append(name, EncodeIntegerValue(p.IntValue)...), nil
	}
	return append(name, EncodeTextString(p.TextValue)...), nil
}

// DecodeParameter decodes one parameter. The first octet distinguishes a
// well-known (short-integer code) parameter from an untyped (token-text
// name) one.
func DecodeParameter(c *cursor.Cursor) (Parameter, error) {
	b, err := c.Preview()
	if err != nil {
		return Parameter{}, DecodeError("parameter", c.Pos(), err)
	}
	c.ResetPreview()
	if IsShortInteger(b) {
		code, err := DecodeShortInteger(c)
		if err != nil {
			return Parameter{}, DecodeError("parameter.code", c.Pos(), err)
		}
		p := Parameter{Code: int(code)}
		info, known := paramTable[int(code)]
		if known {
			p.Name = info.name
		}
		if known && info.isInteger {
			v, err := DecodeIntegerValue(c)
			if err != nil {
				return Parameter{}, DecodeError("parameter.value", c.Pos(), err)
			}
			p.IsInteger = true
			p.IntValue = v
			return p, nil
		}
		s, err := DecodeTextString(c)
		if err != nil {
			return Parameter{}, DecodeError("parameter.value", c.Pos(), err)
		}
		p.TextValue = s
		return p, nil
	}
	name, err := DecodeTokenText(c)
	if err != nil {
		return Parameter{}, DecodeError("parameter.name", c.Pos(), err)
	}
	vb, err := c.Preview()
	if err != nil {
		return Parameter{}, DecodeError("parameter.value", c.Pos(), err)
	}
	c.ResetPreview()
	p := Parameter{Name: name}
	if IsShortInteger(vb) {
		v, err := DecodeIntegerValue(c)
		if err != nil {
			return Parameter{}, DecodeError("parameter.value", c.Pos(), err)
		}
		p.IsInteger = true
		p.IntValue = v
		return p, nil
	}
	s, err := DecodeTextString(c)
	if err != nil {
		return Parameter{}, DecodeError("parameter.value", c.Pos(), err)
	}
	p.TextValue = s
	return p, nil
}
