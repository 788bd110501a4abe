// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

// Package wsp implements the WAP-230 Wireless Session Protocol primitive
// encodings used to carry WAP-209 MMS headers and bodies: the integer and
// string forms, the well-known tables they index, and the Header/Parameter/
// Content-Type composites built on top of them.
package wsp

import (
	"strings"

	"github.com/pmarti/go-messaging/internal/cursor"
)

const (
	quote      byte = 0x7f
	quoteMark  byte = 0x22 // '"'
	lengthQuote byte = 0x1f
)

// EncodeUint8 encodes v as a single literal octet.
func EncodeUint8(v byte) []byte {
	return []byte{v}
}

// DecodeUint8 decodes a single literal octet.
func DecodeUint8(c *cursor.Cursor) (byte, error) {
	b, err := c.Next()
	if err != nil {
		return 0, DecodeError("uint8", c.Pos(), err)
	}
	return b, nil
}

// EncodeShortInteger encodes v, which must be in 0..127, as a short integer:
// one octet with the MSB set and v in the low seven bits.
func EncodeShortInteger(v byte) ([]byte, error) {
	if v > 0x7f {
		return nil, EncodeError("shortInteger", ErrInvalid)
	}
	return []byte{v | 0x80}, nil
}

// IsShortInteger reports whether b, as the next undecoded octet, would be
// interpreted as a short integer rather than the start of a long integer.
func IsShortInteger(b byte) bool {
	return b&0x80 != 0
}

// DecodeShortInteger decodes a short integer, returning its low seven bits.
func DecodeShortInteger(c *cursor.Cursor) (byte, error) {
	b, err := c.Next()
	if err != nil {
		return 0, DecodeError("shortInteger", c.Pos(), err)
	}
	if !IsShortInteger(b) {
		return 0, DecodeError("shortInteger", c.Pos()-1, ErrInvalid)
	}
	return b & 0x7f, nil
}

// EncodeLongInteger encodes v as a length octet L (1..30) followed by the L
// big-endian octets of v with no leading zero byte (except for v==0, which
// encodes as a single zero byte).
func EncodeLongInteger(v uint64) ([]byte, error) {
	var b [8]byte
	n := 0
	for i := 7; i >= 0; i-- {
		if v>>(uint(i)*8) != 0 || n > 0 {
			b[n] = byte(v >> (uint(i) * 8))
			n++
		}
	}
	if n == 0 {
		n = 1
	}
	if n > 30 {
		return nil, EncodeError("longInteger", ErrOverlength)
	}
	return append([]byte{byte(n)}, b[:n]...), nil
}

// DecodeLongInteger decodes a long integer.
func DecodeLongInteger(c *cursor.Cursor) (uint64, error) {
	l, err := c.Next()
	if err != nil {
		return 0, DecodeError("longInteger.len", c.Pos(), err)
	}
	if l < 1 || l > 30 {
		return 0, DecodeError("longInteger.len", c.Pos()-1, ErrInvalid)
	}
	data, err := c.Take(int(l))
	if err != nil {
		return 0, DecodeError("longInteger", c.Pos(), err)
	}
	var v uint64
	for _, o := range data {
		v = v<<8 | uint64(o)
	}
	return v, nil
}

// EncodeUintvar encodes v as a variable-length big-endian quantity of up to
// five octets, each carrying seven payload bits with the MSB set on every
// octet but the last. The encoding is always minimal.
func EncodeUintvar(v uint64) []byte {
	var b [5]byte
	n := 0
	b[4] = byte(v & 0x7f)
	n = 1
	v >>= 7
	for v != 0 {
		n++
		b[5-n] = byte(v&0x7f) | 0x80
		v >>= 7
	}
	return append([]byte(nil), b[5-n:]...)
}

// DecodeUintvar decodes a variable-length quantity.
func DecodeUintvar(c *cursor.Cursor) (uint64, error) {
	var v uint64
	for i := 0; i < 5; i++ {
		o, err := c.Next()
		if err != nil {
			return 0, DecodeError("uintvar", c.Pos(), err)
		}
		v = v<<7 | uint64(o&0x7f)
		if o&0x80 == 0 {
			return v, nil
		}
	}
	return 0, DecodeError("uintvar", c.Pos(), ErrOverlength)
}

// EncodeTextString encodes s as a NUL-terminated byte string, prefixed with
// the quote octet 0x7f if the first byte of s would otherwise be taken for
// a short-integer or quote marker (>= 0x80).
func EncodeTextString(s string) []byte {
	b := []byte(s)
	if len(b) > 0 && b[0] >= 0x80 {
		b = append([]byte{quote}, b...)
	}
	return append(b, 0)
}

// DecodeTextString decodes a NUL-terminated byte string, discarding a
// leading quote octet if present.
func DecodeTextString(c *cursor.Cursor) (string, error) {
	b, err := c.Preview()
	if err != nil {
		return "", DecodeError("textString", c.Pos(), err)
	}
	if b == quote {
		c.Commit()
	} else {
		c.ResetPreview()
	}
	var sb strings.Builder
	for {
		o, err := c.Next()
		if err != nil {
			return "", DecodeError("textString", c.Pos(), err)
		}
		if o == 0 {
			return sb.String(), nil
		}
		sb.WriteByte(o)
	}
}

// EncodeQuotedString encodes s, which must not contain a NUL, as a leading
// '"' octet followed by a NUL-terminated text-string.
func EncodeQuotedString(s string) ([]byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, EncodeError("quotedString", ErrInvalid)
	}
	return append([]byte{quoteMark}, EncodeTextString(s)...), nil
}

// DecodeQuotedString decodes a quoted-string.
func DecodeQuotedString(c *cursor.Cursor) (string, error) {
	b, err := c.Next()
	if err != nil {
		return "", DecodeError("quotedString", c.Pos(), err)
	}
	if b != quoteMark {
		return "", DecodeError("quotedString", c.Pos()-1, ErrInvalid)
	}
	s, err := DecodeTextString(c)
	if err != nil {
		return "", DecodeError("quotedString", c.Pos(), err)
	}
	return s, nil
}

// rfc2616Separators are the characters a token-text value must not contain.
const rfc2616Separators = "()<>@,;:\\\"/[]?={} \t"

// EncodeTokenText encodes s, which must not contain any RFC 2616 separator
// character, as a text-string.
func EncodeTokenText(s string) ([]byte, error) {
	if strings.ContainsAny(s, rfc2616Separators) {
		return nil, EncodeError("tokenText", ErrInvalid)
	}
	return EncodeTextString(s), nil
}

// DecodeTokenText decodes a token-text value.
func DecodeTokenText(c *cursor.Cursor) (string, error) {
	s, err := DecodeTextString(c)
	if err != nil {
		return "", DecodeError("tokenText", c.Pos(), err)
	}
	if strings.ContainsAny(s, rfc2616Separators) {
		return "", DecodeError("tokenText", c.Pos(), ErrInvalid)
	}
	return s, nil
}

// EncodeExtensionMedia encodes s, whose first byte must be >= 0x20 and !=
// 0x7f, as a text-string.
func EncodeExtensionMedia(s string) ([]byte, error) {
	if len(s) > 0 && (s[0] < 0x20 || s[0] == quote) {
		return nil, EncodeError("extensionMedia", ErrInvalid)
	}
	return EncodeTextString(s), nil
}

// DecodeExtensionMedia decodes an extension-media value.
func DecodeExtensionMedia(c *cursor.Cursor) (string, error) {
	s, err := DecodeTextString(c)
	if err != nil {
		return "", DecodeError("extensionMedia", c.Pos(), err)
	}
	if len(s) > 0 && (s[0] < 0x20 || s[0] == quote) {
		return "", DecodeError("extensionMedia", c.Pos(), ErrInvalid)
	}
	return s, nil
}

// EncodeShortLength encodes v, which must be in 0..30, as a single octet.
func EncodeShortLength(v byte) ([]byte, error) {
	if v > 30 {
		return nil, EncodeError("shortLength", ErrInvalid)
	}
	return []byte{v}, nil
}

// DecodeShortLength decodes a short-length octet.
func DecodeShortLength(c *cursor.Cursor) (byte, error) {
	b, err := c.Next()
	if err != nil {
		return 0, DecodeError("shortLength", c.Pos(), err)
	}
	if b > 30 {
		return 0, DecodeError("shortLength", c.Pos()-1, ErrInvalid)
	}
	return b, nil
}

// EncodeValueLength encodes v as a short-length if v <= 30, else as the
// quote octet 0x1f followed by a uintvar.
func EncodeValueLength(v uint64) []byte {
	if v <= 30 {
		return []byte{byte(v)}
	}
	return append([]byte{lengthQuote}, EncodeUintvar(v)...)
}

// DecodeValueLength decodes a value-length field.
func DecodeValueLength(c *cursor.Cursor) (uint64, error) {
	b, err := c.Next()
	if err != nil {
		return 0, DecodeError("valueLength", c.Pos(), err)
	}
	if b <= 30 {
		return uint64(b), nil
	}
	if b != lengthQuote {
		return 0, DecodeError("valueLength", c.Pos()-1, ErrInvalid)
	}
	v, err := DecodeUintvar(c)
	if err != nil {
		return 0, DecodeError("valueLength", c.Pos(), err)
	}
	return v, nil
}

// EncodeIntegerValue encodes v as a short integer when it fits in seven
// bits, else as a long integer.
func EncodeIntegerValue(v uint64) []byte {
	if v <= 0x7f {
		b, _ := EncodeShortInteger(byte(v))
		return b
	}
	b, _ := EncodeLongInteger(v)
	return b
}

// DecodeIntegerValue decodes either form of integer-value.
func DecodeIntegerValue(c *cursor.Cursor) (uint64, error) {
	b, err := c.Preview()
	if err != nil {
		return 0, DecodeError("integerValue", c.Pos(), err)
	}
	c.ResetPreview()
	if IsShortInteger(b) {
		v, err := DecodeShortInteger(c)
		return uint64(v), err
	}
	return DecodeLongInteger(c)
}

// ConstrainedEncoding is a short-integer-or-extension-media value, used for
// fields such as well-known charset selectors that allow either an
// enumerated code or a free-form media string.
type ConstrainedEncoding struct {
	IsText bool
	Value  uint64
	Text   string
}

// EncodeConstrainedEncoding encodes c, preferring the short-integer form.
func EncodeConstrainedEncoding(v ConstrainedEncoding) ([]byte, error) {
	if !v.IsText {
		if v.Value <= 0x7f {
			b, _ := EncodeShortInteger(byte(v.Value))
			return b, nil
		}
		return nil, EncodeError("constrainedEncoding", ErrInvalid)
	}
	return EncodeExtensionMedia(v.Text)
}

// DecodeConstrainedEncoding decodes a constrained-encoding value, trying the
// short-integer form before falling back to extension-media.
func DecodeConstrainedEncoding(c *cursor.Cursor) (ConstrainedEncoding, error) {
	b, err := c.Preview()
	if err != nil {
		return ConstrainedEncoding{}, DecodeError("constrainedEncoding", c.Pos(), err)
	}
	c.ResetPreview()
	if IsShortInteger(b) {
		v, err := DecodeShortInteger(c)
		if err != nil {
			return ConstrainedEncoding{}, DecodeError("constrainedEncoding", c.Pos(), err)
		}
		return ConstrainedEncoding{Value: uint64(v)}, nil
	}
	s, err := DecodeExtensionMedia(c)
	if err != nil {
		return ConstrainedEncoding{}, DecodeError("constrainedEncoding", c.Pos(), err)
	}
	return ConstrainedEncoding{IsText: true, Text: s}, nil
}

// AnyCharset is the sentinel well-known-charset value meaning "*" (any
// charset acceptable), encoded as the single octet 0x7f.
const AnyCharset = -1

// EncodeWellKnownCharset encodes mibEnum, or the single octet 0x7f if
// mibEnum is AnyCharset.
func EncodeWellKnownCharset(mibEnum int) ([]byte, error) {
	if mibEnum == AnyCharset {
		return []byte{quote}, nil
	}
	if mibEnum < 0 {
		return nil, EncodeError("wellKnownCharset", ErrInvalid)
	}
	return EncodeIntegerValue(uint64(mibEnum)), nil
}

// DecodeWellKnownCharset decodes a well-known-charset value.
func DecodeWellKnownCharset(c *cursor.Cursor) (int, error) {
	b, err := c.Preview()
	if err != nil {
		return 0, DecodeError("wellKnownCharset", c.Pos(), err)
	}
	if b == quote {
		c.Commit()
		return AnyCharset, nil
	}
	c.ResetPreview()
	v, err := DecodeIntegerValue(c)
	if err != nil {
		return 0, DecodeError("wellKnownCharset", c.Pos(), err)
	}
	return int(v), nil
}

// EncodeQValue encodes v, a quality factor in (0,1], using WSP's restricted
// uintvar encoding. A raw value <= 100 decodes at 1/100 resolution
// ((value-1)/100, covering 0.00..0.99); a raw value > 100 decodes at
// 1/1000 resolution ((value-100)/1000, covering 0.001..1.000). Encode
// always produces the finer (>100) form, which alone spans the full range.
func EncodeQValue(v float64) ([]byte, error) {
	if v <= 0 || v > 1 {
		return nil, EncodeError("qValue", ErrInvalid)
	}
	return EncodeUintvar(uint64(v*1000+0.5) + 100), nil
}

// DecodeQValue decodes a q-value.
func DecodeQValue(c *cursor.Cursor) (float64, error) {
	v, err := DecodeUintvar(c)
	if err != nil {
		return 0, DecodeError("qValue", c.Pos(), err)
	}
	if v <= 100 {
		return float64(v-1) / 100, nil
	}
	return float64(v-100) / 1000, nil
}

// Version is a major.minor WSP/HTTP-style version, with Minor == -1
// representing an omitted minor version.
type Version struct {
	Major int
	Minor int
}

// EncodeVersionValue encodes v as a short integer if both fields fit (major
// in 0..7, minor in 0..14 or omitted), else as a text-string.
func EncodeVersionValue(v Version) ([]byte, error) {
	if v.Major < 0 || v.Major > 7 || v.Minor < -1 || v.Minor > 14 {
		return nil, EncodeError("versionValue", ErrInvalid)
	}
	minor := byte(0x0f)
	if v.Minor >= 0 {
		minor = byte(v.Minor)
	}
	b, _ := EncodeShortInteger(byte(v.Major)<<4 | minor)
	return b, nil
}

// DecodeVersionValue decodes a version-value.
func DecodeVersionValue(c *cursor.Cursor) (Version, error) {
	b, err := c.Preview()
	if err != nil {
		return Version{}, DecodeError("versionValue", c.Pos(), err)
	}
	if IsShortInteger(b) {
		c.Commit()
		major := int((b & 0x7f) >> 4)
		minor := int(b & 0x0f)
		if minor == 0x0f {
			minor = -1
		}
		return Version{Major: major, Minor: minor}, nil
	}
	c.ResetPreview()
	s, err := DecodeTextString(c)
	if err != nil {
		return Version{}, DecodeError("versionValue", c.Pos(), err)
	}
	var v Version
	if _, err := fmtSscanVersion(s, &v); err != nil {
		return Version{}, DecodeError("versionValue", c.Pos(), ErrInvalid)
	}
	return v, nil
}

func fmtSscanVersion(s string, v *Version) (int, error) {
	v.Minor = -1
	parts := strings.SplitN(s, ".", 2)
	maj, err := parseUint(parts[0])
	if err != nil {
		return 0, err
	}
	v.Major = maj
	if len(parts) == 2 {
		min, err := parseUint(parts[1])
		if err != nil {
			return 0, err
		}
		v.Minor = min
	}
	return len(s), nil
}

func parseUint(s string) (int, error) {
	n := 0
	if s == "" {
		return 0, ErrInvalid
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalid
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}
