// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.
// Derived from github.com/pmarti/go-messaging encoding/gsm7, which carries
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

// Package gsm7 provides the GSM 03.38 default and extension character
// tables and the codec between them and Unicode text.
package gsm7

import "fmt"

const (
	esc  byte = 0x1b
	nbsp      = ' '
)

// Policy controls how Encode handles a rune with no representation in
// either the default or extension table, and how Decode handles a septet
// absent from the default table.
type Policy int

const (
	// Strict fails with an error on an unmappable rune or septet.
	Strict Policy = iota
	// Replace substitutes '?' for an unmappable rune or septet.
	Replace
	// Ignore drops an unmappable rune or septet silently.
	Ignore
)

// Encode converts s from UTF-8 to a GSM 03.38 septet stream (each septet
// held in the low 7 bits of a byte). The escape octet 0x1b precedes each
// extension-table septet.
//
// Beyond the default and extension tables, Encode accepts a small set of
// historical lossy fallbacks: the Greek capitals that share glyphs with
// Latin capitals, and lower-case ç, mapped to the same octet as the
// corresponding default-table letter. These fallbacks are not reversible;
// Decode never produces the rune that was lost.
func Encode(s string, policy Policy) ([]byte, error) {
	dst := make([]byte, 0, len(s))
	for _, r := range s {
		if g, ok := encodeTable[r]; ok {
			dst = append(dst, g)
			continue
		}
		if g, ok := extEncodeTable[r]; ok {
			dst = append(dst, esc, g)
			continue
		}
		if g, ok := lossyEncodeTable[r]; ok {
			dst = append(dst, g)
			continue
		}
		switch policy {
		case Replace:
			dst = append(dst, '?')
		case Ignore:
		default:
			return nil, ErrInvalidRune(r)
		}
	}
	return dst, nil
}

// Decode converts src, a GSM 03.38 septet stream (one septet per byte, in
// the low 7 bits), into UTF-8 text.
//
// A bare (unescaped) trailing 0x1b decodes to U+00A0 (NBSP). An escape
// (0x1b) followed by a septet absent from the extension table decodes to
// NBSP followed by that septet's default-table character, preserving the
// information a strict-extension-only decode would discard.
func Decode(src []byte, policy Policy) (string, error) {
	dst := make([]rune, 0, len(src))
	escaped := false
	for _, g := range src {
		if escaped {
			escaped = false
			if r, ok := extDecodeTable[g]; ok {
				dst = append(dst, r)
				continue
			}
			dst = append(dst, nbsp)
			if r, ok := defaultDecodeTable[g]; ok {
				dst = append(dst, r)
				continue
			}
			switch policy {
			case Replace:
				dst = append(dst, '?')
			case Ignore:
			default:
				return string(dst), ErrInvalidSeptet(g)
			}
			continue
		}
		if g == esc {
			escaped = true
			continue
		}
		if r, ok := defaultDecodeTable[g]; ok {
			dst = append(dst, r)
			continue
		}
		switch policy {
		case Replace:
			dst = append(dst, '?')
		case Ignore:
		default:
			return string(dst), ErrInvalidSeptet(g)
		}
	}
	if escaped {
		dst = append(dst, nbsp)
	}
	return string(dst), nil
}

// EncodeNoExtension behaves as Encode but never emits an escape sequence,
// treating any rune that is only available via the extension table as
// unmappable. This is the encoding used for GSM7-packed alphanumeric
// addresses (3GPP TS 23.040 Section 9.1.2.5), which have no room for an
// escape-prefixed octet.
func EncodeNoExtension(s string, policy Policy) ([]byte, error) {
	dst := make([]byte, 0, len(s))
	for _, r := range s {
		if g, ok := encodeTable[r]; ok {
			dst = append(dst, g)
			continue
		}
		if g, ok := lossyEncodeTable[r]; ok {
			dst = append(dst, g)
			continue
		}
		switch policy {
		case Replace:
			dst = append(dst, '?')
		case Ignore:
		default:
			return nil, ErrInvalidRune(r)
		}
	}
	return dst, nil
}

// DecodeNoExtension behaves as Decode but treats 0x1b as an invalid septet
// rather than an escape, the counterpart to EncodeNoExtension.
func DecodeNoExtension(src []byte, policy Policy) (string, error) {
	dst := make([]rune, 0, len(src))
	for _, g := range src {
		if r, ok := defaultDecodeTable[g]; ok && g != esc {
			dst = append(dst, r)
			continue
		}
		switch policy {
		case Replace:
			dst = append(dst, '?')
		case Ignore:
		default:
			return string(dst), ErrInvalidSeptet(g)
		}
	}
	return string(dst), nil
}

// IsGSMText reports whether s can be losslessly represented in the default
// and extension GSM 03.38 tables. A string containing U+00A0 is never GSM
// text, since NBSP is indistinguishable on decode from a dangling escape or
// an escape-miss.
func IsGSMText(s string) bool {
	for _, r := range s {
		if r == nbsp {
			return false
		}
	}
	_, err := Encode(s, Strict)
	return err == nil
}

// ErrInvalidRune indicates a rune has no representation in the GSM 03.38
// default or extension tables (and no lossy fallback either).
type ErrInvalidRune rune

func (e ErrInvalidRune) Error() string {
	return fmt.Sprintf("gsm7: invalid rune %q (%U)", rune(e), rune(e))
}

// ErrInvalidSeptet indicates a septet value is absent from the table being
// consulted.
type ErrInvalidSeptet byte

func (e ErrInvalidSeptet) Error() string {
	return fmt.Sprintf("gsm7: invalid septet 0x%02x", byte(e))
}
