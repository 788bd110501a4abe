// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.
// Table data transcribed from 3GPP TS 23.038, in the layout used by
// github.com/pmarti/go-messaging encoding/gsm7/charset/default.go.

package gsm7

// defaultRunes holds the 128-entry default GSM 03.38 alphabet, one rune per
// septet value 0x00..0x7f. Position 0x1b holds the escape character itself;
// it is never looked up directly since Encode/Decode intercept 0x1b before
// consulting the table.
var defaultRunes = []rune(
	"@£$¥èéùìòÇ\nØø\rÅåΔ_ΦΓΛΩΠΨΣΘΞ\x1bÆæßÉ !\"#¤%&'()*+,-./0123456789:;<=>?" +
		"¡ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÑÜ§¿abcdefghijklmnopqrstuvwxyzäöñüà")

// extTable holds the ten character extension table plus the Euro sign
// added by 3GPP TS 23.038 Release 96+, each keyed by the default-table
// septet that follows the 0x1b escape.
var extTable = map[byte]rune{
	0x0a: '\f',
	0x0d: '\n',
	0x14: '^',
	0x28: '{',
	0x29: '}',
	0x2f: '\\',
	0x3c: '[',
	0x3d: '~',
	0x3e: ']',
	0x40: '|',
	0x65: '€',
}

// lossyEncodeTable holds encode-only fallbacks: historical producers mapped
// these runes onto a default-table octet that decodes to a different (but
// visually similar) character. Decode never produces these runes.
var lossyEncodeTable = map[rune]byte{
	'Α': 0x41, // Greek Alpha -> Latin A
	'Β': 0x42, // Greek Beta -> Latin B
	'Ε': 0x45, // Greek Epsilon -> Latin E
	'Η': 0x48, // Greek Eta -> Latin H
	'Ι': 0x49, // Greek Iota -> Latin I
	'Κ': 0x4B, // Greek Kappa -> Latin K
	'Μ': 0x4D, // Greek Mu -> Latin M
	'Ν': 0x4E, // Greek Nu -> Latin N
	'Ο': 0x4F, // Greek Omicron -> Latin O
	'Ρ': 0x50, // Greek Rho -> Latin P
	'Τ': 0x54, // Greek Tau -> Latin T
	'Χ': 0x58, // Greek Chi -> Latin X
	'Υ': 0x59, // Greek Upsilon -> Latin Y
	'Ζ': 0x5A, // Greek Zeta -> Latin Z
	'ç': 0x09, // lower-case c-cedilla -> the Ç octet
}

var (
	defaultDecodeTable map[byte]rune
	extDecodeTable     = extTable
	encodeTable        map[rune]byte
	extEncodeTable     map[rune]byte
)

func init() {
	defaultDecodeTable = make(map[byte]rune, len(defaultRunes))
	encodeTable = make(map[rune]byte, len(defaultRunes))
	for i, r := range defaultRunes {
		defaultDecodeTable[byte(i)] = r
		encodeTable[r] = byte(i)
	}
	extEncodeTable = make(map[rune]byte, len(extTable))
	for g, r := range extTable {
		extEncodeTable[r] = g
	}
}

// DefaultTable returns the 128-entry default GSM 03.38 alphabet, keyed by
// septet value.
func DefaultTable() map[byte]rune {
	t := make(map[byte]rune, len(defaultDecodeTable))
	for k, v := range defaultDecodeTable {
		t[k] = v
	}
	return t
}

// ExtensionTable returns the GSM 03.38 extension table, keyed by the
// septet that follows the 0x1b escape.
func ExtensionTable() map[byte]rune {
	t := make(map[byte]rune, len(extTable))
	for k, v := range extTable {
		t[k] = v
	}
	return t
}
