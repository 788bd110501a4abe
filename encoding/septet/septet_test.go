// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package septet_test

import (
	"testing"

	"github.com/pmarti/go-messaging/encoding/septet"
	"github.com/stretchr/testify/assert"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	patterns := [][]byte{
		{},
		{0x00},
		[]byte("hola"),
		[]byte("How are you?"),
	}
	for _, u := range patterns {
		p := septet.Pack(u, 0)
		out := septet.Unpack(p, 0)
		assert.Equal(t, u, out[:len(u)])
	}
}

func TestPackKnownVector(t *testing.T) {
	// "hola" GSM7-encoded then packed, as used by the SMS-SUBMIT scenario
	// in the scenario table (E8373B0C... is "hola" packed).
	u := []byte{'h' & 0x7f, 'o' & 0x7f, 'l' & 0x7f, 'a' & 0x7f}
	p := septet.Pack(u, 0)
	assert.Equal(t, []byte{0xe8, 0x37, 0x3b, 0x0c}, p)
	assert.Equal(t, septet.Unpack(p, 0), u)
}

func TestPackWithFillBits(t *testing.T) {
	udh := []byte{0x05, 0x00, 0x03, 0x01, 0x02, 0x01}
	fillBits := 0
	if dangling := len(udh) % 7; dangling != 0 {
		fillBits = 7 - dangling
	}
	septets := []byte{1, 2, 3, 4, 5}
	packed := septet.Pack(septets, fillBits)
	unpacked := septet.Unpack(packed, fillBits)
	assert.Equal(t, septets, unpacked)
}
