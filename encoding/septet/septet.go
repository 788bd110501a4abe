// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.
// Packing algorithm derived from github.com/pmarti/go-messaging
// encoding/gsm7/7bit.go (Copyright © 2018 Kent Gibson
// <warthog618@gmail.com>), trimmed to the SMS (non-USSD) packing rule.

// Package septet packs and unpacks GSM 03.38 septets into the 8-bit octet
// stream used for SMS TP-UD, as defined in 3GPP TS 23.038 Section 6.1.2.1.
package septet

// Pack packs an array of septets (each held in the low 7 bits of a byte)
// into an octet array.
//
// fillBits is the number of pad bits placed at the start of the packed
// array, needed when a preceding User Data Header does not end on a septet
// boundary.
func Pack(u []byte, fillBits int) []byte {
	if len(u) == 0 {
		return append(u[:0:0], u...)
	}
	p := make([]byte, 0, (len(u)*7+7+fillBits)/8)
	var r, s byte
	rbits := uint(fillBits)
	for _, s = range u {
		if rbits == 0 {
			r = s
			rbits = 7
			continue
		}
		r = (r | s<<rbits) & 0xff
		p = append(p, r)
		r = s >> (8 - rbits)
		rbits--
	}
	if rbits != 0 {
		p = append(p, r)
	}
	return p
}

// Unpack unpacks an octet array, packed as per Pack, into an array of
// septets.
//
// fillBits is the number of pad bits at the start of p.
func Unpack(p []byte, fillBits int) []byte {
	if len(p) == 0 {
		return append(p[:0:0], p...)
	}
	u := make([]byte, 0, (len(p)*8+6+fillBits)/7)
	var r byte
	var rbits uint
	if fillBits != 0 {
		rbits = uint(7 - fillBits)
	}
	for _, o := range p {
		r = (r | o<<rbits) & 0x7f
		u = append(u, r)
		if rbits == 6 {
			u = append(u, o>>1)
			rbits = 0
			r = 0
		} else {
			rbits++
			r = o >> (8 - rbits)
		}
	}
	if fillBits > 0 {
		u = u[1:]
	}
	return u
}
