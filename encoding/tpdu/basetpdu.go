// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tpdu

import (
	"github.com/pmarti/go-messaging/encoding/septet"
)

// BaseTPDU holds the fields common to all concrete TPDU types: the first
// octet, PID, DCS, and User Data (with its optional header). Concrete types
// embed BaseTPDU and add the fields specific to their PDU layout.
type BaseTPDU struct {
	firstOctet byte
	pid        byte
	dcs        DCS
	// udhiMask is the bit of firstOctet that SetUDH toggles. It is the same
	// bit (FoUDHI) for every concrete TPDU type but is held per-instance so
	// the zero value of BaseTPDU doesn't accidentally mask bit 0.
	udhiMask byte
	udh      UserDataHeader
	ud       UserData
}

// FirstOctet returns the first octet of the TPDU.
func (t *BaseTPDU) FirstOctet() FirstOctet {
	return FirstOctet(t.firstOctet)
}

// MTI returns the MessageType from the first octet of the SMS TPDU.
func (t *BaseTPDU) MTI() MessageType {
	return MessageType(t.firstOctet & FoMTIMask)
}

// PID returns the TP-PID field.
func (t *BaseTPDU) PID() byte {
	return t.pid
}

// SetPID sets the TP-PID field.
func (t *BaseTPDU) SetPID(pid byte) {
	t.pid = pid
}

// DCS returns the TP-DCS field.
func (t *BaseTPDU) DCS() DCS {
	return t.dcs
}

// SetDCS sets the TP-DCS field.
func (t *BaseTPDU) SetDCS(dcs DCS) {
	t.dcs = dcs
}

// Alphabet returns the alphabet field from the DCS of the SMS TPDU.
func (t *BaseTPDU) Alphabet() (Alphabet, error) {
	return t.dcs.Alphabet()
}

// UD returns the User Data. Its interpretation depends on the Alphabet: for
// Alpha7Bit it is an array of GSM7 septets, one per byte, not yet converted
// to UTF8; for AlphaUCS2 it is UCS2 characters packed big-endian; for
// Alpha8Bit it is raw octets.
func (t *BaseTPDU) UD() UserData {
	return t.ud
}

// SetUD sets the User Data.
func (t *BaseTPDU) SetUD(ud UserData) {
	t.ud = ud
}

// UDH returns the User Data Header.
func (t *BaseTPDU) UDH() UserDataHeader {
	return t.udh
}

// SetUDH sets the User Data Header of the TPDU, toggling the TP-UDHI bit to
// match.
func (t *BaseTPDU) SetUDH(udh UserDataHeader) {
	if len(udh) == 0 {
		t.udh = nil
		t.firstOctet &^= t.udhiMask
	} else {
		t.udh = udh
		t.firstOctet |= t.udhiMask
	}
}

// UDHI returns true if the TP-UDHI flag is set.
//
// This generally agrees with whether the UDH is non-empty, unless the first
// octet has been intentionally overwritten to create an inconsistency.
func (t *BaseTPDU) UDHI() bool {
	return t.firstOctet&t.udhiMask != 0
}

// decodeUserData unmarshals the User Data field, including the optional
// User Data Header, from the binary src.
func (t *BaseTPDU) decodeUserData(src []byte) error {
	if len(src) < 1 {
		return DecodeError("udl", 0, ErrUnderflow)
	}
	udl := int(src[0])
	if udl == 0 {
		return nil
	}
	var udh UserDataHeader
	sml7 := 0
	ri := 1
	alphabet, err := t.Alphabet()
	if err != nil {
		return DecodeError("alphabet", ri, err)
	}
	if alphabet == Alpha7Bit {
		sml7 = udl
		// length is septets - convert to octets
		udl = (sml7*7 + 7) / 8
	}
	if len(src) < ri+udl {
		return DecodeError("sm", ri, ErrUnderflow)
	}
	if len(src) > ri+udl {
		return DecodeError("ud", ri, ErrOverlength)
	}
	var udhl int // Note that in this context udhl includes itself.
	if t.UDHI() {
		udh = make(UserDataHeader, 0)
		l, err := udh.UnmarshalBinary(src[ri:])
		if err != nil {
			return DecodeError("udh", ri, err)
		}
		udhl = l
		ri += udhl
	}
	if ri == len(src) {
		t.udh = udh
		return nil
	}
	switch alphabet {
	case Alpha7Bit:
		sm, err := decode7Bit(sml7, udhl, src[ri:])
		if err != nil {
			return DecodeError("sm", ri, err)
		}
		t.ud = sm
	case AlphaUCS2:
		if len(src[ri:])&0x01 == 0x01 {
			return DecodeError("sm", ri, ErrOverlength)
		}
		fallthrough
	case Alpha8Bit:
		t.ud = append([]byte(nil), src[ri:]...)
	}
	t.udh = udh
	return nil
}

// decode7Bit decodes a GSM7 packed septet stream into an array of septets.
// sml is the number of septets expected, and udhl is the number of octets in
// the preceding UDH, including the UDHL field.
func decode7Bit(sml, udhl int, src []byte) ([]byte, error) {
	var fillBits int
	if udhl > 0 {
		if dangling := udhl % 7; dangling != 0 {
			fillBits = 7 - dangling
		}
		sml = sml - (udhl*8+fillBits)/7
	}
	sm := septet.Unpack(src, fillBits)
	// this is a double check on the math and should never trip...
	if len(sm) < sml {
		return nil, ErrUnderflow
	}
	if len(sm) > sml {
		if len(sm) > sml+1 || sm[sml] != 0 {
			return nil, ErrOverlength
		}
		// drop trailing 0 septet
		sm = sm[:sml]
	}
	return sm, nil
}

// encodeUserData marshals the User Data, and its header if present, into
// binary. If the Alphabet is Alpha7Bit the User Data is assumed to hold
// unpacked GSM7 septets and is packed prior to encoding; for other alphabets
// the User Data is encoded as is. No check of the overall encoded length is
// performed here, since the limit depends on the concrete TPDU type.
func (t *BaseTPDU) encodeUserData() (b []byte, err error) {
	udh, err := t.udh.MarshalBinary()
	if err != nil {
		return nil, EncodeError("udh", err)
	}
	ud := t.ud
	alphabet, err := t.Alphabet()
	if err != nil {
		return nil, EncodeError("alphabet", err)
	}
	udl := len(t.ud) // assume octets
	switch alphabet {
	case Alpha7Bit:
		fillBits := 0
		if dangling := len(udh) % 7; dangling != 0 {
			fillBits = 7 - dangling
		}
		ud = septet.Pack(t.ud, fillBits)
		// udl is in septets so convert
		if udl > 0 {
			udl = udl + (len(udh)*8+fillBits)/7
		} else {
			udl = (len(udh) * 8) / 7
		}
	case AlphaUCS2:
		if udl&0x01 == 0x01 {
			return nil, EncodeError("sm", ErrOddUCS2Length)
		}
		fallthrough
	case Alpha8Bit:
		// udl is in octets
		udl = udl + len(udh)
	}
	b = make([]byte, 0, 1+len(udh)+len(ud))
	b = append(b, byte(udl))
	b = append(b, udh...)
	b = append(b, ud...)
	return b, nil
}
