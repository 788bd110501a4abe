// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package tpdu provides the core TPDU types and conversions to and from
// their binary form, as defined in 3GPP TS 23.040 Section 9.2.
package tpdu

// MessageType identifies the type of TPDU encoded in a binary stream, as
// defined in 3GPP TS 23.040 Section 9.2.3.1.
// Note that the direction of the TPDU must also be known to determine how to
// interpret the TPDU.
type MessageType int

const (
	// MtDeliver identifies the message as a SMS-Deliver or SMS-Deliver-Report
	// TPDU.
	MtDeliver MessageType = iota
	// MtSubmit identifies the message as a SMS-Submit or SMS-Submit-Report
	// TPDU.
	MtSubmit
	// MtCommand identifies the message as a SMS-Command or SMS-Status-Report
	// TPDU.
	MtCommand
	// MtReserved identifies the message as an unknown type of SMS TPDU.
	MtReserved
)

// Direction indicates the direction that the SMS TPDU is carried.
type Direction int

const (
	// MT indicates that the SMS TPDU is intended to be received by the MS.
	MT Direction = iota
	// MO indicates that the SMS TPDU is intended to be sent by the MS.
	MO
)

// decodeUnsupported returns a ConcreteDecoder for a MessageType/Direction
// combination this package does not implement (SMS-SUBMIT-REPORT,
// SMS-DELIVER-REPORT, SMS-COMMAND, and the reserved MTI in the MO direction).
// Reserved in the MT direction is handled as a Deliver, per 3GPP TS 23.040
// Section 9.2.3.1, since a MS is required to treat it as such.
func decodeUnsupported(mt MessageType) ConcreteDecoder {
	return func(src []byte) (TPDU, error) {
		return nil, DecodeError("firstOctet", 0, ErrUnsupportedMTI(byte(mt)))
	}
}

// RegisterSubmitReportDecoder registers a stub decoder for the
// SMS-SUBMIT-REPORT TPDU, which this package does not implement.
func RegisterSubmitReportDecoder(d *Decoder) error {
	return d.RegisterDecoder(MtSubmit, MT, decodeUnsupported(MtSubmit))
}

// RegisterDeliverReportDecoder registers a stub decoder for the
// SMS-DELIVER-REPORT TPDU, which this package does not implement.
func RegisterDeliverReportDecoder(d *Decoder) error {
	return d.RegisterDecoder(MtDeliver, MO, decodeUnsupported(MtDeliver))
}

// RegisterCommandDecoder registers a stub decoder for the SMS-COMMAND TPDU,
// which this package does not implement.
func RegisterCommandDecoder(d *Decoder) error {
	return d.RegisterDecoder(MtCommand, MO, decodeUnsupported(MtCommand))
}

// RegisterReservedMODecoder registers a stub decoder for the reserved MTI in
// the MO direction.
func RegisterReservedMODecoder(d *Decoder) error {
	return d.RegisterDecoder(MtReserved, MO, decodeUnsupported(MtReserved))
}
