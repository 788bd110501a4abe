// SPDX-License-Identifier: MIT
//
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

package pdumode

import (
	"encoding/hex"
)

// Decoder converts a PDU into the SMSC address and TPDU that it contains.
// It exists alongside the package-level UnmarshalBinary/UnmarshalHexString
// for symmetry with Encoder, which has no equivalent top-level state to hang
// package functions off.
type Decoder struct{}

// Decode decodes the binary form of the PDU provided by the modem into its
// SMSC address and TPDU (still in binary form, ready to be unmarshalled).
func (Decoder) Decode(src []byte) (*SMSCAddress, []byte, error) {
	smsc := SMSCAddress{}
	n, err := smsc.UnmarshalBinary(src)
	if err != nil {
		return nil, nil, err
	}
	return &smsc, src[n:], nil
}

// DecodeString decodes the hex string provided by the modem, as Decode.
func (d Decoder) DecodeString(s string) (*SMSCAddress, []byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, nil, err
	}
	return d.Decode(b)
}

// Encoder converts an SMSC address and TPDU into a PDU.
type Encoder struct{}

// Encode marshals the SMSC address and TPDU into a single PDU.
func (Encoder) Encode(smsc SMSCAddress, t []byte) ([]byte, error) {
	dst, err := smsc.MarshalBinary()
	if err != nil {
		return nil, err
	}
	dst = append(dst, t...)
	return dst, nil
}

// EncodeToString encodes the SMSC address and TPDU into the hex string
// expected by the modem.
func (e Encoder) EncodeToString(smsc SMSCAddress, t []byte) (string, error) {
	p, err := e.Encode(smsc, t)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(p), nil
}

// PDU represents the PDU exchanged with the GSM modem.
type PDU struct {
	// SMCS Address
	SMSC SMSCAddress

	// TPDU in binary form
	TPDU []byte
}

// UnmarshalBinary decodes the binary form of the PDU provided by the modem.
//
// Returns the unmarshalled PDU, or an error if unmarshalling fails.
func UnmarshalBinary(src []byte) (p *PDU, err error) {
	pdu := PDU{}
	err = pdu.UnmarshalBinary(src)
	if err != nil {
		return
	}
	p = &pdu
	return
}

// UnmarshalHexString decodes the hex string provided by the modem.
func UnmarshalHexString(s string) (p *PDU, err error) {
	pdu := PDU{}
	err = pdu.UnmarshalHexString(s)
	if err != nil {
		return
	}
	p = &pdu
	return
}

// UnmarshalBinary decodes the binary form of the PDU provided by the modem.
func (p *PDU) UnmarshalBinary(src []byte) error {
	n, err := p.SMSC.UnmarshalBinary(src)
	if err != nil {
		return err
	}
	p.TPDU = src[n:]
	return nil
}

// UnmarshalHexString decodes the hex string provided by the modem.
func (p *PDU) UnmarshalHexString(s string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	return p.UnmarshalBinary(b)
}

// MarshalBinary marshals the PDU into binary form.
func (p *PDU) MarshalBinary() ([]byte, error) {
	dst, err := p.SMSC.MarshalBinary()
	if err != nil {
		return nil, err
	}
	dst = append(dst, p.TPDU...)
	return dst, nil
}

// MarshalHexString encodes the PDU into the hex string expected by the modem.
func (p *PDU) MarshalHexString() (string, error) {
	b, err := p.MarshalBinary()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
