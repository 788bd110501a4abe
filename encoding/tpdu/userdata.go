// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tpdu

// UserData represents the User Data field as defined in 3GPP TS 23.040 Section 9.2.3.24.
// The UserData is comprised of an optional User Data Header and a short message field.
type UserData []byte

// UserDataHeader represents the header section of the User Data as defined in
// 3GPP TS 23.040 Section 9.2.3.24.
type UserDataHeader []InformationElement

// InformationElement represents one of the information elements contained in
// the User Data Header.
type InformationElement struct {
	ID   byte
	Data []byte
}

// UDHL returns the length, in octets, of the marshalled header excluding the
// UDHL field itself - i.e. the value the UDHL field itself would carry.
func (udh UserDataHeader) UDHL() int {
	udhl := 0
	for _, ie := range udh {
		udhl += 2 + len(ie.Data)
	}
	return udhl
}

// MarshalBinary marshals the User Data Header, including the UDHL, into binary.
func (udh UserDataHeader) MarshalBinary() ([]byte, error) {
	if len(udh) == 0 {
		return nil, nil
	}
	udhl := 0
	for _, ie := range udh {
		udhl += (2 + len(ie.Data))
	}
	b := make([]byte, 0, udhl+1)
	b = append(b, byte(udhl))
	for _, ie := range udh {
		b = append(b, ie.ID, byte(len(ie.Data)))
		b = append(b, ie.Data...)
	}
	return b, nil
}

// UnmarshalBinary reads the InformationElements from the binary User Data Haeder.
// The src contains the complete UDH, including the UDHL and all IEs.
// The function returns the number of bytes read from src, and any error detected
// while unmarshalling.
func (udh *UserDataHeader) UnmarshalBinary(src []byte) (int, error) {
	if len(src) < 1 {
		return 0, DecodeError("udhl", 0, ErrUnderflow)
	}
	udhl := int(src[0])
	udhl++ // so it includes itself
	ri := 1
	if len(src) < udhl {
		return ri, DecodeError("ie", ri, ErrUnderflow)
	}
	ies := []InformationElement(nil)
	for ri < udhl {
		if udhl < ri+2 {
			return ri, DecodeError("ie", ri, ErrUnderflow)
		}
		var ie InformationElement
		ie.ID = src[ri]
		ri++
		iedl := int(src[ri])
		ri++
		if len(src) < ri+iedl {
			return ri, DecodeError("ied", ri, ErrUnderflow)
		}
		ie.Data = append([]byte(nil), src[ri:ri+iedl]...)
		ri += iedl
		ies = append(ies, ie)
	}
	*udh = ies
	return udhl, nil
}

// Information Element identifiers used by the concatenation and port IE
// helpers below, as defined in 3GPP TS 23.040 Section 9.2.3.24.
const (
	// IEIConcat8 identifies a concatenated short message, 8-bit reference.
	IEIConcat8 byte = 0x00
	// IEIConcat16 identifies a concatenated short message, 16-bit reference.
	IEIConcat16 byte = 0x08
	// IEIPort8 identifies an application port addressing scheme, 8-bit address.
	IEIPort8 byte = 0x04
	// IEIPort16 identifies an application port addressing scheme, 16-bit address.
	IEIPort16 byte = 0x05
)

// ConcatInfo holds the fields of a decoded concatenation IE, regardless of
// whether it used the 8-bit or 16-bit reference form.
type ConcatInfo struct {
	Ref   uint16
	Seq   uint8
	Total uint8
}

// NewConcatIE8 builds an 8-bit-reference concatenation IE
// (ref, seq and total must each fit in a byte).
func NewConcatIE8(ref, seq, total uint8) InformationElement {
	return InformationElement{ID: IEIConcat8, Data: []byte{ref, total, seq}}
}

// NewConcatIE16 builds a 16-bit-reference concatenation IE.
func NewConcatIE16(ref uint16, seq, total uint8) InformationElement {
	return InformationElement{
		ID:   IEIConcat16,
		Data: []byte{byte(ref >> 8), byte(ref), total, seq},
	}
}

// Concat returns the concatenation info carried by the UDH, and whether a
// concatenation IE (8-bit or 16-bit reference) was present.
func (udh UserDataHeader) Concat() (ConcatInfo, bool) {
	if ie, ok := udh.IE(IEIConcat16); ok && len(ie.Data) == 4 {
		return ConcatInfo{
			Ref:   uint16(ie.Data[0])<<8 | uint16(ie.Data[1]),
			Total: ie.Data[2],
			Seq:   ie.Data[3],
		}, true
	}
	if ie, ok := udh.IE(IEIConcat8); ok && len(ie.Data) == 3 {
		return ConcatInfo{
			Ref:   uint16(ie.Data[0]),
			Total: ie.Data[1],
			Seq:   ie.Data[2],
		}, true
	}
	return ConcatInfo{}, false
}

// PortInfo holds the fields of a decoded application-port-addressing IE.
type PortInfo struct {
	DestPort uint16
	SrcPort  uint16
}

// NewPortIE8 builds an 8-bit application port addressing IE.
func NewPortIE8(dest, src uint8) InformationElement {
	return InformationElement{ID: IEIPort8, Data: []byte{dest, src}}
}

// NewPortIE16 builds a 16-bit application port addressing IE.
func NewPortIE16(dest, src uint16) InformationElement {
	return InformationElement{
		ID: IEIPort16,
		Data: []byte{
			byte(dest >> 8), byte(dest),
			byte(src >> 8), byte(src),
		},
	}
}

// Port returns the application port addressing carried by the UDH, and
// whether a port IE (8-bit or 16-bit) was present.
func (udh UserDataHeader) Port() (PortInfo, bool) {
	if ie, ok := udh.IE(IEIPort16); ok && len(ie.Data) == 4 {
		return PortInfo{
			DestPort: uint16(ie.Data[0])<<8 | uint16(ie.Data[1]),
			SrcPort:  uint16(ie.Data[2])<<8 | uint16(ie.Data[3]),
		}, true
	}
	if ie, ok := udh.IE(IEIPort8); ok && len(ie.Data) == 2 {
		return PortInfo{DestPort: uint16(ie.Data[0]), SrcPort: uint16(ie.Data[1])}, true
	}
	return PortInfo{}, false
}

// IE returns the last instance of the GetIE with the given id in the UDH.
// If no such GetIE is found then the function returns false.
func (udh UserDataHeader) IE(id byte) (InformationElement, bool) {
	for i := len(udh) - 1; i >= 0; i-- {
		if udh[i].ID == id {
			return udh[i], true
		}
	}
	return InformationElement{}, false
}

// IEs returns all instances of the GetIEs with the given id in the UDH.
func (udh UserDataHeader) IEs(id byte) []InformationElement {
	ies := []InformationElement(nil)
	for _, ie := range udh {
		if ie.ID == id {
			ies = append(ies, ie)
		}
	}
	return ies
}
