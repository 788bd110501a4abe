// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

package tpdu

// SubmitOption applies a construction option to a Submit TPDU.
type SubmitOption interface {
	ApplySubmitOption(*Submit) error
}

// DeliverOption applies a construction option to a Deliver TPDU.
type DeliverOption interface {
	ApplyDeliverOption(*Deliver) error
}

// DAOption specifies the DA for a Submit TPDU.
type DAOption struct {
	addr Address
}

// ApplySubmitOption applies the DA to the Submit.
func (o DAOption) ApplySubmitOption(s *Submit) error {
	s.SetDA(o.addr)
	return nil
}

// WithDA creates a DAOption to apply to a Submit TPDU.
func WithDA(addr Address) DAOption {
	return DAOption{addr}
}

// OAOption specifies the OA for a Deliver TPDU.
type OAOption struct {
	addr Address
}

// ApplyDeliverOption applies the OA to the Deliver.
func (o OAOption) ApplyDeliverOption(d *Deliver) error {
	d.SetOA(o.addr)
	return nil
}

// WithOA creates a OAOption to apply to a Deliver TPDU.
func WithOA(addr Address) OAOption {
	return OAOption{addr}
}

// UDHOption specifies the UDH for either a Submit or a Deliver TPDU.
type UDHOption struct {
	udh UserDataHeader
}

// ApplySubmitOption applies the UDH to the Submit.
func (o UDHOption) ApplySubmitOption(s *Submit) error {
	s.SetUDH(o.udh)
	return nil
}

// ApplyDeliverOption applies the UDH to the Deliver.
func (o UDHOption) ApplyDeliverOption(d *Deliver) error {
	d.SetUDH(o.udh)
	return nil
}

// WithUDH creates a UDHOption to apply to a TPDU.
func WithUDH(udh UserDataHeader) UDHOption {
	return UDHOption{udh}
}
