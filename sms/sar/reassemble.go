// SPDX-License-Identifier: MIT
//
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

package sar

import (
	"github.com/pmarti/go-messaging/encoding/gsm7"
	"github.com/pmarti/go-messaging/encoding/tpdu"
	"github.com/pmarti/go-messaging/encoding/ucs2"
)

// DecodeText converts TPDU User Data into the UTF8 text it carries, given
// the alphabet declared by the TPDU's DCS.
func DecodeText(ud tpdu.UserData, alpha tpdu.Alphabet) (string, error) {
	switch alpha {
	case tpdu.Alpha7Bit:
		return gsm7.Decode(ud, gsm7.Strict)
	case tpdu.AlphaUCS2:
		r, err := ucs2.Decode(ud)
		return string(r), err
	default: // Alpha8Bit and anything else is passed through as raw octets
		return string(ud), nil
	}
}

// Message represents a message received from an origination number,
// reassembled from one or more Deliver TPDUs.
type Message struct {
	Text   string
	Number string
	TPDUs  []*tpdu.Deliver
}

// Reassembler collects Deliver TPDUs and builds Messages from the completed
// sets.
type Reassembler struct {
	c *Collector
}

// NewReassembler creates a Reassembler.
func NewReassembler(options ...CollectorOption) *Reassembler {
	return &Reassembler{c: NewCollector(options...)}
}

// Close terminates the reassembler and all the reassembly pipes currently
// active.
func (r *Reassembler) Close() {
	r.c.Close()
}

// Reassemble takes a binary Deliver TPDU and adds it to the reassembly
// collection. If it is the last TPDU required to complete a concatenated
// set then the completed Message is returned.
func (r *Reassembler) Reassemble(b []byte) (*Message, error) {
	d := tpdu.NewDeliver()
	if err := d.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	segments, err := r.c.Collect(d)
	if err != nil {
		return nil, err
	}
	if segments == nil {
		return nil, nil
	}
	return concatenate(segments)
}

// concatenate converts a set of concatenated Deliver TPDUs, in sequence
// order, into a Message.
func concatenate(segments []*tpdu.Deliver) (*Message, error) {
	texts := make([]string, len(segments))
	// a UCS2 segment boundary may fall inside a surrogate pair; the trailing
	// high surrogate of one segment is carried over and prefixed onto the
	// next segment's UD before decoding.
	var danglingSurrogate tpdu.UserData
	for i, s := range segments {
		alpha, _ := s.Alphabet()
		ud := s.UD()
		if danglingSurrogate != nil {
			ud = append(danglingSurrogate, ud...)
			danglingSurrogate = nil
		}
		text, err := DecodeText(ud, alpha)
		if err != nil {
			if ds, ok := err.(ucs2.ErrDanglingSurrogate); ok {
				danglingSurrogate = append(tpdu.UserData(nil), ds...)
			} else {
				return nil, err
			}
		}
		texts[i] = text
	}
	msg := ""
	for _, t := range texts {
		msg += t
	}
	return &Message{Text: msg, Number: segments[0].OA().Number(), TPDUs: segments}, nil
}
