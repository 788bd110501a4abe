// SPDX-License-Identifier: MIT
//
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

package sar

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/pmarti/go-messaging/encoding/tpdu"
)

// Segmenter segments a large outgoing message into the set of Submit TPDUs
// required to contain it.
type Segmenter struct {
	ief       func(concatRef, segCount, segment int) tpdu.InformationElement
	concatRef uint32
}

// With16BitConcatRef creates concatenation InformationElements with 16bit
// references instead of the default 8bit.
func With16BitConcatRef(s *Segmenter) {
	s.ief = newInfoElement16bit
}

// SegmenterOption is an option that alters the behaviour of a Segmenter at
// construction time.
type SegmenterOption func(*Segmenter)

// NewSegmenter creates a Segmenter.
func NewSegmenter(options ...SegmenterOption) *Segmenter {
	s := Segmenter{ief: newInfoElement}
	for _, option := range options {
		option(&s)
	}
	return &s
}

// Segment returns the set of SMS-Submit TPDUs required to transmit the
// message using the alphabet already set on the template t.
//
// A template for the SMS-Submit TPDUs is passed in, and provides all the
// fields in the resulting TPDUs, other than the UD, which is populated using
// msg. For multi-part messages, the UDH provided in the template is extended
// with a concatenation IE; the template UDH must not already contain a
// concatenation IE (IEIConcat8/IEIConcat16) or the resulting TPDUs will be
// non-conformant.
//
// msg must already be in the form required by the template's alphabet: an
// array of unpacked GSM7 septets for Alpha7Bit, UCS2 code units packed
// big-endian for AlphaUCS2, or raw octets for Alpha8Bit.
func (s *Segmenter) Segment(msg []byte, t *tpdu.Submit) []tpdu.Submit {
	if len(msg) == 0 || t == nil {
		return nil
	}
	alpha, _ := t.Alphabet()
	udhl := t.UDH().UDHL()
	bs := maxSML(t.MaxUDL(), udhl, alpha)
	if len(msg) <= bs {
		// single segment
		pdu := t.Clone()
		pdu.SetUD(msg)
		return []tpdu.Submit{*pdu}
	}
	// allow for concat entry in UDH
	bs = maxSML(t.MaxUDL(), udhl+5, alpha)
	chunks := chunk(msg, alpha, bs)
	count := len(chunks)
	pdus := make([]tpdu.Submit, count)
	ref := int(atomic.AddUint32(&s.concatRef, 1))
	for i := 0; i < count; i++ {
		sg := t.Clone()
		ie := s.ief(ref, count, i+1)
		sg.SetUDH(append(append(tpdu.UserDataHeader(nil), t.UDH()...), ie))
		sg.SetUD(chunks[i])
		pdus[i] = *sg
	}
	return pdus
}

func newInfoElement(concatRef, segCount, segment int) tpdu.InformationElement {
	return tpdu.NewConcatIE8(uint8(concatRef), uint8(segment), uint8(segCount))
}

func newInfoElement16bit(concatRef, segCount, segment int) tpdu.InformationElement {
	return tpdu.NewConcatIE16(uint16(concatRef), uint8(segment), uint8(segCount))
}

const esc byte = 0x1b

// chunk splits a message into chunks that are not larger than bs.
func chunk(msg []byte, alpha tpdu.Alphabet, bs int) [][]byte {
	switch alpha {
	case tpdu.AlphaUCS2:
		return chunkUCS2(msg, bs)
	case tpdu.Alpha8Bit:
		return chunk8Bit(msg, bs)
	default: // default to 7Bit
		return chunk7Bit(msg, bs)
	}
}

// chunk7Bit splits a GSM7 message (one septet per byte) into chunks that are
// not larger than bs septets.
//
// Escaped characters are not split across blocks (the 153-boundary
// back-off), so the resulting blocks may be one septet shorter than bs.
func chunk7Bit(msg []byte, bs int) [][]byte {
	if len(msg) == 0 {
		return nil
	}
	count := 1 + len(msg)/bs
	chunks := make([][]byte, 0, count)
	bstart := 0
	bend := bs
	for bend < len(msg) {
		// don't split escapes
		if msg[bend-1] == esc && msg[bend-2] != esc {
			bend--
		}
		chunks = append(chunks, msg[bstart:bend])
		bstart = bend
		bend = bstart + bs
	}
	chunks = append(chunks, msg[bstart:])
	return chunks
}

// chunk8Bit splits a raw 8bit message into chunks that are bs, except for the
// last segment which contains any residual bytes.
func chunk8Bit(msg []byte, bs int) [][]byte {
	if len(msg) == 0 {
		return nil
	}
	count := 1 + len(msg)/bs
	chunks := make([][]byte, 0, count)
	bstart := 0
	bend := bs
	for bend < len(msg) {
		chunks = append(chunks, msg[bstart:bend])
		bstart = bend
		bend = bstart + bs
	}
	chunks = append(chunks, msg[bstart:])
	return chunks
}

const (
	surrHighStart = 0xd800
	surrLowStart  = 0xdc00
)

// chunkUCS2 splits a UCS2/UTF-16 message into chunks that are not larger
// than bs bytes.
//
// bs should be even, but if odd is reduced by one. To allow for reassemblers
// that cannot handle split surrogate pairs, they are not split during
// chunking, so the resulting blocks may be slightly smaller than bs whenever
// a surrogate pair would span a block boundary.
func chunkUCS2(msg []byte, bs int) [][]byte {
	if len(msg) == 0 {
		return nil
	}
	bs = bs &^ 0x1
	count := 1 + len(msg)/bs
	chunks := make([][]byte, 0, count)
	bstart := 0
	bend := bstart + bs
	for bend < len(msg) {
		// check last uint16 is a high surrogate, if so then leave for later
		r := binary.BigEndian.Uint16(msg[bend-2 : bend])
		if surrHighStart <= r && r < surrLowStart {
			bend = bend - 2
		}
		chunks = append(chunks, msg[bstart:bend])
		bstart = bend
		bend = bstart + bs
	}
	chunks = append(chunks, msg[bstart:])
	return chunks
}

// maxSML returns the block size for the SM in concatenated SMSs.
//
// For 8bit and UCS-2 it returns the number of bytes. For 7bit it returns the
// number of septets, though, as the 7bit is unpacked at this stage, it also
// corresponds to the number of bytes.
func maxSML(maxUDL, udhl int, alpha tpdu.Alphabet) int {
	bs := maxUDL
	if alpha == tpdu.Alpha7Bit {
		// work in septets
		bs = (bs * 8) / 7
		if udhl == 0 {
			return bs
		}
		// remove septets used by UDH, including UDHL and fill bits
		bs = bs - ((udhl+1)*8+6)/7
		return bs
	}
	if udhl > 0 {
		bs = bs - udhl - 1
	}
	if alpha == tpdu.AlphaUCS2 {
		bs = bs &^ 0x1
	}
	return bs
}
