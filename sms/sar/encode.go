// SPDX-License-Identifier: MIT
//
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

package sar

import (
	"strings"
	"sync/atomic"

	"github.com/pmarti/go-messaging/encoding/gsm7"
	"github.com/pmarti/go-messaging/encoding/tpdu"
	"github.com/pmarti/go-messaging/encoding/ucs2"
)

// EncodeText converts a UTF8 message into the TPDU User Data required to
// carry it, selecting the narrowest alphabet that can losslessly represent
// the text: GSM 7 bit if every rune has a representation (including via the
// escape-extension table), otherwise UCS-2.
//
// The returned UserData is in the form Segmenter/BaseTPDU expect: unpacked
// septets (one per byte) for Alpha7Bit, UCS2 code units packed big-endian for
// AlphaUCS2.
func EncodeText(msg string) (tpdu.UserData, tpdu.Alphabet, error) {
	if sm, err := gsm7.Encode(msg, gsm7.Strict); err == nil {
		return tpdu.UserData(sm), tpdu.Alpha7Bit, nil
	}
	u := ucs2.Encode([]rune(msg))
	return tpdu.UserData(u), tpdu.AlphaUCS2, nil
}

// Counter hands out a sequence of increasing int identifiers, used for
// message references and concatenation references.
//
// It mirrors the teacher's tpdu.Counter interface but lives in sar since
// nothing outside segmentation/encoding needs it.
type Counter interface {
	// Count increments and returns the counter.
	Count() int
	// Read returns the current value of the counter, without incrementing it.
	Read() int
}

// counter is the default Counter implementation, backed by an atomic int64
// so it may be shared between concurrent Encoders.
type counter struct {
	c int64
}

// NewCounter creates a Counter starting at 0.
func NewCounter() Counter {
	return &counter{}
}

func (c *counter) Count() int {
	return int(atomic.AddInt64(&c.c, 1))
}

func (c *counter) Read() int {
	return int(atomic.LoadInt64(&c.c))
}

// params holds the fields of an SMS-SUBMIT encode request, assembled from
// EncodeOptions.
type params struct {
	class         *tpdu.MessageClass
	vp            tpdu.ValidityPeriod
	requestStatus bool
	mr            Counter
}

// EncodeOption alters the behaviour of EncodeSubmit.
type EncodeOption func(*params)

// WithRequestStatus requests a SMS-STATUS-REPORT for the submitted message.
func WithRequestStatus() EncodeOption {
	return func(p *params) { p.requestStatus = true }
}

// WithClass sets the DCS message class (0..3) of the submitted message.
func WithClass(c tpdu.MessageClass) EncodeOption {
	return func(p *params) { p.class = &c }
}

// WithValidityPeriod sets the validity period of the submitted message. The
// zero value (VpfNotPresent) omits the field, which is also the default.
func WithValidityPeriod(vp tpdu.ValidityPeriod) EncodeOption {
	return func(p *params) { p.vp = vp }
}

// WithMR overrides the Counter used to allocate each TPDU's message
// reference, e.g. to share one across several Encoders.
func WithMR(mr Counter) EncodeOption {
	return func(p *params) { p.mr = mr }
}

// Encoder builds Submit TPDUs from destination number and UTF8 text,
// segmenting long messages into multiple concatenated TPDUs sharing a
// concatenation reference, and assigning each TPDU its own message
// reference.
type Encoder struct {
	s  *Segmenter
	mr Counter
}

// NewEncoder creates an Encoder.
func NewEncoder(options ...SegmenterOption) *Encoder {
	return &Encoder{s: NewSegmenter(options...), mr: NewCounter()}
}

// EncodeSubmit builds the set of SMS-SUBMIT TPDUs required to carry text to
// number. A message that does not fit in a single TPDU is split into
// multiple TPDUs, all sharing one concatenation reference and numbered by
// increasing sequence.
func (e *Encoder) EncodeSubmit(number, text string, opts ...EncodeOption) ([]tpdu.Submit, error) {
	p := params{mr: e.mr}
	for _, opt := range opts {
		opt(&p)
	}
	ud, alpha, err := EncodeText(text)
	if err != nil {
		return nil, err
	}
	t := tpdu.NewSubmit()
	t.SetDA(destAddress(number))
	dcs, err := tpdu.DCS(0).WithAlphabet(alpha)
	if err != nil {
		return nil, err
	}
	if p.class != nil {
		dcs, err = dcs.WithClass(*p.class)
		if err != nil {
			return nil, err
		}
	}
	t.SetDCS(dcs)
	t.SetVP(p.vp)
	t.SetSRR(p.requestStatus)
	pdus := e.s.Segment(ud, t)
	for i := range pdus {
		pdus[i].SetMR(byte(p.mr.Count()))
	}
	return pdus, nil
}

// destAddress builds the DA for number, treating a leading "+" as marking an
// international number per 3GPP TS 23.040 Section 9.1.2.5.
func destAddress(number string) tpdu.Address {
	a := tpdu.Address{TOA: 0x80}
	if strings.HasPrefix(number, "+") {
		a.SetTypeOfNumber(tpdu.TonInternational)
		number = number[1:]
	} else {
		a.SetTypeOfNumber(tpdu.TonUnknown)
	}
	a.SetNumberingPlan(tpdu.NpISDN)
	a.Addr = number
	return a
}
