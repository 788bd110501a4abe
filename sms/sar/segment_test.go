// SPDX-License-Identifier: MIT
//
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

package sar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pmarti/go-messaging/encoding/tpdu"
	"github.com/pmarti/go-messaging/sms/sar"
)

func TestNewSegmenter(t *testing.T) {
	s := sar.NewSegmenter()
	if s == nil {
		t.Fatalf("failed to create Segmenter")
	}
}

type segmentInPattern struct {
	msg []byte
	dcs byte
	udh tpdu.UserDataHeader
}

type segmentOutPattern struct {
	dcs byte
	udh tpdu.UserDataHeader
	ud  tpdu.UserData
}

func newTemplate(dcs byte, udh tpdu.UserDataHeader) *tpdu.Submit {
	tmpl := tpdu.NewSubmit()
	tmpl.SetDCS(tpdu.DCS(dcs))
	tmpl.SetUDH(udh)
	return tmpl
}

func buildExpected(out []segmentOutPattern) []tpdu.Submit {
	if len(out) == 0 {
		return nil
	}
	expected := make([]tpdu.Submit, len(out))
	for i, o := range out {
		s := tpdu.NewSubmit()
		s.SetDCS(tpdu.DCS(o.dcs))
		s.SetUDH(o.udh)
		s.SetUD(o.ud)
		expected[i] = *s
	}
	return expected
}

func TestSegment(t *testing.T) {
	patterns := []struct {
		name string
		in   segmentInPattern
		out  []segmentOutPattern
	}{
		{"empty",
			segmentInPattern{nil, 0, nil},
			nil},
		{"single segment",
			segmentInPattern{[]byte("hello"), 0, nil},
			[]segmentOutPattern{{0, nil, []byte("hello")}}},
		{"two segment 7bit",
			segmentInPattern{[]byte("this is a very long message that does not fit in a single SMS message, at least it will if I keep adding more to it as 160 characters is more than you might think"), 0, nil},
			[]segmentOutPattern{
				{0, tpdu.UserDataHeader{tpdu.InformationElement{ID: 0, Data: []byte{1, 2, 1}}},
					[]byte("this is a very long message that does not fit in a single SMS message, at least it will if I keep adding more to it as 160 characters is more than you mi")},
				{0, tpdu.UserDataHeader{tpdu.InformationElement{ID: 0, Data: []byte{1, 2, 2}}},
					[]byte("ght think")}},
		},
		{"8bit",
			segmentInPattern{[]byte("hello"), byte(tpdu.Alpha8Bit << 2), nil},
			[]segmentOutPattern{{4, nil, []byte("hello")}}},
		{"ucs2",
			segmentInPattern{[]byte("hello!"), byte(tpdu.AlphaUCS2 << 2), nil},
			[]segmentOutPattern{{8, nil, []byte("hello!")}}},
		{"7bit udh",
			segmentInPattern{[]byte("hello"), 0, tpdu.UserDataHeader{tpdu.InformationElement{ID: 3, Data: []byte{1, 2, 3}}}},
			[]segmentOutPattern{{0, tpdu.UserDataHeader{tpdu.InformationElement{ID: 3, Data: []byte{1, 2, 3}}}, []byte("hello")}}},
		{"two segment 7bit udh",
			segmentInPattern{[]byte("this is a very long message that does not fit in a single SMS message, at least it will if I keep adding more to it as 160 characters is more than you might think"),
				0, tpdu.UserDataHeader{tpdu.InformationElement{ID: 3, Data: []byte{1, 2, 3}}}},
			[]segmentOutPattern{
				{0, tpdu.UserDataHeader{tpdu.InformationElement{ID: 3, Data: []byte{1, 2, 3}}, tpdu.InformationElement{ID: 0, Data: []byte{2, 2, 1}}},
					[]byte("this is a very long message that does not fit in a single SMS message, at least it will if I keep adding more to it as 160 characters is more than ")},
				{0, tpdu.UserDataHeader{tpdu.InformationElement{ID: 3, Data: []byte{1, 2, 3}}, tpdu.InformationElement{ID: 0, Data: []byte{2, 2, 2}}},
					[]byte("you might think")}},
		},
	}
	s := sar.NewSegmenter()
	for _, p := range patterns {
		f := func(t *testing.T) {
			tmpl := newTemplate(p.in.dcs, p.in.udh)
			out := s.Segment(p.in.msg, tmpl)
			assert.Equal(t, buildExpected(p.out), out)
		}
		t.Run(p.name, f)
	}
}

func TestSegmentWith16BitConcatRef(t *testing.T) {
	s := sar.NewSegmenter(sar.With16BitConcatRef)
	msg := []byte("this is a very long message that does not fit in a single SMS message, at least it will if I keep adding more to it as 160 characters is more than you might think")
	tmpl := newTemplate(0, nil)
	out := s.Segment(msg, tmpl)
	require := assert.New(t)
	require.Len(out, 2)
	udh := out[0].UDH()
	require.Len(udh, 1)
	require.Equal(tpdu.IEIConcat16, udh[0].ID)
}
