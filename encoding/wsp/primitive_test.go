// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package wsp_test

import (
	"testing"
	"time"

	"github.com/pmarti/go-messaging/encoding/wsp"
	"github.com/pmarti/go-messaging/internal/cursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUintvarRoundTrip(t *testing.T) {
	patterns := []uint64{0, 1, 127, 128, 16383, 16384, 2097151, 1 << 30}
	for _, v := range patterns {
		b := wsp.EncodeUintvar(v)
		out, err := wsp.DecodeUintvar(cursor.New(b))
		require.NoError(t, err)
		assert.Equal(t, v, out)
	}
}

func TestUintvarMinimal(t *testing.T) {
	assert.Equal(t, []byte{0x00}, wsp.EncodeUintvar(0))
	assert.Equal(t, []byte{0x7f}, wsp.EncodeUintvar(127))
	assert.Equal(t, []byte{0x81, 0x00}, wsp.EncodeUintvar(128))
}

func TestShortIntegerRoundTrip(t *testing.T) {
	b, err := wsp.EncodeShortInteger(42)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa}, b)
	out, err := wsp.DecodeShortInteger(cursor.New(b))
	require.NoError(t, err)
	assert.Equal(t, byte(42), out)

	_, err = wsp.EncodeShortInteger(128)
	assert.Error(t, err)
}

func TestLongIntegerRoundTrip(t *testing.T) {
	patterns := []uint64{0, 1, 255, 65536, 1 << 40}
	for _, v := range patterns {
		b, err := wsp.EncodeLongInteger(v)
		require.NoError(t, err)
		out, err := wsp.DecodeLongInteger(cursor.New(b))
		require.NoError(t, err)
		assert.Equal(t, v, out)
	}
}

func TestTextStringQuoting(t *testing.T) {
	b := wsp.EncodeTextString("hello")
	assert.Equal(t, []byte{'h', 'e', 'l', 'l', 'o', 0}, b)
	out, err := wsp.DecodeTextString(cursor.New(b))
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	b = wsp.EncodeTextString(string([]byte{0x80, 'x'}))
	assert.Equal(t, byte(0x7f), b[0])
	out, err = wsp.DecodeTextString(cursor.New(b))
	require.NoError(t, err)
	assert.Equal(t, string([]byte{0x80, 'x'}), out)
}

func TestQuotedString(t *testing.T) {
	b, err := wsp.EncodeQuotedString("boundary")
	require.NoError(t, err)
	out, err := wsp.DecodeQuotedString(cursor.New(b))
	require.NoError(t, err)
	assert.Equal(t, "boundary", out)
}

func TestTokenTextRejectsSeparators(t *testing.T) {
	_, err := wsp.EncodeTokenText("a/b")
	assert.Error(t, err)
	_, err = wsp.EncodeTokenText("charset")
	assert.NoError(t, err)
}

func TestValueLengthRoundTrip(t *testing.T) {
	patterns := []uint64{0, 30, 31, 1000}
	for _, v := range patterns {
		b := wsp.EncodeValueLength(v)
		out, err := wsp.DecodeValueLength(cursor.New(b))
		require.NoError(t, err)
		assert.Equal(t, v, out)
	}
}

func TestIntegerValueRoundTrip(t *testing.T) {
	patterns := []uint64{0, 127, 128, 1 << 20}
	for _, v := range patterns {
		b := wsp.EncodeIntegerValue(v)
		out, err := wsp.DecodeIntegerValue(cursor.New(b))
		require.NoError(t, err)
		assert.Equal(t, v, out)
	}
}

func TestWellKnownCharsetAny(t *testing.T) {
	b, err := wsp.EncodeWellKnownCharset(wsp.AnyCharset)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7f}, b)
	out, err := wsp.DecodeWellKnownCharset(cursor.New(b))
	require.NoError(t, err)
	assert.Equal(t, wsp.AnyCharset, out)

	b, err = wsp.EncodeWellKnownCharset(0x6a)
	require.NoError(t, err)
	out, err = wsp.DecodeWellKnownCharset(cursor.New(b))
	require.NoError(t, err)
	assert.Equal(t, 0x6a, out)
}

func TestQValueRoundTrip(t *testing.T) {
	b, err := wsp.EncodeQValue(1.0)
	require.NoError(t, err)
	out, err := wsp.DecodeQValue(cursor.New(b))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out, 0.001)

	b, err = wsp.EncodeQValue(0.05)
	require.NoError(t, err)
	out, err = wsp.DecodeQValue(cursor.New(b))
	require.NoError(t, err)
	assert.InDelta(t, 0.05, out, 0.0001)
}

func TestVersionValueRoundTrip(t *testing.T) {
	b, err := wsp.EncodeVersionValue(wsp.Version{Major: 1, Minor: 2})
	require.NoError(t, err)
	out, err := wsp.DecodeVersionValue(cursor.New(b))
	require.NoError(t, err)
	assert.Equal(t, wsp.Version{Major: 1, Minor: 2}, out)

	b, err = wsp.EncodeVersionValue(wsp.Version{Major: 1, Minor: -1})
	require.NoError(t, err)
	out, err = wsp.DecodeVersionValue(cursor.New(b))
	require.NoError(t, err)
	assert.Equal(t, -1, out.Minor)
}

func TestDateValueRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	b, err := wsp.EncodeDateValue(now)
	require.NoError(t, err)
	out, err := wsp.DecodeDateValue(cursor.New(b))
	require.NoError(t, err)
	assert.Equal(t, now, out)
}

func TestContentTypeConstrainedMedia(t *testing.T) {
	ct := wsp.ContentType{Media: "text/plain"}
	b, err := wsp.EncodeContentTypeValue(ct)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x83}, b)
	out, err := wsp.DecodeContentTypeValue(cursor.New(b))
	require.NoError(t, err)
	assert.Equal(t, ct, out)
}

func TestContentTypeGeneralForm(t *testing.T) {
	ct := wsp.ContentType{
		Media: "application/vnd.wap.multipart.related",
		Params: []wsp.Parameter{
			{Name: "Type", TextValue: "application/smil"},
		},
	}
	b, err := wsp.EncodeContentTypeValue(ct)
	require.NoError(t, err)
	out, err := wsp.DecodeContentTypeValue(cursor.New(b))
	require.NoError(t, err)
	assert.Equal(t, ct.Media, out.Media)
	require.Len(t, out.Params, 1)
	assert.Equal(t, "application/smil", out.Params[0].TextValue)
}

func TestHeaderNameRoundTrip(t *testing.T) {
	b, err := wsp.EncodeHeaderName("Content-Type")
	require.NoError(t, err)
	name, wellKnown, err := wsp.DecodeHeaderName(cursor.New(b))
	require.NoError(t, err)
	assert.True(t, wellKnown)
	assert.Equal(t, "Content-Type", name)

	b, err = wsp.EncodeHeaderName("X-Custom")
	require.NoError(t, err)
	name, wellKnown, err = wsp.DecodeHeaderName(cursor.New(b))
	require.NoError(t, err)
	assert.False(t, wellKnown)
	assert.Equal(t, "X-Custom", name)
}
