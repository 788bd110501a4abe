// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package mms

import (
	"github.com/pmarti/go-messaging/encoding/wsp"
	"github.com/pmarti/go-messaging/internal/cursor"
)

// Unmarshal decodes an MMS PDU. Headers are read in whatever order they
// appear (the decoder does not enforce Message-Type/Transaction-Id/
// MMS-Version coming first) until a Content-Type header is seen, which
// ends the header section; any bytes remaining after it are the
// multipart body. A PDU with no Content-Type header (e.g. a bare
// m-notifyresp-ind) has no body.
func Unmarshal(b []byte) (*Message, error) {
	c := cursor.New(b)
	m := &Message{}
	sawContentType := false
	for c.Remaining() > 0 && !sawContentType {
		name, wellKnown, err := wsp.DecodeHeaderName(c)
		if err != nil {
			return nil, DecodeError("header", c.Pos(), err)
		}
		if !wellKnown {
			val, err := wsp.DecodeApplicationHeaderValue(c)
			if err != nil {
				return nil, DecodeError(name, c.Pos(), err)
			}
			m.Extra = append(m.Extra, Header{Name: name, Value: val})
			continue
		}
		if err := decodeWellKnownHeader(m, name, c); err != nil {
			return nil, err
		}
		if name == "Content-Type" {
			sawContentType = true
		}
	}
	if sawContentType && c.Remaining() > 0 {
		parts, err := decodeBody(c)
		if err != nil {
			return nil, err
		}
		m.Parts = parts
	}
	return m, nil
}

func decodeWellKnownHeader(m *Message, name string, c *cursor.Cursor) error {
	var err error
	switch name {
	case "Content-Type":
		m.ContentType, err = wsp.DecodeContentTypeValue(c)
	case "Message-Type":
		m.MessageType, err = decodeMessageTypeValue(c)
	case "Transaction-Id":
		m.TransactionID, err = wsp.DecodeTextString(c)
	case "MMS-Version":
		m.Version, err = wsp.DecodeVersionValue(c)
	case "From":
		var a Address
		a, err = decodeFromValue(c)
		m.From = &a
	case "To":
		var es EncodedString
		es, err = decodeEncodedStringValue(c)
		if err == nil {
			m.To = append(m.To, es)
		}
	case "Cc":
		var es EncodedString
		es, err = decodeEncodedStringValue(c)
		if err == nil {
			m.Cc = append(m.Cc, es)
		}
	case "Bcc":
		var es EncodedString
		es, err = decodeEncodedStringValue(c)
		if err == nil {
			m.Bcc = append(m.Bcc, es)
		}
	case "Subject":
		var es EncodedString
		es, err = decodeEncodedStringValue(c)
		m.Subject = &es
	case "Date":
		m.Date, err = decodeDateValue(c)
	case "Message-Class":
		m.MessageClass, err = decodeMessageClassValue(c)
	case "Message-ID":
		m.MessageID, err = wsp.DecodeTextString(c)
	case "Message-Size":
		m.MessageSize, err = wsp.DecodeLongInteger(c)
	case "Priority":
		m.Priority, err = decodePriorityValue(c)
	case "Delivery-Report":
		m.DeliveryReport, err = decodeBooleanValue(c)
	case "Read-Reply":
		m.ReadReply, err = decodeBooleanValue(c)
	case "Report-Allowed":
		m.ReportAllowed, err = decodeBooleanValue(c)
	case "Response-Status":
		m.ResponseStatus, err = decodeResponseStatusValue(c)
	case "Response-Text":
		var es EncodedString
		es, err = decodeEncodedStringValue(c)
		m.ResponseText = &es
	case "Sender-Visibility":
		m.SenderVisible, err = decodeSenderVisibilityValue(c)
	case "Status":
		m.Status, err = decodeStatusValue(c)
	case "Delivery-Time":
		var v DateOrDelta
		v, err = decodeDateOrDeltaValue(c)
		m.DeliveryTime = &v
	case "Expiry":
		var v DateOrDelta
		v, err = decodeDateOrDeltaValue(c)
		m.Expiry = &v
	case "Content-Location":
		m.ContentLocation, err = wsp.DecodeTextString(c)
	}
	if err != nil {
		return DecodeError(name, c.Pos(), err)
	}
	return nil
}

// Marshal encodes m as an MMS PDU: Message-Type, Transaction-Id and
// MMS-Version first (in that order), then every other header present,
// then Content-Type, then the multipart body if m has any Parts.
func Marshal(m *Message) ([]byte, error) {
	var out []byte
	emit := func(name string, value []byte) error {
		h, err := wsp.EncodeHeaderName(name)
		if err != nil {
			return EncodeError(name, err)
		}
		out = append(out, h...)
		out = append(out, value...)
		return nil
	}

	if err := emit("Message-Type", encodeMessageTypeValue(m.MessageType)); err != nil {
		return nil, err
	}
	if err := emit("Transaction-Id", wsp.EncodeTextString(m.TransactionID)); err != nil {
		return nil, err
	}
	version := m.Version
	if version == (wsp.Version{}) {
		version = wsp.Version{Major: 1, Minor: 0}
	}
	vb, err := wsp.EncodeVersionValue(version)
	if err != nil {
		return nil, EncodeError("MMS-Version", err)
	}
	if err := emit("MMS-Version", vb); err != nil {
		return nil, err
	}

	if m.From != nil {
		b, err := encodeFromValue(*m.From)
		if err != nil {
			return nil, EncodeError("From", err)
		}
		if err := emit("From", b); err != nil {
			return nil, err
		}
	}
	for _, to := range m.To {
		b, err := encodeEncodedStringValue(to)
		if err != nil {
			return nil, EncodeError("To", err)
		}
		if err := emit("To", b); err != nil {
			return nil, err
		}
	}
	for _, cc := range m.Cc {
		b, err := encodeEncodedStringValue(cc)
		if err != nil {
			return nil, EncodeError("Cc", err)
		}
		if err := emit("Cc", b); err != nil {
			return nil, err
		}
	}
	for _, bcc := range m.Bcc {
		b, err := encodeEncodedStringValue(bcc)
		if err != nil {
			return nil, EncodeError("Bcc", err)
		}
		if err := emit("Bcc", b); err != nil {
			return nil, err
		}
	}
	if m.Subject != nil {
		b, err := encodeEncodedStringValue(*m.Subject)
		if err != nil {
			return nil, EncodeError("Subject", err)
		}
		if err := emit("Subject", b); err != nil {
			return nil, err
		}
	}
	if !m.Date.IsZero() {
		b, err := wsp.EncodeDateValue(m.Date)
		if err != nil {
			return nil, EncodeError("Date", err)
		}
		if err := emit("Date", b); err != nil {
			return nil, err
		}
	}
	if m.MessageClass != "" {
		if err := emit("Message-Class", encodeMessageClassValue(m.MessageClass)); err != nil {
			return nil, err
		}
	}
	if m.MessageID != "" {
		if err := emit("Message-ID", wsp.EncodeTextString(m.MessageID)); err != nil {
			return nil, err
		}
	}
	if m.MessageSize > 0 {
		b, err := wsp.EncodeLongInteger(m.MessageSize)
		if err != nil {
			return nil, EncodeError("Message-Size", err)
		}
		if err := emit("Message-Size", b); err != nil {
			return nil, err
		}
	}
	if m.Priority != PriorityUnspecified {
		if err := emit("Priority", encodePriorityValue(m.Priority)); err != nil {
			return nil, err
		}
	}
	if m.DeliveryReport {
		if err := emit("Delivery-Report", encodeBooleanValue(true)); err != nil {
			return nil, err
		}
	}
	if m.ReadReply {
		if err := emit("Read-Reply", encodeBooleanValue(true)); err != nil {
			return nil, err
		}
	}
	if m.ReportAllowed {
		if err := emit("Report-Allowed", encodeBooleanValue(true)); err != nil {
			return nil, err
		}
	}
	if m.ResponseStatus != ResponseUnspecified {
		if err := emit("Response-Status", encodeResponseStatusValue(m.ResponseStatus)); err != nil {
			return nil, err
		}
	}
	if m.ResponseText != nil {
		b, err := encodeEncodedStringValue(*m.ResponseText)
		if err != nil {
			return nil, EncodeError("Response-Text", err)
		}
		if err := emit("Response-Text", b); err != nil {
			return nil, err
		}
	}
	if m.SenderVisible {
		if err := emit("Sender-Visibility", encodeSenderVisibilityValue(true)); err != nil {
			return nil, err
		}
	}
	if m.Status != StatusUnspecified {
		if err := emit("Status", encodeStatusValue(m.Status)); err != nil {
			return nil, err
		}
	}
	if m.DeliveryTime != nil {
		if err := emit("Delivery-Time", encodeDateOrDeltaValue(*m.DeliveryTime)); err != nil {
			return nil, err
		}
	}
	if m.Expiry != nil {
		if err := emit("Expiry", encodeDateOrDeltaValue(*m.Expiry)); err != nil {
			return nil, err
		}
	}
	if m.ContentLocation != "" {
		if err := emit("Content-Location", wsp.EncodeTextString(m.ContentLocation)); err != nil {
			return nil, err
		}
	}
	for _, h := range m.Extra {
		name, err := wsp.EncodeHeaderName(h.Name)
		if err != nil {
			return nil, EncodeError(h.Name, err)
		}
		out = append(out, name...)
		out = append(out, wsp.EncodeApplicationHeaderValue(h.Value)...)
	}

	ctb, err := wsp.EncodeContentTypeValue(m.ContentType)
	if err != nil {
		return nil, EncodeError("Content-Type", err)
	}
	if err := emit("Content-Type", ctb); err != nil {
		return nil, err
	}

	if len(m.Parts) > 0 {
		body, err := encodeBody(m.Parts)
		if err != nil {
			return nil, err
		}
		out = append(out, body...)
	}
	return out, nil
}
