// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package mms

import (
	"github.com/pmarti/go-messaging/encoding/wsp"
	"github.com/pmarti/go-messaging/internal/cursor"
)

// decodeBody decodes a multipart/related body: uintvar part count, then
// per part uintvar headers-length, uintvar data-length, the header bytes
// (a Content-Type followed by zero or more further headers) and finally
// the raw data bytes. Neither headers nor data are NUL-terminated; their
// lengths are exact.
func decodeBody(c *cursor.Cursor) ([]Part, error) {
	n, err := wsp.DecodeUintvar(c)
	if err != nil {
		return nil, DecodeError("body.numParts", c.Pos(), err)
	}
	parts := make([]Part, 0, n)
	for i := 0; i < int(n); i++ {
		hl, err := wsp.DecodeUintvar(c)
		if err != nil {
			return nil, DecodeError("body.part.headersLen", c.Pos(), err)
		}
		dl, err := wsp.DecodeUintvar(c)
		if err != nil {
			return nil, DecodeError("body.part.dataLen", c.Pos(), err)
		}
		hb, err := c.Take(int(hl))
		if err != nil {
			return nil, DecodeError("body.part.headers", c.Pos(), err)
		}
		p, err := decodePartHeaders(hb)
		if err != nil {
			return nil, DecodeError("body.part", c.Pos()-int(hl), err)
		}
		data, err := c.Take(int(dl))
		if err != nil {
			return nil, DecodeError("body.part.data", c.Pos(), err)
		}
		p.Data = append([]byte(nil), data...)
		parts = append(parts, p)
	}
	return parts, nil
}

// decodePartHeaders decodes the header octets of one multipart entry: a
// Content-Type value (always first, per WAP-230 §8.5) followed by any
// other headers, well-known or application.
func decodePartHeaders(hb []byte) (Part, error) {
	hc := cursor.New(hb)
	ct, err := wsp.DecodeContentTypeValue(hc)
	if err != nil {
		return Part{}, DecodeError("contentType", hc.Pos(), err)
	}
	p := Part{ContentType: ct}
	for hc.Remaining() > 0 {
		name, wellKnown, err := wsp.DecodeHeaderName(hc)
		if err != nil {
			return Part{}, DecodeError("header", hc.Pos(), err)
		}
		if !wellKnown {
			val, err := wsp.DecodeApplicationHeaderValue(hc)
			if err != nil {
				return Part{}, DecodeError(name, hc.Pos(), err)
			}
			if name == "Content-ID" {
				p.ContentID = val
			} else {
				p.Headers = append(p.Headers, Header{Name: name, Value: val})
			}
			continue
		}
		switch name {
		case "Content-Location":
			s, err := wsp.DecodeTextString(hc)
			if err != nil {
				return Part{}, DecodeError(name, hc.Pos(), err)
			}
			p.Headers = append(p.Headers, Header{Name: name, Value: s})
		default:
			// A well-known field that can legally appear on a part but
			// whose value grammar we don't otherwise need: consume the
			// rest of this part's headers rather than fail decoding the
			// whole message over a cosmetic field.
			hc.Rest()
		}
	}
	return p, nil
}

// encodeBody encodes parts as a multipart/related body.
func encodeBody(parts []Part) ([]byte, error) {
	out := wsp.EncodeUintvar(uint64(len(parts)))
	for _, p := range parts {
		ctb, err := wsp.EncodeContentTypeValue(p.ContentType)
		if err != nil {
			return nil, EncodeError("body.part.contentType", err)
		}
		var hdrs []byte
		if p.ContentID != "" {
			name, err := wsp.EncodeHeaderName("Content-ID")
			if err != nil {
				return nil, EncodeError("body.part.Content-ID", err)
			}
			hdrs = append(hdrs, name...)
			hdrs = append(hdrs, wsp.EncodeApplicationHeaderValue(p.ContentID)...)
		}
		for _, h := range p.Headers {
			name, err := wsp.EncodeHeaderName(h.Name)
			if err != nil {
				return nil, EncodeError("body.part."+h.Name, err)
			}
			hdrs = append(hdrs, name...)
			hdrs = append(hdrs, wsp.EncodeApplicationHeaderValue(h.Value)...)
		}
		headersLen := len(ctb) + len(hdrs)
		out = append(out, wsp.EncodeUintvar(uint64(headersLen))...)
		out = append(out, wsp.EncodeUintvar(uint64(len(p.Data)))...)
		out = append(out, ctb...)
		out = append(out, hdrs...)
		out = append(out, p.Data...)
	}
	return out, nil
}
