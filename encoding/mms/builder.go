// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package mms

import (
	"fmt"
	"strings"

	"github.com/pmarti/go-messaging/encoding/wsp"
)

// defaultDuration is the fallback slide duration in milliseconds, carried
// over from the reference implementation.
const defaultDuration = 4000

// Page is one SMIL slide: up to one image, one audio clip and one block
// of text, each optionally clipped to a begin/end window within the
// slide's Duration.
type Page struct {
	Duration int

	Image      *Part
	ImageBegin int
	ImageEnd   int

	Audio      *Part
	AudioBegin int
	AudioEnd   int

	Text      *Part
	TextBegin int
	TextEnd   int
}

// Builder assembles an MMS send-req message out of Pages and standalone
// attachments, generating the SMIL presentation part and wiring the
// multipart/related or multipart/mixed Content-Type as appropriate.
type Builder struct {
	Width, Height int

	pages     []Page
	dataParts []Part
}

// NewBuilder returns a Builder using the WAP-209 default presentable area.
func NewBuilder() *Builder {
	return &Builder{Width: 176, Height: 220}
}

// AddPage appends a SMIL slide to the message.
func (b *Builder) AddPage(p Page) {
	if p.Duration <= 0 {
		p.Duration = defaultDuration
	}
	b.pages = append(b.pages, p)
}

// AddPart appends a standalone attachment not tied to any slide.
func (b *Builder) AddPart(p Part) {
	b.dataParts = append(b.dataParts, p)
}

// Build assembles the final Message. When the builder has pages, a SMIL
// part is generated and inserted first (with Content-ID "<0000>") and
// the content type is multipart/related; otherwise, with only standalone
// parts, it is multipart/mixed.
func (b *Builder) Build(header Message) (*Message, error) {
	m := header
	var parts []Part
	if len(b.pages) > 0 {
		smil, err := b.smil()
		if err != nil {
			return nil, err
		}
		parts = append(parts, Part{
			ContentType: wsp.ContentType{Media: "application/smil"},
			ContentID:   "<0000>",
			Data:        []byte(smil),
		})
		for _, p := range b.pages {
			if p.Image != nil {
				parts = append(parts, *p.Image)
			}
			if p.Audio != nil {
				parts = append(parts, *p.Audio)
			}
			if p.Text != nil {
				parts = append(parts, *p.Text)
			}
		}
		m.ContentType = wsp.ContentType{Media: "application/vnd.wap.multipart.related"}
	} else {
		m.ContentType = wsp.ContentType{Media: "application/vnd.wap.multipart.mixed"}
	}
	parts = append(parts, b.dataParts...)
	m.Parts = parts
	return &m, nil
}

// partSource returns the src attribute value for a SMIL reference to
// part: its Content-Location if it has one, else its Content-ID, else
// (last resort) the raw data interpreted as text.
func partSource(p *Part) string {
	for _, h := range p.Headers {
		if h.Name == "Content-Location" {
			return h.Value
		}
	}
	if p.ContentID != "" {
		return p.ContentID
	}
	return string(p.Data)
}

// smil renders the message's pages as a WAP-209 SMIL presentation: a
// root-layout sized to the builder's Width/Height and two fixed regions,
// "Image" (top-left, 176x144) and "Text" (at left 176, top 144, 176x76),
// followed by
// one <par> per page.
func (b *Builder) smil() (string, error) {
	var sb strings.Builder
	sb.WriteString(`<smil><head><layout>`)
	fmt.Fprintf(&sb, `<root-layout width="%d" height="%d"/>`, b.Width, b.Height)
	sb.WriteString(`<region id="Image" left="0" top="0" width="176" height="144"/>`)
	sb.WriteString(`<region id="Text" left="176" top="144" width="176" height="76"/>`)
	sb.WriteString(`</layout></head><body>`)
	for _, p := range b.pages {
		fmt.Fprintf(&sb, `<par dur="%d">`, p.Duration)
		if p.Image != nil {
			writeMediaElement(&sb, "img", partSource(p.Image), "Image", p.ImageBegin, p.ImageEnd, p.Duration)
		}
		if p.Text != nil {
			writeMediaElement(&sb, "text", partSource(p.Text), "Text", p.TextBegin, p.TextEnd, p.Duration)
		}
		if p.Audio != nil {
			writeMediaElement(&sb, "audio", partSource(p.Audio), "", p.AudioBegin, p.AudioEnd, p.Duration)
		}
		sb.WriteString(`</par>`)
	}
	sb.WriteString(`</body></smil>`)
	return sb.String(), nil
}

func writeMediaElement(sb *strings.Builder, tag, src, region string, begin, end, duration int) {
	fmt.Fprintf(sb, `<%s src="%s"`, tag, escapeAttr(src))
	if region != "" {
		fmt.Fprintf(sb, ` region="%s"`, region)
	}
	if begin > 0 || end > 0 {
		if end > duration {
			end = duration
		}
		fmt.Fprintf(sb, ` begin="%d" end="%d"`, begin, end)
	}
	sb.WriteString(`/>`)
}

func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	return s
}
