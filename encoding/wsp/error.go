// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package wsp

import (
	"errors"
	"fmt"
	"io"

	"github.com/pmarti/go-messaging/internal/cursor"
)

type decodeError struct {
	Field  string
	Offset int
	Err    error
}

// DecodeError creates a decodeError identifying the field being decoded and
// the offset into the source where the field starts. If err is itself a
// decodeError the field names are combined in outer.inner format and the
// offset is adjusted to be relative to the outermost field.
func DecodeError(f string, o int, err error) error {
	if s, ok := err.(decodeError); ok {
		s.Field = fmt.Sprintf("%s.%s", f, s.Field)
		s.Offset = s.Offset + o
		return s
	}
	if err == io.EOF || err == cursor.ErrEndOfInput {
		err = ErrUnderflow
	}
	return decodeError{f, o, err}
}

func (e decodeError) Error() string {
	return fmt.Sprintf("wsp: error decoding %s at octet %d: %v", e.Field, e.Offset, e.Err)
}

func (e decodeError) Unwrap() error {
	return e.Err
}

type encodeError struct {
	Field string
	Err   error
}

// EncodeError creates an encodeError identifying the field being encoded.
func EncodeError(f string, err error) error {
	if s, ok := err.(encodeError); ok {
		s.Field = fmt.Sprintf("%s.%s", f, s.Field)
		return s
	}
	return encodeError{f, err}
}

func (e encodeError) Error() string {
	return fmt.Sprintf("wsp: error encoding %s: %v", e.Field, e.Err)
}

func (e encodeError) Unwrap() error {
	return e.Err
}

var (
	// ErrUnderflow indicates the source does not contain sufficient bytes
	// to decode the field.
	ErrUnderflow = errors.New("wsp: underflow")
	// ErrInvalid indicates a value is outside the range its encoding allows.
	ErrInvalid = errors.New("wsp: invalid value")
	// ErrOverlength indicates a value-length field declares more bytes
	// than the long-form encoding it selects can carry.
	ErrOverlength = errors.New("wsp: overlength")
	// ErrUnknownVersion indicates an unsupported WSP table version was
	// requested.
	ErrUnknownVersion = errors.New("wsp: unknown version")
)
