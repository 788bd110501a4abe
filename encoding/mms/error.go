// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package mms

import (
	stderrors "errors"
	"fmt"
	"io"

	perrors "github.com/pkg/errors"

	"github.com/pmarti/go-messaging/internal/cursor"
)

type decodeError struct {
	Field  string
	Offset int
	Err    error
}

// DecodeError creates a decodeError identifying the field being decoded and
// the offset where it starts, combining nested field names as
// outer.inner, exactly as encoding/tpdu's DecodeError does.
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
	return fmt.Sprintf("mms: error decoding %s at octet %d: %v", e.Field, e.Offset, e.Err)
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
	return fmt.Sprintf("mms: error encoding %s: %v", e.Field, e.Err)
}

func (e encodeError) Unwrap() error {
	return e.Err
}

var (
	// ErrUnderflow indicates the source does not contain sufficient bytes
	// to decode the field.
	ErrUnderflow = stderrors.New("mms: underflow")
	// ErrInvalid indicates a field value is outside what its encoding allows.
	ErrInvalid = stderrors.New("mms: invalid value")
	// ErrPartCountMismatch indicates the body's declared part count does
	// not match the number of parts actually present.
	ErrPartCountMismatch = perrors.New("mms: body part count mismatch")
	// ErrNotMultipart indicates a message with pages or standalone parts
	// was asked to encode without a multipart Content-Type.
	ErrNotMultipart = perrors.New("mms: message requires a multipart content-type")
)
