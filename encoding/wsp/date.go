// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package wsp

import (
	"time"

	"github.com/pmarti/go-messaging/internal/cursor"
)

// EncodeDateValue encodes t as a long integer holding seconds since the
// Unix epoch, UTC.
func EncodeDateValue(t time.Time) ([]byte, error) {
	secs := t.UTC().Unix()
	if secs < 0 {
		return nil, EncodeError("dateValue", ErrInvalid)
	}
	return EncodeLongInteger(uint64(secs))
}

// DecodeDateValue decodes a date-value into a UTC time.Time.
func DecodeDateValue(c *cursor.Cursor) (time.Time, error) {
	v, err := DecodeLongInteger(c)
	if err != nil {
		return time.Time{}, DecodeError("dateValue", c.Pos(), err)
	}
	return time.Unix(int64(v), 0).UTC(), nil
}

// EncodeDeltaSeconds encodes a relative time in seconds as an integer-value.
func EncodeDeltaSeconds(secs uint64) []byte {
	return EncodeIntegerValue(secs)
}

// DecodeDeltaSeconds decodes a delta-seconds value.
func DecodeDeltaSeconds(c *cursor.Cursor) (uint64, error) {
	v, err := DecodeIntegerValue(c)
	if err != nil {
		return 0, DecodeError("deltaSeconds", c.Pos(), err)
	}
	return v, nil
}
