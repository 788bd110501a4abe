// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package tpdu_test

import (
	"testing"

	"github.com/pmarti/go-messaging/encoding/tpdu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusReportMarshalUnmarshalNoOptionals(t *testing.T) {
	s := tpdu.NewStatusReport()
	s.SetMR(3)
	s.SetRA(tpdu.Address{TOA: 0x91, Addr: "447911123456"})
	s.SetST(0)

	b, err := s.MarshalBinary()
	require.NoError(t, err)

	out := tpdu.NewStatusReport()
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, s.MR(), out.MR())
	assert.Equal(t, s.RA(), out.RA())
	assert.Equal(t, tpdu.PI(0), out.PI())
}

func TestStatusReportOptionalFieldsRoundTrip(t *testing.T) {
	s := tpdu.NewStatusReport()
	s.SetRA(tpdu.Address{TOA: 0x91, Addr: "1"})
	s.SetPID(5)
	dcs, err := tpdu.DCS(0).WithAlphabet(tpdu.Alpha7Bit)
	require.NoError(t, err)
	s.SetDCS(dcs)
	s.SetUD([]byte{'o' & 0x7f, 'k' & 0x7f})

	b, err := s.MarshalBinary()
	require.NoError(t, err)

	out := tpdu.NewStatusReport()
	require.NoError(t, out.UnmarshalBinary(b))
	assert.True(t, out.PI().PID())
	assert.True(t, out.PI().DCS())
	assert.True(t, out.PI().UDL())
	assert.Equal(t, byte(5), out.PID())
	assert.Equal(t, s.UD(), out.UD())
}
