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

func TestSubmitMarshalUnmarshalRoundTrip(t *testing.T) {
	s := tpdu.NewSubmit()
	s.SetMR(0x2a)
	s.SetDA(tpdu.Address{TOA: 0x91, Addr: "447911123456"})
	s.SetPID(0)
	dcs, err := tpdu.DCS(0).WithAlphabet(tpdu.Alpha7Bit)
	require.NoError(t, err)
	s.SetDCS(dcs)
	s.SetUD([]byte{'h' & 0x7f, 'o' & 0x7f, 'l' & 0x7f, 'a' & 0x7f})

	b, err := s.MarshalBinary()
	require.NoError(t, err)

	out := tpdu.NewSubmit()
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, s.MR(), out.MR())
	assert.Equal(t, s.DA(), out.DA())
	assert.Equal(t, s.UD(), out.UD())
}

func TestSubmitDecodeOfMarshaledAlphanumericDA(t *testing.T) {
	s := tpdu.NewSubmit()
	s.SetMR(1)
	da := tpdu.Address{Addr: "Acme"}
	da.SetTypeOfNumber(tpdu.TonAlphanumeric)
	s.SetDA(da)
	s.SetUD([]byte("hi"))

	b, err := s.MarshalBinary()
	require.NoError(t, err)

	out := tpdu.NewSubmit()
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, "Acme", out.DA().Addr)
	assert.Equal(t, tpdu.MtSubmit, out.MTI())
}

func TestSubmitSetVPMatchesFirstOctetVPF(t *testing.T) {
	s := tpdu.NewSubmit()
	var vp tpdu.ValidityPeriod
	vp.SetRelative(0)
	s.SetVP(vp)
	assert.Equal(t, tpdu.VpfRelative, s.FirstOctet().VPF())
}
