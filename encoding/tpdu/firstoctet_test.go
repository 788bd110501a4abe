// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package tpdu_test

import (
	"testing"

	"github.com/pmarti/go-messaging/encoding/tpdu"
	"github.com/stretchr/testify/assert"
)

func TestFirstOctetMTI(t *testing.T) {
	f := tpdu.FirstOctet(0).WithMTI(tpdu.MtSubmit)
	assert.Equal(t, tpdu.MtSubmit, f.MTI())
}

func TestFirstOctetVPF(t *testing.T) {
	f := tpdu.FirstOctet(0).WithVPF(tpdu.VpfRelative)
	assert.Equal(t, tpdu.VpfRelative, f.VPF())
	assert.Equal(t, byte(0x10), byte(f)&tpdu.FoVPFMask)
}

func TestFirstOctetUDHI(t *testing.T) {
	f := tpdu.FirstOctet(tpdu.FoUDHI)
	assert.True(t, f.UDHI())
	assert.False(t, tpdu.FirstOctet(0).UDHI())
}

func TestFirstOctetFlags(t *testing.T) {
	f := tpdu.FirstOctet(tpdu.FoRP | tpdu.FoLP)
	assert.True(t, f.RP())
	assert.True(t, f.LP())
	assert.False(t, f.MMS())
}
