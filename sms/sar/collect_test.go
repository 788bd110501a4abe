// SPDX-License-Identifier: MIT
//
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

package sar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmarti/go-messaging/encoding/tpdu"
	"github.com/pmarti/go-messaging/sms/sar"
)

func segment(oa string, ref uint8, seq, total uint8) *tpdu.Deliver {
	d := tpdu.NewDeliver()
	d.SetOA(tpdu.Address{TOA: 0x91, Addr: oa})
	if total > 1 {
		d.SetUDH(tpdu.UserDataHeader{tpdu.NewConcatIE8(ref, seq, total)})
	}
	return d
}

func TestCollectSingleSegment(t *testing.T) {
	c := sar.NewCollector()
	defer c.Close()
	d := segment("447700900123", 0, 1, 1)
	out, err := c.Collect(d)
	require.NoError(t, err)
	assert.Equal(t, []*tpdu.Deliver{d}, out)
}

func TestCollectConcatenatedSet(t *testing.T) {
	c := sar.NewCollector()
	defer c.Close()
	d1 := segment("447700900123", 7, 2, 2)
	d2 := segment("447700900123", 7, 1, 2)

	out, err := c.Collect(d1)
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = c.Collect(d2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, d2, out[0])
	assert.Equal(t, d1, out[1])
}

func TestCollectDuplicateSegment(t *testing.T) {
	c := sar.NewCollector()
	defer c.Close()
	d1 := segment("447700900123", 7, 1, 2)
	d2 := segment("447700900123", 7, 1, 2)

	_, err := c.Collect(d1)
	require.NoError(t, err)
	_, err = c.Collect(d2)
	assert.Equal(t, sar.ErrDuplicateSegment, err)
}

func TestCollectInconsistentSequence(t *testing.T) {
	c := sar.NewCollector()
	defer c.Close()
	d := segment("447700900123", 7, 3, 2)
	_, err := c.Collect(d)
	assert.Equal(t, sar.ErrReassemblyInconsistency, err)
}

func TestCollectAfterClose(t *testing.T) {
	c := sar.NewCollector()
	d := segment("447700900123", 7, 1, 2)
	c.Close()
	_, err := c.Collect(d)
	assert.Equal(t, sar.ErrClosed, err)
}

func TestCollectReassemblyTimeout(t *testing.T) {
	errCh := make(chan error, 1)
	c := sar.NewCollector(sar.WithReassemblyTimeout(10*time.Millisecond, func(err error) {
		errCh <- err
	}))
	defer c.Close()
	d := segment("447700900123", 7, 1, 2)
	_, err := c.Collect(d)
	require.NoError(t, err)

	select {
	case err := <-errCh:
		expired, ok := err.(sar.ErrExpired)
		require.True(t, ok)
		assert.Equal(t, []*tpdu.Deliver{d, nil}, expired.Segments)
	case <-time.After(time.Second):
		t.Fatal("reassembly timeout did not fire")
	}
}
