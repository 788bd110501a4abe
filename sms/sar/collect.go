// SPDX-License-Identifier: MIT
//
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

package sar

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pmarti/go-messaging/encoding/tpdu"
)

// Collector contains reassembly pipes that buffer concatenated Deliver
// TPDUs until a full set is available to be concatenated.
type Collector struct {
	sync.Mutex // covers pipes and closed
	pipes      map[string]*pipe
	duration   time.Duration
	closed     bool
	asyncError func(error)
}

// CollectorOption alters the behaviour of a Collector at construction time.
type CollectorOption func(*Collector)

// WithReassemblyTimeout limits the time allowed for a collection of TPDUs
// to be collected. If the timer expires before the collection is complete
// then asyncError is called with an ErrExpired holding the partial set.
//
// A zero duration (the default) disables the timeout, so incomplete
// collections are held indefinitely.
func WithReassemblyTimeout(d time.Duration, asyncError func(error)) CollectorOption {
	return func(c *Collector) {
		c.duration = d
		c.asyncError = asyncError
	}
}

// NewCollector creates a Collector.
func NewCollector(options ...CollectorOption) *Collector {
	c := Collector{pipes: make(map[string]*pipe)}
	for _, option := range options {
		option(&c)
	}
	return &c
}

// Close shuts down the Collector and all active pipes.
func (c *Collector) Close() {
	c.Lock()
	defer c.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for _, p := range c.pipes {
		if p.cleanup != nil {
			p.cleanup.Stop()
		}
	}
}

// Collect adds a Deliver TPDU to the collection.
//
// If all the components of a concatenated SMS are available then they are
// returned, in sequence order.
func (c *Collector) Collect(pdu *tpdu.Deliver) ([]*tpdu.Deliver, error) {
	info, ok := pdu.UDH().Concat()
	if !ok || info.Total < 2 {
		// short circuit single segment - no need for a pipe
		return []*tpdu.Deliver{pdu}, nil
	}
	if info.Seq < 1 || info.Seq > info.Total {
		return nil, ErrReassemblyInconsistency
	}
	oa := pdu.OA()
	key := fmt.Sprintf("%02x:%s:%d:%d", oa.TOA, oa.Addr, info.Ref, info.Total)
	c.Lock()
	defer c.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	p, ok := c.pipes[key]
	if ok {
		if p.segments[info.Seq-1] != nil {
			return nil, ErrDuplicateSegment
		}
		if p.cleanup != nil && !p.cleanup.Stop() {
			// timer has fired, but cleanup hasn't been performed yet - so
			// need a new pipe
			ok = false
		}
	}
	if !ok {
		p = &pipe{segments: make([]*tpdu.Deliver, info.Total)}
		c.pipes[key] = p
	}
	p.segments[info.Seq-1] = pdu
	p.frags++
	if p.frags == int(info.Total) {
		delete(c.pipes, key)
		return p.segments, nil
	}
	if c.duration != 0 {
		p.cleanup = time.AfterFunc(c.duration, func() {
			c.Lock()
			m := c.pipes[key]
			if m == p {
				delete(c.pipes, key)
			}
			c.Unlock()
			if c.asyncError != nil {
				c.asyncError(ErrExpired{p.segments})
			}
		})
	}
	return nil, nil
}

// pipe is a buffer that contains the individual TPDUs in a concatenation
// set until the complete set is available or the reassembly times out.
type pipe struct {
	cleanup  *time.Timer
	segments []*tpdu.Deliver
	frags    int
}

// ErrExpired indicates that a reassembly has timed out. The segments of the
// aborted reassembly are carried in the error.
type ErrExpired struct {
	Segments []*tpdu.Deliver
}

func (e ErrExpired) Error() string {
	return fmt.Sprintf("sar: timed out reassembling %d segments", len(e.Segments))
}

var (
	// ErrClosed indicates that the collector has been closed and is no
	// longer accepting PDUs.
	ErrClosed = errors.New("sar: closed")
	// ErrDuplicateSegment indicates a segment has arrived for a reassembly
	// that already has that segment. The first received is kept and the
	// second discarded.
	ErrDuplicateSegment = errors.New("sar: duplicate segment")
	// ErrReassemblyInconsistency indicates a segment has arrived with a
	// sequence number outside the range implied by its own total.
	ErrReassemblyInconsistency = errors.New("sar: reassembly inconsistency")
)
