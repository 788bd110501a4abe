// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

// Command smscounter reports how many SMS PDUs a message requires, and how
// much headroom is left in the last one.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pmarti/go-messaging/encoding/gsm7"
	"github.com/pmarti/go-messaging/encoding/ucs2"
)

// Capacity, in characters, of a single PDU and of each PDU in a
// concatenated (multi-part) message, per alphabet.
const (
	gsm7SingleCap = 160
	gsm7SegCap    = 153
	ucs2SingleCap = 70
	ucs2SegCap    = 67
)

// Count summarises how a message's text would be carried as SMS PDUs.
type Count struct {
	// Scheme is the alphabet used: "7BIT", "7BIT_EX" (7-bit with escaped
	// extension-table characters), or "UCS-2".
	Scheme string
	// NumPDU is the number of PDUs required to carry the message.
	NumPDU int
	// Chars is the number of characters in msg, counted in alphabet units
	// (see NewCount).
	Chars int
	// Units is the number of alphabet units (septets or UCS-2 code units)
	// the message encodes to.
	Units int
	// Capacity is the total number of units available across NumPDU PDUs.
	Capacity int
	// Remaining is the unused capacity left in the last PDU.
	Remaining int
}

// NewCount computes the Count for msg.
//
// Chars counts alphabet units rather than runes: a UCS-2 surrogate pair (a
// rune outside the Basic Multilingual Plane) occupies two units, and is
// counted as two characters, matching what the PDU actually carries.
func NewCount(msg string) (Count, error) {
	if sm, err := gsm7.Encode(msg, gsm7.Strict); err == nil {
		scheme := "7BIT"
		for _, b := range sm {
			if b == 0x1b {
				scheme = "7BIT_EX"
				break
			}
		}
		return count(scheme, len(sm), gsm7SingleCap, gsm7SegCap), nil
	}
	u := ucs2.Encode([]rune(msg))
	return count("UCS-2", len(u)/2, ucs2SingleCap, ucs2SegCap), nil
}

func count(scheme string, units, singleCap, segCap int) Count {
	numPDU := 1
	cap := singleCap
	if units > singleCap {
		numPDU = (units + segCap - 1) / segCap
		cap = segCap * numPDU
	}
	return Count{scheme, numPDU, units, units, cap, cap - units}
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	c, err := NewCount(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("scheme:    %s\n", c.Scheme)
	fmt.Printf("PDUs:      %d\n", c.NumPDU)
	fmt.Printf("chars:     %d\n", c.Chars)
	fmt.Printf("units:     %d\n", c.Units)
	fmt.Printf("capacity:  %d\n", c.Capacity)
	fmt.Printf("remaining: %d\n", c.Remaining)
}

func usage() {
	fmt.Fprintf(os.Stderr, "smscounter reports the number of SMS PDUs a message requires.\n\n"+
		"Usage: smscounter <message>\n")
	flag.PrintDefaults()
}
