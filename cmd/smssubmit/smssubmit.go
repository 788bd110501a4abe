// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pmarti/go-messaging/sms/sar"
)

func main() {
	var number, msg string
	flag.StringVar(&number, "number", "", "Destination number in international format")
	flag.StringVar(&msg, "message", "", "The message to encode")
	flag.Usage = usage
	flag.Parse()
	if number == "" || msg == "" {
		flag.Usage()
		os.Exit(1)
	}

	e := sar.NewEncoder()
	pdus, err := e.EncodeSubmit(number, msg)
	if err != nil {
		log.Println(err)
		return
	}
	if len(pdus) == 1 {
		b, _ := pdus[0].MarshalBinary()
		fmt.Printf("Submit TPDU:\n%s\n", hex.EncodeToString(b))
		return
	}
	for i, p := range pdus {
		b, _ := p.MarshalBinary()
		fmt.Printf("Submit TPDU %d:\n%s\n", i+1, hex.EncodeToString(b))
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "smssubmit encodes a message into a SMS Submit TPDU.\n"+
		"The message is encoded using the GSM7 default alphabet plus its\n"+
		"extension table where possible, or otherwise as UCS-2.\n"+
		"If the message is too long for a single PDU then it is split into several.\n\n"+
		"Usage: smssubmit -number <number> -message <message>\n")
	flag.PrintDefaults()
}
