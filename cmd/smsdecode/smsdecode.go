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

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/pmarti/go-messaging/encoding/pdumode"
	"github.com/pmarti/go-messaging/encoding/tpdu"
)

// decoder covers both MT-bound TPDUs (Deliver, Status Report) and MO-bound
// TPDUs (Submit), since this tool dumps whichever direction the caller asks
// for rather than assuming a fixed role.
var decoder = func() *tpdu.Decoder {
	d, err := tpdu.NewDecoder()
	if err != nil {
		log.Fatal(err)
	}
	for _, reg := range []func(*tpdu.Decoder) error{
		tpdu.RegisterDeliverDecoder,
		tpdu.RegisterReservedDecoder,
		tpdu.RegisterStatusReportDecoder,
		tpdu.RegisterSubmitReportDecoder,
		tpdu.RegisterCommandDecoder,
		tpdu.RegisterSubmitDecoder,
		tpdu.RegisterDeliverReportDecoder,
		tpdu.RegisterReservedMODecoder,
	} {
		if err := reg(d); err != nil {
			log.Fatal(err)
		}
	}
	return d
}()

// decode parses pduHex, a TPDU in hex, optionally stripping a leading SMSC
// address (pm), and decodes it in the direction mo selects. It returns the
// decoded TPDU and, if pm was set, the stripped SMSC address.
func decode(pduHex string, pm, mo bool) (tpdu.TPDU, *pdumode.SMSCAddress, error) {
	b, err := hex.DecodeString(pduHex)
	if err != nil {
		return nil, nil, err
	}
	tb := b
	var smsc *pdumode.SMSCAddress
	if pm {
		s, ntb, err := (pdumode.Decoder{}).Decode(b)
		if err != nil {
			return nil, nil, err
		}
		smsc = s
		tb = ntb
	}
	drn := tpdu.MT
	if mo {
		drn = tpdu.MO
	}
	tp, err := decoder.Decode(tb, drn)
	if err != nil {
		return nil, smsc, err
	}
	return tp, smsc, nil
}

func main() {
	pm := flag.Bool("p", false, "PDU is prefixed with SCA (PDU mode)")
	orig := flag.Bool("o", false, "PDU is mobile originated")
	out := flag.String("out", "dump", "output format: dump or yaml")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	tp, smsc, err := decode(flag.Arg(0), *pm, *orig)
	switch *out {
	case "yaml":
		if smsc != nil {
			b, _ := yaml.Marshal(smsc)
			os.Stdout.Write(b)
		}
		if err == nil {
			b, merr := yaml.Marshal(tp)
			if merr != nil {
				log.Fatal(merr)
			}
			os.Stdout.Write(b)
		}
	default:
		if smsc != nil {
			spew.Dump(smsc)
		}
		if err == nil {
			spew.Dump(tp)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: smsdecode [-p] [-o] [-out dump|yaml] <sms>\n")
	flag.PrintDefaults()
}
