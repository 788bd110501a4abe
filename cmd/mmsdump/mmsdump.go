// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

// Command mmsdump decodes a binary MMS PDU, or an SMS-borne WAP Push
// notification wrapping one, and dumps its header and body structure.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/pmarti/go-messaging"
)

func main() {
	push := flag.Bool("push", false, "input is a WAP Push envelope (SMS user data) rather than a bare MMS PDU")
	out := flag.String("out", "dump", "output format: dump or yaml")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	b, err := hex.DecodeString(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	var m interface{}
	if *push {
		decoded, transactionID, err := messaging.ExtractWAPPush(b)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("push transaction id: %s\n", transactionID)
		m = decoded
	} else {
		decoded, err := messaging.DecodeMMS(b)
		if err != nil {
			log.Fatal(err)
		}
		m = decoded
	}

	switch *out {
	case "yaml":
		out, err := yaml.Marshal(m)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(out)
	default:
		spew.Dump(m)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "mmsdump decodes a binary MMS PDU and dumps its structure.\n\n"+
		"Usage: mmsdump [-push] [-out dump|yaml] <hex>\n")
	flag.PrintDefaults()
}
