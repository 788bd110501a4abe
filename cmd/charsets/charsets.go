// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"

	"github.com/pmarti/go-messaging/encoding/gsm7"
)

func main() {
	fmt.Println("Default")
	display(gsm7.DefaultTable())
	fmt.Println()

	fmt.Println("Default Extension")
	display(gsm7.ExtensionTable())
	fmt.Println()
}

func display(t map[byte]rune) {
	keys := make([]byte, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fmt.Printf("  0x%02x -> %q\n", k, t[k])
	}
}
