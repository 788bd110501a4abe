// SPDX-License-Identifier: MIT
//
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

// Package sar provides segmentation and reassembly above tpdu.
//
// Segmentation splits a message that is too large to fit in a single
// SMS-SUBMIT TPDU into a set of TPDUs, all carrying a User Data Header
// concatenation Information Element so the receiving end can put them back
// together in order. Reassembly is the reverse: it collects the TPDUs of a
// concatenated SMS-DELIVER until the complete set has arrived, then joins
// their User Data back into the original text.
package sar
