// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

package wsp

// Tables below are carried verbatim from WAP-230 (Wireless Session
// Protocol) Appendix A, restricted to the entries exercised by MMS
// (WAP-209) headers and bodies, as enumerated in WAP-230 with the ranges
// added by each revision noted against the version that introduced them.

// ContentTypes maps a well-known content-type code to its media-type
// string.
var ContentTypes = map[int]string{
	0x00: "*/*",
	0x03: "text/plain",
	0x08: "text/x-vCalendar",
	0x09: "text/x-vCard",
	0x1e: "image/jpeg",
	0x1f: "image/gif",
	0x23: "audio/basic",
	0x26: "audio/x-wav",
	0x30: "application/vnd.wap.multipart.mixed",
	0x31: "application/vnd.wap.multipart.related",
	0x32: "application/vnd.wap.multipart.alternative",
	0x33: "application/vnd.wap.multipart.related",
	0x38: "application/smil",
	0x3e: "application/vnd.wap.mms-message",
	0x4b: "text/vnd.wap.connectivity-xml",
}

// contentTypeCodes is the reverse of ContentTypes, built at init time. Where
// more than one code maps to the same media type (0x31/0x33 both alias
// multipart/related in different table revisions), the lowest code wins.
var contentTypeCodes = func() map[string]int {
	m := make(map[string]int, len(ContentTypes))
	for code := 0x4b; code >= 0; code-- {
		if name, ok := ContentTypes[code]; ok {
			m[name] = code
		}
	}
	return m
}()

// ContentTypeCode returns the well-known code for a media-type string, and
// false if the media type has no well-known entry.
func ContentTypeCode(media string) (int, bool) {
	c, ok := contentTypeCodes[media]
	return c, ok
}

// Well-known parameter tokens, by name, valid across all versions unless
// noted. Values above 0x08 are the ranges added by WAP-230-20010705-a
// (version 1.2), with a second wave (0x0c..0x10) in 1.3 and a third
// (0x11..0x1d) in 1.4.
const (
	ParamCharset    = 0x01
	ParamType09     = 0x09 // Type as constrained-encoding (1.2+)
	ParamTypeInt03  = 0x03 // Type as integer-value
	ParamName05     = 0x05 // Name as text-string
	ParamName17     = 0x17 // Name as encoded-string-value (1.3+)
	ParamFilename   = 0x08
	ParamStart0a    = 0x0a
	ParamStart19    = 0x19
	ParamComment0c  = 0x0c
	ParamComment1b  = 0x1b
	ParamDomain0d   = 0x0d
	ParamPath0f     = 0x0f
	ParamSecure0e   = 0x0e
	ParamLevel10    = 0x10
	ParamQ00        = 0x00
)

// paramInfo describes a well-known parameter's token name and the wire
// type its value takes, per the parameter table (WAP-230 Table 38/39/40).
type paramInfo struct {
	name      string
	isInteger bool
}

// paramTable maps a well-known parameter code to its paramInfo; the codec
// matches on the numeric code, not the name, and uses isInteger to decide
// whether a parameter's value is an integer-value or a text-value.
var paramTable = map[int]paramInfo{
	ParamQ00:       {"Q", false},
	ParamCharset:   {"Charset", true},
	ParamTypeInt03: {"Type", true},
	ParamName05:    {"Name", false},
	ParamFilename:  {"Filename", false},
	ParamStart0a:   {"Start", false},
	ParamType09:    {"Type", false},
	ParamComment0c: {"Comment", false},
	ParamDomain0d:  {"Domain", false},
	ParamSecure0e:  {"Secure", false},
	ParamPath0f:    {"Path", false},
	ParamLevel10:   {"Level", true},
	ParamComment1b: {"Comment", false},
	ParamStart19:   {"Start", false},
	ParamName17:    {"Name", false},
}

// ParameterName returns the token name of a well-known parameter code.
func ParameterName(code int) (string, bool) {
	p, ok := paramTable[code]
	return p.name, ok
}

// HeaderFieldNames is the WAP-230/WAP-209 well-known header-field-names
// table, restricted to the fields MMS actually assigns (WAP-209 §7.3 /
// spec §6.3), ordered by well-known code. Table revisions truncate this
// list at different points (1.2 -> 0x2f, 1.3 -> 0x38, 1.4 -> 0x44); since
// every entry here is also an MMS field, no truncation applies to the
// subset this package carries.
var HeaderFieldNames = map[int]string{
	0x01: "Bcc",
	0x02: "Cc",
	0x03: "Content-Location",
	0x04: "Content-Type",
	0x05: "Date",
	0x06: "Delivery-Report",
	0x07: "Delivery-Time",
	0x08: "Expiry",
	0x09: "From",
	0x0a: "Message-Class",
	0x0b: "Message-ID",
	0x0c: "Message-Type",
	0x0d: "MMS-Version",
	0x0e: "Message-Size",
	0x0f: "Priority",
	0x10: "Read-Reply",
	0x11: "Report-Allowed",
	0x12: "Response-Status",
	0x13: "Response-Text",
	0x14: "Sender-Visibility",
	0x15: "Status",
	0x16: "Subject",
	0x17: "To",
	0x18: "Transaction-Id",
}

var headerFieldCodes = func() map[string]int {
	m := make(map[string]int, len(HeaderFieldNames))
	for code, name := range HeaderFieldNames {
		m[name] = code
	}
	return m
}()

// HeaderFieldCode returns the well-known code for a header name.
func HeaderFieldCode(name string) (int, bool) {
	c, ok := headerFieldCodes[name]
	return c, ok
}

// maxHeaderCode is the highest well-known code carried by a given table
// version, used to validate that a version selection is recognised before
// any decoding is attempted.
var maxHeaderCode = map[string]int{
	"1.2": 0x2f,
	"1.3": 0x38,
	"1.4": 0x44,
}

// DefaultVersion is the WSP table revision used when none is specified.
const DefaultVersion = "1.2"

// ValidateVersion reports an error if version names a table revision this
// package does not carry.
func ValidateVersion(version string) error {
	if _, ok := maxHeaderCode[version]; !ok {
		return DecodeError("version", 0, ErrUnknownVersion)
	}
	return nil
}

// Charsets is the well-known charset (IANA MIBEnum) table.
var Charsets = map[int]string{
	3:     "us-ascii",
	4:     "iso-8859-1",
	5:     "iso-8859-2",
	6:     "iso-8859-3",
	7:     "iso-8859-4",
	8:     "iso-8859-5",
	9:     "iso-8859-6",
	10:    "iso-8859-7",
	11:    "iso-8859-8",
	12:    "iso-8859-9",
	17:    "shift_JIS",
	0x6a:  "utf-8",
	0x3e8: "iso-10646-ucs-2",
	0x7ea: "big5",
}

var charsetMibEnums = func() map[string]int {
	m := make(map[string]int, len(Charsets))
	for mib, name := range Charsets {
		m[name] = mib
	}
	return m
}()

// CharsetMIBEnum returns the IANA MIBEnum for a charset name.
func CharsetMIBEnum(name string) (int, bool) {
	m, ok := charsetMibEnums[name]
	return m, ok
}
