// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

// Package mms implements WAP-209 MMS encapsulation: the message-header
// field table, per-field value grammars and the multipart body layout,
// built on the WAP-230 primitives in encoding/wsp.
package mms

import (
	"time"

	"github.com/pmarti/go-messaging/encoding/wsp"
)

// MessageType is the MMS X-Mms-Message-Type header value.
type MessageType int

// Message types defined by WAP-209 §6.3 table 5.
const (
	TypeUnknown MessageType = iota
	TypeSendReq
	TypeSendConf
	TypeNotificationInd
	TypeNotifyRespInd
	TypeRetrieveConf
	TypeAcknowledgeInd
	TypeDeliveryInd
)

var messageTypeCode = map[MessageType]byte{
	TypeSendReq:         0x80,
	TypeSendConf:        0x81,
	TypeNotificationInd: 0x82,
	TypeNotifyRespInd:   0x83,
	TypeRetrieveConf:    0x84,
	TypeAcknowledgeInd:  0x85,
	TypeDeliveryInd:     0x86,
}

var messageTypeFromCode = func() map[byte]MessageType {
	m := make(map[byte]MessageType, len(messageTypeCode))
	for t, b := range messageTypeCode {
		m[b] = t
	}
	return m
}()

func (t MessageType) String() string {
	switch t {
	case TypeSendReq:
		return "m-send-req"
	case TypeSendConf:
		return "m-send-conf"
	case TypeNotificationInd:
		return "m-notification-ind"
	case TypeNotifyRespInd:
		return "m-notifyresp-ind"
	case TypeRetrieveConf:
		return "m-retrieve-conf"
	case TypeAcknowledgeInd:
		return "m-acknowledge-ind"
	case TypeDeliveryInd:
		return "m-delivery-ind"
	default:
		return "<unknown>"
	}
}

// Priority is the MMS X-Mms-Priority header value.
type Priority int

const (
	PriorityUnspecified Priority = 0
	PriorityLow         Priority = 128
	PriorityNormal      Priority = 129
	PriorityHigh        Priority = 130
)

// Status is the MMS X-Mms-Status header value.
type Status int

const (
	StatusUnspecified  Status = 0
	StatusExpired      Status = 0x80
	StatusRetrieved    Status = 0x81
	StatusRejected     Status = 0x82
	StatusDeferred     Status = 0x83
	StatusUnrecognised Status = 0x84
)

// ResponseStatus is the MMS X-Mms-Response-Status header value.
type ResponseStatus int

const (
	ResponseUnspecified                   ResponseStatus = 0
	ResponseOK                            ResponseStatus = 0x80
	ResponseErrorUnspecified              ResponseStatus = 0x81
	ResponseErrorServiceDenied            ResponseStatus = 0x82
	ResponseErrorMessageFormatCorrupt     ResponseStatus = 0x83
	ResponseErrorSendingAddressUnresolved ResponseStatus = 0x84
	ResponseErrorMessageNotFound          ResponseStatus = 0x85
	ResponseErrorNetworkProblem           ResponseStatus = 0x86
	ResponseErrorContentNotAccepted       ResponseStatus = 0x87
	ResponseErrorUnsupportedMessage       ResponseStatus = 0x88
)

// EncodedString is a WAP-209 encoded-string-value: text, optionally tagged
// with an IANA MIBEnum charset (wsp.AnyCharset-style int, 0 if none was
// carried on the wire).
type EncodedString struct {
	Charset int
	Text    string
}

// Address is the value of an MMS From header: either a concrete
// encoded-string address, or the "insert-address-token" meaning the MMSC
// should fill in the sender's own address.
type Address struct {
	Insert bool
	EncodedString
}

// DateOrDelta is the value of an Expiry or Delivery-Time header: either an
// absolute point in time, or a relative offset in seconds.
type DateOrDelta struct {
	Absolute bool
	Time     time.Time
	Delta    uint64
}

// Header is an application (non-well-known) header carried verbatim.
type Header struct {
	Name  string
	Value string
}

// Part is one entry of an MMS multipart body.
type Part struct {
	ContentType wsp.ContentType
	ContentID   string
	Headers     []Header
	Data        []byte
}

// Message is a decoded or to-be-encoded MMS PDU.
type Message struct {
	MessageType    MessageType
	TransactionID  string
	Version        wsp.Version
	From           *Address
	To             []EncodedString
	Cc             []EncodedString
	Bcc            []EncodedString
	Subject        *EncodedString
	Date           time.Time
	MessageClass   string
	MessageID      string
	MessageSize    uint64
	Priority       Priority
	DeliveryReport bool
	ReadReply      bool
	ReportAllowed  bool
	ResponseStatus ResponseStatus
	ResponseText   *EncodedString
	SenderVisible  bool
	Status         Status
	DeliveryTime    *DateOrDelta
	Expiry          *DateOrDelta
	ContentLocation string
	ContentType     wsp.ContentType
	Extra           []Header
	Parts           []Part
}
