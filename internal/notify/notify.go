// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package notify delivers shop notifications (new orders, consultation
// requests, contact messages, comments awaiting moderation) to the shop
// owner. Delivery is best-effort; the catalog service logs failures and
// moves on.
package notify

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"giftshop/internal/catalog"
)

// Envelope is the wire form shared by every backend.
type Envelope struct {
	ID         string            `json:"id"`
	Event      string            `json:"event"`
	To         string            `json:"to,omitempty"`
	ReplyTo    string            `json:"replyTo,omitempty"`
	Subject    string            `json:"subject"`
	Body       string            `json:"body"`
	Fields     map[string]string `json:"fields,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}

// amountFields are rendered as grouped decimals in the body.
var amountFields = map[string]bool{"totalAmount": true}

var printer = message.NewPrinter(language.English)

// NewEnvelope stamps n with a sortable id and renders its text body.
func NewEnvelope(n catalog.Notification, recipient string) Envelope {
	at := n.OccurredAt
	if at.IsZero() {
		at = time.Now().UTC()
	}
	return Envelope{
		ID:         ulid.MustNew(ulid.Timestamp(at), ulid.DefaultEntropy()).String(),
		Event:      n.Event,
		To:         recipient,
		ReplyTo:    n.ReplyTo,
		Subject:    n.Subject,
		Body:       renderBody(n),
		Fields:     n.Fields,
		OccurredAt: at,
	}
}

// renderBody lays fields out one per line in key order.
func renderBody(n catalog.Notification) string {
	var b strings.Builder
	b.WriteString(n.Subject)
	b.WriteString("\n")

	keys := make([]string, 0, len(n.Fields))
	for k := range n.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		fmt.Fprintf(&b, "\n%s: %s", k, formatField(k, n.Fields[k]))
	}
	return b.String()
}

func formatField(key, value string) string {
	if !amountFields[key] {
		return value
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return value
	}
	f, _ := d.Float64()
	return printer.Sprintf("%.2f", f)
}
