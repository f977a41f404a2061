// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"giftshop/internal/catalog"
)

const (
	// DefaultOutboxKey is the Valkey list a mail relay drains with BRPOP.
	DefaultOutboxKey = "notify:outbox"

	// outboxCap bounds the list when no relay is consuming it.
	outboxCap = 1000
)

// ValkeyNotifier pushes envelopes onto a Valkey list. LPUSH plus a
// consumer's BRPOP gives FIFO delivery.
type ValkeyNotifier struct {
	client    *redis.Client
	key       string
	recipient string
}

// NewValkey returns a ValkeyNotifier writing to key.
func NewValkey(client *redis.Client, key, recipient string) (*ValkeyNotifier, error) {
	if client == nil {
		return nil, errors.New("valkey notifier: client is required")
	}
	if key == "" {
		key = DefaultOutboxKey
	}
	return &ValkeyNotifier{client: client, key: key, recipient: recipient}, nil
}

func (n *ValkeyNotifier) Notify(ctx context.Context, msg catalog.Notification) error {
	data, err := json.Marshal(NewEnvelope(msg, n.recipient))
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	pipe := n.client.TxPipeline()
	pipe.LPush(ctx, n.key, data)
	pipe.LTrim(ctx, n.key, 0, outboxCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push notification: %w", err)
	}
	return nil
}
